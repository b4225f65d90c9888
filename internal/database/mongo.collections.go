package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/global"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/registry"
)

// RegisterCollections đăng ký các collection trong colNames vào registry
//
// Parameters:
// - reg: registry nhận các *mongo.Collection (thường là global.RegistryCollections).
// - db: database chứa các collection.
// - colNames: tên các collection cần đăng ký.
func RegisterCollections(reg *registry.Registry[*mongo.Collection], db *mongo.Database, colNames global.MongoDB_CollectionName) error {
	log := logger.WithModule("database")
	for _, name := range []string{colNames.Videos, colNames.Categories, colNames.Users} {
		registered, err := reg.Register(name, db.Collection(name))
		if err != nil {
			return fmt.Errorf("failed to register collection %q: %w", name, err)
		}
		if registered {
			log.Infof("Collection %s registered successfully", name)
		} else {
			log.Warnf("Collection %s already registered", name)
		}
	}
	return nil
}
