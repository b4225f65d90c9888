package database

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/global"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
)

// IndexModels trả về các index cần có theo tên collection.
// _id đã có index mặc định nên không khai báo ở đây.
func IndexModels(colNames global.MongoDB_CollectionName) map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		// users: email duy nhất (sparse để bỏ qua user cũ không có email)
		colNames.Users: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("users_email_unique").SetUnique(true).SetSparse(true),
			},
		},
		// videos: lọc theo danh mục
		colNames.Videos: {
			{
				Keys:    bson.D{{Key: "categoryName", Value: 1}},
				Options: options.Index().SetName("videos_category_name"),
			},
		},
		colNames.Categories: {
			{
				Keys:    bson.D{{Key: "categoryName", Value: 1}},
				Options: options.Index().SetName("categories_category_name"),
			},
		},
	}
}

// EnsureIndexes tạo các index trong IndexModels, bỏ qua index đã tồn tại.
func EnsureIndexes(ctx context.Context, db *mongo.Database, colNames global.MongoDB_CollectionName) error {
	for colName, models := range IndexModels(colNames) {
		collection := db.Collection(colName)
		for _, model := range models {
			if _, err := collection.Indexes().CreateOne(ctx, model); err != nil && !isIndexExistsError(err) {
				return fmt.Errorf("create index on %s: %w", colName, err)
			}
		}
		logger.WithModule("database").WithField("collection", colName).Debug("Ensured indexes")
	}
	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "IndexOptionsConflict")
}
