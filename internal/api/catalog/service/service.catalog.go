// Package catalogsvc - service chỉ đọc cho video và danh mục video.
package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/base/service"
	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/catalog/models"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/global"
)

// ReadService là các thao tác đọc mà handler catalog cần
type ReadService[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindOneById(ctx context.Context, id string) (T, error)
}

// CatalogService đọc dữ liệu từ một collection catalog
type CatalogService[T any] struct {
	*basesvc.BaseServiceMongoImpl[T]
}

// NewVideoService tạo service cho collection videos
func NewVideoService() (*CatalogService[models.Video], error) {
	return newCatalogService[models.Video](global.MongoDB_ColNames.Videos)
}

// NewCategoryService tạo service cho collection categories
func NewCategoryService() (*CatalogService[models.Category], error) {
	return newCatalogService[models.Category](global.MongoDB_ColNames.Categories)
}

func newCatalogService[T any](name string) (*CatalogService[T], error) {
	collection, exist := global.RegistryCollections.Get(name)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection: %v", name, common.ErrNotFound)
	}
	return &CatalogService[T]{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[T](collection),
	}, nil
}

// FindAll trả về toàn bộ document, sắp xếp theo _id
func (s *CatalogService[T]) FindAll(ctx context.Context) ([]T, error) {
	return s.Find(ctx, nil, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}
