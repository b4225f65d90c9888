// Package router đăng ký các route công khai thuộc domain catalog: videos, categories.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/catalog/handler"
	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/catalog/models"
	catalogsvc "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/catalog/service"
	apirouter "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/router"
)

// Register đăng ký route catalog với service MongoDB
func Register(api fiber.Router, r *apirouter.Router) error {
	videoService, err := catalogsvc.NewVideoService()
	if err != nil {
		return fmt.Errorf("failed to create video service: %w", err)
	}
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return fmt.Errorf("failed to create category service: %w", err)
	}
	return RegisterWithServices(api, videoService, categoryService)
}

// RegisterWithServices đăng ký route catalog với service truyền vào
func RegisterWithServices(api fiber.Router, videos catalogsvc.ReadService[models.Video], categories catalogsvc.ReadService[models.Category]) error {
	videoHandler := cataloghdl.NewVideoHandler(videos)
	api.Get("/videos", videoHandler.HandleFindAll)
	api.Get("/videos/:videoId", videoHandler.HandleFindOneById)

	categoryHandler := cataloghdl.NewCategoryHandler(categories)
	api.Get("/categories", categoryHandler.HandleFindAll)
	api.Get("/categories/:categoryId", categoryHandler.HandleFindOneById)
	return nil
}
