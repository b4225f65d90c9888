package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/catalog/models"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/global"
)

// CatalogFile là nội dung file seed: các bảng [[categories]] và [[videos]]
type CatalogFile struct {
	Categories []models.Category `toml:"categories"`
	Videos     []models.Video    `toml:"videos"`
}

// writer là phần của CatalogService mà seed cần: upsert theo _id, xoá toàn bộ và đếm
type writer[T any] interface {
	ReplaceOneById(ctx context.Context, id string, data T) (bool, error)
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

// SeedResult thống kê kết quả seed
type SeedResult struct {
	CategoriesCreated int
	CategoriesUpdated int
	VideosCreated     int
	VideosUpdated     int
	Dropped           int64
	// Tổng số document trong collection sau khi seed
	TotalCategories int64
	TotalVideos     int64
}

// LoadCatalog đọc và kiểm tra file TOML
func LoadCatalog(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parse nội dung TOML, từ chối key lạ và dữ liệu không hợp lệ
func ParseCatalog(data []byte) (*CatalogFile, error) {
	var catalog CatalogFile
	meta, err := toml.Decode(string(data), &catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("unknown keys in catalog: %s", strings.Join(keys, ", "))
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Validate gom mọi lỗi: id không phải ObjectID, id trùng, thiếu trường bắt buộc
func (f *CatalogFile) Validate() error {
	var errs []error
	categories := make(map[string]bool, len(f.Categories))
	// _id chỉ cần duy nhất trong từng collection
	seenCategories := make(map[string]bool, len(f.Categories))
	seenVideos := make(map[string]bool, len(f.Videos))

	for i, category := range f.Categories {
		errs = append(errs, checkID("categories", i, category.ID, seenCategories)...)
		if strings.TrimSpace(category.CategoryName) == "" {
			errs = append(errs, fmt.Errorf("categories[%d]: categoryName is required", i))
		}
		categories[category.CategoryName] = true
	}

	for i, video := range f.Videos {
		errs = append(errs, checkID("videos", i, video.ID, seenVideos)...)
		if strings.TrimSpace(video.Title) == "" {
			errs = append(errs, fmt.Errorf("videos[%d]: title is required", i))
		}
		if video.ViewCount < 0 {
			errs = append(errs, fmt.Errorf("videos[%d]: viewCount must not be negative", i))
		}
		if video.CategoryName != "" && !categories[video.CategoryName] {
			errs = append(errs, fmt.Errorf("videos[%d]: unknown categoryName %q", i, video.CategoryName))
		}
	}
	return errors.Join(errs...)
}

func checkID(table string, index int, id string, seen map[string]bool) []error {
	if err := global.Validator().Var(id, "required,objectid"); err != nil {
		return []error{fmt.Errorf("%s[%d]: _id %q is not a valid id", table, index, id)}
	}
	if seen[id] {
		return []error{fmt.Errorf("%s[%d]: duplicate _id %q", table, index, id)}
	}
	seen[id] = true
	return nil
}

// SeedCatalog ghi catalog vào hai collection, drop = true thì xoá dữ liệu cũ trước
func SeedCatalog(ctx context.Context, catalog *CatalogFile, categories writer[models.Category], videos writer[models.Video], drop bool) (SeedResult, error) {
	var result SeedResult

	if drop {
		n, err := categories.DeleteMany(ctx, nil)
		if err != nil {
			return result, fmt.Errorf("failed to drop categories: %w", err)
		}
		result.Dropped += n
		n, err = videos.DeleteMany(ctx, nil)
		if err != nil {
			return result, fmt.Errorf("failed to drop videos: %w", err)
		}
		result.Dropped += n
	}

	for _, category := range catalog.Categories {
		created, err := categories.ReplaceOneById(ctx, category.ID, category)
		if err != nil {
			return result, fmt.Errorf("failed to upsert category %s: %w", category.ID, err)
		}
		if created {
			result.CategoriesCreated++
		} else {
			result.CategoriesUpdated++
		}
	}

	for _, video := range catalog.Videos {
		created, err := videos.ReplaceOneById(ctx, video.ID, video)
		if err != nil {
			return result, fmt.Errorf("failed to upsert video %s: %w", video.ID, err)
		}
		if created {
			result.VideosCreated++
		} else {
			result.VideosUpdated++
		}
	}

	var err error
	if result.TotalCategories, err = categories.CountDocuments(ctx, nil); err != nil {
		return result, fmt.Errorf("failed to count categories: %w", err)
	}
	if result.TotalVideos, err = videos.CountDocuments(ctx, nil); err != nil {
		return result, fmt.Errorf("failed to count videos: %w", err)
	}
	return result, nil
}
