package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/catalog/models"
)

const sampleCatalog = `
[[categories]]
_id = "61a5e1f0c3b9a4d2e8f01a01"
categoryName = "Programming"

[[videos]]
_id = "61a5e2a8c3b9a4d2e8f02b01"
title = "Go Concurrency Patterns"
categoryName = "Programming"
viewCount = 10
uploadDate = 2012-07-02T00:00:00Z
`

// memWriter là writer trong bộ nhớ, ghi nhận các lần upsert
type memWriter[T any] struct {
	docs      map[string]T
	deleted   int
	failAfter int
	countErr  error
}

func newMemWriter[T any]() *memWriter[T] {
	return &memWriter[T]{docs: map[string]T{}, failAfter: -1}
}

func (w *memWriter[T]) ReplaceOneById(ctx context.Context, id string, data T) (bool, error) {
	if w.failAfter == 0 {
		return false, errors.New("write failed")
	}
	w.failAfter--
	_, exists := w.docs[id]
	w.docs[id] = data
	return !exists, nil
}

func (w *memWriter[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	n := len(w.docs)
	w.docs = map[string]T{}
	w.deleted += n
	return int64(n), nil
}

func (w *memWriter[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if w.countErr != nil {
		return 0, w.countErr
	}
	return int64(len(w.docs)), nil
}

func TestParseCatalog(t *testing.T) {
	catalog, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, catalog.Categories, 1)
	require.Len(t, catalog.Videos, 1)

	video := catalog.Videos[0]
	assert.Equal(t, "Go Concurrency Patterns", video.Title)
	assert.Equal(t, int64(10), video.ViewCount)
	require.NotNil(t, video.UploadDate)
	assert.True(t, video.UploadDate.Equal(time.Date(2012, 7, 2, 0, 0, 0, 0, time.UTC)))
}

func TestParseCatalog_Invalid(t *testing.T) {
	cases := map[string]struct {
		input string
		want  string
	}{
		"bad id": {
			input: "[[categories]]\n_id = \"abc\"\ncategoryName = \"X\"\n",
			want:  `categories[0]: _id "abc" is not a valid id`,
		},
		"id not hex": {
			input: "[[videos]]\n_id = \"zzzzzzzzzzzzzzzzzzzzzzzz\"\ntitle = \"T\"\n",
			want:  `videos[0]: _id "zzzzzzzzzzzzzzzzzzzzzzzz" is not a valid id`,
		},
		"duplicate id": {
			input: sampleCatalog + "\n[[videos]]\n_id = \"61a5e2a8c3b9a4d2e8f02b01\"\ntitle = \"Again\"\n",
			want:  `videos[1]: duplicate _id`,
		},
		"missing title": {
			input: "[[videos]]\n_id = \"61a5e2a8c3b9a4d2e8f02b09\"\n",
			want:  "videos[0]: title is required",
		},
		"unknown category": {
			input: "[[videos]]\n_id = \"61a5e2a8c3b9a4d2e8f02b09\"\ntitle = \"T\"\ncategoryName = \"Nope\"\n",
			want:  `unknown categoryName "Nope"`,
		},
		"unknown key": {
			input: "[[videos]]\n_id = \"61a5e2a8c3b9a4d2e8f02b09\"\ntitle = \"T\"\nduration = 3\n",
			want:  "unknown keys in catalog: videos.duration",
		},
		"broken toml": {
			input: "[[videos]\n",
			want:  "failed to parse catalog",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseCatalog_SameIDAcrossTables(t *testing.T) {
	// Category và video nằm ở hai collection khác nhau nên được trùng _id
	input := `
[[categories]]
_id = "61a5e1f0c3b9a4d2e8f01a01"
categoryName = "Programming"

[[videos]]
_id = "61a5e1f0c3b9a4d2e8f01a01"
title = "Shared id"
categoryName = "Programming"
`
	catalog, err := ParseCatalog([]byte(input))
	require.NoError(t, err)
	assert.Len(t, catalog.Categories, 1)
	assert.Len(t, catalog.Videos, 1)

	// Trùng trong cùng một bảng vẫn bị từ chối
	_, err = ParseCatalog([]byte(input + "\n[[categories]]\n_id = \"61a5e1f0c3b9a4d2e8f01a01\"\ncategoryName = \"Again\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categories[1]: duplicate _id")
}

func TestLoadCatalog_SampleFile(t *testing.T) {
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	path := filepath.Join(filepath.Dir(file), "..", "..", "config", "seed", "catalog.toml")

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.NotEmpty(t, catalog.Categories)
	assert.NotEmpty(t, catalog.Videos)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSeedCatalog(t *testing.T) {
	catalog, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	categories := newMemWriter[models.Category]()
	videos := newMemWriter[models.Video]()
	ctx := context.Background()

	result, err := SeedCatalog(ctx, catalog, categories, videos, false)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{CategoriesCreated: 1, VideosCreated: 1, TotalCategories: 1, TotalVideos: 1}, result)

	// Chạy lại: upsert theo _id nên chỉ cập nhật
	result, err = SeedCatalog(ctx, catalog, categories, videos, false)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{CategoriesUpdated: 1, VideosUpdated: 1, TotalCategories: 1, TotalVideos: 1}, result)

	result, err = SeedCatalog(ctx, catalog, categories, videos, true)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{CategoriesCreated: 1, VideosCreated: 1, Dropped: 2, TotalCategories: 1, TotalVideos: 1}, result)
	assert.Len(t, videos.docs, 1)
}

func TestSeedCatalog_WriteError(t *testing.T) {
	catalog, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	videos := newMemWriter[models.Video]()
	videos.failAfter = 0
	result, err := SeedCatalog(context.Background(), catalog, newMemWriter[models.Category](), videos, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert video 61a5e2a8c3b9a4d2e8f02b01")
	assert.Equal(t, 1, result.CategoriesCreated)
}

func TestSeedCatalog_CountsExistingDocuments(t *testing.T) {
	catalog, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	videos := newMemWriter[models.Video]()
	videos.docs["61a5e2a8c3b9a4d2e8f02b99"] = models.Video{ID: "61a5e2a8c3b9a4d2e8f02b99", Title: "Old"}

	result, err := SeedCatalog(context.Background(), catalog, newMemWriter[models.Category](), videos, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.VideosCreated)
	assert.Equal(t, int64(2), result.TotalVideos, "video cũ không bị xoá khi không drop")
	assert.Equal(t, int64(1), result.TotalCategories)

	categories := newMemWriter[models.Category]()
	categories.countErr = errors.New("count failed")
	_, err = SeedCatalog(context.Background(), catalog, categories, newMemWriter[models.Video](), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count categories")
}
