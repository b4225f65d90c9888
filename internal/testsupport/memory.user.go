package testsupport

import (
	authmodels "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/auth/models"
	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/models"
)

// setItems gán bộ sưu tập theo tên field, giống $set của store MongoDB
func setItems(u *authmodels.User, field string, items []models.VideoItem) {
	switch field {
	case models.FieldLikes:
		u.Likes = items
	case models.FieldWatchLater:
		u.WatchLater = items
	case models.FieldHistory:
		u.History = items
	}
}

// hasItem tương ứng điều kiện "<field>._id" trong filter
func hasItem(u *authmodels.User, field, itemID string) bool {
	for _, item := range u.Items(field) {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

// hasPlaylistTitle so khớp chính xác, phân biệt hoa thường
func hasPlaylistTitle(u *authmodels.User, title string) bool {
	for _, p := range u.Playlists {
		if p.Title == title {
			return true
		}
	}
	return false
}
