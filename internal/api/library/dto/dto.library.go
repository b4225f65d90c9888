// Package dto - body request của các route thư viện người dùng.
package dto

import models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/models"

// VideoInput là body {video: {...}} khi thêm video vào bộ sưu tập hoặc playlist
type VideoInput struct {
	Video *models.VideoItem `json:"video"`
}

// PlaylistInput là body {playlist: {title, description}} khi tạo playlist
type PlaylistInput struct {
	Playlist *PlaylistFields `json:"playlist"`
}

// PlaylistFields là dữ liệu playlist do client gửi lên
type PlaylistFields struct {
	Title       string `json:"title" validate:"required,no_xss"`
	Description string `json:"description" validate:"omitempty,no_xss"`
}
