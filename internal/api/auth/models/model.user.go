package models

import (
	"time"

	librarymodels "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/models"
)

// User đại diện cho người dùng. _id là chuỗi hex ObjectID.
// likes, watchlater, history, playlists là các mảng nhúng do người dùng sở hữu.
type User struct {
	ID        string `json:"_id" bson:"_id"`
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"-" bson:"password"` // Hash bcrypt, không bao giờ trả về client

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`

	// ===== EMBEDDED COLLECTIONS =====
	Likes      []librarymodels.VideoItem `json:"likes" bson:"likes"`
	WatchLater []librarymodels.VideoItem `json:"watchlater" bson:"watchlater"`
	History    []librarymodels.VideoItem `json:"history" bson:"history"`
	Playlists  []librarymodels.Playlist  `json:"playlists" bson:"playlists"`
}

// NewUser tạo user mới với các mảng nhúng rỗng (không null trong database)
func NewUser(id, firstName, lastName, email, passwordHash string, now time.Time) *User {
	return &User{
		ID:         id,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Password:   passwordHash,
		CreatedAt:  now,
		UpdatedAt:  now,
		Likes:      []librarymodels.VideoItem{},
		WatchLater: []librarymodels.VideoItem{},
		History:    []librarymodels.VideoItem{},
		Playlists:  []librarymodels.Playlist{},
	}
}

// Items trả về bản sao của bộ sưu tập theo tên field, luôn khác nil
func (u *User) Items(field string) []librarymodels.VideoItem {
	var items []librarymodels.VideoItem
	switch field {
	case librarymodels.FieldLikes:
		items = u.Likes
	case librarymodels.FieldWatchLater:
		items = u.WatchLater
	case librarymodels.FieldHistory:
		items = u.History
	}
	out := make([]librarymodels.VideoItem, len(items))
	copy(out, items)
	return out
}

// PlaylistList trả về danh sách playlist đã chuẩn hoá (không nil, videos không nil)
func (u *User) PlaylistList() []librarymodels.Playlist {
	out := make([]librarymodels.Playlist, len(u.Playlists))
	for i, p := range u.Playlists {
		p.Normalize()
		out[i] = p
	}
	return out
}

// FindPlaylist tìm playlist theo id, trả về con trỏ tới phần tử trong u.Playlists
func (u *User) FindPlaylist(playlistID string) (*librarymodels.Playlist, bool) {
	for i := range u.Playlists {
		if u.Playlists[i].ID == playlistID {
			return &u.Playlists[i], true
		}
	}
	return nil, false
}
