package models

import "time"

// Tên các field mảng nhúng trong document user
const (
	FieldLikes      = "likes"      // Video đã thích
	FieldWatchLater = "watchlater" // Video xem sau
	FieldHistory    = "history"    // Lịch sử xem
	FieldPlaylists  = "playlists"  // Danh sách phát
)

// VideoItem là bản sao (snapshot) của video tại thời điểm được thêm vào bộ sưu tập.
// Không đồng bộ lại khi video gốc thay đổi.
type VideoItem struct {
	ID           string     `json:"_id" bson:"_id" validate:"required"`
	Title        string     `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,no_xss"`
	VideoURL     string     `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
	CategoryName string     `json:"categoryName,omitempty" bson:"categoryName,omitempty"`
	ViewCount    *int64     `json:"viewCount,omitempty" bson:"viewCount,omitempty"`
	UploadDate   *time.Time `json:"uploadDate,omitempty" bson:"uploadDate,omitempty"`
	Description  string     `json:"description,omitempty" bson:"description,omitempty"`

	// ===== TIMESTAMPS ===== (set cùng một giá trị khi thêm)
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Playlist là danh sách phát thuộc về một user, chứa các VideoItem
type Playlist struct {
	ID          string      `json:"_id" bson:"_id"`
	Title       string      `json:"title" bson:"title"`
	Description string      `json:"description" bson:"description"`
	Videos      []VideoItem `json:"videos" bson:"videos"` // Không bao giờ null

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Stamp gán createdAt = updatedAt = now
func (v *VideoItem) Stamp(now time.Time) {
	v.CreatedAt = now
	v.UpdatedAt = now
}

// Normalize đảm bảo Videos không nil để JSON trả về [] thay vì null
func (p *Playlist) Normalize() {
	if p.Videos == nil {
		p.Videos = []VideoItem{}
	}
}

// HasVideo kiểm tra playlist đã chứa video id chưa
func (p *Playlist) HasVideo(videoID string) bool {
	for _, v := range p.Videos {
		if v.ID == videoID {
			return true
		}
	}
	return false
}

// IsCollectionField kiểm tra field có phải một bộ sưu tập video nhúng (likes, watchlater, history)
func IsCollectionField(field string) bool {
	switch field {
	case FieldLikes, FieldWatchLater, FieldHistory:
		return true
	}
	return false
}
