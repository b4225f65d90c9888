package librarysvc

import (
	"context"
	"fmt"
	"time"

	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/models"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
)

// Tên hiển thị của từng bộ sưu tập trong message trả về client
var collectionLabels = map[string]string{
	models.FieldLikes:      "liked videos",
	models.FieldWatchLater: "watch later",
	models.FieldHistory:    "watch history",
}

// CollectionService quản lý một bộ sưu tập video nhúng (likes, watchlater hoặc history)
type CollectionService struct {
	store UserStore
	field string
	label string
	now   func() time.Time
}

// NewCollectionService tạo service cho field của document user
func NewCollectionService(store UserStore, field string) (*CollectionService, error) {
	label, ok := collectionLabels[field]
	if !ok || !models.IsCollectionField(field) {
		return nil, fmt.Errorf("unknown user collection %q: %w", field, common.ErrInvalidInput)
	}
	return &CollectionService{
		store: store,
		field: field,
		label: label,
		now:   time.Now,
	}, nil
}

// Field trả về tên field mà service quản lý
func (s *CollectionService) Field() string {
	return s.field
}

// message thêm dấu chấm cuối cho history, giữ nguyên message cũ của API
func (s *CollectionService) message(format string) string {
	msg := fmt.Sprintf(format, s.label)
	if s.field == models.FieldHistory {
		msg += "."
	}
	return msg
}

// MsgMissingVideo là message khi request không có video
func (s *CollectionService) MsgMissingVideo() string {
	return fmt.Sprintf("Please provide video details to be added to %s.", s.label)
}

// List trả về toàn bộ bộ sưu tập, rỗng thì trả [] (không nil)
func (s *CollectionService) List(ctx context.Context, userID string) ([]models.VideoItem, error) {
	user, err := s.store.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Items(s.field), nil
}

// Add thêm bản sao video vào bộ sưu tập nếu chưa có video cùng _id
func (s *CollectionService) Add(ctx context.Context, userID string, item models.VideoItem) ([]models.VideoItem, error) {
	if item.ID == "" {
		return nil, common.NewBadRequest(s.MsgMissingVideo())
	}

	now := s.now().UTC()
	item.Stamp(now)

	user, matched, err := s.store.PushItem(ctx, userID, s.field, item, now)
	if err != nil {
		return nil, err
	}
	if !matched {
		// User không tồn tại hoặc video đã có trong bộ sưu tập
		if _, err := s.store.FindUser(ctx, userID); err != nil {
			return nil, err
		}
		return nil, common.NewConflict(s.message("Video already exists in %s"))
	}
	return user.Items(s.field), nil
}

// Remove xóa video khỏi bộ sưu tập theo _id
func (s *CollectionService) Remove(ctx context.Context, userID, itemID string) ([]models.VideoItem, error) {
	user, matched, err := s.store.PullItem(ctx, userID, s.field, itemID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if !matched {
		if _, err := s.store.FindUser(ctx, userID); err != nil {
			return nil, err
		}
		return nil, common.NewNotFound(s.message("Video does not exist in %s"))
	}
	return user.Items(s.field), nil
}

// Clear xóa toàn bộ bộ sưu tập (dùng cho history)
func (s *CollectionService) Clear(ctx context.Context, userID string) ([]models.VideoItem, error) {
	user, matched, err := s.store.ClearItems(ctx, userID, s.field, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, common.ErrUserNotFound
	}
	return user.Items(s.field), nil
}
