// Package testsupport cung cấp store trong bộ nhớ cho test handler/service không cần MongoDB.
// Ngữ nghĩa giống các filter cập nhật có điều kiện của store MongoDB.
package testsupport

import (
	"context"
	"strings"
	"sync"
	"time"

	authmodels "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/auth/models"
	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/models"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/utility"
)

// MemoryUserStore lưu user trong map, mọi thao tác đều giữ mutex
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]*authmodels.User

	// Số lần một thao tác của UserStore được gọi
	calls int

	// Err nếu khác nil sẽ được trả về từ mọi thao tác (giả lập lỗi database)
	Err error
}

// NewMemoryUserStore tạo store rỗng
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*authmodels.User)}
}

// SeedUser tạo user mới với các bộ sưu tập rỗng và trả về id
func (s *MemoryUserStore) SeedUser(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := utility.NewID()
	s.users[id] = authmodels.NewUser(id, "Test", "User", email, "", time.Now().UTC())
	return id
}

// Calls trả về số lần các thao tác UserStore đã chạm vào store.
// SeedUser và Snapshot không được đếm.
func (s *MemoryUserStore) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Snapshot trả về bản sao user để test kiểm tra trạng thái
func (s *MemoryUserStore) Snapshot(userID string) (*authmodels.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, false
	}
	return cloneUser(u), true
}

func (s *MemoryUserStore) FindUser(ctx context.Context, userID string) (*authmodels.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return nil, s.Err
	}
	u, ok := s.users[userID]
	if !ok {
		return nil, common.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// mutate chạy fn dưới lock; fn trả false nếu điều kiện (filter) không khớp
func (s *MemoryUserStore) mutate(userID string, now time.Time, fn func(u *authmodels.User) bool) (*authmodels.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return nil, false, s.Err
	}
	u, ok := s.users[userID]
	if !ok || !fn(u) {
		return nil, false, nil
	}
	u.UpdatedAt = now
	return cloneUser(u), true, nil
}

func (s *MemoryUserStore) PushItem(ctx context.Context, userID, field string, item models.VideoItem, now time.Time) (*authmodels.User, bool, error) {
	return s.mutate(userID, now, func(u *authmodels.User) bool {
		if hasItem(u, field, item.ID) {
			return false
		}
		setItems(u, field, append(u.Items(field), item))
		return true
	})
}

func (s *MemoryUserStore) PullItem(ctx context.Context, userID, field, itemID string, now time.Time) (*authmodels.User, bool, error) {
	return s.mutate(userID, now, func(u *authmodels.User) bool {
		if !hasItem(u, field, itemID) {
			return false
		}
		kept := make([]models.VideoItem, 0)
		for _, it := range u.Items(field) {
			if it.ID != itemID {
				kept = append(kept, it)
			}
		}
		setItems(u, field, kept)
		return true
	})
}

func (s *MemoryUserStore) ClearItems(ctx context.Context, userID, field string, now time.Time) (*authmodels.User, bool, error) {
	return s.mutate(userID, now, func(u *authmodels.User) bool {
		setItems(u, field, []models.VideoItem{})
		return true
	})
}

func (s *MemoryUserStore) PushPlaylist(ctx context.Context, userID string, playlist models.Playlist, now time.Time) (*authmodels.User, bool, error) {
	return s.mutate(userID, now, func(u *authmodels.User) bool {
		if hasPlaylistTitle(u, playlist.Title) {
			return false
		}
		u.Playlists = append(u.Playlists, playlist)
		return true
	})
}

func (s *MemoryUserStore) PullPlaylist(ctx context.Context, userID, playlistID string, now time.Time) (*authmodels.User, bool, error) {
	return s.mutate(userID, now, func(u *authmodels.User) bool {
		if _, ok := u.FindPlaylist(playlistID); !ok {
			return false
		}
		kept := make([]models.Playlist, 0, len(u.Playlists))
		for _, p := range u.Playlists {
			if p.ID != playlistID {
				kept = append(kept, p)
			}
		}
		u.Playlists = kept
		return true
	})
}

func (s *MemoryUserStore) PushPlaylistVideo(ctx context.Context, userID, playlistID string, item models.VideoItem, now time.Time) (*authmodels.User, bool, error) {
	return s.mutate(userID, now, func(u *authmodels.User) bool {
		p, ok := u.FindPlaylist(playlistID)
		if !ok || p.HasVideo(item.ID) {
			return false
		}
		p.Videos = append(p.Videos, item)
		p.UpdatedAt = now
		return true
	})
}

func (s *MemoryUserStore) PullPlaylistVideo(ctx context.Context, userID, playlistID, videoID string, now time.Time) (*authmodels.User, bool, error) {
	return s.mutate(userID, now, func(u *authmodels.User) bool {
		p, ok := u.FindPlaylist(playlistID)
		if !ok || !p.HasVideo(videoID) {
			return false
		}
		kept := make([]models.VideoItem, 0, len(p.Videos))
		for _, v := range p.Videos {
			if v.ID != videoID {
				kept = append(kept, v)
			}
		}
		p.Videos = kept
		p.UpdatedAt = now
		return true
	})
}

// FindByEmail tìm user theo email (không phân biệt hoa thường)
func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*authmodels.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrUserNotFound
}

// CreateUser thêm user, email trùng thì trả common.ErrEmailTaken (giống unique index)
func (s *MemoryUserStore) CreateUser(ctx context.Context, user *authmodels.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return s.Err
	}
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return common.ErrEmailTaken
		}
	}
	s.users[user.ID] = cloneUser(user)
	return nil
}

func cloneUser(u *authmodels.User) *authmodels.User {
	c := *u
	c.Likes = cloneItems(u.Likes)
	c.WatchLater = cloneItems(u.WatchLater)
	c.History = cloneItems(u.History)
	c.Playlists = make([]models.Playlist, len(u.Playlists))
	for i, p := range u.Playlists {
		p.Videos = cloneItems(p.Videos)
		c.Playlists[i] = p
	}
	return &c
}

func cloneItems(items []models.VideoItem) []models.VideoItem {
	out := make([]models.VideoItem, len(items))
	copy(out, items)
	return out
}

// QuietLogger cấu hình logger không ghi ra file hay stdout khi chạy test
func QuietLogger() {
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "none", BufferSize: 16})
}
