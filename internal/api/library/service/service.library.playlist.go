package librarysvc

import (
	"context"
	"strings"
	"time"

	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/models"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/utility"
)

// Message của playlist
const (
	MsgPlaylistMissing        = "Please provide playlist details including title to be added to playlists."
	MsgPlaylistTitleExists    = "Playlist with this title already exists in user's playlists."
	MsgPlaylistNotFound       = "Playlist does not exist in user's playlists"
	MsgPlaylistVideoMissing   = "Please provide video details to be added to the specified playlist."
	MsgPlaylistVideoExists    = "Video already exists in playlist."
	MsgPlaylistVideoNotExists = "Video does not exist in the specified playlist."
)

// PlaylistInput là dữ liệu tạo playlist mới
type PlaylistInput struct {
	Title       string
	Description string
}

// PlaylistService quản lý danh sách phát của user và video trong từng danh sách
type PlaylistService struct {
	store UserStore
	now   func() time.Time
	newID func() string
}

// NewPlaylistService tạo mới PlaylistService
func NewPlaylistService(store UserStore) *PlaylistService {
	return &PlaylistService{
		store: store,
		now:   time.Now,
		newID: utility.NewID,
	}
}

// List trả về toàn bộ playlist của user
func (s *PlaylistService) List(ctx context.Context, userID string) ([]models.Playlist, error) {
	user, err := s.store.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.PlaylistList(), nil
}

// Add tạo playlist mới với _id mới và videos rỗng. Title trùng (phân biệt hoa thường) thì trả Conflict.
func (s *PlaylistService) Add(ctx context.Context, userID string, input PlaylistInput) ([]models.Playlist, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, common.NewBadRequest(MsgPlaylistMissing)
	}

	now := s.now().UTC()
	playlist := models.Playlist{
		ID:          s.newID(),
		Title:       input.Title,
		Description: input.Description,
		Videos:      []models.VideoItem{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	user, matched, err := s.store.PushPlaylist(ctx, userID, playlist, now)
	if err != nil {
		return nil, err
	}
	if !matched {
		if _, err := s.store.FindUser(ctx, userID); err != nil {
			return nil, err
		}
		return nil, common.NewConflict(MsgPlaylistTitleExists)
	}
	return user.PlaylistList(), nil
}

// Remove xóa playlist theo id
func (s *PlaylistService) Remove(ctx context.Context, userID, playlistID string) ([]models.Playlist, error) {
	user, matched, err := s.store.PullPlaylist(ctx, userID, playlistID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if !matched {
		if _, err := s.store.FindUser(ctx, userID); err != nil {
			return nil, err
		}
		return nil, common.NewNotFound(MsgPlaylistNotFound)
	}
	return user.PlaylistList(), nil
}

// Get trả về một playlist của user
func (s *PlaylistService) Get(ctx context.Context, userID, playlistID string) (*models.Playlist, error) {
	user, err := s.store.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	playlist, ok := user.FindPlaylist(playlistID)
	if !ok {
		return nil, common.NewNotFound(MsgPlaylistNotFound)
	}
	result := *playlist
	result.Normalize()
	return &result, nil
}

// AddVideo thêm bản sao video vào playlist nếu playlist chưa chứa video cùng _id
func (s *PlaylistService) AddVideo(ctx context.Context, userID, playlistID string, item models.VideoItem) ([]models.Playlist, error) {
	if item.ID == "" {
		return nil, common.NewBadRequest(MsgPlaylistVideoMissing)
	}

	now := s.now().UTC()
	item.Stamp(now)

	user, matched, err := s.store.PushPlaylistVideo(ctx, userID, playlistID, item, now)
	if err != nil {
		return nil, err
	}
	if !matched {
		current, err := s.store.FindUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if _, ok := current.FindPlaylist(playlistID); !ok {
			return nil, common.NewNotFound(MsgPlaylistNotFound)
		}
		return nil, common.NewConflict(MsgPlaylistVideoExists)
	}
	return user.PlaylistList(), nil
}

// RemoveVideo xóa video khỏi playlist
func (s *PlaylistService) RemoveVideo(ctx context.Context, userID, playlistID, videoID string) ([]models.Playlist, error) {
	user, matched, err := s.store.PullPlaylistVideo(ctx, userID, playlistID, videoID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if !matched {
		current, err := s.store.FindUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if _, ok := current.FindPlaylist(playlistID); !ok {
			return nil, common.NewNotFound(MsgPlaylistNotFound)
		}
		return nil, common.NewNotFound(MsgPlaylistVideoNotExists)
	}
	return user.PlaylistList(), nil
}
