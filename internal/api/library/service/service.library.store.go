// Package librarysvc - service cho các bộ sưu tập nhúng trong document user
// (likes, watchlater, history, playlists và videos của từng playlist).
package librarysvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/auth/models"
	basesvc "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/base/service"
	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/models"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/global"
)

// UserStore là tầng lưu trữ của document user.
// Mỗi thao tác ghi là MỘT lệnh cập nhật nguyên tử có điều kiện và trả về document sau cập nhật.
// matched = false nghĩa là filter không khớp (user không tồn tại hoặc điều kiện không thỏa),
// service sẽ đọc lại user để quyết định lỗi trả về.
type UserStore interface {
	FindUser(ctx context.Context, userID string) (*authmodels.User, error)
	PushItem(ctx context.Context, userID, field string, item models.VideoItem, now time.Time) (*authmodels.User, bool, error)
	PullItem(ctx context.Context, userID, field, itemID string, now time.Time) (*authmodels.User, bool, error)
	ClearItems(ctx context.Context, userID, field string, now time.Time) (*authmodels.User, bool, error)
	PushPlaylist(ctx context.Context, userID string, playlist models.Playlist, now time.Time) (*authmodels.User, bool, error)
	PullPlaylist(ctx context.Context, userID, playlistID string, now time.Time) (*authmodels.User, bool, error)
	PushPlaylistVideo(ctx context.Context, userID, playlistID string, item models.VideoItem, now time.Time) (*authmodels.User, bool, error)
	PullPlaylistVideo(ctx context.Context, userID, playlistID, videoID string, now time.Time) (*authmodels.User, bool, error)
}

// UserStoreMongo triển khai UserStore trên collection users
type UserStoreMongo struct {
	*basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewUserStoreMongo tạo mới UserStoreMongo từ registry collection
func NewUserStoreMongo() (*UserStoreMongo, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserStoreMongo{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
	}, nil
}

// FindUser đọc user theo id, trả về common.ErrUserNotFound nếu không tồn tại
func (s *UserStoreMongo) FindUser(ctx context.Context, userID string) (*authmodels.User, error) {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// apply chạy FindOneAndUpdate, không khớp thì trả matched = false
func (s *UserStoreMongo) apply(ctx context.Context, filter bson.M, update basesvc.UpdateData) (*authmodels.User, bool, error) {
	user, err := s.FindOneAndUpdate(ctx, filter, update, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &user, true, nil
}

func (s *UserStoreMongo) PushItem(ctx context.Context, userID, field string, item models.VideoItem, now time.Time) (*authmodels.User, bool, error) {
	filter, update := PushItemQuery(userID, field, item, now)
	return s.apply(ctx, filter, update)
}

func (s *UserStoreMongo) PullItem(ctx context.Context, userID, field, itemID string, now time.Time) (*authmodels.User, bool, error) {
	filter, update := PullItemQuery(userID, field, itemID, now)
	return s.apply(ctx, filter, update)
}

func (s *UserStoreMongo) ClearItems(ctx context.Context, userID, field string, now time.Time) (*authmodels.User, bool, error) {
	filter, update := ClearItemsQuery(userID, field, now)
	return s.apply(ctx, filter, update)
}

func (s *UserStoreMongo) PushPlaylist(ctx context.Context, userID string, playlist models.Playlist, now time.Time) (*authmodels.User, bool, error) {
	filter, update := PushPlaylistQuery(userID, playlist, now)
	return s.apply(ctx, filter, update)
}

func (s *UserStoreMongo) PullPlaylist(ctx context.Context, userID, playlistID string, now time.Time) (*authmodels.User, bool, error) {
	filter, update := PullPlaylistQuery(userID, playlistID, now)
	return s.apply(ctx, filter, update)
}

func (s *UserStoreMongo) PushPlaylistVideo(ctx context.Context, userID, playlistID string, item models.VideoItem, now time.Time) (*authmodels.User, bool, error) {
	filter, update := PushPlaylistVideoQuery(userID, playlistID, item, now)
	return s.apply(ctx, filter, update)
}

func (s *UserStoreMongo) PullPlaylistVideo(ctx context.Context, userID, playlistID, videoID string, now time.Time) (*authmodels.User, bool, error) {
	filter, update := PullPlaylistVideoQuery(userID, playlistID, videoID, now)
	return s.apply(ctx, filter, update)
}

// ====================================
// QUERY BUILDERS (filter + update)
// ====================================

// PushItemQuery: thêm item vào field nếu chưa có phần tử cùng _id
func PushItemQuery(userID, field string, item models.VideoItem, now time.Time) (bson.M, basesvc.UpdateData) {
	filter := bson.M{
		"_id":          userID,
		field + "._id": bson.M{"$ne": item.ID},
	}
	update := basesvc.UpdateData{
		Push: bson.M{field: item},
		Set:  bson.M{"updatedAt": now},
	}
	return filter, update
}

// PullItemQuery: rút item khỏi field, filter yêu cầu item đang tồn tại
func PullItemQuery(userID, field, itemID string, now time.Time) (bson.M, basesvc.UpdateData) {
	filter := bson.M{
		"_id":          userID,
		field + "._id": itemID,
	}
	update := basesvc.UpdateData{
		Pull: bson.M{field: bson.M{"_id": itemID}},
		Set:  bson.M{"updatedAt": now},
	}
	return filter, update
}

// ClearItemsQuery: đặt field thành mảng rỗng
func ClearItemsQuery(userID, field string, now time.Time) (bson.M, basesvc.UpdateData) {
	filter := bson.M{"_id": userID}
	update := basesvc.UpdateData{
		Set: bson.M{field: []models.VideoItem{}, "updatedAt": now},
	}
	return filter, update
}

// PushPlaylistQuery: thêm playlist nếu chưa có playlist cùng title
func PushPlaylistQuery(userID string, playlist models.Playlist, now time.Time) (bson.M, basesvc.UpdateData) {
	filter := bson.M{
		"_id":                            userID,
		models.FieldPlaylists + ".title": bson.M{"$ne": playlist.Title},
	}
	update := basesvc.UpdateData{
		Push: bson.M{models.FieldPlaylists: playlist},
		Set:  bson.M{"updatedAt": now},
	}
	return filter, update
}

// PullPlaylistQuery: xóa playlist theo _id, filter yêu cầu playlist đang tồn tại
func PullPlaylistQuery(userID, playlistID string, now time.Time) (bson.M, basesvc.UpdateData) {
	filter := bson.M{
		"_id":                          userID,
		models.FieldPlaylists + "._id": playlistID,
	}
	update := basesvc.UpdateData{
		Pull: bson.M{models.FieldPlaylists: bson.M{"_id": playlistID}},
		Set:  bson.M{"updatedAt": now},
	}
	return filter, update
}

// PushPlaylistVideoQuery: thêm video vào playlist (toán tử vị trí $) nếu playlist chưa chứa video đó
func PushPlaylistVideoQuery(userID, playlistID string, item models.VideoItem, now time.Time) (bson.M, basesvc.UpdateData) {
	filter := bson.M{
		"_id": userID,
		models.FieldPlaylists: bson.M{"$elemMatch": bson.M{
			"_id":        playlistID,
			"videos._id": bson.M{"$ne": item.ID},
		}},
	}
	update := basesvc.UpdateData{
		Push: bson.M{models.FieldPlaylists + ".$.videos": item},
		Set: bson.M{
			models.FieldPlaylists + ".$.updatedAt": now,
			"updatedAt":                            now,
		},
	}
	return filter, update
}

// PullPlaylistVideoQuery: rút video khỏi playlist, filter yêu cầu playlist chứa video đó
func PullPlaylistVideoQuery(userID, playlistID, videoID string, now time.Time) (bson.M, basesvc.UpdateData) {
	filter := bson.M{
		"_id": userID,
		models.FieldPlaylists: bson.M{"$elemMatch": bson.M{
			"_id":        playlistID,
			"videos._id": videoID,
		}},
	}
	update := basesvc.UpdateData{
		Pull: bson.M{models.FieldPlaylists + ".$.videos": bson.M{"_id": videoID}},
		Set: bson.M{
			models.FieldPlaylists + ".$.updatedAt": now,
			"updatedAt":                            now,
		},
	}
	return filter, update
}
