package librarysvc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/models"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/testsupport"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var e *common.Error
	require.True(t, errors.As(err, &e), "lỗi phải là *common.Error, nhận được %v", err)
	return e.StatusCode
}

func newCollection(t *testing.T, field string) (*CollectionService, *testsupport.MemoryUserStore, string) {
	t.Helper()
	store := testsupport.NewMemoryUserStore()
	svc, err := NewCollectionService(store, field)
	require.NoError(t, err)
	return svc, store, store.SeedUser("user@techtv.dev")
}

func TestNewCollectionService_UnknownField(t *testing.T) {
	_, err := NewCollectionService(testsupport.NewMemoryUserStore(), "playlists")
	assert.Error(t, err)
}

func TestCollection_ListEmpty(t *testing.T) {
	svc, _, uid := newCollection(t, models.FieldLikes)
	items, err := svc.List(context.Background(), uid)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCollection_AddStampsAndRejectsDuplicate(t *testing.T) {
	svc, store, uid := newCollection(t, models.FieldLikes)
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	items, err := svc.Add(context.Background(), uid, models.VideoItem{ID: "v1", Title: "A"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "v1", items[0].ID)
	assert.Equal(t, fixed, items[0].CreatedAt)
	assert.Equal(t, items[0].CreatedAt, items[0].UpdatedAt)

	_, err = svc.Add(context.Background(), uid, models.VideoItem{ID: "v1", Title: "A again"})
	require.Error(t, err)
	assert.Equal(t, common.StatusForbidden, statusOf(t, err))
	assert.Equal(t, "Video already exists in liked videos", err.Error())

	user, _ := store.Snapshot(uid)
	assert.Len(t, user.Likes, 1)
	assert.Equal(t, "A", user.Likes[0].Title)
}

func TestCollection_AddMissingVideo(t *testing.T) {
	svc, _, uid := newCollection(t, models.FieldWatchLater)
	_, err := svc.Add(context.Background(), uid, models.VideoItem{})
	require.Error(t, err)
	assert.Equal(t, common.StatusBadRequest, statusOf(t, err))
	assert.Equal(t, "Please provide video details to be added to watch later.", err.Error())
}

func TestCollection_RemoveAbsentLeavesCollectionUnchanged(t *testing.T) {
	svc, store, uid := newCollection(t, models.FieldHistory)
	_, err := svc.Add(context.Background(), uid, models.VideoItem{ID: "v1"})
	require.NoError(t, err)

	_, err = svc.Remove(context.Background(), uid, "v2")
	require.Error(t, err)
	assert.Equal(t, common.StatusNotFound, statusOf(t, err))
	assert.Equal(t, "Video does not exist in watch history.", err.Error())

	user, _ := store.Snapshot(uid)
	assert.Len(t, user.History, 1)
}

func TestCollection_AddRemoveList(t *testing.T) {
	svc, _, uid := newCollection(t, models.FieldWatchLater)
	ctx := context.Background()

	_, err := svc.Add(ctx, uid, models.VideoItem{ID: "v1"})
	require.NoError(t, err)
	items, err := svc.Remove(ctx, uid, "v1")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = svc.List(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, []models.VideoItem{}, items)
}

func TestCollection_Clear(t *testing.T) {
	svc, _, uid := newCollection(t, models.FieldHistory)
	ctx := context.Background()
	for _, id := range []string{"v1", "v2", "v3"} {
		_, err := svc.Add(ctx, uid, models.VideoItem{ID: id})
		require.NoError(t, err)
	}

	items, err := svc.Clear(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, []models.VideoItem{}, items)

	// Clear trên bộ sưu tập rỗng vẫn thành công
	items, err = svc.Clear(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCollection_MissingUser(t *testing.T) {
	svc, _, _ := newCollection(t, models.FieldLikes)
	ctx := context.Background()
	missing := "507f1f77bcf86cd799439011"

	_, err := svc.List(ctx, missing)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
	_, err = svc.Add(ctx, missing, models.VideoItem{ID: "v1"})
	assert.ErrorIs(t, err, common.ErrUserNotFound)
	_, err = svc.Remove(ctx, missing, "v1")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
	_, err = svc.Clear(ctx, missing)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestCollection_StoreErrorPropagates(t *testing.T) {
	svc, store, uid := newCollection(t, models.FieldLikes)
	store.Err = common.ErrConnection

	_, err := svc.Add(context.Background(), uid, models.VideoItem{ID: "v1"})
	assert.ErrorIs(t, err, common.ErrConnection)
}

func TestCollection_ConcurrentAddKeepsOneCopy(t *testing.T) {
	svc, store, uid := newCollection(t, models.FieldLikes)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Add(context.Background(), uid, models.VideoItem{ID: "same"}); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	user, _ := store.Snapshot(uid)
	assert.Len(t, user.Likes, 1)
}

func newPlaylists(t *testing.T) (*PlaylistService, *testsupport.MemoryUserStore, string) {
	t.Helper()
	store := testsupport.NewMemoryUserStore()
	return NewPlaylistService(store), store, store.SeedUser("user@techtv.dev")
}

func TestPlaylist_AddAndDuplicateTitle(t *testing.T) {
	svc, _, uid := newPlaylists(t)
	ctx := context.Background()

	playlists, err := svc.Add(ctx, uid, PlaylistInput{Title: "Go", Description: "talks"})
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Len(t, playlists[0].ID, 24)
	assert.NotNil(t, playlists[0].Videos)
	assert.Empty(t, playlists[0].Videos)

	_, err = svc.Add(ctx, uid, PlaylistInput{Title: "Go"})
	require.Error(t, err)
	assert.Equal(t, common.StatusForbidden, statusOf(t, err))
	assert.Equal(t, MsgPlaylistTitleExists, err.Error())

	// Khác hoa thường là title khác
	playlists, err = svc.Add(ctx, uid, PlaylistInput{Title: "go"})
	require.NoError(t, err)
	assert.Len(t, playlists, 2)
}

func TestPlaylist_AddRequiresTitle(t *testing.T) {
	svc, _, uid := newPlaylists(t)
	_, err := svc.Add(context.Background(), uid, PlaylistInput{Title: "  "})
	require.Error(t, err)
	assert.Equal(t, MsgPlaylistMissing, err.Error())
}

func TestPlaylist_GetAndRemove(t *testing.T) {
	svc, _, uid := newPlaylists(t)
	ctx := context.Background()
	playlists, err := svc.Add(ctx, uid, PlaylistInput{Title: "Go"})
	require.NoError(t, err)
	pid := playlists[0].ID

	p, err := svc.Get(ctx, uid, pid)
	require.NoError(t, err)
	assert.Equal(t, "Go", p.Title)

	playlists, err = svc.Remove(ctx, uid, pid)
	require.NoError(t, err)
	assert.Empty(t, playlists)

	_, err = svc.Get(ctx, uid, pid)
	assert.Equal(t, MsgPlaylistNotFound, err.Error())
	_, err = svc.Remove(ctx, uid, pid)
	assert.Equal(t, common.StatusNotFound, statusOf(t, err))
}

func TestPlaylist_Videos(t *testing.T) {
	svc, _, uid := newPlaylists(t)
	ctx := context.Background()
	playlists, err := svc.Add(ctx, uid, PlaylistInput{Title: "Go"})
	require.NoError(t, err)
	pid := playlists[0].ID

	playlists, err = svc.AddVideo(ctx, uid, pid, models.VideoItem{ID: "v1", Title: "A"})
	require.NoError(t, err)
	require.Len(t, playlists[0].Videos, 1)
	assert.Equal(t, playlists[0].Videos[0].CreatedAt, playlists[0].Videos[0].UpdatedAt)

	_, err = svc.AddVideo(ctx, uid, pid, models.VideoItem{ID: "v1"})
	assert.Equal(t, common.StatusForbidden, statusOf(t, err))
	assert.Equal(t, MsgPlaylistVideoExists, err.Error())

	_, err = svc.AddVideo(ctx, uid, "507f1f77bcf86cd799439011", models.VideoItem{ID: "v2"})
	assert.Equal(t, MsgPlaylistNotFound, err.Error())

	_, err = svc.RemoveVideo(ctx, uid, pid, "v9")
	assert.Equal(t, common.StatusNotFound, statusOf(t, err))
	assert.Equal(t, MsgPlaylistVideoNotExists, err.Error())

	_, err = svc.RemoveVideo(ctx, uid, "507f1f77bcf86cd799439011", "v1")
	assert.Equal(t, MsgPlaylistNotFound, err.Error())

	playlists, err = svc.RemoveVideo(ctx, uid, pid, "v1")
	require.NoError(t, err)
	assert.Empty(t, playlists[0].Videos)
}

func TestPlaylist_MissingUser(t *testing.T) {
	svc, _, _ := newPlaylists(t)
	_, err := svc.Add(context.Background(), "507f1f77bcf86cd799439011", PlaylistInput{Title: "Go"})
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestQueryBuilders(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	item := models.VideoItem{ID: "v1"}

	filter, update := PushItemQuery("u1", models.FieldLikes, item, now)
	assert.Equal(t, bson.M{"_id": "u1", "likes._id": bson.M{"$ne": "v1"}}, filter)
	assert.Equal(t, bson.M{"likes": item}, update.Push)
	assert.Equal(t, bson.M{"updatedAt": now}, update.Set)

	filter, update = PullItemQuery("u1", models.FieldHistory, "v1", now)
	assert.Equal(t, bson.M{"_id": "u1", "history._id": "v1"}, filter)
	assert.Equal(t, bson.M{"history": bson.M{"_id": "v1"}}, update.Pull)

	filter, update = ClearItemsQuery("u1", models.FieldHistory, now)
	assert.Equal(t, bson.M{"_id": "u1"}, filter)
	assert.Equal(t, []models.VideoItem{}, update.Set["history"])

	filter, _ = PushPlaylistQuery("u1", models.Playlist{Title: "Go"}, now)
	assert.Equal(t, bson.M{"_id": "u1", "playlists.title": bson.M{"$ne": "Go"}}, filter)

	filter, update = PullPlaylistQuery("u1", "p1", now)
	assert.Equal(t, bson.M{"_id": "u1", "playlists._id": "p1"}, filter)
	assert.Equal(t, bson.M{"playlists": bson.M{"_id": "p1"}}, update.Pull)

	filter, update = PushPlaylistVideoQuery("u1", "p1", item, now)
	assert.Equal(t, bson.M{
		"_id":       "u1",
		"playlists": bson.M{"$elemMatch": bson.M{"_id": "p1", "videos._id": bson.M{"$ne": "v1"}}},
	}, filter)
	assert.Equal(t, bson.M{"playlists.$.videos": item}, update.Push)
	assert.Equal(t, now, update.Set["playlists.$.updatedAt"])

	filter, update = PullPlaylistVideoQuery("u1", "p1", "v1", now)
	assert.Equal(t, bson.M{
		"_id":       "u1",
		"playlists": bson.M{"$elemMatch": bson.M{"_id": "p1", "videos._id": "v1"}},
	}, filter)
	assert.Equal(t, bson.M{"playlists.$.videos": bson.M{"_id": "v1"}}, update.Pull)
}
