package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devansu-Yadav/TechTv-BackEnd/config"
)

const testPrefix = "techtv:limiter:"

// newTestRedisStorage dựng storage trên Redis chạy trong tiến trình test
func newTestRedisStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	storage, err := NewRedisStorage(&config.Configuration{Redis_Addr: mr.Addr()}, testPrefix)
	require.NoError(t, err)
	require.NotNil(t, storage)
	t.Cleanup(func() { _ = storage.Close() })
	return storage, mr
}

func TestRedisStorage_SetGet(t *testing.T) {
	storage, mr := newTestRedisStorage(t)

	require.NoError(t, storage.Set("10.0.0.1", []byte("3"), 0))
	val, err := storage.Get("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), val)

	// Key lưu trong Redis có prefix
	raw, err := mr.Get(testPrefix + "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "3", raw)
	assert.False(t, mr.Exists("10.0.0.1"))

	val, err = storage.GetWithContext(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, val, "key không tồn tại trả về nil, nil")
}

func TestRedisStorage_EmptyKeyOrValue(t *testing.T) {
	storage, mr := newTestRedisStorage(t)

	assert.NoError(t, storage.Set("", []byte("1"), 0))
	assert.NoError(t, storage.Set("10.0.0.2", nil, 0))
	assert.Empty(t, mr.Keys())

	val, err := storage.Get("")
	assert.NoError(t, err)
	assert.Nil(t, val)
	assert.NoError(t, storage.Delete(""))
}

func TestRedisStorage_Expiration(t *testing.T) {
	storage, mr := newTestRedisStorage(t)

	require.NoError(t, storage.Set("10.0.0.3", []byte("1"), time.Minute))
	assert.Equal(t, time.Minute, mr.TTL(testPrefix+"10.0.0.3"))

	mr.FastForward(61 * time.Second)
	val, err := storage.Get("10.0.0.3")
	require.NoError(t, err)
	assert.Nil(t, val, "hết hạn thì key biến mất")
}

func TestRedisStorage_Delete(t *testing.T) {
	storage, mr := newTestRedisStorage(t)

	require.NoError(t, storage.Set("10.0.0.4", []byte("1"), 0))
	require.NoError(t, storage.Delete("10.0.0.4"))
	assert.False(t, mr.Exists(testPrefix+"10.0.0.4"))

	// Xoá key không tồn tại không lỗi
	assert.NoError(t, storage.DeleteWithContext(context.Background(), "10.0.0.4"))
}

func TestRedisStorage_ResetKeepsForeignKeys(t *testing.T) {
	storage, mr := newTestRedisStorage(t)

	require.NoError(t, storage.Set("10.0.0.5", []byte("1"), 0))
	require.NoError(t, storage.Set("10.0.0.6", []byte("2"), 0))
	require.NoError(t, mr.Set("session:abc", "keep"))

	require.NoError(t, storage.Reset())
	assert.Equal(t, []string{"session:abc"}, mr.Keys())

	// Reset khi không còn key nào
	assert.NoError(t, storage.ResetWithContext(context.Background()))
}

func TestRedisStorage_ServerError(t *testing.T) {
	storage, mr := newTestRedisStorage(t)

	mr.SetError("ERR server unavailable")
	_, err := storage.Get("10.0.0.7")
	assert.Error(t, err)
	assert.Error(t, storage.Set("10.0.0.7", []byte("1"), 0))
	assert.Error(t, storage.Reset())
}

func TestNewRedisStorage_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	storage, err := NewRedisStorage(&config.Configuration{Redis_Addr: addr}, testPrefix)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping Redis")
	assert.Nil(t, storage)
}

func TestRedisStorage_Close(t *testing.T) {
	mr := miniredis.RunT(t)
	storage, err := NewRedisStorage(&config.Configuration{Redis_Addr: mr.Addr()}, testPrefix)
	require.NoError(t, err)

	require.NoError(t, storage.Close())
	assert.Error(t, storage.Set("10.0.0.8", []byte("1"), 0), "client đã đóng")
	assert.Error(t, storage.Close(), "đóng lần hai trả về lỗi")
}

func TestCloseInstance_NilClient(t *testing.T) {
	assert.NoError(t, CloseInstance(context.Background(), nil))
}
