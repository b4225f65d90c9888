package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Devansu-Yadav/TechTv-BackEnd/config"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/global"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/registry"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/testsupport"
)

func TestIndexModels(t *testing.T) {
	cols := global.MongoDB_CollectionName{Videos: "videos", Categories: "categories", Users: "users"}
	models := IndexModels(cols)

	require.Len(t, models, 3)
	users := models["users"]
	require.Len(t, users, 1)
	assert.Equal(t, bson.D{{Key: "email", Value: 1}}, users[0].Keys)
	require.NotNil(t, users[0].Options.Unique)
	assert.True(t, *users[0].Options.Unique)
	assert.True(t, *users[0].Options.Sparse)

	assert.Equal(t, bson.D{{Key: "categoryName", Value: 1}}, models["videos"][0].Keys)
}

func TestIsIndexExistsError(t *testing.T) {
	assert.False(t, isIndexExistsError(nil))
	assert.True(t, isIndexExistsError(errors.New("Index with name: users_email_unique already exists with different options")))
	assert.False(t, isIndexExistsError(errors.New("connection refused")))
}

func TestGetInstance_EmptyURI(t *testing.T) {
	_, err := GetInstance(&config.Configuration{})
	assert.Error(t, err)
	_, err = GetInstance(nil)
	assert.Error(t, err)
}

func TestNewRedisStorage_Disabled(t *testing.T) {
	storage, err := NewRedisStorage(&config.Configuration{}, "limiter:")
	assert.NoError(t, err)
	assert.Nil(t, storage, "REDIS_ADDR trống thì dùng storage trong bộ nhớ")
}

func TestRedisStorage_KeyPrefix(t *testing.T) {
	s := &RedisStorage{prefix: "techtv:limiter:"}
	assert.Equal(t, "techtv:limiter:127.0.0.1", s.key("127.0.0.1"))
}

func TestRegisterCollections(t *testing.T) {
	testsupport.QuietLogger()
	// NewClient không mở kết nối cho tới khi Connect
	client, err := mongo.NewClient(options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	db := client.Database("techtv_test")

	reg := registry.NewRegistry[*mongo.Collection]()
	require.NoError(t, RegisterCollections(reg, db, global.DefaultColNames()))
	assert.Equal(t, []string{"categories", "users", "videos"}, reg.Names())

	users, ok := reg.Get("users")
	require.True(t, ok)
	assert.Equal(t, "users", users.Name())
	assert.Equal(t, "techtv_test", users.Database().Name())

	// Đăng ký lần hai không lỗi
	require.NoError(t, RegisterCollections(reg, db, global.DefaultColNames()))

	err = RegisterCollections(reg, db, global.MongoDB_CollectionName{})
	assert.ErrorIs(t, err, common.ErrRequiredField)
}
