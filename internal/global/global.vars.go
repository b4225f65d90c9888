package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Devansu-Yadav/TechTv-BackEnd/config"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Videos     string // Tên collection cho video (chỉ đọc qua API)
	Categories string // Tên collection cho danh mục video (chỉ đọc qua API)
	Users      string // Tên collection cho người dùng (chứa likes, watchlater, history, playlists)
}

// Các biến toàn cục
var Validate *validator.Validate                                         // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                        // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                           // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections

// DefaultColNames trả về tên mặc định của các collection
func DefaultColNames() MongoDB_CollectionName {
	return MongoDB_CollectionName{
		Videos:     "videos",
		Categories: "categories",
		Users:      "users",
	}
}
