package models

import "time"

// Video là video trong thư viện, chỉ đọc qua API (dữ liệu nạp bằng công cụ seed)
type Video struct {
	ID           string     `json:"_id" bson:"_id" toml:"_id"`
	Title        string     `json:"title" bson:"title" toml:"title"`
	VideoURL     string     `json:"videoUrl" bson:"videoUrl" toml:"videoUrl"`
	CategoryName string     `json:"categoryName" bson:"categoryName" toml:"categoryName"`
	ViewCount    int64      `json:"viewCount" bson:"viewCount" toml:"viewCount"`
	UploadDate   *time.Time `json:"uploadDate,omitempty" bson:"uploadDate,omitempty" toml:"uploadDate"`
	Description  string     `json:"description" bson:"description" toml:"description"`
}

// Category là danh mục video, chỉ đọc qua API
type Category struct {
	ID           string `json:"_id" bson:"_id" toml:"_id"`
	CategoryName string `json:"categoryName" bson:"categoryName" toml:"categoryName"`
	Description  string `json:"description" bson:"description" toml:"description"`
}
