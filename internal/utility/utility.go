package utility

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidID kiểm tra id có đúng định dạng MongoDB ObjectID (chuỗi hex 24 ký tự) hay không.
// Mọi route có tham số :id đều gọi hàm này trước khi truy cập database.
func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// NewID sinh một ObjectID mới dạng chuỗi hex (dùng làm _id kiểu string)
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// SplitAndTrim tách chuỗi theo dấu phẩy và loại bỏ khoảng trắng, bỏ qua phần tử rỗng
func SplitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
