package global

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/utility"
)

var validatorOnce sync.Once

// InitValidator khởi tạo và đăng ký các custom validator, chỉ chạy một lần
func InitValidator() {
	validatorOnce.Do(func() {
		Validate = NewValidator()
	})
}

// NewValidator tạo validator với các custom tag: no_xss, objectid
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("no_xss", validateNoXSS)
	_ = v.RegisterValidation("objectid", validateObjectID)
	return v
}

// Validator trả về validator toàn cục, khởi tạo nếu chưa có. An toàn khi gọi đồng thời.
func Validator() *validator.Validate {
	InitValidator()
	return Validate
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerhtml",
		"<iframe",
		"<object",
		"<embed",
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateObjectID kiểm tra chuỗi có phải ObjectID hex 24 ký tự
func validateObjectID(fl validator.FieldLevel) bool {
	return utility.IsValidID(fl.Field().String())
}
