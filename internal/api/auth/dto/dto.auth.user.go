package authdto

// SignupInput đầu vào đăng ký tài khoản.
type SignupInput struct {
	FirstName string `json:"firstName" validate:"required,no_xss"`
	LastName  string `json:"lastName" validate:"required,no_xss"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"` // bcrypt chỉ nhận tối đa 72 byte
}

// LoginInput đầu vào đăng nhập bằng email và mật khẩu.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
