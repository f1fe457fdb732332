package authdto

// UserRegisterInput đầu vào đăng ký người dùng.
type UserRegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=30,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,no_xss"`
	Password string `json:"password" validate:"required,strong_password"`
}

// UserLoginInput đầu vào đăng nhập. Cho phép đăng nhập bằng username hoặc email.
type UserLoginInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput đầu vào làm mới access token.
// Token có thể nằm trong body hoặc cookie "refreshToken".
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordInput đầu vào đổi mật khẩu.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UpdateAccountInput đầu vào cập nhật thông tin tài khoản.
type UpdateAccountInput struct {
	FullName string `json:"fullName" validate:"omitempty,no_xss"`
	Email    string `json:"email" validate:"omitempty,email"`
}
