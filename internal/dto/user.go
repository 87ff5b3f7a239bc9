package dto

// SignupRequest 注册请求参数
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupResultDTO 注册结果
// exists/sameEmail 标志与原有对外约定保持一致
type SignupResultDTO struct {
	Exists    bool `json:"exists"`
	SameEmail bool `json:"sameEmail"`
}

// LoginRequest 登录请求参数
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResultDTO 登录结果，只回显用户名，不签发任何会话凭证
type LoginResultDTO struct {
	Username string `json:"username"`
}
