package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginUser struct {
	Username string `json:"username"`
}

type LoginResponse struct {
	OK   bool      `json:"ok"`
	User LoginUser `json:"user"`
}
