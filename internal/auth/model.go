package auth

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type AdminProfile struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  AdminProfile `json:"user"`
}
