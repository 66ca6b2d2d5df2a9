package user

type Profile struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"required"`
	Avatar string `json:"avatar"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
