package dto

type RegisterDTO struct {
	Username    string `json:"username" validate:"omitempty,min=3,max=80"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	UserType    string `json:"user_type" validate:"omitempty,oneof=job_seeker employer"`
	CompanyName string `json:"company_name" validate:"omitempty,max=100"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type PasswordResetRequestDTO struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetConfirmDTO struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
