// Файл: internal/entities/user-entity.go
package entities

import "time"

const (
	UserTypeJobSeeker = "job_seeker"
	UserTypeEmployer  = "employer"
)

type User struct {
	ID       uint64 `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`

	PasswordHash string `json:"-" db:"password_hash"`

	UserType string `json:"user_type" db:"user_type"`
	IsActive bool   `json:"is_active" db:"is_active"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
