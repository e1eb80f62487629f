package entities

import "career-finder/pkg/types"

type Company struct {
	ID     uint64 `json:"id" db:"id"`
	UserID uint64 `json:"user_id" db:"user_id"`

	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
	Website     *string `json:"website" db:"website"`
	Phone       *string `json:"phone" db:"phone"`
	Email       *string `json:"email" db:"email"`
	Address     *string `json:"address" db:"address"`
	Logo        *string `json:"logo" db:"logo"`
	Industry    *string `json:"industry" db:"industry"`
	CompanySize *string `json:"company_size" db:"company_size"`
	FoundedYear *int    `json:"founded_year" db:"founded_year"`

	IsVerified bool `json:"is_verified" db:"is_verified"`

	// Заполняется репозиторием при выборке, колонки в companies нет.
	VacanciesCount uint64 `json:"vacancies_count" db:"-"`

	types.BaseEntity
}
