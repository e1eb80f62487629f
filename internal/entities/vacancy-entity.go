package entities

import "career-finder/pkg/types"

type Vacancy struct {
	ID uint64 `json:"id" db:"id"`

	Title        string  `json:"title" db:"title"`
	Description  string  `json:"description" db:"description"`
	Requirements string  `json:"requirements" db:"requirements"`
	SalaryFrom   *int    `json:"salary_from" db:"salary_from"`
	SalaryTo     *int    `json:"salary_to" db:"salary_to"`
	Currency     string  `json:"currency" db:"currency"`
	Location     string  `json:"location" db:"location"`

	EmploymentType  string `json:"employment_type" db:"employment_type"`
	ExperienceLevel string `json:"experience_level" db:"experience_level"`

	IsActive   bool `json:"is_active" db:"is_active"`
	ViewsCount int  `json:"views_count" db:"views_count"`

	EmployerID uint64 `json:"employer_id" db:"employer_id"`
	CompanyID  uint64 `json:"company_id" db:"company_id"`

	// Денормализованные поля для ответа, заполняются join-ом.
	CompanyName       string `json:"company_name,omitempty" db:"-"`
	ApplicationsCount uint64 `json:"applications_count" db:"-"`

	types.BaseEntity
}
