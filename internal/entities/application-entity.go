package entities

import "time"

const ApplicationStatusPending = "pending"

type Application struct {
	ID uint64 `json:"id" db:"id"`

	CoverLetter   string  `json:"cover_letter" db:"cover_letter"`
	Status        string  `json:"status" db:"status"`
	EmployerNotes *string `json:"employer_notes" db:"employer_notes"`

	AppliedAt time.Time `json:"applied_at" db:"applied_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	VacancyID   uint64 `json:"vacancy_id" db:"vacancy_id"`
	ApplicantID uint64 `json:"applicant_id" db:"applicant_id"`

	// Денормализованные поля для ответа /profile/my-applications.
	VacancyTitle string `json:"vacancy_title,omitempty" db:"-"`
	CompanyName  string `json:"company_name,omitempty" db:"-"`
}
