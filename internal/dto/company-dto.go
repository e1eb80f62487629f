package dto

import "github.com/aarondl/null/v8"

// UpdateCompanyDTO — PATCH-стиль: null.* различает "поле не прислали"
// и "прислали null". Непустые значения применяются поверх сущности.
type UpdateCompanyDTO struct {
	Name        null.String `json:"name"`
	Description null.String `json:"description"`
	Website     null.String `json:"website"`
	Phone       null.String `json:"phone"`
	Email       null.String `json:"email"`
	Address     null.String `json:"address"`
	Industry    null.String `json:"industry"`
	CompanySize null.String `json:"company_size"`
	FoundedYear null.Int    `json:"founded_year"`
}
