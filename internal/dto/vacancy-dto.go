package dto

type CreateVacancyDTO struct {
	Title           string `json:"title" validate:"required,max=100"`
	Description     string `json:"description" validate:"required"`
	Requirements    string `json:"requirements"`
	SalaryFrom      *int   `json:"salary_from" validate:"omitempty,min=0"`
	SalaryTo        *int   `json:"salary_to" validate:"omitempty,min=0"`
	Currency        string `json:"currency" validate:"omitempty,len=3"`
	Location        string `json:"location" validate:"omitempty,max=100"`
	EmploymentType  string `json:"employment_type" validate:"omitempty,max=50"`
	ExperienceLevel string `json:"experience_level" validate:"omitempty,max=50"`
}

type ApplyDTO struct {
	CoverLetter string `json:"cover_letter"`
}
