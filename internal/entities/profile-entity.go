package entities

import "career-finder/pkg/types"

type Profile struct {
	ID     uint64 `json:"id" db:"id"`
	UserID uint64 `json:"user_id" db:"user_id"`

	FirstName    *string `json:"first_name" db:"first_name"`
	LastName     *string `json:"last_name" db:"last_name"`
	Phone        *string `json:"phone" db:"phone"`
	Location     *string `json:"location" db:"location"`
	Bio          *string `json:"bio" db:"bio"`
	ResumeText   *string `json:"resume_text" db:"resume_text"`
	Experience   *string `json:"experience" db:"experience"`
	Education    *string `json:"education" db:"education"`
	Skills       *string `json:"skills" db:"skills"`
	PortfolioURL *string `json:"portfolio_url" db:"portfolio_url"`
	LinkedinURL  *string `json:"linkedin_url" db:"linkedin_url"`
	GithubURL    *string `json:"github_url" db:"github_url"`
	Photo        *string `json:"photo" db:"photo"`

	DesiredSalary   *int    `json:"desired_salary" db:"desired_salary"`
	DesiredJobType  *string `json:"desired_job_type" db:"desired_job_type"`
	DesiredLocation *string `json:"desired_location" db:"desired_location"`

	types.BaseEntity
}

// FullName собирает отображаемое имя так же, как это делает фронт.
func (p *Profile) FullName() string {
	first, last := "", ""
	if p.FirstName != nil {
		first = *p.FirstName
	}
	if p.LastName != nil {
		last = *p.LastName
	}
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}
