package dto

import "github.com/aarondl/null/v8"

type UpdateProfileDTO struct {
	FirstName       null.String `json:"first_name"`
	LastName        null.String `json:"last_name"`
	Phone           null.String `json:"phone"`
	Location        null.String `json:"location"`
	Bio             null.String `json:"bio"`
	ResumeText      null.String `json:"resume_text"`
	Experience      null.String `json:"experience"`
	Education       null.String `json:"education"`
	Skills          null.String `json:"skills"`
	PortfolioURL    null.String `json:"portfolio_url"`
	LinkedinURL     null.String `json:"linkedin_url"`
	GithubURL       null.String `json:"github_url"`
	DesiredSalary   null.Int    `json:"desired_salary"`
	DesiredJobType  null.String `json:"desired_job_type"`
	DesiredLocation null.String `json:"desired_location"`
}
