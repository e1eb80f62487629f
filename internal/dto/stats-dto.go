package dto

type StatsDTO struct {
	TotalVacancies uint64 `json:"total_vacancies"`
	TotalCompanies uint64 `json:"total_companies"`
	Status         string `json:"status"`
}
