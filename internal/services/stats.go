// Файл: internal/services/stats.go
package services

import (
	"context"

	"career-finder/internal/dto"
	"career-finder/internal/repositories"
)

type StatsServiceInterface interface {
	GetStats(ctx context.Context) (*dto.StatsDTO, error)
}

type StatsService struct {
	vacancyRepo repositories.VacancyRepositoryInterface
	companyRepo repositories.CompanyRepositoryInterface
}

func NewStatsService(
	vacancyRepo repositories.VacancyRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
) StatsServiceInterface {
	return &StatsService{vacancyRepo: vacancyRepo, companyRepo: companyRepo}
}

func (s *StatsService) GetStats(ctx context.Context) (*dto.StatsDTO, error) {
	totalVacancies, err := s.vacancyRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	totalCompanies, err := s.companyRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsDTO{
		TotalVacancies: totalVacancies,
		TotalCompanies: totalCompanies,
		Status:         "success",
	}, nil
}
