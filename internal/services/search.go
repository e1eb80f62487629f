// Файл: internal/services/search.go
package services

import (
	"context"

	"career-finder/internal/entities"
	"career-finder/internal/repositories"
	"career-finder/pkg/types"
)

// SearchService строит фильтрованные постраничные выборки по вакансиям
// и компаниям. Никакого ранжирования: фильтр плюс фиксированная сортировка.
type SearchServiceInterface interface {
	SearchVacancies(ctx context.Context, filter types.Filter) ([]entities.Vacancy, uint64, error)
	SearchCompanies(ctx context.Context, filter types.Filter) ([]entities.Company, uint64, error)
}

type SearchService struct {
	vacancyRepo repositories.VacancyRepositoryInterface
	companyRepo repositories.CompanyRepositoryInterface
}

func NewSearchService(
	vacancyRepo repositories.VacancyRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
) SearchServiceInterface {
	return &SearchService{vacancyRepo: vacancyRepo, companyRepo: companyRepo}
}

func (s *SearchService) SearchVacancies(ctx context.Context, filter types.Filter) ([]entities.Vacancy, uint64, error) {
	return s.vacancyRepo.List(ctx, filter)
}

func (s *SearchService) SearchCompanies(ctx context.Context, filter types.Filter) ([]entities.Company, uint64, error) {
	return s.companyRepo.List(ctx, filter)
}
