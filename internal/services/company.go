// Файл: internal/services/company.go
package services

import (
	"context"
	"errors"

	"career-finder/internal/dto"
	"career-finder/internal/entities"
	"career-finder/internal/repositories"
	apperrors "career-finder/pkg/errors"
	"career-finder/pkg/utils"
)

type CompanyServiceInterface interface {
	GetByID(ctx context.Context, id uint64) (*entities.Company, error)
	GetMine(ctx context.Context, userID uint64) (*entities.Company, error)
	UpdateMine(ctx context.Context, userID uint64, payload dto.UpdateCompanyDTO, sent map[string]struct{}) (*entities.Company, error)
}

type CompanyService struct {
	companyRepo repositories.CompanyRepositoryInterface
}

func NewCompanyService(companyRepo repositories.CompanyRepositoryInterface) CompanyServiceInterface {
	return &CompanyService{companyRepo: companyRepo}
}

func (s *CompanyService) GetByID(ctx context.Context, id uint64) (*entities.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Company not found")
		}
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) GetMine(ctx context.Context, userID uint64) (*entities.Company, error) {
	company, err := s.companyRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Company not found")
		}
		return nil, err
	}
	return company, nil
}

// UpdateMine применяет sparse-merge: меняются только присланные поля,
// присланный null обнуляет nullable-поле, остальное не трогается.
func (s *CompanyService) UpdateMine(ctx context.Context, userID uint64, payload dto.UpdateCompanyDTO, sent map[string]struct{}) (*entities.Company, error) {
	company, err := s.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, ok := sent["name"]; ok && payload.Name.Valid && payload.Name.String != "" {
		company.Name = payload.Name.String
	}
	if _, ok := sent["description"]; ok {
		company.Description = utils.NullStringPtr(payload.Description)
	}
	if _, ok := sent["website"]; ok {
		company.Website = utils.NullStringPtr(payload.Website)
	}
	if _, ok := sent["phone"]; ok {
		company.Phone = utils.NullStringPtr(payload.Phone)
	}
	if _, ok := sent["email"]; ok {
		company.Email = utils.NullStringPtr(payload.Email)
	}
	if _, ok := sent["address"]; ok {
		company.Address = utils.NullStringPtr(payload.Address)
	}
	if _, ok := sent["industry"]; ok {
		company.Industry = utils.NullStringPtr(payload.Industry)
	}
	if _, ok := sent["company_size"]; ok {
		company.CompanySize = utils.NullStringPtr(payload.CompanySize)
	}
	if _, ok := sent["founded_year"]; ok {
		company.FoundedYear = utils.NullIntPtr(payload.FoundedYear)
	}

	return s.companyRepo.Update(ctx, company)
}
