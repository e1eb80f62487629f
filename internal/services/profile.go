// Файл: internal/services/profile.go
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

type ProfileServiceInterface interface {
	GetMine(ctx context.Context, userID uint64) (*entities.Profile, error)
	UpdateMine(ctx context.Context, userID uint64, payload dto.UpdateProfileDTO, sent map[string]struct{}) (*entities.Profile, error)
	ListMyApplications(ctx context.Context, userID uint64) ([]entities.Application, error)
}

type ProfileService struct {
	profileRepo     repositories.ProfileRepositoryInterface
	applicationRepo repositories.ApplicationRepositoryInterface
}

func NewProfileService(
	profileRepo repositories.ProfileRepositoryInterface,
	applicationRepo repositories.ApplicationRepositoryInterface,
) ProfileServiceInterface {
	return &ProfileService{profileRepo: profileRepo, applicationRepo: applicationRepo}
}

func (s *ProfileService) GetMine(ctx context.Context, userID uint64) (*entities.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) UpdateMine(ctx context.Context, userID uint64, payload dto.UpdateProfileDTO, sent map[string]struct{}) (*entities.Profile, error) {
	profile, err := s.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, ok := sent["first_name"]; ok {
		profile.FirstName = utils.NullStringPtr(payload.FirstName)
	}
	if _, ok := sent["last_name"]; ok {
		profile.LastName = utils.NullStringPtr(payload.LastName)
	}
	if _, ok := sent["phone"]; ok {
		profile.Phone = utils.NullStringPtr(payload.Phone)
	}
	if _, ok := sent["location"]; ok {
		profile.Location = utils.NullStringPtr(payload.Location)
	}
	if _, ok := sent["bio"]; ok {
		profile.Bio = utils.NullStringPtr(payload.Bio)
	}
	if _, ok := sent["resume_text"]; ok {
		profile.ResumeText = utils.NullStringPtr(payload.ResumeText)
	}
	if _, ok := sent["experience"]; ok {
		profile.Experience = utils.NullStringPtr(payload.Experience)
	}
	if _, ok := sent["education"]; ok {
		profile.Education = utils.NullStringPtr(payload.Education)
	}
	if _, ok := sent["skills"]; ok {
		profile.Skills = utils.NullStringPtr(payload.Skills)
	}
	if _, ok := sent["portfolio_url"]; ok {
		profile.PortfolioURL = utils.NullStringPtr(payload.PortfolioURL)
	}
	if _, ok := sent["linkedin_url"]; ok {
		profile.LinkedinURL = utils.NullStringPtr(payload.LinkedinURL)
	}
	if _, ok := sent["github_url"]; ok {
		profile.GithubURL = utils.NullStringPtr(payload.GithubURL)
	}
	if _, ok := sent["desired_salary"]; ok {
		profile.DesiredSalary = utils.NullIntPtr(payload.DesiredSalary)
	}
	if _, ok := sent["desired_job_type"]; ok {
		profile.DesiredJobType = utils.NullStringPtr(payload.DesiredJobType)
	}
	if _, ok := sent["desired_location"]; ok {
		profile.DesiredLocation = utils.NullStringPtr(payload.DesiredLocation)
	}

	return s.profileRepo.Update(ctx, profile)
}

func (s *ProfileService) ListMyApplications(ctx context.Context, userID uint64) ([]entities.Application, error) {
	profile, err := s.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.applicationRepo.ListByApplicant(ctx, profile.ID)
}
