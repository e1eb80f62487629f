// Файл: internal/services/vacancy.go
package services

import (
	"context"
	"errors"

	"career-finder/internal/dto"
	"career-finder/internal/entities"
	"career-finder/internal/repositories"
	apperrors "career-finder/pkg/errors"

	"go.uber.org/zap"
)

type VacancyServiceInterface interface {
	Create(ctx context.Context, employer *entities.User, payload dto.CreateVacancyDTO) (*entities.Vacancy, error)
	GetByID(ctx context.Context, id uint64) (*entities.Vacancy, error)
	Apply(ctx context.Context, applicant *entities.User, vacancyID uint64, payload dto.ApplyDTO) (*entities.Application, error)
}

type VacancyService struct {
	vacancyRepo     repositories.VacancyRepositoryInterface
	applicationRepo repositories.ApplicationRepositoryInterface
	companyRepo     repositories.CompanyRepositoryInterface
	profileRepo     repositories.ProfileRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	notification    NotificationServiceInterface
	logger          *zap.Logger
}

func NewVacancyService(
	vacancyRepo repositories.VacancyRepositoryInterface,
	applicationRepo repositories.ApplicationRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	notification NotificationServiceInterface,
	logger *zap.Logger,
) VacancyServiceInterface {
	return &VacancyService{
		vacancyRepo:     vacancyRepo,
		applicationRepo: applicationRepo,
		companyRepo:     companyRepo,
		profileRepo:     profileRepo,
		userRepo:        userRepo,
		notification:    notification,
		logger:          logger,
	}
}

func (s *VacancyService) Create(ctx context.Context, employer *entities.User, payload dto.CreateVacancyDTO) (*entities.Vacancy, error) {
	if employer.UserType != entities.UserTypeEmployer {
		return nil, apperrors.NewForbiddenError("Only employers can create vacancies")
	}

	company, err := s.companyRepo.FindByUserID(ctx, employer.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("Please create a company profile first")
		}
		return nil, err
	}

	if payload.SalaryFrom != nil && payload.SalaryTo != nil && *payload.SalaryFrom > *payload.SalaryTo {
		return nil, apperrors.NewBadRequestError("salary_from must not exceed salary_to")
	}

	vacancy := &entities.Vacancy{
		Title:           payload.Title,
		Description:     payload.Description,
		Requirements:    payload.Requirements,
		SalaryFrom:      payload.SalaryFrom,
		SalaryTo:        payload.SalaryTo,
		Currency:        payload.Currency,
		Location:        payload.Location,
		EmploymentType:  payload.EmploymentType,
		ExperienceLevel: payload.ExperienceLevel,
		IsActive:        true,
		ViewsCount:      0,
		EmployerID:      employer.ID,
		CompanyID:       company.ID,
	}
	if vacancy.Currency == "" {
		vacancy.Currency = "RUB"
	}
	if vacancy.EmploymentType == "" {
		vacancy.EmploymentType = "full"
	}
	if vacancy.ExperienceLevel == "" {
		vacancy.ExperienceLevel = "not_required"
	}

	return s.vacancyRepo.Create(ctx, vacancy)
}

// GetByID — публичное чтение одной вакансии: неактивная считается
// несуществующей, успешный просмотр увеличивает views_count.
func (s *VacancyService) GetByID(ctx context.Context, id uint64) (*entities.Vacancy, error) {
	vacancy, err := s.vacancyRepo.FindActiveAndIncrementViews(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Vacancy not found")
		}
		return nil, err
	}
	return vacancy, nil
}

func (s *VacancyService) Apply(ctx context.Context, applicant *entities.User, vacancyID uint64, payload dto.ApplyDTO) (*entities.Application, error) {
	if applicant.UserType != entities.UserTypeJobSeeker {
		return nil, apperrors.NewForbiddenError("Only job seekers can apply to vacancies")
	}

	profile, err := s.profileRepo.FindByUserID(ctx, applicant.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("Please complete your profile first")
		}
		return nil, err
	}

	vacancy, err := s.vacancyRepo.FindByID(ctx, vacancyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Vacancy not found")
		}
		return nil, err
	}

	if !vacancy.IsActive {
		return nil, apperrors.NewBadRequestError("This vacancy is no longer active")
	}

	exists, err := s.applicationRepo.ExistsForVacancyAndApplicant(ctx, vacancyID, profile.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewBadRequestError("You have already applied to this vacancy")
	}

	application, err := s.applicationRepo.Create(ctx, &entities.Application{
		CoverLetter: payload.CoverLetter,
		Status:      entities.ApplicationStatusPending,
		VacancyID:   vacancyID,
		ApplicantID: profile.ID,
	})
	if err != nil {
		return nil, err
	}

	// Уведомление работодателя — best-effort, отклик уже сохранен.
	if employer, err := s.userRepo.FindByID(ctx, vacancy.EmployerID); err == nil {
		if !s.notification.SendApplicationNotification(employer.Email, vacancy.Title, profile.FullName()) {
			s.logger.Warn("Уведомление о новом отклике не доставлено",
				zap.Uint64("vacancyID", vacancy.ID),
				zap.Uint64("employerID", employer.ID),
			)
		}
	} else {
		s.logger.Warn("Не удалось найти работодателя для уведомления",
			zap.Uint64("vacancyID", vacancy.ID), zap.Error(err))
	}

	return application, nil
}
