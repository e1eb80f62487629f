package services

import (
	"context"
	"testing"

	"career-finder/internal/dto"
	"career-finder/internal/entities"
	apperrors "career-finder/pkg/errors"
	"career-finder/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type vacancyFixture struct {
	svc          VacancyServiceInterface
	vacancies    *stubVacancyRepo
	applications *stubApplicationRepo
	companies    *stubCompanyRepo
	profiles     *stubProfileRepo
	users        *stubUserRepo
	notification *recordingNotification

	employer *entities.User
	seeker   *entities.User
}

func newVacancyFixture(t *testing.T) *vacancyFixture {
	t.Helper()
	ctx := context.Background()

	f := &vacancyFixture{
		vacancies:    newStubVacancyRepo(),
		applications: newStubApplicationRepo(),
		companies:    newStubCompanyRepo(),
		profiles:     newStubProfileRepo(),
		users:        newStubUserRepo(),
		notification: &recordingNotification{},
	}
	f.svc = NewVacancyService(
		f.vacancies, f.applications, f.companies, f.profiles,
		f.users, f.notification, zap.NewNop(),
	)

	var err error
	f.employer, err = f.users.Create(ctx, nil, &entities.User{
		Username: "employer", Email: "employer@example.com",
		UserType: entities.UserTypeEmployer, IsActive: true,
	})
	require.NoError(t, err)
	_, err = f.companies.Create(ctx, nil, f.employer.ID, "TechCorp")
	require.NoError(t, err)

	f.seeker, err = f.users.Create(ctx, nil, &entities.User{
		Username: "seeker", Email: "seeker@example.com",
		UserType: entities.UserTypeJobSeeker, IsActive: true,
	})
	require.NoError(t, err)
	_, err = f.profiles.CreateForUser(ctx, nil, f.seeker.ID)
	require.NoError(t, err)

	return f
}

func (f *vacancyFixture) createVacancy(t *testing.T) *entities.Vacancy {
	t.Helper()
	vacancy, err := f.svc.Create(context.Background(), f.employer, dto.CreateVacancyDTO{
		Title:       "Go-разработчик",
		Description: "Backend-сервисы",
	})
	require.NoError(t, err)
	return vacancy
}

func TestCreateVacancy_Defaults(t *testing.T) {
	f := newVacancyFixture(t)

	vacancy := f.createVacancy(t)

	assert.Equal(t, "RUB", vacancy.Currency)
	assert.Equal(t, "full", vacancy.EmploymentType)
	assert.Equal(t, "not_required", vacancy.ExperienceLevel)
	assert.True(t, vacancy.IsActive)
	assert.Zero(t, vacancy.ViewsCount)
	assert.Equal(t, f.employer.ID, vacancy.EmployerID)
}

func TestCreateVacancy_OnlyEmployers(t *testing.T) {
	f := newVacancyFixture(t)

	_, err := f.svc.Create(context.Background(), f.seeker, dto.CreateVacancyDTO{
		Title: "x", Description: "y",
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Code)
	assert.Equal(t, "Only employers can create vacancies", httpErr.Message)
}

func TestCreateVacancy_RequiresCompany(t *testing.T) {
	f := newVacancyFixture(t)
	ctx := context.Background()

	lonely, err := f.users.Create(ctx, nil, &entities.User{
		Username: "no_company", Email: "nc@example.com",
		UserType: entities.UserTypeEmployer, IsActive: true,
	})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, lonely, dto.CreateVacancyDTO{Title: "x", Description: "y"})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Equal(t, "Please create a company profile first", httpErr.Message)
}

func TestCreateVacancy_SalaryRange(t *testing.T) {
	f := newVacancyFixture(t)

	_, err := f.svc.Create(context.Background(), f.employer, dto.CreateVacancyDTO{
		Title:       "x",
		Description: "y",
		SalaryFrom:  utils.IntPtr(200000),
		SalaryTo:    utils.IntPtr(100000),
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestGetVacancy_IncrementsViews(t *testing.T) {
	f := newVacancyFixture(t)
	ctx := context.Background()
	vacancy := f.createVacancy(t)

	for i := 1; i <= 3; i++ {
		got, err := f.svc.GetByID(ctx, vacancy.ID)
		require.NoError(t, err)
		assert.Equal(t, i, got.ViewsCount)
	}
}

func TestGetVacancy_InactiveIsNotFound(t *testing.T) {
	f := newVacancyFixture(t)
	ctx := context.Background()
	vacancy := f.createVacancy(t)

	f.vacancies.vacancies[vacancy.ID].IsActive = false

	_, err := f.svc.GetByID(ctx, vacancy.ID)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Code)
	assert.Equal(t, "Vacancy not found", httpErr.Message)
}

func TestApply(t *testing.T) {
	f := newVacancyFixture(t)
	ctx := context.Background()
	vacancy := f.createVacancy(t)

	application, err := f.svc.Apply(ctx, f.seeker, vacancy.ID, dto.ApplyDTO{CoverLetter: "Здравствуйте!"})
	require.NoError(t, err)

	assert.Equal(t, entities.ApplicationStatusPending, application.Status)
	assert.Equal(t, "Здравствуйте!", application.CoverLetter)
	assert.Equal(t, vacancy.ID, application.VacancyID)

	// Работодатель уведомлен об отклике.
	assert.Equal(t, f.employer.Email, f.notification.applicationTo)
	assert.Contains(t, f.notification.notifiedTitles, vacancy.Title)
}

func TestApply_SecondTimeRejected(t *testing.T) {
	f := newVacancyFixture(t)
	ctx := context.Background()
	vacancy := f.createVacancy(t)

	_, err := f.svc.Apply(ctx, f.seeker, vacancy.ID, dto.ApplyDTO{})
	require.NoError(t, err)

	_, err = f.svc.Apply(ctx, f.seeker, vacancy.ID, dto.ApplyDTO{})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Equal(t, "You have already applied to this vacancy", httpErr.Message)
	assert.Len(t, f.applications.applications, 1)
}

func TestApply_OnlyJobSeekers(t *testing.T) {
	f := newVacancyFixture(t)
	vacancy := f.createVacancy(t)

	_, err := f.svc.Apply(context.Background(), f.employer, vacancy.ID, dto.ApplyDTO{})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Code)
	assert.Equal(t, "Only job seekers can apply to vacancies", httpErr.Message)
}

func TestApply_RequiresProfile(t *testing.T) {
	f := newVacancyFixture(t)
	ctx := context.Background()
	vacancy := f.createVacancy(t)

	noProfile, err := f.users.Create(ctx, nil, &entities.User{
		Username: "bare", Email: "bare@example.com",
		UserType: entities.UserTypeJobSeeker, IsActive: true,
	})
	require.NoError(t, err)

	_, err = f.svc.Apply(ctx, noProfile, vacancy.ID, dto.ApplyDTO{})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Equal(t, "Please complete your profile first", httpErr.Message)
}

func TestApply_InactiveVacancy(t *testing.T) {
	f := newVacancyFixture(t)
	ctx := context.Background()
	vacancy := f.createVacancy(t)

	f.vacancies.vacancies[vacancy.ID].IsActive = false

	_, err := f.svc.Apply(ctx, f.seeker, vacancy.ID, dto.ApplyDTO{})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Equal(t, "This vacancy is no longer active", httpErr.Message)
}

func TestApply_MissingVacancy(t *testing.T) {
	f := newVacancyFixture(t)

	_, err := f.svc.Apply(context.Background(), f.seeker, 9999, dto.ApplyDTO{})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Code)
}
