package services

import (
	"context"
	"fmt"
	"time"

	"career-finder/internal/entities"
	apperrors "career-finder/pkg/errors"
	"career-finder/pkg/types"

	"github.com/jackc/pgx/v5"
)

// --- In-memory заглушки репозиториев для unit-тестов сервисов. ---

type stubUserRepo struct {
	users  map[uint64]*entities.User
	nextID uint64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint64]*entities.User), nextID: 1}
}

func (r *stubUserRepo) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubUserRepo) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubUserRepo) Create(ctx context.Context, tx pgx.Tx, entity *entities.User) (*entities.User, error) {
	cp := *entity
	cp.ID = r.nextID
	cp.CreatedAt = time.Now()
	r.nextID++
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *stubUserRepo) UpdatePassword(ctx context.Context, userID uint64, newPasswordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.PasswordHash = newPasswordHash
	return nil
}

type stubProfileRepo struct {
	profiles map[uint64]*entities.Profile // ключ - user_id
	nextID   uint64
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[uint64]*entities.Profile), nextID: 1}
}

func (r *stubProfileRepo) CreateForUser(ctx context.Context, tx pgx.Tx, userID uint64) (*entities.Profile, error) {
	p := &entities.Profile{ID: r.nextID, UserID: userID}
	r.nextID++
	r.profiles[userID] = p
	return p, nil
}

func (r *stubProfileRepo) FindByUserID(ctx context.Context, userID uint64) (*entities.Profile, error) {
	if p, ok := r.profiles[userID]; ok {
		return p, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubProfileRepo) FindByID(ctx context.Context, id uint64) (*entities.Profile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubProfileRepo) Update(ctx context.Context, entity *entities.Profile) (*entities.Profile, error) {
	r.profiles[entity.UserID] = entity
	return entity, nil
}

type stubCompanyRepo struct {
	companies map[uint64]*entities.Company // ключ - user_id
	nextID    uint64
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{companies: make(map[uint64]*entities.Company), nextID: 1}
}

func (r *stubCompanyRepo) Create(ctx context.Context, tx pgx.Tx, userID uint64, name string) (*entities.Company, error) {
	c := &entities.Company{ID: r.nextID, UserID: userID, Name: name}
	r.nextID++
	r.companies[userID] = c
	return c, nil
}

func (r *stubCompanyRepo) FindByID(ctx context.Context, id uint64) (*entities.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubCompanyRepo) FindByUserID(ctx context.Context, userID uint64) (*entities.Company, error) {
	if c, ok := r.companies[userID]; ok {
		return c, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubCompanyRepo) List(ctx context.Context, filter types.Filter) ([]entities.Company, uint64, error) {
	var out []entities.Company
	for _, c := range r.companies {
		out = append(out, *c)
	}
	return out, uint64(len(out)), nil
}

func (r *stubCompanyRepo) Update(ctx context.Context, entity *entities.Company) (*entities.Company, error) {
	r.companies[entity.UserID] = entity
	return entity, nil
}

func (r *stubCompanyRepo) Count(ctx context.Context) (uint64, error) {
	return uint64(len(r.companies)), nil
}

type stubVacancyRepo struct {
	vacancies map[uint64]*entities.Vacancy
	nextID    uint64
}

func newStubVacancyRepo() *stubVacancyRepo {
	return &stubVacancyRepo{vacancies: make(map[uint64]*entities.Vacancy), nextID: 1}
}

func (r *stubVacancyRepo) Create(ctx context.Context, entity *entities.Vacancy) (*entities.Vacancy, error) {
	cp := *entity
	cp.ID = r.nextID
	r.nextID++
	r.vacancies[cp.ID] = &cp
	return &cp, nil
}

func (r *stubVacancyRepo) FindByID(ctx context.Context, id uint64) (*entities.Vacancy, error) {
	if v, ok := r.vacancies[id]; ok {
		return v, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubVacancyRepo) FindActiveAndIncrementViews(ctx context.Context, id uint64) (*entities.Vacancy, error) {
	v, ok := r.vacancies[id]
	if !ok || !v.IsActive {
		return nil, apperrors.ErrNotFound
	}
	v.ViewsCount++
	cp := *v
	return &cp, nil
}

func (r *stubVacancyRepo) List(ctx context.Context, filter types.Filter) ([]entities.Vacancy, uint64, error) {
	var out []entities.Vacancy
	for _, v := range r.vacancies {
		if v.IsActive {
			out = append(out, *v)
		}
	}
	return out, uint64(len(out)), nil
}

func (r *stubVacancyRepo) CountActive(ctx context.Context) (uint64, error) {
	var n uint64
	for _, v := range r.vacancies {
		if v.IsActive {
			n++
		}
	}
	return n, nil
}

type stubApplicationRepo struct {
	applications []*entities.Application
	nextID       uint64
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{nextID: 1}
}

func (r *stubApplicationRepo) Create(ctx context.Context, entity *entities.Application) (*entities.Application, error) {
	for _, a := range r.applications {
		if a.VacancyID == entity.VacancyID && a.ApplicantID == entity.ApplicantID {
			return nil, apperrors.NewBadRequestError("You have already applied to this vacancy")
		}
	}
	cp := *entity
	cp.ID = r.nextID
	cp.AppliedAt = time.Now()
	r.nextID++
	r.applications = append(r.applications, &cp)
	return &cp, nil
}

func (r *stubApplicationRepo) ExistsForVacancyAndApplicant(ctx context.Context, vacancyID, applicantID uint64) (bool, error) {
	for _, a := range r.applications {
		if a.VacancyID == vacancyID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubApplicationRepo) ListByApplicant(ctx context.Context, applicantID uint64) ([]entities.Application, error) {
	var out []entities.Application
	for _, a := range r.applications {
		if a.ApplicantID == applicantID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type stubCacheRepo struct {
	values map[string]string
}

func newStubCacheRepo() *stubCacheRepo {
	return &stubCacheRepo{values: make(map[string]string)}
}

func (r *stubCacheRepo) Get(ctx context.Context, key string) (string, error) {
	if v, ok := r.values[key]; ok {
		return v, nil
	}
	return "", apperrors.ErrNotFound
}

func (r *stubCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	r.values[key] = fmt.Sprint(value)
	return nil
}

func (r *stubCacheRepo) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(r.values, k)
	}
	return nil
}

// stubTxManager вызывает fn напрямую: заглушкам транзакция не нужна.
type stubTxManager struct{}

func (m *stubTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

// recordingNotification запоминает последние отправленные сообщения.
type recordingNotification struct {
	welcomeTo      string
	resetToken     string
	applicationTo  string
	notifiedTitles []string
}

func (n *recordingNotification) SendWelcomeEmail(user *entities.User) bool {
	n.welcomeTo = user.Email
	return true
}

func (n *recordingNotification) SendApplicationNotification(employerEmail, vacancyTitle, applicantName string) bool {
	n.applicationTo = employerEmail
	n.notifiedTitles = append(n.notifiedTitles, vacancyTitle)
	return true
}

func (n *recordingNotification) SendPasswordResetEmail(to, token string) bool {
	n.resetToken = token
	return true
}
