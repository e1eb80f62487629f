package repositories

import (
	"context"
	"errors"
	"fmt"

	"career-finder/internal/entities"
	apperrors "career-finder/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const applicationTable = "applications"
const applicationSelectFields = `a.id, a.cover_letter, a.status, a.employer_notes, a.applied_at,
	a.updated_at, a.vacancy_id, a.applicant_id`
const applicationJoinFields = applicationSelectFields + `, v.title AS vacancy_title, c.name AS company_name`
const applicationJoinClause = `applications a
	JOIN vacancies v ON a.vacancy_id = v.id
	JOIN companies c ON v.company_id = c.id`

type ApplicationRepositoryInterface interface {
	Create(ctx context.Context, entity *entities.Application) (*entities.Application, error)
	ExistsForVacancyAndApplicant(ctx context.Context, vacancyID, applicantID uint64) (bool, error)
	ListByApplicant(ctx context.Context, applicantID uint64) ([]entities.Application, error)
}

type ApplicationRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewApplicationRepository(storage *pgxpool.Pool, logger *zap.Logger) ApplicationRepositoryInterface {
	return &ApplicationRepository{storage: storage, logger: logger}
}

func scanApplication(row pgx.Row) (*entities.Application, error) {
	var a entities.Application
	err := row.Scan(
		&a.ID, &a.CoverLetter, &a.Status, &a.EmployerNotes,
		&a.AppliedAt, &a.UpdatedAt, &a.VacancyID, &a.ApplicantID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, entity *entities.Application) (*entities.Application, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (cover_letter, status, vacancy_id, applicant_id)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, applicationTable,
		`id, cover_letter, status, employer_notes, applied_at, updated_at, vacancy_id, applicant_id`)

	row := r.storage.QueryRow(ctx, query,
		entity.CoverLetter, entity.Status, entity.VacancyID, entity.ApplicantID,
	)

	created, err := scanApplication(row)
	if err != nil {
		// Уникальный индекс (vacancy_id, applicant_id) закрывает гонку
		// между проверкой существования и вставкой.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.NewBadRequestError("You have already applied to this vacancy")
		}
		return nil, err
	}
	return created, nil
}

func (r *ApplicationRepository) ExistsForVacancyAndApplicant(ctx context.Context, vacancyID, applicantID uint64) (bool, error) {
	var exists bool
	query := fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM %s WHERE vacancy_id = $1 AND applicant_id = $2)`, applicationTable)
	err := r.storage.QueryRow(ctx, query, vacancyID, applicantID).Scan(&exists)
	return exists, err
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID uint64) ([]entities.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE a.applicant_id = $1 ORDER BY a.applied_at DESC`,
		applicationJoinFields, applicationJoinClause)

	rows, err := r.storage.Query(ctx, query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения откликов: %w", err)
	}
	defer rows.Close()

	applications := make([]entities.Application, 0)
	for rows.Next() {
		var a entities.Application
		err := rows.Scan(
			&a.ID, &a.CoverLetter, &a.Status, &a.EmployerNotes,
			&a.AppliedAt, &a.UpdatedAt, &a.VacancyID, &a.ApplicantID,
			&a.VacancyTitle, &a.CompanyName,
		)
		if err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}
