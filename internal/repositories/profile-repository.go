package repositories

import (
	"context"
	"errors"
	"fmt"

	"career-finder/internal/entities"
	apperrors "career-finder/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const profileTable = "profiles"
const profileSelectFields = `id, user_id, first_name, last_name, phone, location, bio, resume_text,
	experience, education, skills, portfolio_url, linkedin_url, github_url, photo,
	desired_salary, desired_job_type, desired_location, created_at, updated_at`

type ProfileRepositoryInterface interface {
	CreateForUser(ctx context.Context, tx pgx.Tx, userID uint64) (*entities.Profile, error)
	FindByUserID(ctx context.Context, userID uint64) (*entities.Profile, error)
	FindByID(ctx context.Context, id uint64) (*entities.Profile, error)
	Update(ctx context.Context, entity *entities.Profile) (*entities.Profile, error)
}

type ProfileRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewProfileRepository(storage *pgxpool.Pool, logger *zap.Logger) ProfileRepositoryInterface {
	return &ProfileRepository{storage: storage, logger: logger}
}

func (r *ProfileRepository) getQuerier(tx pgx.Tx) querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanProfile(row pgx.Row) (*entities.Profile, error) {
	var p entities.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Phone, &p.Location, &p.Bio,
		&p.ResumeText, &p.Experience, &p.Education, &p.Skills,
		&p.PortfolioURL, &p.LinkedinURL, &p.GithubURL, &p.Photo,
		&p.DesiredSalary, &p.DesiredJobType, &p.DesiredLocation,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) CreateForUser(ctx context.Context, tx pgx.Tx, userID uint64) (*entities.Profile, error) {
	query := fmt.Sprintf(`INSERT INTO %s (user_id) VALUES ($1) RETURNING %s`, profileTable, profileSelectFields)
	return scanProfile(r.getQuerier(tx).QueryRow(ctx, query, userID))
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID uint64) (*entities.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1`, profileSelectFields, profileTable)
	return scanProfile(r.storage.QueryRow(ctx, query, userID))
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uint64) (*entities.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, profileSelectFields, profileTable)
	return scanProfile(r.storage.QueryRow(ctx, query, id))
}

func (r *ProfileRepository) Update(ctx context.Context, entity *entities.Profile) (*entities.Profile, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET first_name = $1, last_name = $2, phone = $3, location = $4, bio = $5,
			resume_text = $6, experience = $7, education = $8, skills = $9,
			portfolio_url = $10, linkedin_url = $11, github_url = $12,
			desired_salary = $13, desired_job_type = $14, desired_location = $15,
			updated_at = NOW()
		WHERE id = $16
		RETURNING %s`, profileTable, profileSelectFields)

	row := r.storage.QueryRow(ctx, query,
		entity.FirstName, entity.LastName, entity.Phone, entity.Location, entity.Bio,
		entity.ResumeText, entity.Experience, entity.Education, entity.Skills,
		entity.PortfolioURL, entity.LinkedinURL, entity.GithubURL,
		entity.DesiredSalary, entity.DesiredJobType, entity.DesiredLocation,
		entity.ID,
	)
	return scanProfile(row)
}
