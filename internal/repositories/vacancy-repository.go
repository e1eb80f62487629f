package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"career-finder/internal/entities"
	apperrors "career-finder/pkg/errors"
	"career-finder/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const vacancyTable = "vacancies"
const vacancySelectFields = `v.id, v.title, v.description, v.requirements, v.salary_from, v.salary_to,
	v.currency, v.location, v.employment_type, v.experience_level, v.is_active, v.views_count,
	v.employer_id, v.company_id, c.name AS company_name,
	(SELECT COUNT(*) FROM applications a WHERE a.vacancy_id = v.id) AS applications_count,
	v.created_at, v.updated_at`
const vacancyJoinClause = "vacancies v JOIN companies c ON v.company_id = c.id"

// Полный список колонок для RETURNING: внешний SELECT оператора с
// модифицирующим CTE работает на том же снапшоте и не видит строки CTE,
// поэтому свежую строку читаем из самого CTE. JOIN к companies и подзапрос
// по applications трогают другие таблицы и остаются во внешнем SELECT.
const vacancyReturningFields = `id, title, description, requirements, salary_from, salary_to,
	currency, location, employment_type, experience_level, is_active, views_count,
	employer_id, company_id, created_at, updated_at`

type VacancyRepositoryInterface interface {
	Create(ctx context.Context, entity *entities.Vacancy) (*entities.Vacancy, error)
	FindByID(ctx context.Context, id uint64) (*entities.Vacancy, error)
	FindActiveAndIncrementViews(ctx context.Context, id uint64) (*entities.Vacancy, error)
	List(ctx context.Context, filter types.Filter) ([]entities.Vacancy, uint64, error)
	CountActive(ctx context.Context) (uint64, error)
}

type VacancyRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewVacancyRepository(storage *pgxpool.Pool, logger *zap.Logger) VacancyRepositoryInterface {
	return &VacancyRepository{storage: storage, logger: logger}
}

func scanVacancy(row pgx.Row) (*entities.Vacancy, error) {
	var v entities.Vacancy
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.Requirements, &v.SalaryFrom, &v.SalaryTo,
		&v.Currency, &v.Location, &v.EmploymentType, &v.ExperienceLevel,
		&v.IsActive, &v.ViewsCount, &v.EmployerID, &v.CompanyID,
		&v.CompanyName, &v.ApplicationsCount,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VacancyRepository) Create(ctx context.Context, entity *entities.Vacancy) (*entities.Vacancy, error) {
	query := fmt.Sprintf(`
		WITH ins AS (
			INSERT INTO %s (title, description, requirements, salary_from, salary_to, currency,
				location, employment_type, experience_level, is_active, views_count,
				employer_id, company_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING %s
		) SELECT %s FROM ins v JOIN companies c ON v.company_id = c.id`,
		vacancyTable, vacancyReturningFields, vacancySelectFields)

	row := r.storage.QueryRow(ctx, query,
		entity.Title, entity.Description, entity.Requirements,
		entity.SalaryFrom, entity.SalaryTo, entity.Currency,
		entity.Location, entity.EmploymentType, entity.ExperienceLevel,
		entity.IsActive, entity.ViewsCount,
		entity.EmployerID, entity.CompanyID,
	)
	return scanVacancy(row)
}

func (r *VacancyRepository) FindByID(ctx context.Context, id uint64) (*entities.Vacancy, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE v.id = $1`, vacancySelectFields, vacancyJoinClause)
	return scanVacancy(r.storage.QueryRow(ctx, query, id))
}

// FindActiveAndIncrementViews атомарно увеличивает счетчик просмотров
// активной вакансии и возвращает её. Неактивная или отсутствующая
// вакансия дает ErrNotFound, счетчик при этом не трогается.
func (r *VacancyRepository) FindActiveAndIncrementViews(ctx context.Context, id uint64) (*entities.Vacancy, error) {
	query := fmt.Sprintf(`
		WITH upd AS (
			UPDATE %s SET views_count = views_count + 1
			WHERE id = $1 AND is_active = TRUE RETURNING %s
		) SELECT %s FROM upd v JOIN companies c ON v.company_id = c.id`,
		vacancyTable, vacancyReturningFields, vacancySelectFields)

	return scanVacancy(r.storage.QueryRow(ctx, query, id))
}

// List возвращает страницу активных вакансий под фильтром.
// Поиск: подстрока без учета регистра по title/description/requirements (OR),
// location — подстрока, employment_type и experience_level — точное равенство.
// Сортировка фиксированная: created_at DESC.
func (r *VacancyRepository) List(ctx context.Context, filter types.Filter) ([]entities.Vacancy, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select().From(vacancyJoinClause).Where(sq.Eq{"v.is_active": true})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where(sq.Or{
			sq.ILike{"v.title": pattern},
			sq.ILike{"v.description": pattern},
			sq.ILike{"v.requirements": pattern},
		})
	}
	if location, ok := filter.Filter["location"].(string); ok && location != "" {
		base = base.Where(sq.ILike{"v.location": "%" + location + "%"})
	}
	if employmentType, ok := filter.Filter["employment_type"].(string); ok && employmentType != "" {
		base = base.Where(sq.Eq{"v.employment_type": employmentType})
	}
	if experienceLevel, ok := filter.Filter["experience_level"].(string); ok && experienceLevel != "" {
		base = base.Where(sq.Eq{"v.experience_level": experienceLevel})
	}

	countQuery, countArgs, err := base.Columns("COUNT(v.id)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса подсчета вакансий: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета вакансий: %w", err)
	}
	if total == 0 {
		return []entities.Vacancy{}, 0, nil
	}

	mainQuery, mainArgs, err := base.Columns(vacancySelectFields).
		OrderBy("v.created_at DESC").
		Limit(uint64(filter.PerPage)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса списка вакансий: %w", err)
	}
	r.logger.Debug("Выполнение запроса списка вакансий", zap.String("query", mainQuery), zap.Any("args", mainArgs))

	rows, err := r.storage.Query(ctx, mainQuery, mainArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения вакансий: %w", err)
	}
	defer rows.Close()

	vacancies := make([]entities.Vacancy, 0)
	for rows.Next() {
		v, err := scanVacancy(rows)
		if err != nil {
			return nil, 0, err
		}
		vacancies = append(vacancies, *v)
	}
	return vacancies, total, rows.Err()
}

func (r *VacancyRepository) CountActive(ctx context.Context) (uint64, error) {
	var total uint64
	err := r.storage.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE is_active = TRUE`, vacancyTable)).Scan(&total)
	return total, err
}
