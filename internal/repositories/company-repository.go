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

const companyTable = "companies"
const companySelectFields = `c.id, c.user_id, c.name, c.description, c.website, c.phone, c.email,
	c.address, c.logo, c.industry, c.company_size, c.founded_year, c.is_verified,
	c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM vacancies v WHERE v.company_id = c.id) AS vacancies_count`

// Полный список колонок для RETURNING: внешний SELECT оператора с
// модифицирующим CTE не видит строки самого CTE (снапшот один на весь
// оператор), поэтому читать надо из CTE, а не из таблицы повторно.
const companyReturningFields = `id, user_id, name, description, website, phone, email,
	address, logo, industry, company_size, founded_year, is_verified, created_at, updated_at`

type CompanyRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, userID uint64, name string) (*entities.Company, error)
	FindByID(ctx context.Context, id uint64) (*entities.Company, error)
	FindByUserID(ctx context.Context, userID uint64) (*entities.Company, error)
	List(ctx context.Context, filter types.Filter) ([]entities.Company, uint64, error)
	Update(ctx context.Context, entity *entities.Company) (*entities.Company, error)
	Count(ctx context.Context) (uint64, error)
}

type CompanyRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCompanyRepository(storage *pgxpool.Pool, logger *zap.Logger) CompanyRepositoryInterface {
	return &CompanyRepository{storage: storage, logger: logger}
}

func (r *CompanyRepository) getQuerier(tx pgx.Tx) querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanCompany(row pgx.Row) (*entities.Company, error) {
	var c entities.Company
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Description, &c.Website, &c.Phone, &c.Email,
		&c.Address, &c.Logo, &c.Industry, &c.CompanySize, &c.FoundedYear, &c.IsVerified,
		&c.CreatedAt, &c.UpdatedAt, &c.VacanciesCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) Create(ctx context.Context, tx pgx.Tx, userID uint64, name string) (*entities.Company, error) {
	query := fmt.Sprintf(`
		WITH ins AS (
			INSERT INTO %s (user_id, name) VALUES ($1, $2) RETURNING %s
		) SELECT %s FROM ins c`,
		companyTable, companyReturningFields, companySelectFields)

	return scanCompany(r.getQuerier(tx).QueryRow(ctx, query, userID, name))
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uint64) (*entities.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s c WHERE c.id = $1`, companySelectFields, companyTable)
	return scanCompany(r.storage.QueryRow(ctx, query, id))
}

func (r *CompanyRepository) FindByUserID(ctx context.Context, userID uint64) (*entities.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s c WHERE c.user_id = $1`, companySelectFields, companyTable)
	return scanCompany(r.storage.QueryRow(ctx, query, userID))
}

// List возвращает страницу компаний и общее число строк под фильтром.
// Сортировка фиксированная: name ASC.
func (r *CompanyRepository) List(ctx context.Context, filter types.Filter) ([]entities.Company, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select().From(companyTable + " c")
	if filter.Search != "" {
		base = base.Where(sq.ILike{"c.name": "%" + filter.Search + "%"})
	}
	if industry, ok := filter.Filter["industry"].(string); ok && industry != "" {
		base = base.Where(sq.ILike{"c.industry": "%" + industry + "%"})
	}

	countQuery, countArgs, err := base.Columns("COUNT(c.id)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса подсчета компаний: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета компаний: %w", err)
	}
	if total == 0 {
		return []entities.Company{}, 0, nil
	}

	mainQuery, mainArgs, err := base.Columns(companySelectFields).
		OrderBy("c.name ASC").
		Limit(uint64(filter.PerPage)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса списка компаний: %w", err)
	}
	r.logger.Debug("Выполнение запроса списка компаний", zap.String("query", mainQuery), zap.Any("args", mainArgs))

	rows, err := r.storage.Query(ctx, mainQuery, mainArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения компаний: %w", err)
	}
	defer rows.Close()

	companies := make([]entities.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, *c)
	}
	return companies, total, rows.Err()
}

func (r *CompanyRepository) Update(ctx context.Context, entity *entities.Company) (*entities.Company, error) {
	query := fmt.Sprintf(`
		WITH upd AS (
			UPDATE %s SET name = $1, description = $2, website = $3, phone = $4, email = $5,
				address = $6, industry = $7, company_size = $8, founded_year = $9,
				updated_at = NOW()
			WHERE id = $10 RETURNING %s
		) SELECT %s FROM upd c`,
		companyTable, companyReturningFields, companySelectFields)

	row := r.storage.QueryRow(ctx, query,
		entity.Name, entity.Description, entity.Website, entity.Phone, entity.Email,
		entity.Address, entity.Industry, entity.CompanySize, entity.FoundedYear,
		entity.ID,
	)
	return scanCompany(row)
}

func (r *CompanyRepository) Count(ctx context.Context) (uint64, error) {
	var total uint64
	err := r.storage.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, companyTable)).Scan(&total)
	return total, err
}
