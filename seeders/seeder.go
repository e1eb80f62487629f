package seeders

import (
	"context"
	"log"

	"career-finder/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoUsers создает demo-аккаунты: работодателей с компаниями и
// соискателей с профилями. Существующие аккаунты пропускаются.
func SeedDemoUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Наполнение demo-аккаунтов...")

	if err := seedEmployers(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения работодателей: %v", err)
	}
	if err := seedSeekers(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения соискателей: %v", err)
	}

	log.Println("✅ Demo-аккаунты созданы!")
}

// SeedDemoVacancies публикует demo-вакансии от имени первого работодателя.
// Требует, чтобы SeedDemoUsers уже отработал.
func SeedDemoVacancies(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Наполнение demo-вакансий...")

	if err := seedVacancies(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения вакансий: %v", err)
	}

	log.Println("✅ Demo-вакансии созданы!")
}

func insertUser(ctx context.Context, tx pgx.Tx, u demoUser) (uint64, error) {
	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		return 0, err
	}

	var id uint64
	err = tx.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, user_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id`,
		u.Username, u.Email, hash, u.UserType,
	).Scan(&id)
	return id, err
}

func seedEmployers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Работодатели и компании...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, e := range demoEmployers {
		userID, err := insertUser(ctx, tx, e.User)
		if err != nil {
			log.Printf("Ошибка при вставке работодателя '%s': %v", e.User.Email, err)
			return err
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO companies (user_id, name, industry, description)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id) DO NOTHING`,
			userID, e.CompanyName, e.Industry, e.Description,
		); err != nil {
			log.Printf("Ошибка при вставке компании '%s': %v", e.CompanyName, err)
			return err
		}
	}

	return tx.Commit(ctx)
}

func seedSeekers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Соискатели и профили...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, s := range demoSeekers {
		userID, err := insertUser(ctx, tx, s.User)
		if err != nil {
			log.Printf("Ошибка при вставке соискателя '%s': %v", s.User.Email, err)
			return err
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO profiles (user_id, first_name, last_name, location, skills)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id) DO NOTHING`,
			userID, s.FirstName, s.LastName, s.Location, s.Skills,
		); err != nil {
			log.Printf("Ошибка при вставке профиля '%s': %v", s.User.Email, err)
			return err
		}
	}

	return tx.Commit(ctx)
}

func seedVacancies(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Вакансии...")

	employer := demoEmployers[0]

	var userID, companyID uint64
	err := db.QueryRow(ctx, `
		SELECT u.id, c.id
		FROM users u
		JOIN companies c ON c.user_id = u.id
		WHERE u.email = $1`,
		employer.User.Email,
	).Scan(&userID, &companyID)
	if err != nil {
		log.Printf("Demo-работодатель не найден, сначала запустите -users: %v", err)
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, v := range demoVacancies {
		if _, err := tx.Exec(ctx, `
			INSERT INTO vacancies (title, description, requirements, salary_from, salary_to,
			                       location, employment_type, experience_level, employer_id, company_id)
			SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
			WHERE NOT EXISTS (
				SELECT 1 FROM vacancies WHERE title = $1 AND company_id = $10
			)`,
			v.Title, v.Description, v.Requirements, v.SalaryFrom, v.SalaryTo,
			v.Location, v.EmploymentType, v.ExperienceLevel, userID, companyID,
		); err != nil {
			log.Printf("Ошибка при вставке вакансии '%s': %v", v.Title, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
