package main

import (
	"flag"
	"log"

	"career-finder/pkg/config"
	"career-finder/pkg/database/postgresql"
	"career-finder/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)             ")
	log.Println("======================================================")

	runUsers := flag.Bool("users", false, "Создать demo-аккаунты (работодатели, соискатели)")
	runVacancies := flag.Bool("vacancies", false, "Создать demo-вакансии (требует -users)")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -users -vacancies)")

	flag.Parse()

	if !*runUsers && !*runVacancies && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed/main.go -users")
		log.Println("  go run ./seeders/cmd/seed/main.go -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	log.Println("======================================================")

	if *runAll || *runUsers {
		seeders.SeedDemoUsers(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runVacancies {
		seeders.SeedDemoVacancies(dbPool)
		log.Println("======================================================")
	}

	log.Println("🎉 Сидеры отработали.")
}
