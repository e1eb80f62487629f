package seeders

// Демо-данные для локальной разработки. Пароли у всех demo-аккаунтов
// одинаковые, сидер их хеширует при вставке.

const demoPassword = "password123"

type demoUser struct {
	Username string
	Email    string
	UserType string
}

var demoEmployers = []struct {
	User        demoUser
	CompanyName string
	Industry    string
	Description string
}{
	{
		User:        demoUser{Username: "techcorp_hr", Email: "hr@techcorp.example", UserType: "employer"},
		CompanyName: "TechCorp",
		Industry:    "IT",
		Description: "Разработка корпоративного ПО",
	},
	{
		User:        demoUser{Username: "finbank_jobs", Email: "jobs@finbank.example", UserType: "employer"},
		CompanyName: "FinBank",
		Industry:    "Финансы",
		Description: "Розничный банк",
	},
}

var demoSeekers = []struct {
	User      demoUser
	FirstName string
	LastName  string
	Location  string
	Skills    string
}{
	{
		User:      demoUser{Username: "ivan_dev", Email: "ivan@example.com", UserType: "job_seeker"},
		FirstName: "Иван",
		LastName:  "Петров",
		Location:  "Москва",
		Skills:    "Go, PostgreSQL, Docker",
	},
	{
		User:      demoUser{Username: "anna_qa", Email: "anna@example.com", UserType: "job_seeker"},
		FirstName: "Анна",
		LastName:  "Смирнова",
		Location:  "Санкт-Петербург",
		Skills:    "Тестирование, Python, CI/CD",
	},
}

type demoVacancy struct {
	Title           string
	Description     string
	Requirements    string
	SalaryFrom      int
	SalaryTo        int
	Location        string
	EmploymentType  string
	ExperienceLevel string
}

// Вакансии привязываются к первому demo-работодателю.
var demoVacancies = []demoVacancy{
	{
		Title:           "Go-разработчик",
		Description:     "Разработка backend-сервисов",
		Requirements:    "Go, PostgreSQL, опыт от 2 лет",
		SalaryFrom:      150000,
		SalaryTo:        250000,
		Location:        "Москва",
		EmploymentType:  "full",
		ExperienceLevel: "middle",
	},
	{
		Title:           "QA-инженер",
		Description:     "Тестирование веб-приложений",
		Requirements:    "Опыт ручного и автоматизированного тестирования",
		SalaryFrom:      90000,
		SalaryTo:        140000,
		Location:        "Санкт-Петербург",
		EmploymentType:  "full",
		ExperienceLevel: "junior",
	},
	{
		Title:           "DevOps-инженер (part-time)",
		Description:     "Поддержка инфраструктуры CI/CD",
		Requirements:    "Docker, Kubernetes, Terraform",
		SalaryFrom:      100000,
		SalaryTo:        180000,
		Location:        "Удалённо",
		EmploymentType:  "part",
		ExperienceLevel: "senior",
	},
}
