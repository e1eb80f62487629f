package services

import (
	"go.uber.org/zap"

	"career-finder/internal/entities"
)

// mockNotificationService - реализация-заглушка, которая пишет в лог
// вместо реальной отправки писем. Используется в тестах и когда SMTP
// не настроен.
type mockNotificationService struct {
	logger *zap.Logger
}

func NewMockNotificationService(logger *zap.Logger) NotificationServiceInterface {
	return &mockNotificationService{logger: logger}
}

func (s *mockNotificationService) SendWelcomeEmail(user *entities.User) bool {
	s.logger.Info("!!! ИМИТАЦИЯ ПРИВЕТСТВЕННОГО EMAIL !!!",
		zap.String("кому", user.Email),
		zap.String("username", user.Username),
	)
	return true
}

func (s *mockNotificationService) SendApplicationNotification(employerEmail, vacancyTitle, applicantName string) bool {
	s.logger.Info("!!! ИМИТАЦИЯ EMAIL ОБ ОТКЛИКЕ !!!",
		zap.String("кому", employerEmail),
		zap.String("вакансия", vacancyTitle),
		zap.String("соискатель", applicantName),
	)
	return true
}

func (s *mockNotificationService) SendPasswordResetEmail(to, token string) bool {
	s.logger.Info("!!! ИМИТАЦИЯ EMAIL СБРОСА ПАРОЛЯ !!!",
		zap.String("кому", to),
		zap.String("токен_сброса", token),
	)
	return true
}
