// Файл: internal/services/notification_service.go
package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"career-finder/internal/entities"
	"career-finder/pkg/config"

	"go.uber.org/zap"
)

// NotificationServiceInterface — почтовый side-channel. Все методы
// best-effort: любая ошибка доставки логируется и возвращается как false,
// вызывающая операция от этого не падает.
type NotificationServiceInterface interface {
	SendWelcomeEmail(user *entities.User) bool
	SendApplicationNotification(employerEmail, vacancyTitle, applicantName string) bool
	SendPasswordResetEmail(to, token string) bool
}

type smtpNotificationService struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

func NewSMTPNotificationService(cfg config.SMTPConfig, logger *zap.Logger) NotificationServiceInterface {
	return &smtpNotificationService{cfg: cfg, logger: logger}
}

func (s *smtpNotificationService) sendEmail(to, subject, body string) bool {
	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		s.logger.Error("Ошибка отправки письма",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (s *smtpNotificationService) SendWelcomeEmail(user *entities.User) bool {
	subject := "Welcome to CareerFinder!"
	body := fmt.Sprintf(`
		<h1>Welcome to CareerFinder, %s!</h1>
		<p>Thank you for registering with CareerFinder.</p>
		<p>Start exploring job opportunities or posting vacancies today!</p>`, user.Username)
	return s.sendEmail(user.Email, subject, body)
}

func (s *smtpNotificationService) SendApplicationNotification(employerEmail, vacancyTitle, applicantName string) bool {
	subject := "New Application Received"
	body := fmt.Sprintf(`
		<h1>New Application</h1>
		<p>You have received a new application for your vacancy: %s</p>
		<p>Applicant: %s</p>
		<p>Login to your dashboard to review the application.</p>`, vacancyTitle, applicantName)
	return s.sendEmail(employerEmail, subject, body)
}

func (s *smtpNotificationService) SendPasswordResetEmail(to, token string) bool {
	subject := "CareerFinder Password Reset"
	body := fmt.Sprintf(`
		<h1>Password Reset</h1>
		<p>Use the token below to reset your password. It expires in 15 minutes.</p>
		<p><code>%s</code></p>
		<p>If you did not request a reset, ignore this message.</p>`, token)
	return s.sendEmail(to, subject, body)
}
