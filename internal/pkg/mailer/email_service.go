// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOTP(toEmail, otp string) error
	SendAccessApproved(toEmail, courseName string) error
	SendAccessRejected(toEmail, courseName string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendOTP(toEmail, otp string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Seu código de verificação")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Bem-vindo ao DriveTube!</h2>
			<p>Seu código de verificação é:</p>
			<h1 style="color: #4CAF50; letter-spacing: 5px;">%s</h1>
			<p>Este código expira em 15 minutos.</p>
			<p>Se você não solicitou este código, ignore este email.</p>
		</div>
	`, otp)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send OTP to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] OTP sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendAccessApproved(toEmail, courseName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Acesso aprovado")

	courseLink := fmt.Sprintf("%s/courses", s.frontendURL)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Seu acesso foi aprovado!</h2>
			<p>Sua solicitação de acesso ao curso <strong>%s</strong> foi aprovada.</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Acessar o curso</a>
		</div>
	`, courseName, courseLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send approval notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Approval notice sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendAccessRejected(toEmail, courseName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Solicitação de acesso")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Solicitação de acesso</h2>
			<p>Sua solicitação de acesso ao curso <strong>%s</strong> não foi aprovada.</p>
			<p>Entre em contato com o criador do curso para mais detalhes.</p>
		</div>
	`, courseName)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send rejection notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Rejection notice sent to %s\n", toEmail)
	return nil
}
