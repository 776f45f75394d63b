package usecase

import (
	"fmt"

	"prison-visitor-backend/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers OTP codes. Faked in tests; SMTP in production.
type Mailer interface {
	SendOTP(to, code string) error
}

type smtpMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewSMTPMailer() Mailer {
	return &smtpMailer{
		host: config.GetEnv("SMTP_HOST", "smtp.gmail.com"),
		port: config.GetEnvAsInt("SMTP_PORT", 587),
		user: config.GetEnv("SMTP_USER", ""),
		pass: config.GetEnv("SMTP_PASS", ""),
		from: config.GetEnv("SMTP_FROM", "noreply@visitahanan.local"),
	}
}

func (m *smtpMailer) SendOTP(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your verification code")
	msg.SetBody("text/plain", fmt.Sprintf("Your one-time verification code is %s. It expires in 5 minutes.", code))

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return dialer.DialAndSend(msg)
}
