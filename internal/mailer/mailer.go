// File: internal/mailer/mailer.go
package mailer

import (
	"fmt"
	"net/smtp"
)

// Mailer 寄送密碼重設信件，便於測試時替換 FakeMailer
type Mailer interface {
	SendPasswordReset(to, resetURL string) error
}

// smtpSendMail 測試可覆寫此變數
var smtpSendMail = smtp.SendMail

// SMTPMailer 以 SMTP 寄送信件
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// SendPasswordReset 寄出密碼重設連結，username 為空時不做 SMTP 認證
func (m *SMTPMailer) SendPasswordReset(to, resetURL string) error {
	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: Reset your password\r\n" +
		"\r\n" +
		"We received a request to reset your password.\r\n" +
		"Open the link below to choose a new one. The link expires shortly.\r\n" +
		"\r\n" +
		resetURL + "\r\n" +
		"\r\n" +
		"If you did not request this, you can ignore this message.\r\n")

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	if err := smtpSendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("SendPasswordReset: %w", err)
	}
	return nil
}

type FakeMailer struct {
	SendPasswordResetFn func(to, resetURL string) error
}

// SendPasswordReset 執行 Fake 設定或 panic
func (f *FakeMailer) SendPasswordReset(to, resetURL string) error {
	if f.SendPasswordResetFn != nil {
		return f.SendPasswordResetFn(to, resetURL)
	}
	panic("unexpected SendPasswordReset")
}
