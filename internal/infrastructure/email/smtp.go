// Package email sends transactional mail over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendWelcomeEmail greets a freshly signed-up tenant owner.
func (s *SMTPEmailService) SendWelcomeEmail(to, tenantName, farmName string) error {
	subject := "Welcome to Marai"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to Marai!</h2>
			<p>Your account <strong>%s</strong> is ready and your first farm <strong>%s</strong> has been created.</p>
			<p>Sign in to start registering your herd, breeding records and health events.</p>
		</body>
		</html>
	`, tenantName, farmName)

	plainBody := fmt.Sprintf(`
Welcome to Marai!

Your account %s is ready and your first farm %s has been created.

Sign in to start registering your herd, breeding records and health events.
	`, tenantName, farmName)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendDeliveryNotification informs the owner that a pregnancy was
// delivered and how many kids were registered.
func (s *SMTPEmailService) SendDeliveryNotification(to, motherTag string, kidCount int) error {
	subject := "New Birth Recorded"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Birth Recorded</h2>
			<p>Doe <strong>%s</strong> has delivered. %d kid(s) were registered in your herd.</p>
			<p>Remember to replace the temporary ear tags once the permanent ones are assigned.</p>
		</body>
		</html>
	`, motherTag, kidCount)

	plainBody := fmt.Sprintf(`
New Birth Recorded

Doe %s has delivered. %d kid(s) were registered in your herd.

Remember to replace the temporary ear tags once the permanent ones are assigned.
	`, motherTag, kidCount)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
