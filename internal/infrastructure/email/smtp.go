package email

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// BaseURL is the public address of the API, used for status links
	// in customer emails. Empty leaves the link out.
	BaseURL string
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

// SendTicketBookedEmail confirms a booking and tells the customer where
// they stand in line.
func (s *SMTPEmailService) SendTicketBookedEmail(to, label, ticketSID string, position int) error {
	htmlLink := ""
	plainLink := ""
	if link := s.ticketURL(ticketSID); link != "" {
		htmlLink = fmt.Sprintf(`<p>Check your place in line any time: <a href="%s">%s</a></p>`, link, link)
		plainLink = fmt.Sprintf("Check your place in line any time: %s\n", link)
	}

	subject := fmt.Sprintf("Ticket %s booked", label)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>You're in line</h2>
			<p>Your ticket is <strong>%s</strong>.</p>
			<p>There are %d people ahead of you.</p>
			%s
			<p>We'll email you again when it's your turn.</p>
		</body>
		</html>
	`, label, position-1, htmlLink)

	plainBody := fmt.Sprintf(`
You're in line.

Your ticket is %s.
There are %d people ahead of you.
%s
We'll email you again when it's your turn.
	`, label, position-1, plainLink)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// ticketURL builds the public status link for a ticket, or "" when no
// base URL is configured.
func (s *SMTPEmailService) ticketURL(ticketSID string) string {
	base := strings.TrimRight(s.config.BaseURL, "/")
	if base == "" || ticketSID == "" {
		return ""
	}
	return base + "/tickets/" + ticketSID
}

// SendTicketCalledEmail tells the customer their number is up.
func (s *SMTPEmailService) SendTicketCalledEmail(to, label, counterName string) error {
	where := "the counter"
	if counterName != "" {
		where = counterName
	}

	subject := fmt.Sprintf("Ticket %s: it's your turn", label)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>It's your turn</h2>
			<p>Ticket <strong>%s</strong> is now being called.</p>
			<p>Please proceed to <strong>%s</strong>.</p>
			<p>If you miss your turn you may need to book a new ticket.</p>
		</body>
		</html>
	`, label, where)

	plainBody := fmt.Sprintf(`
It's your turn.

Ticket %s is now being called.
Please proceed to %s.

If you miss your turn you may need to book a new ticket.
	`, label, where)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
