package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	From       string
	SalesInbox string // where intake alerts and reminders land
}

func NewEmailSender(host string, port int, user, password, from, salesInbox string) *EmailSender {
	return &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		From:       from,
		SalesInbox: salesInbox,
	}
}

// SendWelcome greets a freshly converted client.
func (s *EmailSender) SendWelcome(to, name, business string) error {
	data := WelcomeEmailData{
		Name:     name,
		Business: business,
	}

	tmplPath := filepath.Join("templates", "welcome.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read mail template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render mail template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Welcome aboard, %s!", name))
	m.SetBody("text/html", body.String())

	return s.send(m)
}

// SendIntakeAlert tells the sales inbox a new lead landed in the funnel.
func (s *EmailSender) SendIntakeAlert(name, email, business string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.SalesInbox)
	m.SetHeader("Subject", "New lead: "+name)
	m.SetBody("text/plain", fmt.Sprintf(
		"A new lead just came in.\n\nName: %s\nEmail: %s\nCompany: %s\n",
		name, email, business,
	))

	return s.send(m)
}

// SendFollowUpReminder nudges sales about a lead stuck in "new".
func (s *EmailSender) SendFollowUpReminder(name, email, waitingSince string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.SalesInbox)
	m.SetHeader("Subject", "Follow up with "+name)
	m.SetBody("text/plain", fmt.Sprintf(
		"%s (%s) has been waiting in the funnel since %s with no contact.\n",
		name, email, waitingSince,
	))

	return s.send(m)
}

func (s *EmailSender) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("SMTP send failed: %w", err)
	}
	return nil
}
