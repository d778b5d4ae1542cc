package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/erino/leadcrm/internal/infra/queue"
)

var alertTemplate = template.Must(template.New("leadAlert").Parse(`
<h2>New lead captured</h2>
<p><strong>{{.FirstName}} {{.LastName}}</strong> &lt;{{.Email}}&gt;</p>
<ul>
  <li>Company: {{if .Company}}{{.Company}}{{else}}—{{end}}</li>
  <li>Source: {{.Source}}</li>
  <li>Status: {{.Status}}</li>
  <li>Score: {{.Score}}</li>
</ul>
`))

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	// SalesInbox receives the new-lead alerts.
	SalesInbox string
}

func NewEmailSender(host string, port int, user, password, salesInbox string) *EmailSender {
	return &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		SalesInbox: salesInbox,
	}
}

// SendLeadAlert emails the sales inbox about a freshly captured lead.
func (s *EmailSender) SendLeadAlert(payload queue.LeadCreatedPayload) error {
	var body bytes.Buffer
	if err := alertTemplate.Execute(&body, payload); err != nil {
		return fmt.Errorf("failed to render alert template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.User)
	m.SetHeader("To", s.SalesInbox)
	m.SetHeader("Subject", fmt.Sprintf("New lead: %s %s (%s)", payload.FirstName, payload.LastName, payload.Source))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	return nil
}
