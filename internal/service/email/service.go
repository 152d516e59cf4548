package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"zentproje-backend/internal/config"
)

// Service sends operational alert mail to the site admin. Every send is
// best-effort; callers are expected to log and move on when it fails.
type Service interface {
	SendOrderAlert(ctx context.Context, customerName, packageName, orderNumber string, total int64, currency string) error
	SendContactAlert(ctx context.Context, name, fromEmail, message string) error
}

type service struct {
	client *resend.Client
	cfg    *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

var orderAlertTmpl = template.Must(template.New("order").Parse(`
<h2>Yeni Sipariş</h2>
<p>{{.CustomerName}} yeni bir sipariş oluşturdu.</p>
<ul>
  <li>Sipariş No: {{.OrderNumber}}</li>
  <li>Paket: {{.PackageName}}</li>
  <li>Tutar: {{.Total}} {{.Currency}}</li>
</ul>
`))

var contactAlertTmpl = template.Must(template.New("contact").Parse(`
<h2>Yeni İletişim Mesajı</h2>
<p><strong>{{.Name}}</strong> ({{.Email}}) mesaj gönderdi:</p>
<blockquote>{{.Message}}</blockquote>
`))

func (s *service) send(subject string, tmpl *template.Template, data interface{}) error {
	if s.cfg.ResendAPIKey == "" {
		return nil
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("ZentProje <%s>", s.cfg.FromEmail),
		To:      []string{s.cfg.AdminEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *service) SendOrderAlert(ctx context.Context, customerName, packageName, orderNumber string, total int64, currency string) error {
	data := struct {
		CustomerName string
		PackageName  string
		OrderNumber  string
		Total        int64
		Currency     string
	}{customerName, packageName, orderNumber, total, currency}

	return s.send(fmt.Sprintf("Yeni sipariş: %s", orderNumber), orderAlertTmpl, data)
}

func (s *service) SendContactAlert(ctx context.Context, name, fromEmail, message string) error {
	data := struct {
		Name    string
		Email   string
		Message string
	}{name, fromEmail, message}

	return s.send(fmt.Sprintf("Yeni iletişim mesajı: %s", name), contactAlertTmpl, data)
}
