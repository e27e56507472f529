package email

import (
	"bytes"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yigitates17/Article-App/internal/config"
	mail "github.com/xhit/go-simple-mail/v2"
)

// WelcomeMail contains the data for the mail sent after registration.
type WelcomeMail struct {
	UserEmail string
	UserName  string
	Username  string
	LoginURL  string
}

// NotificationService sends emails through SMTP.
type NotificationService struct {
	config    *config.EmailConfig
	serverURL string
}

// New creates a new email notification service.
func New(cfg *config.EmailConfig, serverURL string) *NotificationService {
	return &NotificationService{
		config:    cfg,
		serverURL: serverURL,
	}
}

// SendWelcome sends the welcome mail to a freshly registered user.
// It is a no-op when email is disabled or the address is empty.
func (n *NotificationService) SendWelcome(username, name, address string) error {
	if n == nil || n.config == nil || !n.config.Enabled {
		log.Debug("Email notifications are disabled, skipping welcome mail")
		return nil
	}

	if address == "" {
		log.Warn("User email is empty, skipping welcome mail", "user", username)
		return nil
	}

	body, err := generateEmailBody(WelcomeMail{
		UserEmail: address,
		UserName:  name,
		Username:  username,
		LoginURL:  n.serverURL + "/login",
	})
	if err != nil {
		return fmt.Errorf("failed to generate email body: %w", err)
	}

	return n.sendEmail(address, "[Article App] Welcome, "+username, body)
}

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))

func generateEmailBody(data WelcomeMail) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "welcome.html", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// sendEmail sends an email using go-simple-mail library.
func (n *NotificationService) sendEmail(to, subject, body string) error {
	server := mail.NewSMTPClient()
	server.Host = n.config.SMTPHost
	server.Port = n.config.SMTPPort
	server.Username = n.config.Username
	server.Password = n.config.Password

	switch {
	case n.config.UseSSL:
		server.Encryption = mail.EncryptionSSLTLS
	case n.config.UseTLS:
		server.Encryption = mail.EncryptionSTARTTLS
	default:
		server.Encryption = mail.EncryptionNone
	}

	if n.config.InsecureSkipVerify {
		server.TLSConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	server.KeepAlive = false
	server.ConnectTimeout = 10 * time.Second
	server.SendTimeout = 10 * time.Second

	smtpClient, err := server.Connect()
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() {
		if closeErr := smtpClient.Close(); closeErr != nil {
			log.Warn("Failed to close SMTP client", "error", closeErr)
		}
	}()

	fromName := n.config.FromName
	if fromName == "" {
		fromName = "Article App"
	}

	msg := mail.NewMSG()
	msg.SetFrom(fmt.Sprintf("%s <%s>", fromName, n.config.FromEmail))
	msg.AddTo(to)
	msg.SetSubject(subject)
	msg.SetBody(mail.TextHTML, body)

	if err := msg.Send(smtpClient); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info("Welcome mail sent", "to", to)
	return nil
}
