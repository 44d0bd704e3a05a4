package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	textTemplate "text/template"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wanderlog/internal/config"
)

type MailServiceInterface interface {
	SendTripInvitation(ctx context.Context, inv TripInvitation) error
}

type TripInvitation struct {
	To         string
	TripName   string
	SenderName string
	JoinURL    string
}

type invitationEmailData struct {
	TripInvitation
	AppName string
	Year    int
}

// deliverFunc hands a finished RFC 5322 message to a mail server.
type deliverFunc func(ctx context.Context, from, to string, msg []byte) error

type smtpMailService struct {
	cfg     config.SMTPConfig
	appName string
	htmlTpl *template.Template
	textTpl *textTemplate.Template
	deliver deliverFunc
	now     func() time.Time
	logger  *zap.Logger
}

func NewSMTPMailService(cfg *config.Config, logger *zap.Logger) MailServiceInterface {
	s := &smtpMailService{
		cfg:     cfg.SMTP,
		appName: cfg.App.Name,
		htmlTpl: template.Must(template.New("inviteHTML").Parse(invitationHTMLTemplate)),
		textTpl: textTemplate.Must(textTemplate.New("inviteText").Parse(invitationTextTemplate)),
		now:     time.Now,
		logger:  logger.Named("mail"),
	}
	s.deliver = s.deliverSMTP
	return s
}

func (s *smtpMailService) SendTripInvitation(ctx context.Context, inv TripInvitation) error {
	subject := fmt.Sprintf("Invitation to join the trip: %s", inv.TripName)
	data := invitationEmailData{TripInvitation: inv, AppName: s.appName, Year: s.now().Year()}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}

	msg := s.buildMessage(inv.To, subject, hb.String(), tb.String())
	if err := s.deliver(ctx, s.cfg.From, inv.To, msg); err != nil {
		return err
	}

	s.logger.Info("invitation sent", zap.String("to", inv.To))
	return nil
}

const invitationHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>Join {{.TripName}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f1f5f9; color: #0f172a; font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .wrapper { padding: 32px 16px; }
    .card { max-width: 560px; margin: 0 auto; background: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 8px 30px rgba(15, 23, 42, 0.08); }
    .header { padding: 20px 28px; background: #4b61d1; color: #ffffff; font-weight: 700; letter-spacing: 0.4px; }
    .body { padding: 28px; }
    h1 { margin: 0 0 12px; font-size: 22px; }
    p { margin: 0 0 16px; line-height: 1.6; color: #334155; }
    .btn { display: inline-block; padding: 12px 24px; background: #4b61d1; color: #ffffff !important; text-decoration: none; border-radius: 6px; font-weight: 600; }
    .fallback { margin-top: 24px; font-size: 13px; color: #64748b; word-break: break-all; }
    .footer { padding: 16px 28px; font-size: 12px; color: #94a3b8; text-align: center; border-top: 1px solid #e2e8f0; }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="card">
      <div class="header">{{.AppName}}</div>
      <div class="body">
        <h1>You're invited to {{.TripName}}</h1>
        <p>{{.SenderName}} has invited you to join their trip "<strong>{{.TripName}}</strong>".</p>
        <p><a class="btn" href="{{.JoinURL}}">Join Trip</a></p>
        <div class="fallback">
          If the button doesn't work, copy and paste this link into your browser:<br>
          <a href="{{.JoinURL}}">{{.JoinURL}}</a>
        </div>
      </div>
      <div class="footer">Best regards, the {{.AppName}} team &middot; {{.Year}}</div>
    </div>
  </div>
</body>
</html>`

const invitationTextTemplate = `Hello,

{{.SenderName}} has invited you to join their trip "{{.TripName}}".

Open this link to join:
{{.JoinURL}}

Best regards,
The {{.AppName}} team
`

func (s *smtpMailService) buildMessage(to, subject, htmlBody, textBody string) []byte {
	boundary := "alt_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.fromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.BEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", s.now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func (s *smtpMailService) fromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.BEncoding.Encode("UTF-8", name), s.cfg.From)
}

// deliverSMTP speaks implicit TLS when UseSSL is set (port 465) and
// STARTTLS otherwise (port 587).
func (s *smtpMailService) deliverSMTP(ctx context.Context, from, to string, msg []byte) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsCfg}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(from); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
