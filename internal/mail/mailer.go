package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"github.com/skobelevsky/authgate/internal/logger"
)

const resetTemplate = `<html><body>
<p>Hello,</p>
<p>A password reset was requested for your account. The link is valid for one hour.</p>
<p><a href="{{.Link}}">Reset your password</a></p>
<p>If you did not request this, you can ignore this email.</p>
</body></html>`

// Mailer sends password-reset emails over SMTP. A Mailer without credentials
// degrades to logging the reset URL instead of failing the request.
type Mailer struct {
	host         string
	port         string
	username     string
	password     string
	from         string
	resetBaseURL string

	tmpl *template.Template
}

// New creates a Mailer. Empty username or password produces a degraded Mailer
// that only logs reset URLs.
func New(host, port, username, password, from, resetBaseURL string) *Mailer {
	return &Mailer{
		host:         host,
		port:         port,
		username:     username,
		password:     password,
		from:         from,
		resetBaseURL: resetBaseURL,
		tmpl:         template.Must(template.New("reset").Parse(resetTemplate)),
	}
}

// ResetURL builds the reset link carried in the email body.
func (m *Mailer) ResetURL(key string) string {
	return fmt.Sprintf("%s/reset-password?key=%s", strings.TrimRight(m.resetBaseURL, "/"), url.QueryEscape(key))
}

// SendResetKey delivers the reset link to the given address. Best-effort by
// contract: without credentials the URL is logged and nil is returned.
func (m *Mailer) SendResetKey(ctx context.Context, to, key string) error {
	link := m.ResetURL(key)

	if m.username == "" || m.password == "" {
		logger.Log.Infow("mail credentials not configured, logging reset URL instead",
			"to", to,
			"url", link,
		)
		return nil
	}

	var body bytes.Buffer
	if err := m.tmpl.Execute(&body, map[string]string{"Link": link}); err != nil {
		return err
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", m.from),
		fmt.Sprintf("To: %s", to),
		"Subject: Password reset",
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		body.String(),
	}, "\r\n")

	if err := m.send(ctx, to, []byte(msg)); err != nil {
		return err
	}

	logger.Log.Infow("reset email sent", "to", to)
	return nil
}

func (m *Mailer) send(ctx context.Context, to string, msg []byte) error {
	addr := net.JoinHostPort(m.host, m.port)

	dialer := &net.Dialer{Timeout: 8 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	// Deadline covers the whole SMTP conversation.
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return err
		}
	}

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := c.Auth(auth); err != nil {
		return err
	}

	if err := c.Mail(m.from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
