package services

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// IMailService is the notification collaborator of the donation flow. Callers
// treat sends as fire-and-forget: failures are logged and swallowed, they
// never fail the request that triggered them.
type IMailService interface {
	SendAdminNotification(subject, body string) error
	SendDonorConfirmation(to, subject, body string) error
}

// SMTPConfig holds SMTP transport and branding config.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool // SMTPS on 465; STARTTLS otherwise
	RequireTLS bool

	AdminMail  string
	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	if cfg.Host == "" || cfg.From == "" || cfg.AdminMail == "" {
		return nil, errors.New("missing SMTP configuration")
	}

	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("mailHTML").Parse(mailHTMLTemplate)),
		textTpl: template.Must(template.New("mailText").Parse(mailTextTemplate)),
	}, nil
}

func (s *smtpMailService) SendAdminNotification(subject, body string) error {
	return s.sendTemplated(s.cfg.AdminMail, subject, body)
}

func (s *smtpMailService) SendDonorConfirmation(to, subject, body string) error {
	if to == "" {
		return errors.New("missing recipient")
	}
	return s.sendTemplated(to, subject, body)
}

type mailData struct {
	Title   string
	Body    string
	AppName string
	SiteURL string
	Year    int
}

const mailHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
</head>
<body style="margin:0;padding:24px;background:#f8fafc;color:#0f172a;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:8px;padding:32px;">
    <div style="font-weight:700;font-size:20px;margin-bottom:16px;">{{.AppName}}</div>
    <h1 style="font-size:22px;margin:0 0 16px;">{{.Title}}</h1>
    <p style="line-height:1.6;white-space:pre-line;">{{.Body}}</p>
    <p style="margin-top:24px;"><a href="{{.SiteURL}}">{{.SiteURL}}</a></p>
    <div style="margin-top:32px;color:#64748b;font-size:12px;">© {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const mailTextTemplate = `{{.Title}}

{{.Body}}

{{.SiteURL}}

— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) sendTemplated(to, subject, body string) error {
	data := mailData{
		Title:   subject,
		Body:    body,
		AppName: s.cfg.AppName,
		SiteURL: s.cfg.AppBaseURL,
		Year:    time.Now().Year(),
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}
	return s.send(to, subject, hb.String(), tb.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	var c *smtp.Client
	if s.cfg.UseSSL {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		if c, err = smtp.NewClient(conn, s.cfg.Host); err != nil {
			conn.Close()
			return err
		}
	} else {
		dialer := &net.Dialer{Timeout: 10 * time.Second}
		conn, err := dialer.Dial("tcp", addr)
		if err != nil {
			return err
		}
		if c, err = smtp.NewClient(conn, s.cfg.Host); err != nil {
			conn.Close()
			return err
		}
		if ok, _ := c.Extension("STARTTLS"); ok {
			tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}
	defer c.Quit()

	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}
