package smtp

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEmail(to, subject, htmlBody, textBody string) error
	IsConfigured() bool
}

func Connect(user, password, host, port, senderName string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		senderName: senderName,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	senderName string
	tlsEnabled bool
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

const boundary = "interview-portal-alt"

func (i impl) SendEmail(to, subject, htmlBody, textBody string) (err error) {
	logger := log.WithField("recipient", to).WithField("subject", subject)
	if !i.IsConfigured() {
		// smtp not set up: behave as a console transport and report success,
		// a missing mail server must not break the calling flow
		logger.WithField("text_body", textBody).Info("smtp client is not configured, email logged instead of sent")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	body := strings.NewReader(buildMime(i.senderName, i.user, to, subject, htmlBody, textBody))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, sendTo, body)
	}
	if err != nil {
		logger.WithError(err).Error("failed to send email")
		return err
	}
	logger.Info("email sent")
	return nil
}

// buildMime renders a multipart/alternative message so clients can pick
// between the plaintext and html bodies.
func buildMime(senderName, from, to, subject, htmlBody, textBody string) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("From: %s <%s>\r\n", senderName, from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	sb.WriteString(textBody)
	sb.WriteString("\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	sb.WriteString(htmlBody)
	sb.WriteString("\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return sb.String()
}
