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
	SendEMail(to, message, subject string) error
	IsConfigured() bool
}

func Connect(user, password, host, port, senderEmail string, tlsEnabled bool) error {
	Instance = &impl{
		user:        user,
		password:    password,
		host:        host,
		port:        port,
		senderEmail: senderEmail,
		tlsEnabled:  tlsEnabled,
	}
	return nil
}

type impl struct {
	user        string
	password    string
	host        string
	port        string
	senderEmail string
	tlsEnabled  bool
}

// sender is the envelope From; falls back to the auth user when no dedicated
// sender address is configured.
func (i impl) sender() string {
	if i.senderEmail != "" {
		return i.senderEmail
	}
	return i.user
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(to, message, subject string) (err error) {
	logger := log.WithField("recipient", to)
	if !i.IsConfigured() {
		logger.Warn("email not sent, smtp client is not configured")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	body := strings.NewReader(fmt.Sprintf("Subject: Đề Xuất Ngân Sách - %s\n%s\r\n%s\r\n", subject, mimeHeaders, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.sender(), sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.sender(), sendTo, body)
	}
	if err != nil {
		log.WithError(err).Error("failed to send email")
		return err
	}
	logger.Info("email sent")
	return nil
}
