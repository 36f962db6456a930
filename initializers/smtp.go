package initializers

import (
	"proposal-approval-backend/config"
	"proposal-approval-backend/lib/smtp"
)

func InitSmtp() {
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.SenderEmail,
		*config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
}
