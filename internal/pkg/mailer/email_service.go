package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendPurchaseReceipt(toEmail, buyerName, planName string, totalCents int, currency, transactionRef string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendPurchaseReceipt(toEmail, buyerName, planName string, totalCents int, currency, transactionRef string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Jūsų FitBite užsakymas apmokėtas")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Ačiū, %s!</h2>
			<p>Jūsų mitybos plano <strong>%s</strong> užsakymas apmokėtas.</p>
			<p>Suma: <strong>%d.%02d %s</strong></p>
			<p>Operacijos nr.: %s</p>
			<p>Kvitą rasite savo paskyros užsakymų istorijoje.</p>
		</div>
	`, buyerName, planName, totalCents/100, totalCents%100, currency, transactionRef)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send receipt to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Receipt sent to %s\n", toEmail)
	return nil
}
