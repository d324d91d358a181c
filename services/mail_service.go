package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type MailService struct {
	dialer    *gomail.Dialer
	from      string
	storeName string
}

// NewMailService returns nil when SMTP is not configured; the checkout service
// treats a nil mailer as "confirmation emails disabled".
func NewMailService(host string, port int, user, pass, from, storeName string) *MailService {
	if host == "" || user == "" || pass == "" {
		return nil
	}
	return &MailService{
		dialer:    gomail.NewDialer(host, port, user, pass),
		from:      from,
		storeName: storeName,
	}
}

func (s *MailService) SendOrderConfirmation(to, name, orderID string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmed - %s", s.storeName))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Georgia, serif; background-color: #FDFBF7; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px;">
        <h1 style="color: #B76E79; font-size: 24px;">%s</h1>
        <h2 style="color: #1A1A1A;">Thank you for your order, %s</h2>
        <p style="color: #585858;">
            Your payment has been verified and order <strong>%s</strong> is confirmed.
            We will let you know as soon as it ships.
        </p>
        <p style="color: #999; font-size: 12px; margin-top: 30px;">
            If you did not place this order, please contact support immediately.
        </p>
    </div>
</body>
</html>`, s.storeName, name, orderID)

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}
