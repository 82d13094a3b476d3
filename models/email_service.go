package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendOrderConfirmation(toEmail string, order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order %s confirmed - Buddies Inn", order.OrderNumber))

	var itemRows strings.Builder
	for _, item := range order.Items {
		addOns := "No add-ons"
		if len(item.AddOns) > 0 {
			addOns = strings.Join(item.AddOns, ", ")
		}
		itemRows.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td>%s</td><td>x%d</td><td>%.2f</td></tr>`,
			item.Name, addOns, item.Quantity, item.Total))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #f97316; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        td { padding: 8px; border-bottom: 1px solid #eee; }
        .total { font-size: 20px; font-weight: bold; color: #f97316; text-align: right; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">Buddies Inn</div>
        </div>
        <h2 style="color: #333;">Thanks for your order, %s!</h2>
        <p>Your order <strong>%s</strong> has been received and is being prepared.</p>
        <table>%s</table>
        <p class="total">Total: %.2f</p>
        <div class="footer">
            <p>Buddies Inn &middot; Accra, Ghana</p>
        </div>
    </div>
</body>
</html>`, order.CustomerName, order.OrderNumber, itemRows.String(), order.Total)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
