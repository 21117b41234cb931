package services

import (
	"fmt"
	"os"
	"strconv"

	"registration-module/config"
	"registration-module/logger"
	"registration-module/models"

	"gopkg.in/gomail.v2"
)

// SendConfirmationEmail sends the payment confirmation for a successful
// registration, with the PDF receipt attached. Best-effort: a failure
// is logged, never surfaced to the payer.
func SendConfirmationEmail(sub *models.Submission) {
	cfg := config.AppConfig

	if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		logger.Warn("SMTP credentials not configured, skipping confirmation email for txn %s", sub.TxnID)
		return
	}

	from := cfg.EmailFrom
	if from == "" {
		from = cfg.SMTPUser
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", sub.Email)
	m.SetHeader("Subject", fmt.Sprintf("Registration Confirmed - %s", sub.TxnID))
	m.SetBody("text/html", confirmationBody(sub))

	receiptPath, err := GenerateReceipt(sub)
	if err != nil {
		logger.Warn("Error generating receipt for txn %s, sending without attachment: %v", sub.TxnID, err)
	} else {
		m.Attach(receiptPath)
		defer os.Remove(receiptPath)
	}

	port := 587
	if v, err := strconv.Atoi(cfg.SMTPPort); err == nil {
		port = v
	}

	d := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		logger.Error("Failed to send confirmation email to %s: %v", sub.Email, err)
		return
	}

	logger.Info("Confirmation email sent to %s for txn %s", sub.Email, sub.TxnID)
}

func confirmationBody(sub *models.Submission) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #6d28d9; color: white; padding: 20px; text-align: center; border-radius: 5px; }
        .content { background-color: #f9f9f9; padding: 20px; margin-top: 20px; border-radius: 5px; }
        .txn-info { background-color: #ede9fe; padding: 15px; margin: 15px 0; border-left: 4px solid #6d28d9; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>Payment Successful!</h2></div>
        <div class="content">
            <p>Dear <strong>%s</strong>,</p>
            <p>Your registration is complete. Your payment receipt is attached.</p>
            <div class="txn-info">
                <p><strong>Transaction ID:</strong> %s</p>
                <p><strong>Branch:</strong> %s</p>
            </div>
            <p>See you at the event!<br/>The Organizing Team</p>
        </div>
    </div>
</body>
</html>
	`, sub.Name, sub.TxnID, sub.Branch)
}
