package notifier

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog/log"

	"github.com/chenawi66/chefhu-2026/config"
	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/model"
)

const emailSubject = "🔔 新的乙級學徒練工坊預約！ - 待確認"

type emailNotifier struct {
	cfg *config.Config
}

func NewEmailNotifier(cfg *config.Config) Notifier {
	return &emailNotifier{cfg: cfg}
}

// ReservationCreated mails the reservation summary to the operator. Without
// SMTP credentials the summary goes to the log instead of failing.
func (n *emailNotifier) ReservationCreated(ctx context.Context, res model.Reservation) error {
	mail := n.cfg.Mail
	summary := Summary(res, n.cfg.Booking.PricePerGuest)

	if mail.Username == "" || mail.Password == "" {
		log.Info().
			Str("reservation", res.ID).
			Str("summary", summary).
			Msg("SMTP credentials not configured, reservation notification logged only")

		return nil
	}

	to := mail.To
	if to == "" {
		to = mail.Username
	}

	msg := []byte("To: " + to + "\r\n" +
		"From: " + mail.Username + "\r\n" +
		"Subject: " + emailSubject + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		summary + "\r\n")

	auth := smtp.PlainAuth("", mail.Username, mail.Password, mail.SMTPHost)

	if err := smtp.SendMail(mail.SMTPHost+":"+mail.SMTPPort, auth, mail.Username, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send reservation email: %w", err)
	}

	log.Info().Str("reservation", res.ID).Str("to", to).Msg("Reservation notification email sent")

	return nil
}
