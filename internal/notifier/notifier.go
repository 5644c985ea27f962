package notifier

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/chenawi66/chefhu-2026/config"
	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/model"
)

// Notifier tells the operator about a new reservation. Delivery is
// best-effort: a failed notification never affects the booking itself.
type Notifier interface {
	ReservationCreated(ctx context.Context, res model.Reservation) error
}

// New assembles the configured notification targets. Email is always
// present (falling back to the log when SMTP is unconfigured); LINE joins
// in only when an access token is set.
func New(cfg *config.Config) Notifier {
	targets := multi{NewEmailNotifier(cfg)}

	if cfg.Line.AccessToken != "" {
		targets = append(targets, NewLineNotifier(cfg))
	}

	return targets
}

type multi []Notifier

// ReservationCreated fans out to every target, logging failures and never
// propagating them.
func (m multi) ReservationCreated(ctx context.Context, res model.Reservation) error {
	for _, target := range m {
		if err := target.ReservationCreated(ctx, res); err != nil {
			log.Error().Err(err).Str("reservation", res.ID).Msg("failed to deliver reservation notification")
		}
	}

	return nil
}

// Summary renders the operator-facing description of a reservation.
func Summary(res model.Reservation, pricePerGuest int) string {
	return fmt.Sprintf(
		"新的預約請求\n"+
			"姓名：%s\n"+
			"電話：%s\n"+
			"同行夥伴：%s\n"+
			"日期：%s\n"+
			"時間：%s\n"+
			"人數：%d 人\n"+
			"總收費：%d 元 (食材費每人 %d 元)",
		res.Name, res.Phone, res.Relationship, res.Date, res.Time,
		res.Guests, res.Guests*pricePerGuest, pricePerGuest,
	)
}
