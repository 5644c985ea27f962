package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/chenawi66/chefhu-2026/config"
	"github.com/chenawi66/chefhu-2026/internal/domains/schedule/model"
	"github.com/chenawi66/chefhu-2026/shared/constant"
)

const lineBroadcastURL = "https://api.line.me/v2/bot/message/broadcast"

type lineNotifier struct {
	cfg    *config.Config
	client *http.Client
	url    string
}

func NewLineNotifier(cfg *config.Config) Notifier {
	return NewLineNotifierWithURL(cfg, lineBroadcastURL)
}

// NewLineNotifierWithURL targets a custom broadcast endpoint, used in tests.
func NewLineNotifierWithURL(cfg *config.Config, url string) Notifier {
	return &lineNotifier{
		cfg:    cfg,
		client: http.DefaultClient,
		url:    url,
	}
}

type lineTextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type lineBroadcastRequest struct {
	Messages []lineTextMessage `json:"messages"`
}

// ReservationCreated broadcasts the reservation summary through the LINE
// messaging API. Without a token the message is logged as a mock send.
func (n *lineNotifier) ReservationCreated(ctx context.Context, res model.Reservation) error {
	summary := Summary(res, n.cfg.Booking.PricePerGuest)

	if n.cfg.Line.AccessToken == "" {
		log.Info().Str("reservation", res.ID).Str("message", summary).Msg("LINE token not configured, broadcast logged only")

		return nil
	}

	body, err := json.Marshal(lineBroadcastRequest{
		Messages: []lineTextMessage{{Type: "text", Text: summary}},
	})
	if err != nil {
		return fmt.Errorf("failed to encode LINE broadcast: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build LINE broadcast request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+n.cfg.Line.AccessToken)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send LINE broadcast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("LINE broadcast rejected with status %d: %s", resp.StatusCode, detail)
	}

	log.Info().Str("reservation", res.ID).Msg("Reservation notification broadcast via LINE")

	return nil
}
