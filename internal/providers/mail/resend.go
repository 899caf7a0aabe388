package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/callscribe/callscribe/config"
)

// Resend sends through the Resend HTTP API: bearer token, JSON body.
type Resend struct {
	cfg  config.MailConfig
	http *http.Client
}

func NewResend(cfg config.MailConfig) *Resend {
	return &Resend{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *Resend) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("mail: send returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
