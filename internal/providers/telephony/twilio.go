// Package telephony wraps the call provider: recording availability probes,
// source-recording deletion and call-control markup.
package telephony

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/callscribe/callscribe/config"
	"github.com/callscribe/callscribe/internal/retry"
	"github.com/callscribe/callscribe/internal/utils"
)

type Client struct {
	cfg    config.TwilioConfig
	poll   retry.Policy
	http   *http.Client
	logger *logrus.Logger
}

func NewClient(cfg config.TwilioConfig, poll retry.Policy, l *logrus.Logger) *Client {
	return &Client{
		cfg:    cfg,
		poll:   poll,
		http:   &http.Client{Timeout: 15 * time.Second},
		logger: l,
	}
}

// WaitForRecording probes the recording URL until it is fetchable. The
// artifact is not always readable the instant the completion webhook fires,
// so each failed probe is swallowed and retried on the poll interval. When
// every attempt fails the result is a RECORDING_UNAVAILABLE error.
func (c *Client) WaitForRecording(ctx context.Context, recordingURL string) error {
	const op = "telephony.WaitForRecording"

	err := c.poll.Do(ctx, func(ctx context.Context) bool {
		ok, probeErr := c.probe(ctx, recordingURL)
		if probeErr != nil {
			c.logger.WithError(probeErr).Debug("recording probe failed")
			return false
		}
		return ok
	})
	if err != nil {
		return utils.E(utils.CodeRecordingUnavailable, op, "recording never became available", err)
	}
	return nil
}

func (c *Client) probe(ctx context.Context, recordingURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, recordingURL, nil)
	if err != nil {
		return false, err
	}
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, nil
	}
	// A ready recording serves an audio body. Some storage frontends omit
	// the header entirely, which still counts as available.
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "audio/") {
		return false, nil
	}
	return true, nil
}

// DeleteRecording removes the source audio at the provider. Callers treat a
// failure as log-only cleanup debt, never as a pipeline failure.
func (c *Client) DeleteRecording(ctx context.Context, recordingID string) error {
	const op = "telephony.DeleteRecording"

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Recordings/%s.json",
		c.cfg.APIBaseURL, c.cfg.AccountSID, recordingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return utils.E(utils.CodeDeletionFailure, op, "failed to build delete request", err)
	}
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return utils.E(utils.CodeDeletionFailure, op, "delete request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return utils.E(utils.CodeDeletionFailure, op,
			fmt.Sprintf("provider returned status %d", resp.StatusCode), nil)
	}
	return nil
}
