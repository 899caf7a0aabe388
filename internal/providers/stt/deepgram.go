package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/callscribe/callscribe/config"
)

// Deepgram submits recording URLs to the pre-recorded listen endpoint with a
// fixed option set: diarization, language detection, punctuation, smart
// formatting and utterance segmentation.
type Deepgram struct {
	cfg    config.DeepgramConfig
	http   *http.Client
	logger *logrus.Logger
}

func NewDeepgram(cfg config.DeepgramConfig, l *logrus.Logger) *Deepgram {
	return &Deepgram{
		cfg:    cfg,
		http:   &http.Client{Timeout: 2 * time.Minute},
		logger: l,
	}
}

func (d *Deepgram) Transcribe(ctx context.Context, recordingURL string) (*RawTranscription, error) {
	q := url.Values{}
	q.Set("diarize", "true")
	q.Set("detect_language", "true")
	q.Set("punctuate", "true")
	q.Set("smart_format", "true")
	q.Set("utterances", "true")

	endpoint := d.cfg.BaseURL + "/v1/listen?" + q.Encode()

	payload, err := json.Marshal(map[string]string{"url": recordingURL})
	if err != nil {
		d.logger.WithError(err).Error("deepgram: failed to encode request")
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		d.logger.WithError(err).Error("deepgram: failed to build request")
		return nil, nil
	}
	req.Header.Set("Authorization", "Token "+d.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		d.logger.WithError(err).Warn("deepgram: transcription request failed")
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		d.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Warn("deepgram: non-OK transcription response")
		return nil, nil
	}

	var raw RawTranscription
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		d.logger.WithError(err).Warn("deepgram: failed to decode transcription response")
		return nil, nil
	}
	return &raw, nil
}
