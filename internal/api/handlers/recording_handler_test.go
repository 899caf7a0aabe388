package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/callscribe/callscribe/config"
	"github.com/callscribe/callscribe/internal/models"
	"github.com/callscribe/callscribe/internal/providers/stt"
	"github.com/callscribe/callscribe/internal/repositories/memory"
	"github.com/callscribe/callscribe/internal/services"
)

type stubTelephony struct {
	waitErr   error
	deleteErr error
}

func (s *stubTelephony) WaitForRecording(ctx context.Context, url string) error { return s.waitErr }
func (s *stubTelephony) DeleteRecording(ctx context.Context, id string) error   { return s.deleteErr }

type stubSTT struct {
	raw *stt.RawTranscription
}

func (s *stubSTT) Transcribe(ctx context.Context, url string) (*stt.RawTranscription, error) {
	return s.raw, nil
}

type addFailRepo struct{}

func (addFailRepo) Add(ctx context.Context, from, duration, text string) error {
	return errors.New("store down")
}

func (addFailRepo) List(ctx context.Context) ([]models.TranscriptRecord, error) { return nil, nil }
func (addFailRepo) Delete(ctx context.Context, id uint) error                   { return nil }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func sampleRaw() *stt.RawTranscription {
	return &stt.RawTranscription{Results: stt.Results{Channels: []stt.Channel{{
		Alternatives: []stt.Alternative{{
			Words: []stt.Word{{Word: "hi", Confidence: 0.9}},
			Paragraphs: stt.Paragraphs{Paragraphs: []stt.Paragraph{
				{Speaker: 0, Sentences: []stt.Sentence{{Text: "Hi.", Start: 0}}},
			}},
		}},
	}}}}
}

func newRouter(pipeline *services.PipelineService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRecordingHandler(pipeline)
	r.POST("/webhook/recording", h.Complete)
	return r
}

func postRecordingWebhook(t *testing.T, r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook/recording", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func completedCallForm() url.Values {
	return url.Values{
		"From":              {"+15550001"},
		"CallSid":           {"CA1"},
		"RecordingUrl":      {"https://recordings.example/RE1"},
		"RecordingSid":      {"RE1"},
		"RecordingDuration": {"30"},
	}
}

func assertEmptyAck(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<Response></Response>") {
		t.Errorf("body is not the empty acknowledgment: %q", w.Body.String())
	}
}

func TestRecordingWebhook_AcksOnSuccess(t *testing.T) {
	tel := &stubTelephony{}
	pipeline := services.NewPipelineService(tel, tel, &stubSTT{raw: sampleRaw()},
		memory.NewTranscriptRepo(), nil, config.MailConfig{}, quietLogger())

	w := postRecordingWebhook(t, newRouter(pipeline), completedCallForm())
	assertEmptyAck(t, w)
}

func TestRecordingWebhook_AcksOnPollTimeout(t *testing.T) {
	tel := &stubTelephony{waitErr: errors.New("never available")}
	pipeline := services.NewPipelineService(tel, tel, &stubSTT{raw: sampleRaw()},
		memory.NewTranscriptRepo(), nil, config.MailConfig{}, quietLogger())

	w := postRecordingWebhook(t, newRouter(pipeline), completedCallForm())
	assertEmptyAck(t, w)
}

func TestRecordingWebhook_AcksOnNullTranscription(t *testing.T) {
	tel := &stubTelephony{}
	pipeline := services.NewPipelineService(tel, tel, &stubSTT{raw: nil},
		memory.NewTranscriptRepo(), nil, config.MailConfig{}, quietLogger())

	w := postRecordingWebhook(t, newRouter(pipeline), completedCallForm())
	assertEmptyAck(t, w)
}

func TestRecordingWebhook_AcksOnPersistenceFailure(t *testing.T) {
	tel := &stubTelephony{}
	pipeline := services.NewPipelineService(tel, tel, &stubSTT{raw: sampleRaw()},
		addFailRepo{}, nil, config.MailConfig{}, quietLogger())

	w := postRecordingWebhook(t, newRouter(pipeline), completedCallForm())
	assertEmptyAck(t, w)
}

func TestRecordingWebhook_AcksWithoutRecordingURL(t *testing.T) {
	tel := &stubTelephony{}
	pipeline := services.NewPipelineService(tel, tel, &stubSTT{raw: sampleRaw()},
		memory.NewTranscriptRepo(), nil, config.MailConfig{}, quietLogger())

	form := completedCallForm()
	form.Del("RecordingUrl")
	w := postRecordingWebhook(t, newRouter(pipeline), form)
	assertEmptyAck(t, w)
}
