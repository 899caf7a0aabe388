package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/callscribe/callscribe/config"
	"github.com/callscribe/callscribe/internal/providers/mail"
	"github.com/callscribe/callscribe/internal/providers/stt"
	"github.com/callscribe/callscribe/internal/repositories"
	"github.com/callscribe/callscribe/internal/transcript"
	"github.com/callscribe/callscribe/internal/utils"
)

// RecordingEvent is the payload of one recording-complete webhook call.
type RecordingEvent struct {
	From            string
	To              string
	CallID          string
	RecordingURL    string
	RecordingID     string
	DurationSeconds string
}

// State names the pipeline's progress for logs and tests.
type State string

const (
	StateReceived     State = "received"
	StatePolled       State = "polled"
	StateTranscribed  State = "transcribed"
	StatePersisted    State = "persisted"
	StateDeleted      State = "deleted"
	StateAcknowledged State = "acknowledged"
	StateAborted      State = "aborted"
)

// Outcome is the pipeline's internal result. The webhook handler maps every
// outcome, success or not, to the same empty acknowledgment; the stage error
// survives here so logs and tests can tell the failure modes apart.
type Outcome struct {
	State State
	Err   error
}

// RecordingWaiter and RecordingDeleter are the two telephony capabilities
// the pipeline needs; telephony.Client provides both.
type RecordingWaiter interface {
	WaitForRecording(ctx context.Context, recordingURL string) error
}

type RecordingDeleter interface {
	DeleteRecording(ctx context.Context, recordingID string) error
}

// PipelineService sequences poll, transcribe, assemble, persist/notify and
// source deletion for each recording-complete event. Each event runs as one
// sequential pipeline instance; the repository is the only shared state, and
// it serializes itself.
type PipelineService struct {
	telephony   RecordingWaiter
	deleter     RecordingDeleter
	stt         stt.Provider
	transcripts repositories.TranscriptRepo // nil when no store is configured
	mailer      mail.Sender                 // nil when mail is not configured
	mailCfg     config.MailConfig
	logger      *logrus.Logger
}

func NewPipelineService(
	telephony RecordingWaiter,
	deleter RecordingDeleter,
	sttProvider stt.Provider,
	transcripts repositories.TranscriptRepo,
	mailer mail.Sender,
	mailCfg config.MailConfig,
	l *logrus.Logger,
) *PipelineService {
	return &PipelineService{
		telephony:   telephony,
		deleter:     deleter,
		stt:         sttProvider,
		transcripts: transcripts,
		mailer:      mailer,
		mailCfg:     mailCfg,
		logger:      l,
	}
}

// Process runs the pipeline for one event. It never panics outward and the
// Outcome error never reaches the webhook response; every path ends in the
// same acknowledgment upstream.
//
// Source deletion is gated only on the presence of a recording id, not on
// persistence success. If persistence failed and deletion succeeds, both the
// audio and the transcript are gone; that ordering is inherited behavior and
// deliberately left unchanged.
func (s *PipelineService) Process(ctx context.Context, ev RecordingEvent) Outcome {
	const op = "PipelineService.Process"

	log := s.logger.WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"call_id": ev.CallID,
		"from":    ev.From,
	})
	log.Info("recording event received")

	if ev.RecordingURL == "" {
		err := utils.E(utils.CodeInvalidArgument, op, "event carries no recording URL", nil)
		log.WithError(err).Warn("pipeline aborted before any provider call")
		return Outcome{State: StateAborted, Err: err}
	}

	if err := s.telephony.WaitForRecording(ctx, ev.RecordingURL); err != nil {
		log.WithError(err).Warn("recording never became available")
		return Outcome{State: StateAborted, Err: err}
	}
	log.Debug("recording available")

	raw, err := s.stt.Transcribe(ctx, ev.RecordingURL)
	if err != nil || raw == nil {
		err = utils.E(utils.CodeTranscriptionFailed, op, "no transcript produced", err)
		log.WithError(err).Warn("transcription failed")
		return Outcome{State: StateAborted, Err: err}
	}

	assembled := transcript.Assemble(raw, "")
	log.WithFields(logrus.Fields{
		"avg_word_confidence":     assembled.AverageWordConfidence,
		"uncertain_word_fraction": assembled.UncertainWordFraction,
		"speaker_count":           assembled.SpeakerCount,
	}).Info("transcript assembled")

	persistErr := s.deliver(ctx, ev, assembled)
	if persistErr != nil {
		log.WithError(persistErr).WithField("code", utils.ErrCode(persistErr)).Error("failed to persist transcript")
	}

	if ev.RecordingID != "" {
		if err := s.deleter.DeleteRecording(ctx, ev.RecordingID); err != nil {
			// Cleanup debt for monitoring, never a pipeline failure.
			log.WithError(err).Error("failed to delete source recording")
		} else {
			log.Info("source recording deleted")
		}
	}

	if persistErr != nil {
		return Outcome{State: StateAborted, Err: persistErr}
	}
	log.Info("pipeline complete")
	return Outcome{State: StateAcknowledged}
}

// deliver writes the transcript to every configured sink. A store error is
// always fatal for the stage; a mail error is fatal only when mail is the
// sole sink, otherwise the stored copy stands and the failure is logged.
func (s *PipelineService) deliver(ctx context.Context, ev RecordingEvent, assembled transcript.Assembled) error {
	const op = "PipelineService.deliver"

	if s.transcripts != nil {
		if err := s.transcripts.Add(ctx, ev.From, ev.DurationSeconds, assembled.Text); err != nil {
			return utils.E(utils.CodePersistenceFailure, op, "store add failed", err)
		}
	}

	if s.mailer != nil {
		msg := mail.Message{
			From:    s.mailCfg.Sender,
			To:      s.mailCfg.Recipient,
			Subject: fmt.Sprintf("New voicemail from %s (%ss)", ev.From, ev.DurationSeconds),
			Text:    assembled.Text,
			HTML:    assembled.HTML,
		}
		if err := s.mailer.Send(ctx, msg); err != nil {
			if s.transcripts == nil {
				return utils.E(utils.CodePersistenceFailure, op, "mail delivery failed", err)
			}
			s.logger.WithError(err).Warn("mail delivery failed, transcript stored")
		}
	}
	return nil
}
