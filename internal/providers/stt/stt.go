package stt

import "context"

// Provider submits a recording for transcription and returns the provider's
// raw diarized result. A nil result with a nil error means the provider
// could not produce a transcript (soft failure, already logged); callers
// must treat it as "no transcript", not as a fatal condition.
type Provider interface {
	Transcribe(ctx context.Context, recordingURL string) (*RawTranscription, error)
}

// RawTranscription mirrors the provider's diarized response shape. It is
// consumed once by the assembler and never persisted.
type RawTranscription struct {
	Results Results `json:"results"`
}

type Results struct {
	Channels []Channel `json:"channels"`
}

type Channel struct {
	Alternatives []Alternative `json:"alternatives"`
}

type Alternative struct {
	Transcript string     `json:"transcript"`
	Words      []Word     `json:"words"`
	Paragraphs Paragraphs `json:"paragraphs"`
}

type Word struct {
	Word       string  `json:"word"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
}

type Paragraphs struct {
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Paragraph groups sentences attributed to one speaker. Speaker defaults to
// 0 when the provider omits it.
type Paragraph struct {
	Speaker   int        `json:"speaker"`
	Sentences []Sentence `json:"sentences"`
}

type Sentence struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}
