// Package transcript turns a raw diarized transcription into the
// speaker-labeled text that gets persisted and mailed, plus quality metrics.
package transcript

import (
	"fmt"
	"math"

	"github.com/callscribe/callscribe/internal/providers/stt"
)

// Assembled is the materialized transcript for one recording.
type Assembled struct {
	Text string
	HTML string
	// AverageWordConfidence and UncertainWordFraction are in [0,1], rounded
	// to 3 decimals. Uncertain means word confidence below 0.7.
	AverageWordConfidence float64
	UncertainWordFraction float64
	SpeakerCount          int
}

const uncertainThreshold = 0.7

// speaker ids are non-negative; -1 never matches, so the first sentence
// always emits a label.
const noSpeaker = -1

// Assemble reads the first channel's first alternative. A result with no
// channels or no alternatives assembles to the empty transcript, not an
// error. labelOverride replaces the generated "Speaker N" labels when
// non-empty.
func Assemble(raw *stt.RawTranscription, labelOverride string) Assembled {
	var out Assembled
	if raw == nil || len(raw.Results.Channels) == 0 {
		return out
	}
	channel := raw.Results.Channels[0]
	if len(channel.Alternatives) == 0 {
		return out
	}
	alt := channel.Alternatives[0]

	out.Text = assembleText(alt.Paragraphs.Paragraphs, labelOverride)
	if out.Text != "" {
		out.HTML = RenderHTML(out.Text)
	}
	out.AverageWordConfidence, out.UncertainWordFraction = wordMetrics(alt.Words)
	out.SpeakerCount = countSpeakers(alt.Paragraphs.Paragraphs)
	return out
}

// assembleText emits a label line each time the speaker changes relative to
// the previously emitted sentence, then flows sentences after it, each
// followed by a single space.
func assembleText(paragraphs []stt.Paragraph, labelOverride string) string {
	text := ""
	prevSpeaker := noSpeaker

	for _, p := range paragraphs {
		for _, s := range p.Sentences {
			if p.Speaker != prevSpeaker {
				if text != "" {
					text += "\n"
				}
				text += speakerLabel(p.Speaker, labelOverride) + " (" + formatTimestamp(s.Start) + "): "
				prevSpeaker = p.Speaker
			}
			text += s.Text + " "
		}
	}
	return text
}

func speakerLabel(speaker int, override string) string {
	if override != "" {
		return override
	}
	return fmt.Sprintf("Speaker %d", speaker+1)
}

// formatTimestamp renders a start offset in seconds as m:ss, e.g. 125.7 as
// "2:05".
func formatTimestamp(seconds float64) string {
	mins := int(seconds / 60)
	secs := int(math.Mod(seconds, 60))
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func wordMetrics(words []stt.Word) (avgConfidence, uncertainFraction float64) {
	if len(words) == 0 {
		return 0, 0
	}
	var sum float64
	uncertain := 0
	for _, w := range words {
		sum += w.Confidence
		if w.Confidence < uncertainThreshold {
			uncertain++
		}
	}
	avgConfidence = round3(sum / float64(len(words)))
	uncertainFraction = round3(float64(uncertain) / float64(len(words)))
	return avgConfidence, uncertainFraction
}

func countSpeakers(paragraphs []stt.Paragraph) int {
	seen := make(map[int]bool)
	for _, p := range paragraphs {
		seen[p.Speaker] = true
	}
	return len(seen)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
