package telephony

import (
	"strings"
	"testing"
)

func TestRecordPrompt_Render(t *testing.T) {
	markup := RecordPrompt("https://scribe.example/webhook/recording", 120)
	body, err := markup.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(body)

	if !strings.HasPrefix(got, "<?xml") {
		t.Errorf("missing XML declaration: %q", got)
	}
	for _, want := range []string{
		"<Response>",
		"<Say>Please leave your message after the beep.</Say>",
		`action="https://scribe.example/webhook/recording"`,
		`method="POST"`,
		`maxLength="120"`,
		`playBeep="true"`,
		"<Say>Thank you. Goodbye.</Say>",
		"<Hangup></Hangup>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markup missing %q:\n%s", want, got)
		}
	}

	// The provider executes verbs in order: greet, record, then the rest.
	if strings.Index(got, "Please leave") > strings.Index(got, "<Record") {
		t.Errorf("greeting must come before <Record>:\n%s", got)
	}
}

func TestAck_RendersEmptyResponse(t *testing.T) {
	body, err := Ack().Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(body), "<Response></Response>") {
		t.Errorf("expected empty response element, got %q", string(body))
	}
}
