package telephony

import "encoding/xml"

// TwiML call-control markup. Element order is significant: the provider
// executes verbs top to bottom.
type VoiceResponse struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []any
}

type Say struct {
	XMLName xml.Name `xml:"Say"`
	Text    string   `xml:",chardata"`
}

type Record struct {
	XMLName   xml.Name `xml:"Record"`
	Action    string   `xml:"action,attr"`
	Method    string   `xml:"method,attr"`
	MaxLength int      `xml:"maxLength,attr"`
	PlayBeep  bool     `xml:"playBeep,attr"`
}

type Hangup struct {
	XMLName xml.Name `xml:"Hangup"`
}

// RecordPrompt builds the answer markup for an inbound call: greet, record
// with a beep and a bounded length, then thank the caller once recording
// ends (the provider re-invokes the action URL's verbs after <Record>).
func RecordPrompt(actionURL string, maxLengthSeconds int) *VoiceResponse {
	return &VoiceResponse{
		Verbs: []any{
			Say{Text: "Please leave your message after the beep."},
			Record{
				Action:    actionURL,
				Method:    "POST",
				MaxLength: maxLengthSeconds,
				PlayBeep:  true,
			},
			Say{Text: "Thank you. Goodbye."},
			Hangup{},
		},
	}
}

// Ack is the empty acknowledgment returned to the recording-complete
// webhook on every outcome.
func Ack() *VoiceResponse {
	return &VoiceResponse{}
}

// Render marshals the response with the XML declaration the provider
// expects.
func (r *VoiceResponse) Render() ([]byte, error) {
	body, err := xml.Marshal(r)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
