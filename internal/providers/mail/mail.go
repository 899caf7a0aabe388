// Package mail delivers assembled transcripts by email. It is an optional
// collaborator: deployments without mail credentials never construct one.
package mail

import "context"

type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}
