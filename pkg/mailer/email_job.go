package mailer

import "github.com/philgetzen/favorites-tracker-sub003/pkg/mailer/templates"

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// When Template is set the worker renders subject and bodies from it;
// otherwise Subject/Text/HTML are used verbatim.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // templates.VerifyEmail, templates.Welcome
	Data     templates.Data `json:"data,omitempty"`
}
