// Package templates renders the transactional email bodies the worker sends.
package templates

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	texttpl "text/template"
)

const (
	VerifyEmail = "verify_email"
	Welcome     = "welcome"
)

type rendered struct {
	subject string
	text    *texttpl.Template
	html    *htmpl.Template
}

var registry = map[string]rendered{
	VerifyEmail: {
		subject: "Verify your email address",
		text: texttpl.Must(texttpl.New("verify_text").Parse(
			"Hi {{.Name}},\n\nConfirm your FavoritesTracker account by opening:\n{{.VerifyURL}}\n\nIf you did not sign up, you can ignore this email.\n")),
		html: htmpl.Must(htmpl.New("verify_html").Parse(
			`<p>Hi {{.Name}},</p><p>Confirm your FavoritesTracker account:</p><p><a href="{{.VerifyURL}}">Verify email</a></p><p>If you did not sign up, you can ignore this email.</p>`)),
	},
	Welcome: {
		subject: "Welcome to FavoritesTracker",
		text: texttpl.Must(texttpl.New("welcome_text").Parse(
			"Hi {{.Name}},\n\nYour account is ready. Start your first collection at {{.AppURL}}.\n")),
		html: htmpl.Must(htmpl.New("welcome_html").Parse(
			`<p>Hi {{.Name}},</p><p>Your account is ready. Start your first collection at <a href="{{.AppURL}}">{{.AppURL}}</a>.</p>`)),
	},
}

// Data carries the fields the templates reference.
type Data struct {
	Name      string
	Email     string
	VerifyURL string
	AppURL    string
}

// Render produces the subject, plain-text body, and HTML body for a named
// template.
func Render(name string, data Data) (subject, text, html string, err error) {
	r, ok := registry[name]
	if !ok {
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
	var tb, hb bytes.Buffer
	if err := r.text.Execute(&tb, data); err != nil {
		return "", "", "", err
	}
	if err := r.html.Execute(&hb, data); err != nil {
		return "", "", "", err
	}
	return r.subject, tb.String(), hb.String(), nil
}
