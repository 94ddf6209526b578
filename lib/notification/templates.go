package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/pkg/errors"
)

// Email bodies are rendered through html/template so candidate- and
// company-supplied values are output-encoded in the html variant.

type StatusChangeData struct {
	CandidateName string
	JobTitle      string
	CompanyName   string
	OldStatus     string
	NewStatus     string
	NextSteps     string
}

type InterviewData struct {
	CandidateName string
	JobTitle      string
	CompanyName   string
	When          string
	Location      string
}

type WelcomeData struct {
	CandidateName string
	PortalUrl     string
}

const statusChangeHTML = `<p>Hello {{.CandidateName}},</p>
<p>Your application for <b>{{.JobTitle}}</b> at <b>{{.CompanyName}}</b> has been updated{{if .OldStatus}} from <b>{{.OldStatus}}</b>{{end}} to <b>{{.NewStatus}}</b>.</p>
<p>{{.NextSteps}}</p>
<p>Best regards,<br>The {{.CompanyName}} recruiting team</p>`

const statusChangeText = `Hello {{.CandidateName}},

Your application for {{.JobTitle}} at {{.CompanyName}} has been updated{{if .OldStatus}} from {{.OldStatus}}{{end}} to {{.NewStatus}}.

{{.NextSteps}}

Best regards,
The {{.CompanyName}} recruiting team`

const interviewHTML = `<p>Hello {{.CandidateName}},</p>
<p>Your interview for <b>{{.JobTitle}}</b> at <b>{{.CompanyName}}</b> has been scheduled for <b>{{.When}}</b>{{if .Location}} ({{.Location}}){{end}}.</p>
<p>Please be available a few minutes early. Good luck!</p>
<p>Best regards,<br>The {{.CompanyName}} recruiting team</p>`

const interviewText = `Hello {{.CandidateName}},

Your interview for {{.JobTitle}} at {{.CompanyName}} has been scheduled for {{.When}}{{if .Location}} ({{.Location}}){{end}}.

Please be available a few minutes early. Good luck!

Best regards,
The {{.CompanyName}} recruiting team`

const welcomeHTML = `<p>Hello {{.CandidateName}},</p>
<p>Welcome to Interview Portal. Your account is ready: browse open positions, apply, and track every application from your <a href="{{.PortalUrl}}">dashboard</a>.</p>
<p>Best regards,<br>The Interview Portal team</p>`

const welcomeText = `Hello {{.CandidateName}},

Welcome to Interview Portal. Your account is ready: browse open positions, apply, and track every application from your dashboard: {{.PortalUrl}}

Best regards,
The Interview Portal team`

func renderStatusChange(data StatusChangeData) (subject, htmlBody, textBody string, err error) {
	subject = fmt.Sprintf("Update on your application for %s", data.JobTitle)
	htmlBody, textBody, err = render("status_change", statusChangeHTML, statusChangeText, data)
	return subject, htmlBody, textBody, err
}

func renderInterviewScheduled(data InterviewData) (subject, htmlBody, textBody string, err error) {
	subject = fmt.Sprintf("Interview scheduled for %s", data.JobTitle)
	htmlBody, textBody, err = render("interview_scheduled", interviewHTML, interviewText, data)
	return subject, htmlBody, textBody, err
}

func renderWelcome(data WelcomeData) (subject, htmlBody, textBody string, err error) {
	subject = "Welcome to Interview Portal"
	htmlBody, textBody, err = render("welcome", welcomeHTML, welcomeText, data)
	return subject, htmlBody, textBody, err
}

func render(name, htmlTpl, textTpl string, data interface{}) (htmlBody, textBody string, err error) {
	ht, err := htmltemplate.New(name + "_html").Parse(htmlTpl)
	if err != nil {
		return "", "", errors.Wrapf(err, "failed to parse html template %v", name)
	}
	buf := new(bytes.Buffer)
	if err = ht.Execute(buf, data); err != nil {
		return "", "", errors.Wrapf(err, "failed to render html template %v", name)
	}
	htmlBody = buf.String()

	tt, err := texttemplate.New(name + "_text").Parse(textTpl)
	if err != nil {
		return "", "", errors.Wrapf(err, "failed to parse text template %v", name)
	}
	buf.Reset()
	if err = tt.Execute(buf, data); err != nil {
		return "", "", errors.Wrapf(err, "failed to render text template %v", name)
	}
	textBody = buf.String()
	return htmlBody, textBody, nil
}
