package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const brand = "OnamKulam Interiors"

// Enquiry is the subset of an enquiry rendered into notification emails.
type Enquiry struct {
	Name    string
	Email   string
	Phone   string
	Details string
}

var adminTmpl = template.Must(template.New("admin").Parse(`<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
  <h2 style="color: #8B6F47;">New Project Enquiry</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</p>
  <p><strong>Details:</strong></p>
  <p style="background: #f9f9f9; padding: 15px; border-left: 4px solid #8B6F47;">{{if .Details}}{{.Details}}{{else}}No details provided{{end}}</p>
  <p style="font-size: 12px; color: #999; margin-top: 30px;">Received via {{.Brand}} Website</p>
</div>`))

var ackTmpl = template.Must(template.New("ack").Parse(`<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
  <h2 style="color: #8B6F47;">Thank You, {{.Name}}!</h2>
  <p>We have received your enquiry and appreciate you reaching out to <strong>{{.Brand}}</strong>.</p>
  <p>Our team will review your details and get back to you shortly.</p>
  <br/>
  <p>Best Regards,</p>
  <p><strong>{{.Brand}} Team</strong></p>
</div>`))

type templateData struct {
	Enquiry
	Brand string
}

// AdminNotification renders the business-inbox email for e, addressed to inbox.
// Replies go straight to the submitter.
func AdminNotification(inbox string, e Enquiry) (Message, error) {
	body, err := render(adminTmpl, e)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      inbox,
		ReplyTo: e.Email,
		Subject: fmt.Sprintf("New Enquiry from %s - %s", e.Name, brand),
		HTML:    body,
	}, nil
}

// Acknowledgment renders the thank-you email sent back to the submitter.
func Acknowledgment(e Enquiry) (Message, error) {
	body, err := render(ackTmpl, e)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      e.Email,
		Subject: "Thank you for contacting " + brand,
		HTML:    body,
	}, nil
}

func render(t *template.Template, e Enquiry) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, templateData{Enquiry: e, Brand: brand}); err != nil {
		return "", fmt.Errorf("mailer: render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}
