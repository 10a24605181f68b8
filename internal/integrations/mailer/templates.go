package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	subjectConfirmation = "Booking Confirmation"
	subjectNotification = "New Booking Notification"
)

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Booking Confirmation</h2>
  <p>Hi {{.CustomerName}},</p>
  <p>Your booking request has been received and is pending confirmation.</p>
  <table>
    <tr><td><b>Service:</b></td><td>{{.ServiceName}}</td></tr>
    <tr><td><b>Provider:</b></td><td>{{.ProviderName}}</td></tr>
    <tr><td><b>Date:</b></td><td>{{.Date}}</td></tr>
    <tr><td><b>Time:</b></td><td>{{.Start}} - {{.End}}</td></tr>
    <tr><td><b>Price:</b></td><td>${{.Price}}</td></tr>
  </table>
  {{if .Notes}}<p><b>Notes:</b> {{.Notes}}</p>{{end}}
  <p><a href="{{.AppURL}}/bookings">View your bookings</a></p>
</body>
</html>`))

var notificationTemplate = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>New Booking</h2>
  <p>Hi {{.ProviderName}},</p>
  <p>{{.CustomerName}} ({{.CustomerEmail}}) has requested a booking.</p>
  <table>
    <tr><td><b>Service:</b></td><td>{{.ServiceName}}</td></tr>
    <tr><td><b>Date:</b></td><td>{{.Date}}</td></tr>
    <tr><td><b>Time:</b></td><td>{{.Start}} - {{.End}}</td></tr>
    <tr><td><b>Price:</b></td><td>${{.Price}}</td></tr>
  </table>
  {{if .Notes}}<p><b>Notes:</b> {{.Notes}}</p>{{end}}
  <p><a href="{{.AppURL}}/dashboard">Open dashboard</a></p>
</body>
</html>`))

type templateData struct {
	CustomerName  string
	CustomerEmail string
	ProviderName  string
	ServiceName   string
	Date          string
	Start         string
	End           string
	Price         string
	Notes         string
	AppURL        string
}

func newTemplateData(b BookingEmail, appURL string) templateData {
	data := templateData{
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		ProviderName:  b.ProviderName,
		ServiceName:   b.ServiceName,
		Date:          b.StartTime.Format("Monday, January 2, 2006"),
		Start:         b.StartTime.Format("15:04"),
		End:           b.EndTime.Format("15:04"),
		Price:         b.Price.StringFixed(2),
		AppURL:        appURL,
	}
	if b.Notes != nil {
		data.Notes = *b.Notes
	}
	return data
}

func render(tpl *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRender, tpl.Name(), err)
	}
	return buf.String(), nil
}
