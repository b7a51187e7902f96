package notify

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/venuebook/venuebook/internal/bookings"
)

const confirmedBody = `
<div style="font-family:Arial,sans-serif;">
  <h2>Booking Confirmed 🎉</h2>
  <p>Hi {{.Name}},</p>
  <p>Your booking has been <strong>confirmed</strong>. Here are the details:</p>
  <ul>
    <li><strong>Function:</strong> {{.Booking.FunctionName}}</li>
    <li><strong>Venue:</strong> {{.Booking.Venue}}</li>
    <li><strong>Start:</strong> {{formatDate .Booking.StartDate}}</li>
    <li><strong>End:</strong> {{formatDate .Booking.EndDate}}</li>
    <li><strong>Status:</strong> {{.Booking.Status}}</li>
  </ul>
  <p>Thanks for choosing us, see you at the event!</p>
</div>`

const rejectedBody = `
<div style="font-family:Arial,sans-serif;">
  <h2>Booking Rejected ❌</h2>
  <p>Hi {{.Name}},</p>
  <p>We're sorry to inform you that your booking was <strong>rejected</strong>.</p>
  <ul>
    <li><strong>Function:</strong> {{.Booking.FunctionName}}</li>
    <li><strong>Venue:</strong> {{.Booking.Venue}}</li>
    <li><strong>Start:</strong> {{formatDate .Booking.StartDate}}</li>
    <li><strong>End:</strong> {{formatDate .Booking.EndDate}}</li>
    <li><strong>Status:</strong> {{.Booking.Status}}</li>
  </ul>
  <p>You can try booking a different slot or venue. If you need assistance, just reply to this email.</p>
</div>`

var funcs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("Jan 02, 2006, 03:04 PM")
	},
}

var (
	confirmedTemplate = template.Must(template.New("confirmed").Funcs(funcs).Parse(confirmedBody))
	rejectedTemplate  = template.Must(template.New("rejected").Funcs(funcs).Parse(rejectedBody))
)

type templateData struct {
	Name    string
	Booking *bookings.Booking
}

func renderStatusEmail(name string, booking *bookings.Booking) (string, error) {
	tmpl := confirmedTemplate
	if booking.Status == bookings.StatusRejected {
		tmpl = rejectedTemplate
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, templateData{Name: name, Booking: booking}); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", booking.Status, err)
	}

	return out.String(), nil
}
