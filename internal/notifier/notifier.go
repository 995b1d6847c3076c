package notifier

import (
	"fmt"
	"time"

	"github.com/devansh2311/deskmate/internal/models"
	"gopkg.in/gomail.v2"
)

// Notifier sends booking confirmations. Failures must never abort a booking;
// callers log and continue.
type Notifier interface {
	SendDeskConfirmation(booking *models.DeskBooking) error
	SendDeskFriendNotification(booking *models.DeskBooking) error
	SendRoomConfirmation(booking *models.MeetingRoomBooking) error
}

type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailNotifier(host string, port int, username, password, from string) *EmailNotifier {
	return &EmailNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (n *EmailNotifier) SendDeskConfirmation(booking *models.DeskBooking) error {
	return n.send(booking.Email, "Desk Booking Confirmation", deskConfirmationBody(booking))
}

func (n *EmailNotifier) SendDeskFriendNotification(booking *models.DeskBooking) error {
	return n.send(booking.FriendEmail, "Desk Booking Notification", deskFriendBody(booking))
}

func (n *EmailNotifier) SendRoomConfirmation(booking *models.MeetingRoomBooking) error {
	return n.send(booking.Email, "Meeting Room Booking Confirmation", roomConfirmationBody(booking))
}

func (n *EmailNotifier) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// Emails show dates as dd-MM-yyyy.
func formatDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02-01-2006")
}

func deskConfirmationBody(b *models.DeskBooking) string {
	deskNumber := ""
	if b.Desk != nil {
		deskNumber = b.Desk.DeskNumber
	}
	bookedFor := ""
	if b.IsForFriend {
		bookedFor = "<li><strong>Booked for:</strong> " + b.FriendName + "</li>"
	}
	return fmt.Sprintf(`<html><body>
<h2>Desk Booking Confirmation</h2>
<p>Dear %s,</p>
<p>Your desk booking has been confirmed with the following details:</p>
<ul>
<li><strong>Desk Number:</strong> %s</li>
<li><strong>Department:</strong> %s</li>
<li><strong>Date:</strong> %s</li>
%s</ul>
<p>Thank you for using our booking system.</p>
<p>Best regards,<br/>Desk Mate Team</p>
</body></html>`, b.BookerName, deskNumber, b.Department, formatDate(b.BookingDate), bookedFor)
}

func deskFriendBody(b *models.DeskBooking) string {
	deskNumber := ""
	if b.Desk != nil {
		deskNumber = b.Desk.DeskNumber
	}
	return fmt.Sprintf(`<html><body>
<h2>Desk Booking Notification</h2>
<p>Dear %s,</p>
<p>%s has booked a desk for you with the following details:</p>
<ul>
<li><strong>Desk Number:</strong> %s</li>
<li><strong>Department:</strong> %s</li>
<li><strong>Date:</strong> %s</li>
</ul>
<p>Thank you for using our booking system.</p>
<p>Best regards,<br/>Desk Mate Team</p>
</body></html>`, b.FriendName, b.BookerName, deskNumber, b.Department, formatDate(b.BookingDate))
}

func roomConfirmationBody(b *models.MeetingRoomBooking) string {
	roomNumber, roomName := "", ""
	if b.MeetingRoom != nil {
		roomNumber = b.MeetingRoom.RoomNumber
		roomName = b.MeetingRoom.RoomName
	}
	return fmt.Sprintf(`<html><body>
<h2>Meeting Room Booking Confirmation</h2>
<p>Dear %s,</p>
<p>Your meeting room booking has been confirmed with the following details:</p>
<ul>
<li><strong>Room Number:</strong> %s</li>
<li><strong>Room Name:</strong> %s</li>
<li><strong>Date:</strong> %s</li>
<li><strong>Time:</strong> %s to %s</li>
</ul>
<p>Thank you for using our booking system.</p>
<p>Best regards,<br/>Desk Mate Team</p>
</body></html>`, b.BookerName, roomNumber, roomName, formatDate(b.BookingDate), b.StartTime, b.EndTime)
}
