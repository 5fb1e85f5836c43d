package services

import (
	"fmt"
	"time"

	"cabin-backend/models"
)

const propertyName = "Mountain Cabin Retreat"

const dateLayout = "January 2, 2006"

func formatStay(b *models.Booking) string {
	return fmt.Sprintf("- Check-in: %s\n- Check-out: %s\n- Guests: %d",
		b.StartDate.Format(dateLayout), b.EndDate.Format(dateLayout), b.Guests)
}

func requestReceivedEmail(b *models.Booking) (subject, body string) {
	subject = "Booking Request Received"
	body = fmt.Sprintf(`Dear %s,

Thank you for your booking request at %s.

Your booking details:
%s

Your booking is currently pending approval. We will notify you once it has been reviewed.

Best regards,
%s Team`, b.GuestName, propertyName, formatStay(b), propertyName)
	return subject, body
}

func approvedEmail(b *models.Booking, calendarURL string) (subject, body string) {
	subject = "Booking Approved"
	body = fmt.Sprintf(`Dear %s,

Great news! Your booking request at %s has been approved.

Your booking details:
%s

Add your stay to Google Calendar:
%s

We look forward to welcoming you to our cabin.

Best regards,
%s Team`, b.GuestName, propertyName, formatStay(b), calendarURL, propertyName)
	return subject, body
}

func rejectedEmail(b *models.Booking) (subject, body string) {
	subject = "Booking Request Update"
	body = fmt.Sprintf(`Dear %s,

We regret to inform you that we are unable to accommodate your booking request at %s for the dates you requested.

Your requested booking details:
%s

Please feel free to submit another booking request for different dates.

Best regards,
%s Team`, b.GuestName, propertyName, formatStay(b), propertyName)
	return subject, body
}

func datesUpdatedEmail(b *models.Booking) (subject, body string) {
	subject = "Booking Dates Updated"
	body = fmt.Sprintf(`Dear %s,

Your booking dates at %s have been updated.

New booking details:
%s

If you have any questions, please contact us.

Best regards,
%s Team`, b.GuestName, propertyName, formatStay(b), propertyName)
	return subject, body
}

// normalizeDate truncates to midnight UTC so stays compare by calendar day.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
