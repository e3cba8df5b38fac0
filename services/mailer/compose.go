package mailer

import (
	"fmt"
	"net/url"
	"strings"

	"petsitter/models"
)

// ComposedMessage is a pre-filled email the client can hand to the user's
// own mail program. MailtoURL encodes recipient, subject and body.
type ComposedMessage struct {
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	MailtoURL string `json:"mailtoUrl"`
}

// ComposeContact builds the contact-a-provider message for a listing. The
// sender fills in their own details before sending.
func ComposeContact(listing models.Listing) ComposedMessage {
	subject := fmt.Sprintf("Inquiry about: %s", listing.Title)
	body := strings.Join([]string{
		fmt.Sprintf("Hello %s,", listing.Name),
		"",
		fmt.Sprintf("I found your listing %q and I would like to get in touch.", listing.Title),
		"",
		"Best regards,",
	}, "\n")
	return compose(listing.Contact, subject, body)
}

// ComposeBookingConfirmation builds the confirmation message sent to the
// owner after a booking is finalized.
func ComposeBookingConfirmation(booking *models.Booking) ComposedMessage {
	subject := fmt.Sprintf("Booking confirmation #%d", booking.ID)
	lines := []string{
		fmt.Sprintf("Hello %s,", booking.OwnerName),
		"",
		fmt.Sprintf("Your booking for %s is registered and pending confirmation.", booking.ServiceName),
		fmt.Sprintf("Stay: %s to %s (%d days)", booking.StartDate, booking.EndDate, booking.TotalDays),
	}
	if booking.PetName != "" {
		lines = append(lines, fmt.Sprintf("Pet: %s (%s)", booking.PetName, booking.PetType))
	}
	lines = append(lines,
		fmt.Sprintf("Total: %.2f", booking.TotalPrice),
		"",
		"Thank you for booking with us.",
	)
	return compose(booking.OwnerEmail, subject, strings.Join(lines, "\n"))
}

func compose(to, subject, body string) ComposedMessage {
	q := url.Values{}
	q.Set("subject", subject)
	q.Set("body", body)
	return ComposedMessage{
		To:        to,
		Subject:   subject,
		Body:      body,
		MailtoURL: fmt.Sprintf("mailto:%s?%s", to, q.Encode()),
	}
}
