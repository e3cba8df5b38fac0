package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petsitter/models"
)

func TestComposeContact(t *testing.T) {
	msg := ComposeContact(models.Listing{
		Title:   "Plimbător de Câini Experimentat",
		Name:    "Maria Popescu",
		Contact: "maria@example.com",
	})

	require.Equal(t, "maria@example.com", msg.To)
	require.Contains(t, msg.Subject, "Plimbător de Câini Experimentat")
	require.Contains(t, msg.Body, "Maria Popescu")
	require.True(t, strings.HasPrefix(msg.MailtoURL, "mailto:maria@example.com?"))
}

func TestComposeBookingConfirmation(t *testing.T) {
	booking := models.BookingFromDraft(&models.BookingDraft{
		ServiceID:    5,
		ServiceName:  "Cristina Georgescu",
		ServicePrice: 25,
		StartDate:    "2026-02-10",
		EndDate:      "2026-02-12",
		TotalDays:    3,
		TotalPrice:   75,
		PetName:      "Rex",
		PetType:      "dog",
		OwnerName:    "Ion Popescu",
		OwnerEmail:   "ion@example.com",
	}, 1001, time.Now())

	msg := ComposeBookingConfirmation(booking)
	require.Equal(t, "ion@example.com", msg.To)
	require.Contains(t, msg.Subject, "#1001")
	require.Contains(t, msg.Body, "Cristina Georgescu")
	require.Contains(t, msg.Body, "2026-02-10 to 2026-02-12 (3 days)")
	require.Contains(t, msg.Body, "Rex (dog)")
	require.Contains(t, msg.Body, "75.00")
}

func TestComposeBookingConfirmationOmitsEmptyPet(t *testing.T) {
	booking := models.BookingFromDraft(&models.BookingDraft{
		ServiceName: "Cristina Georgescu",
		OwnerName:   "Ion Popescu",
		OwnerEmail:  "ion@example.com",
	}, 1002, time.Now())

	msg := ComposeBookingConfirmation(booking)
	require.NotContains(t, msg.Body, "Pet:")
}
