package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPSenderSend(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sender := NewHTTPSender("test-key", "no-reply@petsitter.example", "PetSitter")
	sender.endpoint = srv.URL

	err := sender.Send(context.Background(), ComposedMessage{
		To:      "ion@example.com",
		Subject: "Booking confirmation #1001",
		Body:    "Hello",
	})
	require.NoError(t, err)
	require.Equal(t, "ion@example.com", got.Personalizations[0].To[0].Email)
	require.Equal(t, "no-reply@petsitter.example", got.From.Email)
	require.Equal(t, "Booking confirmation #1001", got.Subject)
}

func TestHTTPSenderSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sender := NewHTTPSender("bad-key", "no-reply@petsitter.example", "PetSitter")
	sender.endpoint = srv.URL

	err := sender.Send(context.Background(), ComposedMessage{To: "ion@example.com"})
	require.Error(t, err)
}
