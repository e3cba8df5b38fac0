package mailer

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"petsitter/models"
)

// TypeBookingConfirmation is the asynq task type for post-finalize
// confirmation messages.
const TypeBookingConfirmation = "mail:booking_confirmation"

// Enqueuer pushes confirmation tasks onto the asynq queue. It satisfies the
// booking service's ConfirmationEnqueuer.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueueBookingConfirmation(booking *models.Booking) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingConfirmation, payload)
	if _, err := e.client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}
