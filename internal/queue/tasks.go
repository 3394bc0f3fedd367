package queue

import (
	"encoding/json"

	"github.com/straatfanaat/shop/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmationEmail sends the post-checkout confirmation.
	TaskOrderConfirmationEmail = constants.TaskOrderConfirmationEmail
	// TaskNewsletterWelcome sends the signup welcome mail.
	TaskNewsletterWelcome = constants.TaskNewsletterWelcome
)

// OrderConfirmationEmailPayload identifies the order to confirm.
type OrderConfirmationEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// NewsletterWelcomePayload identifies the new subscriber.
type NewsletterWelcomePayload struct {
	Email    string `json:"email"`
	Language string `json:"language"`
}

// NewOrderConfirmationEmailTask creates the confirmation email task.
func NewOrderConfirmationEmailTask(payload OrderConfirmationEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmationEmail, body), nil
}

// NewNewsletterWelcomeTask creates the welcome email task.
func NewNewsletterWelcomeTask(payload NewsletterWelcomePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskNewsletterWelcome, body), nil
}
