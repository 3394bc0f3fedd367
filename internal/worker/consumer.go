package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/straatfanaat/shop/internal/logger"
	"github.com/straatfanaat/shop/internal/provider"
	"github.com/straatfanaat/shop/internal/queue"
	"github.com/straatfanaat/shop/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer handles queued email tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register wires the task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmationEmail, c.handleOrderConfirmationEmail)
	mux.HandleFunc(queue.TaskNewsletterWelcome, c.handleNewsletterWelcome)
}

func (c *Consumer) handleOrderConfirmationEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderConfirmationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_confirmation_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_confirmation_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiver := strings.TrimSpace(order.CustomerEmail)
	if receiver == "" {
		logger.Debugw("worker_order_confirmation_skip_empty_receiver", "order_id", order.ID)
		return nil
	}

	language := ""
	if customer, err := c.CustomerRepo.GetByID(order.CustomerID); err == nil && customer != nil {
		language = customer.PreferredLanguage
	}

	err = c.EmailService.SendOrderConfirmation(receiver, service.OrderConfirmationInput{
		OrderNumber: order.OrderNumber,
		FirstName:   order.CustomerFirstName,
		GrandTotal:  order.GrandTotal,
		Currency:    order.Currency,
		Language:    language,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailDisabled) || errors.Is(err, service.ErrEmailNotConfigured) {
			logger.Debugw("worker_order_confirmation_skip_email_disabled", "order_id", order.ID)
			return nil
		}
		logger.Warnw("worker_order_confirmation_send_failed", "order_id", order.ID, "error", err)
		return err
	}
	logger.Infow("worker_order_confirmation_sent", "order_id", order.ID, "order_number", order.OrderNumber)
	return nil
}

func (c *Consumer) handleNewsletterWelcome(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.NewsletterWelcomePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_newsletter_welcome_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.Email) == "" {
		return nil
	}

	err := c.EmailService.SendNewsletterWelcome(payload.Email, payload.Language)
	if err != nil {
		if errors.Is(err, service.ErrEmailDisabled) || errors.Is(err, service.ErrEmailNotConfigured) {
			logger.Debugw("worker_newsletter_welcome_skip_email_disabled", "email", payload.Email)
			return nil
		}
		logger.Warnw("worker_newsletter_welcome_send_failed", "email", payload.Email, "error", err)
		return err
	}
	logger.Infow("worker_newsletter_welcome_sent", "email", payload.Email)
	return nil
}
