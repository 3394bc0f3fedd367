package service

import (
	"strings"
	"time"

	"github.com/straatfanaat/shop/internal/constants"
	"github.com/straatfanaat/shop/internal/logger"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/repository"
)

// orderTransitions lists the allowed admin status moves. Terminal
// states have no outgoing edges.
var orderTransitions = map[string][]string{
	constants.OrderStatusPending:    {constants.OrderStatusConfirmed, constants.OrderStatusCancelled, constants.OrderStatusFailed},
	constants.OrderStatusConfirmed:  {constants.OrderStatusProcessing, constants.OrderStatusCancelled},
	constants.OrderStatusProcessing: {constants.OrderStatusShipped, constants.OrderStatusCancelled},
	constants.OrderStatusShipped:    {constants.OrderStatusDelivered},
	constants.OrderStatusDelivered:  {constants.OrderStatusRefunded},
}

// OrderService covers the back-office order operations.
type OrderService struct {
	orderRepo    repository.OrderRepository
	maxListLimit int
}

// NewOrderService creates the order service.
func NewOrderService(orderRepo repository.OrderRepository, maxListLimit int) *OrderService {
	if maxListLimit <= 0 {
		maxListLimit = 50
	}
	return &OrderService{orderRepo: orderRepo, maxListLimit: maxListLimit}
}

// List returns the admin order list, capping the page size.
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.PageSize <= 0 || filter.PageSize > s.maxListLimit {
		filter.PageSize = s.maxListLimit
	}
	return s.orderRepo.List(filter)
}

// Get loads one order with items and payments.
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// GetByNumber loads one order by its public number.
func (s *OrderService) GetByNumber(orderNumber string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// UpdateStatus moves an order along the allowed transition graph.
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	if !isKnownOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if !transitionAllowed(order.Status, status) {
		return nil, ErrInvalidTransition
	}

	updates := map[string]interface{}{"status": status}
	now := time.Now()
	switch status {
	case constants.OrderStatusShipped:
		updates["shipped_at"] = &now
		updates["fulfillment_status"] = constants.FulfillmentFulfilled
	case constants.OrderStatusRefunded:
		updates["payment_status"] = constants.PaymentStatusRefunded
	case constants.OrderStatusCancelled:
		if order.PaymentStatus == constants.PaymentStatusPending {
			updates["payment_status"] = constants.PaymentStatusCancelled
		}
	}
	if err := s.orderRepo.Update(id, updates); err != nil {
		return nil, err
	}

	logger.Infow("order_status_updated",
		"order_id", id,
		"from", order.Status,
		"to", status,
	)
	return s.orderRepo.GetByID(id)
}

// UpdateFulfillment sets the shipment progress independently of the
// order status. Supplying a tracking number also records it and stamps
// shipped_at.
func (s *OrderService) UpdateFulfillment(id uint, fulfillmentStatus, trackingNumber string) (*models.Order, error) {
	if !isKnownFulfillmentStatus(fulfillmentStatus) {
		return nil, ErrInvalidStatus
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	updates := map[string]interface{}{"fulfillment_status": fulfillmentStatus}
	if strings.TrimSpace(trackingNumber) != "" {
		now := time.Now()
		updates["tracking_number"] = trackingNumber
		updates["shipped_at"] = &now
	}
	if err := s.orderRepo.Update(id, updates); err != nil {
		return nil, err
	}

	logger.Infow("order_fulfillment_updated",
		"order_id", id,
		"from", order.FulfillmentStatus,
		"to", fulfillmentStatus,
	)
	return s.orderRepo.GetByID(id)
}

// SetTracking records carrier tracking details on a shipped order.
func (s *OrderService) SetTracking(id uint, trackingNumber, trackingURL string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if err := s.orderRepo.Update(id, map[string]interface{}{
		"tracking_number": trackingNumber,
		"tracking_url":    trackingURL,
	}); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(id)
}

// SetInternalNotes replaces the operator notes.
func (s *OrderService) SetInternalNotes(id uint, notes string) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrNotFound
	}
	return s.orderRepo.Update(id, map[string]interface{}{"internal_notes": notes})
}

func isKnownOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusPending, constants.OrderStatusConfirmed,
		constants.OrderStatusProcessing, constants.OrderStatusShipped,
		constants.OrderStatusDelivered, constants.OrderStatusCancelled,
		constants.OrderStatusRefunded, constants.OrderStatusFailed:
		return true
	}
	return false
}

func isKnownFulfillmentStatus(status string) bool {
	switch status {
	case constants.FulfillmentUnfulfilled, constants.FulfillmentPartiallyFulfilled,
		constants.FulfillmentFulfilled, constants.FulfillmentReturned:
		return true
	}
	return false
}

func transitionAllowed(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
