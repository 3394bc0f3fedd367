package service

import (
	"github.com/straatfanaat/shop/internal/constants"
	"github.com/straatfanaat/shop/internal/logger"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/repository"

	"gorm.io/gorm"
)

// PaymentService covers the back-office payment operations.
type PaymentService struct {
	db          *gorm.DB
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

// NewPaymentService creates the payment service.
func NewPaymentService(db *gorm.DB, paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository) *PaymentService {
	return &PaymentService{db: db, paymentRepo: paymentRepo, orderRepo: orderRepo}
}

// List returns the admin payment list.
func (s *PaymentService) List(filter repository.PaymentListFilter) ([]models.Payment, int64, error) {
	if filter.PageSize <= 0 || filter.PageSize > 50 {
		filter.PageSize = 50
	}
	return s.paymentRepo.List(filter)
}

// ListByOrder returns an order's payment history.
func (s *PaymentService) ListByOrder(orderID uint) ([]models.Payment, error) {
	return s.paymentRepo.ListByOrder(orderID)
}

// Refund marks a succeeded charge refunded and flips the order's
// payment status in the same transaction.
func (s *PaymentService) Refund(paymentID uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrNotFound
	}
	if payment.Status != constants.ChargeStatusSucceeded {
		return nil, ErrPaymentNotRefundable
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.WithTx(tx).Update(paymentID, map[string]interface{}{
			"status": constants.ChargeStatusRefunded,
		}); err != nil {
			return err
		}
		return s.orderRepo.WithTx(tx).Update(payment.OrderID, map[string]interface{}{
			"payment_status": constants.PaymentStatusRefunded,
			"status":         constants.OrderStatusRefunded,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("payment_refunded",
		"payment_id", paymentID,
		"order_id", payment.OrderID,
		"amount", payment.Amount.String(),
	)
	return s.paymentRepo.GetByID(paymentID)
}

// MarkFailed records a gateway failure against a pending charge.
func (s *PaymentService) MarkFailed(paymentID uint) error {
	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrNotFound
	}
	if payment.Status != constants.ChargeStatusPending && payment.Status != constants.ChargeStatusProcessing {
		return ErrInvalidTransition
	}
	return s.paymentRepo.Update(paymentID, map[string]interface{}{
		"status": constants.ChargeStatusFailed,
	})
}
