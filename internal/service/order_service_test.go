package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/straatfanaat/shop/internal/constants"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewOrderService(repository.NewOrderRepository(db), 50), db
}

func seedOrder(t *testing.T, db *gorm.DB, status, paymentStatus string) models.Order {
	t.Helper()
	order := models.Order{
		OrderNumber:       fmt.Sprintf("SF%d", time.Now().UnixNano()),
		CustomerEmail:     "order_svc@example.com",
		CustomerFirstName: "Nadia",
		CustomerLastName:  "Kowalska",
		Status:            status,
		PaymentStatus:     paymentStatus,
		FulfillmentStatus: constants.FulfillmentUnfulfilled,
		Currency:          constants.SiteCurrency,
		Subtotal:          models.NewMoneyFromDecimal(decimal.NewFromInt(60)),
		GrandTotal:        models.NewMoneyFromDecimal(decimal.NewFromInt(60)),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	return order
}

func TestOrderUpdateStatusPendingToConfirmed(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.OrderStatusPending, constants.PaymentStatusPending)

	updated, err := svc.UpdateStatus(order.ID, constants.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status want confirmed got %s", updated.Status)
	}
}

func TestOrderUpdateStatusSkipRejected(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.OrderStatusPending, constants.PaymentStatusPending)

	if _, err := svc.UpdateStatus(order.ID, constants.OrderStatusShipped); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition got %v", err)
	}
}

func TestOrderUpdateStatusUnknownValue(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.OrderStatusPending, constants.PaymentStatusPending)

	if _, err := svc.UpdateStatus(order.ID, "teleported"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("want ErrInvalidStatus got %v", err)
	}
}

func TestOrderUpdateStatusShippedSetsFulfillment(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.OrderStatusProcessing, constants.PaymentStatusPaid)

	updated, err := svc.UpdateStatus(order.ID, constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.ShippedAt == nil {
		t.Fatalf("shipped_at not set")
	}
	if updated.FulfillmentStatus != constants.FulfillmentFulfilled {
		t.Fatalf("fulfillment want fulfilled got %s", updated.FulfillmentStatus)
	}
}

func TestOrderUpdateStatusCancelPendingPayment(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.OrderStatusPending, constants.PaymentStatusPending)

	updated, err := svc.UpdateStatus(order.ID, constants.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.PaymentStatus != constants.PaymentStatusCancelled {
		t.Fatalf("payment status want cancelled got %s", updated.PaymentStatus)
	}
}

func TestOrderUpdateStatusTerminalHasNoExit(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.OrderStatusCancelled, constants.PaymentStatusCancelled)

	if _, err := svc.UpdateStatus(order.ID, constants.OrderStatusConfirmed); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition got %v", err)
	}
}

func TestOrderUpdateFulfillmentDirectState(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.OrderStatusDelivered, constants.PaymentStatusPaid)

	updated, err := svc.UpdateFulfillment(order.ID, constants.FulfillmentReturned, "")
	if err != nil {
		t.Fatalf("update fulfillment failed: %v", err)
	}
	if updated.FulfillmentStatus != constants.FulfillmentReturned {
		t.Fatalf("fulfillment want returned got %s", updated.FulfillmentStatus)
	}
	if updated.ShippedAt != nil {
		t.Fatalf("shipped_at must stay unset without a tracking number")
	}
}

func TestOrderUpdateFulfillmentWithTrackingStampsShipped(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.OrderStatusProcessing, constants.PaymentStatusPaid)

	updated, err := svc.UpdateFulfillment(order.ID, constants.FulfillmentPartiallyFulfilled, "3SABCD987654321")
	if err != nil {
		t.Fatalf("update fulfillment failed: %v", err)
	}
	if updated.FulfillmentStatus != constants.FulfillmentPartiallyFulfilled {
		t.Fatalf("fulfillment want partially_fulfilled got %s", updated.FulfillmentStatus)
	}
	if updated.TrackingNumber != "3SABCD987654321" {
		t.Fatalf("tracking number not persisted: %s", updated.TrackingNumber)
	}
	if updated.ShippedAt == nil {
		t.Fatalf("shipped_at not stamped alongside tracking number")
	}
}

func TestOrderUpdateFulfillmentUnknownValue(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.OrderStatusConfirmed, constants.PaymentStatusPaid)

	if _, err := svc.UpdateFulfillment(order.ID, "lost-in-transit", ""); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("want ErrInvalidStatus got %v", err)
	}
}

func TestOrderSetTracking(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.OrderStatusShipped, constants.PaymentStatusPaid)

	updated, err := svc.SetTracking(order.ID, "3SABCD123456789", "https://postnl.nl/track/3SABCD123456789")
	if err != nil {
		t.Fatalf("set tracking failed: %v", err)
	}
	if updated.TrackingNumber != "3SABCD123456789" {
		t.Fatalf("tracking number not persisted: %s", updated.TrackingNumber)
	}
	if updated.TrackingURL == "" {
		t.Fatalf("tracking url not persisted")
	}
}

func TestOrderSetInternalNotesMissingOrder(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	if err := svc.SetInternalNotes(9999, "call the courier"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestOrderListCapsPageSize(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	for i := 0; i < 3; i++ {
		seedOrder(t, db, constants.OrderStatusConfirmed, constants.PaymentStatusPaid)
	}

	rows, total, err := svc.List(repository.OrderListFilter{Page: 1, PageSize: 500})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 || len(rows) != 3 {
		t.Fatalf("want 3 orders got total=%d rows=%d", total, len(rows))
	}
}
