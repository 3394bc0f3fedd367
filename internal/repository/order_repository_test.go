package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/straatfanaat/shop/internal/constants"
	"github.com/straatfanaat/shop/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func makeTestOrder(number, status, paymentStatus string, total int64) models.Order {
	return models.Order{
		OrderNumber:       number,
		CustomerEmail:     "order_repo@example.com",
		CustomerFirstName: "Jax",
		CustomerLastName:  "van Dijk",
		Status:            status,
		PaymentStatus:     paymentStatus,
		FulfillmentStatus: constants.FulfillmentUnfulfilled,
		Currency:          constants.SiteCurrency,
		Subtotal:          models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
		GrandTotal:        models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
	}
}

func TestOrderRepositoryCreateAndGetByOrderNumber(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	order := makeTestOrder("SF1700000000001", constants.OrderStatusConfirmed, constants.PaymentStatusPaid, 85)
	if err := repo.Create(&order); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.ID == 0 {
		t.Fatalf("order id not assigned")
	}

	items := []models.OrderItem{
		{OrderID: order.ID, ProductName: "OG Hoodie Black", Size: "L", Quantity: 1,
			UnitPrice:  models.NewMoneyFromDecimal(decimal.NewFromInt(85)),
			TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(85))},
	}
	if err := repo.CreateItems(items); err != nil {
		t.Fatalf("create items failed: %v", err)
	}

	got, err := repo.GetByOrderNumber("SF1700000000001")
	if err != nil {
		t.Fatalf("get by order number failed: %v", err)
	}
	if got == nil {
		t.Fatalf("order not found")
	}
	if len(got.Items) != 1 {
		t.Fatalf("items len want 1 got %d", len(got.Items))
	}
	if got.Items[0].ProductName != "OG Hoodie Black" {
		t.Fatalf("unexpected item name: %s", got.Items[0].ProductName)
	}
}

func TestOrderRepositoryGetByIDNotFoundReturnsNil(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	got, err := repo.GetByID(9999)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got != nil {
		t.Fatalf("want nil for missing order, got %+v", got)
	}
}

func TestOrderRepositoryListFiltersByStatus(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	orders := []models.Order{
		makeTestOrder("SF1700000000010", constants.OrderStatusPending, constants.PaymentStatusPending, 40),
		makeTestOrder("SF1700000000011", constants.OrderStatusConfirmed, constants.PaymentStatusPaid, 90),
		makeTestOrder("SF1700000000012", constants.OrderStatusConfirmed, constants.PaymentStatusPaid, 120),
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			t.Fatalf("seed order failed: %v", err)
		}
	}

	rows, total, err := repo.List(OrderListFilter{
		Page:     1,
		PageSize: 10,
		Status:   constants.OrderStatusConfirmed,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("total want 2 got %d", total)
	}
	for _, row := range rows {
		if row.Status != constants.OrderStatusConfirmed {
			t.Fatalf("unexpected status in result: %s", row.Status)
		}
	}
}

func TestOrderRepositoryListRecentRespectsLimit(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 8; i++ {
		order := makeTestOrder(fmt.Sprintf("SF17000000001%02d", i), constants.OrderStatusConfirmed, constants.PaymentStatusPaid, 50)
		order.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := db.Create(&order).Error; err != nil {
			t.Fatalf("seed order failed: %v", err)
		}
	}

	rows, err := repo.ListRecent(5)
	if err != nil {
		t.Fatalf("list recent failed: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("rows len want 5 got %d", len(rows))
	}
	if rows[0].OrderNumber != "SF1700000000107" {
		t.Fatalf("expected newest order first, got %s", rows[0].OrderNumber)
	}
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	order := makeTestOrder("SF1700000000200", constants.OrderStatusConfirmed, constants.PaymentStatusPaid, 60)
	if err := repo.Create(&order); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	now := time.Now()
	if err := repo.Update(order.ID, map[string]interface{}{
		"status":     constants.OrderStatusShipped,
		"shipped_at": &now,
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got.Status != constants.OrderStatusShipped {
		t.Fatalf("status want shipped got %s", got.Status)
	}
	if got.ShippedAt == nil {
		t.Fatalf("shipped_at not set")
	}
}
