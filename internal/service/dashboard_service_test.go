package service

import (
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

func setupDashboardServiceTest(t *testing.T) (*DashboardService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:dashboard_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Product{},
		&models.NewsletterSubscriber{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewDashboardService(
		repository.NewDashboardRepository(db),
		repository.NewOrderRepository(db),
		10,
	)
	return svc, db
}

func seedDashboardOrder(t *testing.T, db *gorm.DB, status, paymentStatus string, total int64) {
	t.Helper()
	order := models.Order{
		OrderNumber:       fmt.Sprintf("SF%d", time.Now().UnixNano()),
		CustomerEmail:     "dash@example.com",
		Status:            status,
		PaymentStatus:     paymentStatus,
		FulfillmentStatus: constants.FulfillmentUnfulfilled,
		Currency:          constants.SiteCurrency,
		Subtotal:          models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
		GrandTotal:        models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
}

func TestDashboardGetStats(t *testing.T) {
	svc, db := setupDashboardServiceTest(t)

	seedDashboardOrder(t, db, constants.OrderStatusPending, constants.PaymentStatusPending, 40)
	seedDashboardOrder(t, db, constants.OrderStatusConfirmed, constants.PaymentStatusPaid, 90)
	seedDashboardOrder(t, db, constants.OrderStatusShipped, constants.PaymentStatusPaid, 60)

	if err := db.Create(&models.Customer{Email: "dash@example.com"}).Error; err != nil {
		t.Fatalf("seed customer failed: %v", err)
	}
	products := []models.Product{
		{Slug: "dash-hoodie", Price: models.NewMoneyFromFloat(89.95), StockQuantity: 40, LowStockThreshold: 5, IsActive: true, SalesCount: 12},
		{Slug: "dash-tee", Price: models.NewMoneyFromFloat(39.95), StockQuantity: 2, LowStockThreshold: 5, IsActive: true, SalesCount: 30},
		{Slug: "dash-archive", Price: models.NewMoneyFromFloat(19.95), StockQuantity: 0, LowStockThreshold: 5, IsActive: false, SalesCount: 99},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed product failed: %v", err)
		}
	}
	subscribers := []models.NewsletterSubscriber{
		{Email: "sub1@example.com", IsActive: true},
		{Email: "sub2@example.com", IsActive: false},
	}
	for i := range subscribers {
		if err := db.Create(&subscribers[i]).Error; err != nil {
			t.Fatalf("seed subscriber failed: %v", err)
		}
	}

	stats := svc.GetStats()
	if stats.TotalOrders != 3 {
		t.Fatalf("total_orders want 3 got %d", stats.TotalOrders)
	}
	if stats.PendingOrders != 1 {
		t.Fatalf("pending_orders want 1 got %d", stats.PendingOrders)
	}
	if stats.TotalRevenue != 150 {
		t.Fatalf("total_revenue want 150 got %v", stats.TotalRevenue)
	}
	if stats.TotalCustomers != 1 {
		t.Fatalf("total_customers want 1 got %d", stats.TotalCustomers)
	}
	if stats.TotalProducts != 3 {
		t.Fatalf("total_products want 3 got %d", stats.TotalProducts)
	}
	if stats.ActiveProducts != 2 {
		t.Fatalf("active_products want 2 got %d", stats.ActiveProducts)
	}
	if stats.LowStockProducts != 1 {
		t.Fatalf("low_stock_products want 1 got %d", stats.LowStockProducts)
	}
	if stats.TotalSubscribers != 1 {
		t.Fatalf("total_subscribers want 1 got %d", stats.TotalSubscribers)
	}
	if len(stats.RecentOrders) != 3 {
		t.Fatalf("recent_orders want 3 got %d", len(stats.RecentOrders))
	}
	if len(stats.TopProducts) != 2 {
		t.Fatalf("top_products want 2 active products got %d", len(stats.TopProducts))
	}
	if stats.TopProducts[0].Slug != "dash-tee" {
		t.Fatalf("top product want dash-tee got %s", stats.TopProducts[0].Slug)
	}
	if len(stats.RevenueByDay) != 1 {
		t.Fatalf("revenue_by_day want 1 day got %d", len(stats.RevenueByDay))
	}
	if stats.RevenueByDay[0].Revenue != 150 {
		t.Fatalf("day revenue want 150 got %v", stats.RevenueByDay[0].Revenue)
	}
}

func TestDashboardGetStatsEmptyDatabase(t *testing.T) {
	svc, _ := setupDashboardServiceTest(t)

	stats := svc.GetStats()
	if stats.TotalOrders != 0 || stats.TotalRevenue != 0 {
		t.Fatalf("expected zeroed counters, got %+v", stats)
	}
	if stats.RecentOrders == nil || stats.TopProducts == nil || stats.RevenueByDay == nil {
		t.Fatalf("slices must be empty, not nil")
	}
	if len(stats.RecentOrders) != 0 || len(stats.TopProducts) != 0 || len(stats.RevenueByDay) != 0 {
		t.Fatalf("expected empty slices, got %+v", stats)
	}
}
