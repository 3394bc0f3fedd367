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

func setupDashboardRepositoryTest(t *testing.T) (*GormDashboardRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:dashboard_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.Product{},
		&models.NewsletterSubscriber{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewDashboardRepository(db), db
}

func TestDashboardRepositoryOverviewCounters(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)

	orders := []models.Order{
		{OrderNumber: "SF1", Status: constants.OrderStatusPending, PaymentStatus: constants.PaymentStatusPending,
			GrandTotal: models.NewMoneyFromDecimal(decimal.NewFromInt(40))},
		{OrderNumber: "SF2", Status: constants.OrderStatusConfirmed, PaymentStatus: constants.PaymentStatusPaid,
			GrandTotal: models.NewMoneyFromDecimal(decimal.NewFromFloat(85.95))},
		{OrderNumber: "SF3", Status: constants.OrderStatusShipped, PaymentStatus: constants.PaymentStatusPaid,
			GrandTotal: models.NewMoneyFromDecimal(decimal.NewFromFloat(14.05))},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			t.Fatalf("seed order failed: %v", err)
		}
	}

	customers := []models.Customer{{Email: "c1@straat.nl"}, {Email: "c2@straat.nl"}}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			t.Fatalf("seed customer failed: %v", err)
		}
	}

	products := []models.Product{
		{Slug: "hoodie", NameJSON: models.JSON{"EN": "Hoodie"}, IsActive: true, StockQuantity: 50, LowStockThreshold: 5},
		{Slug: "cap", NameJSON: models.JSON{"EN": "Cap"}, IsActive: true, StockQuantity: 3, LowStockThreshold: 5},
		{Slug: "retired-tee", NameJSON: models.JSON{"EN": "Tee"}, IsActive: false, StockQuantity: 0, LowStockThreshold: 5},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed product failed: %v", err)
		}
	}

	if err := db.Create(&models.NewsletterSubscriber{Email: "sub@straat.nl", IsActive: true}).Error; err != nil {
		t.Fatalf("seed subscriber failed: %v", err)
	}

	row, err := repo.GetOverview()
	if err != nil {
		t.Fatalf("get overview failed: %v", err)
	}
	if row.TotalOrders != 3 {
		t.Fatalf("total orders want 3 got %d", row.TotalOrders)
	}
	if row.PendingOrders != 1 {
		t.Fatalf("pending orders want 1 got %d", row.PendingOrders)
	}
	if row.TotalRevenue != 100.0 {
		t.Fatalf("total revenue want 100 got %v", row.TotalRevenue)
	}
	if row.TotalCustomers != 2 {
		t.Fatalf("total customers want 2 got %d", row.TotalCustomers)
	}
	if row.TotalProducts != 3 {
		t.Fatalf("total products want 3 got %d", row.TotalProducts)
	}
	if row.ActiveProducts != 2 {
		t.Fatalf("active products want 2 got %d", row.ActiveProducts)
	}
	if row.LowStockProducts != 1 {
		t.Fatalf("low stock products want 1 got %d", row.LowStockProducts)
	}
	if row.TotalSubscribers != 1 {
		t.Fatalf("subscribers want 1 got %d", row.TotalSubscribers)
	}
}

func TestDashboardRepositoryTopProducts(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)

	products := []models.Product{
		{Slug: "slow-mover", NameJSON: models.JSON{"EN": "Slow"}, IsActive: true, SalesCount: 2},
		{Slug: "best-seller", NameJSON: models.JSON{"EN": "Best"}, IsActive: true, SalesCount: 40},
		{Slug: "mid-seller", NameJSON: models.JSON{"EN": "Mid"}, IsActive: true, SalesCount: 15},
		{Slug: "retired-hit", NameJSON: models.JSON{"EN": "Retired"}, IsActive: false, SalesCount: 99},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed product failed: %v", err)
		}
	}

	rows, err := repo.GetTopProducts(2)
	if err != nil {
		t.Fatalf("get top products failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows len want 2 got %d", len(rows))
	}
	if rows[0].Slug != "best-seller" || rows[1].Slug != "mid-seller" {
		t.Fatalf("unexpected ranking: %s, %s", rows[0].Slug, rows[1].Slug)
	}
}

func TestDashboardRepositoryOverviewEmptyDatabase(t *testing.T) {
	repo, _ := setupDashboardRepositoryTest(t)

	row, err := repo.GetOverview()
	if err != nil {
		t.Fatalf("get overview failed: %v", err)
	}
	if row.TotalOrders != 0 || row.TotalRevenue != 0 || row.TotalCustomers != 0 {
		t.Fatalf("expected zeroed overview, got %+v", row)
	}
}
