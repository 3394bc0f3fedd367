package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/straatfanaat/shop/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCustomerRepositoryTest(t *testing.T) (*GormCustomerRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:customer_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Address{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCustomerRepository(db), db
}

func TestCustomerRepositoryGetByEmailIsCaseInsensitive(t *testing.T) {
	repo, _ := setupCustomerRepositoryTest(t)

	customer := models.Customer{
		Email:     "Fan@Straat.nl",
		FirstName: "Nova",
		LastName:  "Jansen",
	}
	if err := repo.Create(&customer); err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	got, err := repo.GetByEmail("fan@straat.nl")
	if err != nil {
		t.Fatalf("get by email failed: %v", err)
	}
	if got == nil {
		t.Fatalf("customer not found")
	}
	if got.ID != customer.ID {
		t.Fatalf("id want %d got %d", customer.ID, got.ID)
	}
}

func TestCustomerRepositoryGetByEmailMissingReturnsNil(t *testing.T) {
	repo, _ := setupCustomerRepositoryTest(t)

	got, err := repo.GetByEmail("ghost@straat.nl")
	if err != nil {
		t.Fatalf("get by email failed: %v", err)
	}
	if got != nil {
		t.Fatalf("want nil for missing customer, got %+v", got)
	}
}

func TestCustomerRepositoryUpdateStats(t *testing.T) {
	repo, _ := setupCustomerRepositoryTest(t)

	customer := models.Customer{Email: "stats@straat.nl"}
	if err := repo.Create(&customer); err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	lastOrder := time.Now()
	if err := repo.Update(customer.ID, map[string]interface{}{
		"total_orders":  2,
		"total_spent":   models.NewMoneyFromDecimal(decimal.NewFromFloat(80.95)),
		"last_order_at": &lastOrder,
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := repo.GetByID(customer.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got.TotalOrders != 2 {
		t.Fatalf("total_orders want 2 got %d", got.TotalOrders)
	}
	if got.TotalSpent.String() != "80.95" {
		t.Fatalf("total_spent want 80.95 got %s", got.TotalSpent.String())
	}
	if got.LastOrderAt == nil {
		t.Fatalf("last_order_at not set")
	}
}

func TestCustomerRepositoryListKeywordSearch(t *testing.T) {
	repo, _ := setupCustomerRepositoryTest(t)

	seed := []models.Customer{
		{Email: "a@straat.nl", FirstName: "Milan", LastName: "de Boer"},
		{Email: "b@straat.nl", FirstName: "Sofia", LastName: "Kowalska"},
		{Email: "milan@other.nl", FirstName: "Other", LastName: "Person"},
	}
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			t.Fatalf("seed customer failed: %v", err)
		}
	}

	rows, total, err := repo.List(CustomerListFilter{Page: 1, PageSize: 10, Keyword: "milan"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("total want 2 got %d", total)
	}
	if len(rows) != 2 {
		t.Fatalf("rows len want 2 got %d", len(rows))
	}
}
