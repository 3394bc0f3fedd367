package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupDiscountServiceTest(t *testing.T) (*DiscountService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:discount_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.DiscountCode{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewDiscountService(repository.NewDiscountCodeRepository(db)), db
}

func seedDiscountCode(t *testing.T, db *gorm.DB, code models.DiscountCode) models.DiscountCode {
	t.Helper()
	if err := db.Create(&code).Error; err != nil {
		t.Fatalf("seed discount code failed: %v", err)
	}
	return code
}

func TestDiscountValidatePercentage(t *testing.T) {
	svc, db := setupDiscountServiceTest(t)
	seedDiscountCode(t, db, models.DiscountCode{
		Code:          "WELKOM10",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: models.NewMoneyFromFloat(10),
		IsActive:      true,
	})

	result, err := svc.Validate("WELKOM10", decimal.NewFromFloat(89.95))
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if result.DiscountType != DiscountTypePercentage {
		t.Fatalf("type want percentage got %s", result.DiscountType)
	}
	if got := result.DiscountAmount.Decimal.StringFixed(2); got != "9.00" {
		t.Fatalf("amount want 9.00 got %s", got)
	}
}

func TestDiscountValidateFixedCappedAtSubtotal(t *testing.T) {
	svc, db := setupDiscountServiceTest(t)
	seedDiscountCode(t, db, models.DiscountCode{
		Code:          "TIENTJE",
		DiscountType:  DiscountTypeFixed,
		DiscountValue: models.NewMoneyFromFloat(10),
		IsActive:      true,
	})

	result, err := svc.Validate("TIENTJE", decimal.NewFromFloat(50))
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if got := result.DiscountAmount.Decimal.StringFixed(2); got != "10.00" {
		t.Fatalf("amount want 10.00 got %s", got)
	}

	capped, err := svc.Validate("TIENTJE", decimal.NewFromFloat(6.50))
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if got := capped.DiscountAmount.Decimal.StringFixed(2); got != "6.50" {
		t.Fatalf("capped amount want 6.50 got %s", got)
	}
}

func TestDiscountValidateRejections(t *testing.T) {
	svc, db := setupDiscountServiceTest(t)

	past := time.Now().Add(-time.Hour)
	seedDiscountCode(t, db, models.DiscountCode{
		Code: "EXPIRED", DiscountType: DiscountTypePercentage,
		DiscountValue: models.NewMoneyFromFloat(10), IsActive: true, ExpiresAt: &past,
	})
	seedDiscountCode(t, db, models.DiscountCode{
		Code: "USEDUP", DiscountType: DiscountTypePercentage,
		DiscountValue: models.NewMoneyFromFloat(10), IsActive: true, UsageLimit: 5, UsageCount: 5,
	})
	seedDiscountCode(t, db, models.DiscountCode{
		Code: "BIGSPENDER", DiscountType: DiscountTypeFixed,
		DiscountValue: models.NewMoneyFromFloat(25), MinOrderAmount: models.NewMoneyFromFloat(100), IsActive: true,
	})
	seedDiscountCode(t, db, models.DiscountCode{
		Code: "PAUSED", DiscountType: DiscountTypePercentage,
		DiscountValue: models.NewMoneyFromFloat(10), IsActive: false,
	})

	subtotal := decimal.NewFromFloat(50)
	cases := []struct {
		code    string
		wantErr error
	}{
		{"NOPE", ErrDiscountCodeInvalid},
		{"PAUSED", ErrDiscountCodeInvalid},
		{"EXPIRED", ErrDiscountCodeExpired},
		{"USEDUP", ErrDiscountUsedUp},
		{"BIGSPENDER", ErrDiscountMinNotMet},
	}
	for _, tc := range cases {
		if _, err := svc.Validate(tc.code, subtotal); !errors.Is(err, tc.wantErr) {
			t.Fatalf("Validate(%s) want %v got %v", tc.code, tc.wantErr, err)
		}
	}
}

func TestDiscountCreateNormalizesAndRejectsDuplicates(t *testing.T) {
	svc, _ := setupDiscountServiceTest(t)

	code := models.DiscountCode{
		Code:          " zomer20 ",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: models.NewMoneyFromFloat(20),
		IsActive:      true,
	}
	if err := svc.Create(&code); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if code.Code != "ZOMER20" {
		t.Fatalf("code not normalized: %s", code.Code)
	}

	dup := models.DiscountCode{
		Code:          "zomer20",
		DiscountType:  DiscountTypeFixed,
		DiscountValue: models.NewMoneyFromFloat(5),
	}
	if err := svc.Create(&dup); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("want ErrSlugTaken got %v", err)
	}

	bad := models.DiscountCode{Code: "RAAR", DiscountType: "bogus"}
	if err := svc.Create(&bad); !errors.Is(err, ErrDiscountCodeInvalid) {
		t.Fatalf("want ErrDiscountCodeInvalid got %v", err)
	}
}

func TestDiscountMarkUsedBumpsCounter(t *testing.T) {
	svc, db := setupDiscountServiceTest(t)
	row := seedDiscountCode(t, db, models.DiscountCode{
		Code: "TELLER", DiscountType: DiscountTypePercentage,
		DiscountValue: models.NewMoneyFromFloat(10), IsActive: true,
	})

	if err := svc.MarkUsed(row.ID); err != nil {
		t.Fatalf("mark used failed: %v", err)
	}
	var got models.DiscountCode
	if err := db.First(&got, row.ID).Error; err != nil {
		t.Fatalf("load code failed: %v", err)
	}
	if got.UsageCount != 1 {
		t.Fatalf("usage_count want 1 got %d", got.UsageCount)
	}
}
