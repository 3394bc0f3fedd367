package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupSettingServiceTest(t *testing.T) (*SettingService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:setting_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	seed := []models.Setting{
		{Key: "maintenance_mode", Value: models.JSONValue(`false`), Type: "boolean", Category: "general", IsPublic: true},
		{Key: "free_shipping_threshold", Value: models.JSONValue(`75`), Type: "number", Category: "checkout", IsPublic: true},
		{Key: "site_name", Value: models.JSONValue(`"STRAATFANAAT"`), Type: "string", Category: "general", IsPublic: true},
		{Key: "supported_languages", Value: models.JSONValue(`["NL","EN","PL"]`), Type: "array", Category: "general", IsPublic: true},
		{Key: "low_stock_alerts", Value: models.JSONValue(`true`), Type: "boolean", Category: "inventory", IsPublic: false},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed setting failed: %v", err)
		}
	}
	return NewSettingService(repository.NewSettingRepository(db)), db
}

func TestSettingServiceListPublicHidesPrivateRows(t *testing.T) {
	svc, _ := setupSettingServiceTest(t)

	rows, err := svc.ListPublic()
	if err != nil {
		t.Fatalf("list public failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("public rows want 4 got %d", len(rows))
	}
	for _, row := range rows {
		if !row.IsPublic {
			t.Fatalf("private setting leaked: %s", row.Key)
		}
	}
}

func TestSettingServiceUpdateEnforcesDeclaredType(t *testing.T) {
	svc, _ := setupSettingServiceTest(t)

	cases := []struct {
		key   string
		value string
	}{
		{"maintenance_mode", `"yes"`},
		{"free_shipping_threshold", `true`},
		{"site_name", `42`},
		{"supported_languages", `"NL"`},
	}
	for _, tc := range cases {
		if _, err := svc.Update(tc.key, json.RawMessage(tc.value)); !errors.Is(err, ErrInvalidSettingValue) {
			t.Fatalf("Update(%s, %s) want ErrInvalidSettingValue got %v", tc.key, tc.value, err)
		}
	}
}

func TestSettingServiceUpdatePersistsMatchingValue(t *testing.T) {
	svc, _ := setupSettingServiceTest(t)

	updated, err := svc.Update("free_shipping_threshold", json.RawMessage(`100`))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if string(updated.Value) != `100` {
		t.Fatalf("value want 100 got %s", string(updated.Value))
	}
	if got := svc.GetNumber("free_shipping_threshold", 0); got != 100 {
		t.Fatalf("GetNumber after update want 100 got %v", got)
	}
}

func TestSettingServiceUpdateUnknownKey(t *testing.T) {
	svc, _ := setupSettingServiceTest(t)

	if _, err := svc.Update("no_such_key", json.RawMessage(`1`)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestSettingServiceTypedGettersFallBack(t *testing.T) {
	svc, _ := setupSettingServiceTest(t)

	if got := svc.GetBool("maintenance_mode", true); got {
		t.Fatalf("GetBool want false got true")
	}
	if got := svc.GetNumber("free_shipping_threshold", 0); got != 75 {
		t.Fatalf("GetNumber want 75 got %v", got)
	}
	if got := svc.GetString("site_name", ""); got != "STRAATFANAAT" {
		t.Fatalf("GetString want STRAATFANAAT got %s", got)
	}
	langs := svc.GetStrings("supported_languages", nil)
	if len(langs) != 3 || langs[0] != "NL" {
		t.Fatalf("GetStrings unexpected result: %v", langs)
	}

	// Missing keys and type mismatches collapse to the fallback.
	if got := svc.GetBool("no_such_key", true); !got {
		t.Fatalf("GetBool fallback not used for missing key")
	}
	if got := svc.GetNumber("site_name", 7); got != 7 {
		t.Fatalf("GetNumber fallback not used on type mismatch, got %v", got)
	}
	if got := svc.GetString("maintenance_mode", "fallback"); got != "fallback" {
		t.Fatalf("GetString fallback not used on type mismatch, got %s", got)
	}
}
