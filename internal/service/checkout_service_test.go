package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/straatfanaat/shop/internal/constants"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/queue"
	"github.com/straatfanaat/shop/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCheckoutServiceTest(t *testing.T) (*CheckoutService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:checkout_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Product{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("queue client failed: %v", err)
	}
	svc := NewCheckoutService(
		repository.NewCustomerRepository(db),
		repository.NewAddressRepository(db),
		repository.NewOrderRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewProductRepository(db),
		queueClient,
		75, 5.95, 0,
	)
	return svc, db
}

func validCheckoutInput() CheckoutInput {
	return CheckoutInput{
		Email:      "jax@example.com",
		FirstName:  "Jax",
		LastName:   "van Dijk",
		Phone:      "+31612345678",
		Language:   "nl",
		Street:     "Kanaalstraat 12",
		City:       "Amsterdam",
		PostalCode: "1055 XD",
		CardNumber: "4242 4242 4242 4242",
		CardName:   "JAX VAN DIJK",
		Expiry:     "12/28",
		CVV:        "123",
		Items: []CheckoutItem{
			{Name: "Straat Oversized Hoodie", SKU: "SF-HD-001", Size: "L", Quantity: 1, UnitPrice: 89.95},
		},
	}
}

func TestComputeTotalsShipping(t *testing.T) {
	svc, _ := setupCheckoutServiceTest(t)

	cases := []struct {
		name         string
		items        []CheckoutItem
		wantSubtotal string
		wantShipping string
		wantGrand    string
	}{
		{
			name:         "below threshold pays flat rate",
			items:        []CheckoutItem{{Name: "Tee", Quantity: 1, UnitPrice: 39.95}},
			wantSubtotal: "39.95",
			wantShipping: "5.95",
			wantGrand:    "45.90",
		},
		{
			name:         "exactly at threshold ships free",
			items:        []CheckoutItem{{Name: "Tee", Quantity: 3, UnitPrice: 25}},
			wantSubtotal: "75.00",
			wantShipping: "0.00",
			wantGrand:    "75.00",
		},
		{
			name:         "above threshold ships free",
			items:        []CheckoutItem{{Name: "Hoodie", Quantity: 1, UnitPrice: 89.95}},
			wantSubtotal: "89.95",
			wantShipping: "0.00",
			wantGrand:    "89.95",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := svc.ComputeTotals(tc.items)
			if got := totals.Subtotal.StringFixed(2); got != tc.wantSubtotal {
				t.Fatalf("subtotal want %s got %s", tc.wantSubtotal, got)
			}
			if got := totals.Shipping.StringFixed(2); got != tc.wantShipping {
				t.Fatalf("shipping want %s got %s", tc.wantShipping, got)
			}
			if got := totals.GrandTotal.StringFixed(2); got != tc.wantGrand {
				t.Fatalf("grand total want %s got %s", tc.wantGrand, got)
			}
		})
	}
}

func TestCheckoutSubmitValidation(t *testing.T) {
	svc, _ := setupCheckoutServiceTest(t)

	cases := []struct {
		name    string
		mutate  func(*CheckoutInput)
		wantErr error
	}{
		{"empty cart", func(in *CheckoutInput) { in.Items = nil }, ErrEmptyCart},
		{"zero quantity", func(in *CheckoutInput) { in.Items[0].Quantity = 0 }, ErrMissingField},
		{"item without name", func(in *CheckoutInput) { in.Items[0].Name = "" }, ErrMissingField},
		{"bad email", func(in *CheckoutInput) { in.Email = "not-an-email" }, ErrInvalidEmail},
		{"missing first name", func(in *CheckoutInput) { in.FirstName = " " }, ErrMissingField},
		{"missing street", func(in *CheckoutInput) { in.Street = "" }, ErrMissingField},
		{"short card number", func(in *CheckoutInput) { in.CardNumber = "4242" }, ErrInvalidCardNumber},
		{"overlong card number", func(in *CheckoutInput) { in.CardNumber = "4242 4242 4242 4242 9" }, ErrInvalidCardNumber},
		{"bad expiry month", func(in *CheckoutInput) { in.Expiry = "13/28" }, ErrInvalidExpiry},
		{"bad cvv", func(in *CheckoutInput) { in.CVV = "12" }, ErrInvalidCVV},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCheckoutInput()
			tc.mutate(&input)
			_, err := svc.Submit(input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCheckoutSubmitNewCustomer(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)

	result, err := svc.Submit(validCheckoutInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !result.NewCustomer {
		t.Fatalf("expected new customer")
	}
	if !strings.HasPrefix(result.OrderNumber, "SF") {
		t.Fatalf("unexpected order number: %s", result.OrderNumber)
	}
	if got := result.GrandTotal.Decimal.StringFixed(2); got != "89.95" {
		t.Fatalf("grand total want 89.95 got %s", got)
	}
	if got := result.Shipping.Decimal.StringFixed(2); got != "0.00" {
		t.Fatalf("shipping want 0.00 got %s", got)
	}

	var customer models.Customer
	if err := db.Where("email = ?", "jax@example.com").First(&customer).Error; err != nil {
		t.Fatalf("customer not created: %v", err)
	}
	if customer.TotalOrders != 1 {
		t.Fatalf("total_orders want 1 got %d", customer.TotalOrders)
	}
	if got := customer.TotalSpent.Decimal.StringFixed(2); got != "89.95" {
		t.Fatalf("total_spent want 89.95 got %s", got)
	}
	if customer.LastOrderAt == nil {
		t.Fatalf("last_order_at not set")
	}
	if customer.PreferredLanguage != constants.LanguageNL {
		t.Fatalf("preferred_language want NL got %s", customer.PreferredLanguage)
	}

	var address models.Address
	if err := db.Where("customer_id = ?", customer.ID).First(&address).Error; err != nil {
		t.Fatalf("address not created: %v", err)
	}
	if address.AddressType != "shipping" || !address.IsDefault {
		t.Fatalf("unexpected address flags: type=%s default=%v", address.AddressType, address.IsDefault)
	}
	if address.CountryCode != "NL" {
		t.Fatalf("country want NL got %s", address.CountryCode)
	}

	var order models.Order
	if err := db.Where("id = ?", result.OrderID).First(&order).Error; err != nil {
		t.Fatalf("order not created: %v", err)
	}
	if order.Status != constants.OrderStatusConfirmed {
		t.Fatalf("order status want confirmed got %s", order.Status)
	}
	if order.PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("payment status want paid got %s", order.PaymentStatus)
	}
	if order.ShippingMethod != constants.ShippingMethodFree {
		t.Fatalf("shipping method want free got %s", order.ShippingMethod)
	}
	if order.CustomerNotes != "Language: NL" {
		t.Fatalf("unexpected customer notes: %s", order.CustomerNotes)
	}
	if order.ShippingAddressID != address.ID || order.BillingAddressID != address.ID {
		t.Fatalf("order not linked to address row")
	}

	var itemCount int64
	if err := db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if itemCount != 1 {
		t.Fatalf("items want 1 got %d", itemCount)
	}

	var payment models.Payment
	if err := db.Where("order_id = ?", order.ID).First(&payment).Error; err != nil {
		t.Fatalf("payment not created: %v", err)
	}
	if payment.Provider != "stripe" {
		t.Fatalf("provider want stripe got %s", payment.Provider)
	}
	if payment.Status != constants.ChargeStatusSucceeded {
		t.Fatalf("payment status want succeeded got %s", payment.Status)
	}
	if payment.CardBrand != constants.CardBrandVisa {
		t.Fatalf("card brand want visa got %s", payment.CardBrand)
	}
	if payment.CardLast4 != "4242" {
		t.Fatalf("card last4 want 4242 got %s", payment.CardLast4)
	}
	if !strings.HasPrefix(payment.ExternalID, "pi_") {
		t.Fatalf("unexpected external id: %s", payment.ExternalID)
	}
	if payment.PaidAt == nil {
		t.Fatalf("paid_at not set")
	}
}

func TestCheckoutSubmitExistingCustomerOverwritesStats(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)

	first := validCheckoutInput()
	if _, err := svc.Submit(first); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	second := validCheckoutInput()
	second.FirstName = "Jackson"
	second.Items = []CheckoutItem{
		{Name: "Tunnel Beanie", Quantity: 1, UnitPrice: 24.95},
	}
	result, err := svc.Submit(second)
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	if result.NewCustomer {
		t.Fatalf("expected existing customer on repeat checkout")
	}

	var customerCount int64
	if err := db.Model(&models.Customer{}).Count(&customerCount).Error; err != nil {
		t.Fatalf("count customers failed: %v", err)
	}
	if customerCount != 1 {
		t.Fatalf("customers want 1 got %d", customerCount)
	}

	var customer models.Customer
	if err := db.Where("email = ?", "jax@example.com").First(&customer).Error; err != nil {
		t.Fatalf("load customer failed: %v", err)
	}
	if customer.FirstName != "Jackson" {
		t.Fatalf("contact details not refreshed, first_name=%s", customer.FirstName)
	}
	if customer.TotalOrders != 2 {
		t.Fatalf("total_orders want 2 got %d", customer.TotalOrders)
	}
	// The counter is overwritten with the latest order total, not summed.
	if got := customer.TotalSpent.Decimal.StringFixed(2); got != "30.90" {
		t.Fatalf("total_spent want 30.90 got %s", got)
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Where("customer_id = ?", customer.ID).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 2 {
		t.Fatalf("orders want 2 got %d", orderCount)
	}

	var addressCount int64
	if err := db.Model(&models.Address{}).Where("customer_id = ?", customer.ID).Count(&addressCount).Error; err != nil {
		t.Fatalf("count addresses failed: %v", err)
	}
	if addressCount != 2 {
		t.Fatalf("every checkout writes a fresh address row, want 2 got %d", addressCount)
	}
}

func TestCheckoutSubmitRefusesSameEmailInFlight(t *testing.T) {
	svc, _ := setupCheckoutServiceTest(t)

	if !svc.acquire("JAX@example.com") {
		t.Fatalf("acquire failed on idle email")
	}
	defer svc.release("JAX@example.com")

	_, err := svc.Submit(validCheckoutInput())
	if !errors.Is(err, ErrCheckoutInFlight) {
		t.Fatalf("want ErrCheckoutInFlight got %v", err)
	}
}

func TestCheckoutSubmitBumpsSalesCount(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)

	product := models.Product{
		NameJSON:      models.JSON(map[string]interface{}{"EN": "Beton Boxy Tee"}),
		Slug:          "beton-boxy-tee",
		Price:         models.NewMoneyFromFloat(39.95),
		StockQuantity: 50,
		IsActive:      true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}

	input := validCheckoutInput()
	input.Items = []CheckoutItem{
		{ProductID: &product.ID, Name: "Beton Boxy Tee", Quantity: 3, UnitPrice: 39.95},
	}
	if _, err := svc.Submit(input); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if got.SalesCount != 3 {
		t.Fatalf("sales_count want 3 got %d", got.SalesCount)
	}
	if got.StockQuantity != 47 {
		t.Fatalf("stock_quantity want 47 got %d", got.StockQuantity)
	}
}
