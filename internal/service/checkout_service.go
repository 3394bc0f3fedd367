package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/straatfanaat/shop/internal/constants"
	"github.com/straatfanaat/shop/internal/logger"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/queue"
	"github.com/straatfanaat/shop/internal/repository"

	"github.com/shopspring/decimal"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckoutService runs the storefront checkout. The submit path is a
// fixed write sequence: resolve customer, record address, order, items,
// charge, then confirm. Writes are sequential and earlier steps are not
// rolled back when a later one fails; the order stays pending and the
// failure is reported.
type CheckoutService struct {
	customerRepo repository.CustomerRepository
	addressRepo  repository.AddressRepository
	orderRepo    repository.OrderRepository
	paymentRepo  repository.PaymentRepository
	productRepo  repository.ProductRepository
	queueClient  *queue.Client

	freeShippingThreshold decimal.Decimal
	shippingCost          decimal.Decimal
	gatewayDelay          time.Duration

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewCheckoutService creates the checkout service.
func NewCheckoutService(
	customerRepo repository.CustomerRepository,
	addressRepo repository.AddressRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	productRepo repository.ProductRepository,
	queueClient *queue.Client,
	freeShippingThreshold, shippingCost float64,
	gatewayDelay time.Duration,
) *CheckoutService {
	return &CheckoutService{
		customerRepo:          customerRepo,
		addressRepo:           addressRepo,
		orderRepo:             orderRepo,
		paymentRepo:           paymentRepo,
		productRepo:           productRepo,
		queueClient:           queueClient,
		freeShippingThreshold: decimal.NewFromFloat(freeShippingThreshold),
		shippingCost:          decimal.NewFromFloat(shippingCost),
		gatewayDelay:          gatewayDelay,
		inFlight:              make(map[string]struct{}),
	}
}

// CheckoutItem is one cart line.
type CheckoutItem struct {
	ProductID *uint   `json:"product_id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// CheckoutInput is the full checkout submission.
type CheckoutInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Language  string `json:"language"`

	Street     string `json:"street"`
	Apartment  string `json:"apartment"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`

	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`

	Items []CheckoutItem `json:"items"`
}

// CheckoutResult reports the confirmed order.
type CheckoutResult struct {
	OrderID     uint         `json:"order_id"`
	OrderNumber string       `json:"order_number"`
	Subtotal    models.Money `json:"subtotal"`
	Shipping    models.Money `json:"shipping"`
	GrandTotal  models.Money `json:"grand_total"`
	NewCustomer bool         `json:"new_customer"`
}

// Totals is the priced cart.
type Totals struct {
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals prices the cart. Shipping is free at or above the
// threshold, otherwise the flat rate applies.
func (s *CheckoutService) ComputeTotals(items []CheckoutItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}
	shipping := s.shippingCost
	if subtotal.GreaterThanOrEqual(s.freeShippingThreshold) {
		shipping = decimal.Zero
	}
	return Totals{
		Subtotal:   subtotal,
		Shipping:   shipping,
		GrandTotal: subtotal.Add(shipping),
	}
}

// ValidateInfo checks the customer info step.
func (s *CheckoutService) ValidateInfo(input CheckoutInput) error {
	if strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" {
		return ErrMissingField
	}
	if !emailPattern.MatchString(input.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateShipping checks the shipping address step.
func (s *CheckoutService) ValidateShipping(input CheckoutInput) error {
	if strings.TrimSpace(input.Street) == "" ||
		strings.TrimSpace(input.City) == "" ||
		strings.TrimSpace(input.PostalCode) == "" {
		return ErrMissingField
	}
	return nil
}

// ValidatePayment checks the card step.
func (s *CheckoutService) ValidatePayment(input CheckoutInput) error {
	if strings.TrimSpace(input.CardNumber) == "" ||
		strings.TrimSpace(input.CardName) == "" ||
		strings.TrimSpace(input.Expiry) == "" ||
		strings.TrimSpace(input.CVV) == "" {
		return ErrMissingField
	}
	if err := validateCardNumber(input.CardNumber); err != nil {
		return err
	}
	if err := validateExpiry(input.Expiry); err != nil {
		return err
	}
	return validateCVV(input.CVV)
}

func (s *CheckoutService) validate(input CheckoutInput) error {
	if len(input.Items) == 0 {
		return ErrEmptyCart
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 || strings.TrimSpace(item.Name) == "" {
			return ErrMissingField
		}
	}
	if err := s.ValidateInfo(input); err != nil {
		return err
	}
	if err := s.ValidateShipping(input); err != nil {
		return err
	}
	return s.ValidatePayment(input)
}

// acquire marks an email as mid-checkout. A second submit for the same
// email while the first is running is refused.
func (s *CheckoutService) acquire(email string) bool {
	key := strings.ToLower(strings.TrimSpace(email))
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *CheckoutService) release(email string) {
	key := strings.ToLower(strings.TrimSpace(email))
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

// Submit runs the checkout write sequence.
func (s *CheckoutService) Submit(input CheckoutInput) (*CheckoutResult, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	if !s.acquire(input.Email) {
		return nil, ErrCheckoutInFlight
	}
	defer s.release(input.Email)

	language := normalizeLanguage(input.Language)
	country := strings.TrimSpace(input.Country)
	if country == "" {
		country = "NL"
	}
	totals := s.ComputeTotals(input.Items)

	// 1. Resolve the customer. Existing customers get their contact
	// details refreshed from the submitted form.
	existing, err := s.customerRepo.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	var customerID uint
	if existing != nil {
		customerID = existing.ID
		if err := s.customerRepo.Update(customerID, map[string]interface{}{
			"first_name":         input.FirstName,
			"last_name":          input.LastName,
			"phone":              input.Phone,
			"preferred_language": language,
		}); err != nil {
			return nil, err
		}
	} else {
		customer := models.Customer{
			Email:             strings.TrimSpace(input.Email),
			FirstName:         input.FirstName,
			LastName:          input.LastName,
			Phone:             input.Phone,
			PreferredLanguage: language,
		}
		if err := s.customerRepo.Create(&customer); err != nil {
			return nil, err
		}
		customerID = customer.ID
	}

	// 2. Record the shipping address. Every checkout writes a fresh row.
	address := models.Address{
		CustomerID:   customerID,
		AddressType:  "shipping",
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		AddressLine1: input.Street,
		AddressLine2: input.Apartment,
		City:         input.City,
		PostalCode:   input.PostalCode,
		CountryCode:  country,
		IsDefault:    true,
	}
	if err := s.addressRepo.Create(&address); err != nil {
		return nil, err
	}

	// 3. Create the order in pending state.
	order := models.Order{
		OrderNumber:       generateOrderNumber(),
		CustomerID:        customerID,
		CustomerEmail:     strings.TrimSpace(input.Email),
		CustomerFirstName: input.FirstName,
		CustomerLastName:  input.LastName,
		CustomerPhone:     input.Phone,
		ShippingAddressID: address.ID,
		BillingAddressID:  address.ID,
		Status:            constants.OrderStatusPending,
		PaymentStatus:     constants.PaymentStatusPending,
		FulfillmentStatus: constants.FulfillmentUnfulfilled,
		Subtotal:          models.NewMoneyFromDecimal(totals.Subtotal),
		ShippingTotal:     models.NewMoneyFromDecimal(totals.Shipping),
		TaxTotal:          models.NewMoneyFromDecimal(decimal.Zero),
		DiscountTotal:     models.NewMoneyFromDecimal(decimal.Zero),
		GrandTotal:        models.NewMoneyFromDecimal(totals.GrandTotal),
		Currency:          constants.SiteCurrency,
		ShippingMethod:    shippingMethod(totals.Shipping),
		CustomerNotes:     "Language: " + language,
	}
	if err := s.orderRepo.Create(&order); err != nil {
		return nil, err
	}

	// 4. Write the order items.
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		unit := decimal.NewFromFloat(item.UnitPrice)
		items = append(items, models.OrderItem{
			OrderID:      order.ID,
			ProductID:    item.ProductID,
			ProductName:  item.Name,
			ProductSKU:   item.SKU,
			ProductImage: item.Image,
			Size:         item.Size,
			Color:        item.Color,
			Quantity:     item.Quantity,
			UnitPrice:    models.NewMoneyFromDecimal(unit),
			TotalPrice:   models.NewMoneyFromDecimal(unit.Mul(decimal.NewFromInt(int64(item.Quantity)))),
		})
	}
	if err := s.orderRepo.CreateItems(items); err != nil {
		return nil, err
	}

	// 5. Charge the simulated gateway. It waits the configured delay
	// and always succeeds.
	time.Sleep(s.gatewayDelay)

	// 6. Record the payment.
	cardDigits := NormalizeCardNumber(input.CardNumber)
	now := time.Now()
	payment := models.Payment{
		OrderID:       order.ID,
		Provider:      "stripe",
		ExternalID:    generateExternalID(),
		Amount:        models.NewMoneyFromDecimal(totals.GrandTotal),
		Currency:      constants.SiteCurrency,
		Status:        constants.ChargeStatusSucceeded,
		PaymentMethod: "card",
		CardBrand:     DetectCardBrand(cardDigits),
		CardLast4:     cardDigits[len(cardDigits)-4:],
		PaidAt:        &now,
		Metadata: models.JSON{
			"customer_email": input.Email,
			"order_number":   order.OrderNumber,
		},
	}
	if err := s.paymentRepo.Create(&payment); err != nil {
		return nil, err
	}

	// 7. Confirm the order.
	if err := s.orderRepo.Update(order.ID, map[string]interface{}{
		"status":         constants.OrderStatusConfirmed,
		"payment_status": constants.PaymentStatusPaid,
		"paid_at":        &now,
	}); err != nil {
		return nil, err
	}

	// 8. Update customer stats. The counters are overwritten, not
	// accumulated, matching the storefront this replaces.
	totalOrders := 1
	if existing != nil {
		totalOrders = 2
	}
	if err := s.customerRepo.Update(customerID, map[string]interface{}{
		"total_orders":  totalOrders,
		"total_spent":   models.NewMoneyFromDecimal(totals.GrandTotal),
		"last_order_at": &now,
	}); err != nil {
		return nil, err
	}

	// Bump product counters for catalog-linked lines. Failures here do
	// not fail the checkout.
	for _, item := range input.Items {
		if item.ProductID == nil {
			continue
		}
		if err := s.productRepo.IncrementSalesCount(*item.ProductID, item.Quantity); err != nil {
			logger.Warnw("checkout_sales_count_update_failed",
				"product_id", *item.ProductID,
				"error", err,
			)
		}
	}

	if err := s.queueClient.EnqueueOrderConfirmationEmail(queue.OrderConfirmationEmailPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("checkout_confirmation_email_enqueue_failed", "order_id", order.ID, "error", err)
	}

	logger.Infow("checkout_completed",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"customer_id", customerID,
		"grand_total", totals.GrandTotal.StringFixed(2),
		"new_customer", existing == nil,
	)

	return &CheckoutResult{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Subtotal:    models.NewMoneyFromDecimal(totals.Subtotal),
		Shipping:    models.NewMoneyFromDecimal(totals.Shipping),
		GrandTotal:  models.NewMoneyFromDecimal(totals.GrandTotal),
		NewCustomer: existing == nil,
	}, nil
}

func shippingMethod(shipping decimal.Decimal) string {
	if shipping.IsZero() {
		return constants.ShippingMethodFree
	}
	return constants.ShippingMethodStandard
}

func normalizeLanguage(lang string) string {
	switch strings.ToUpper(strings.TrimSpace(lang)) {
	case constants.LanguageEN:
		return constants.LanguageEN
	case constants.LanguagePL:
		return constants.LanguagePL
	default:
		return constants.LanguageNL
	}
}

// generateOrderNumber builds a public order number: SF prefix, unix
// milliseconds, and a 3-digit random suffix.
func generateOrderNumber() string {
	suffix, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		suffix = big.NewInt(0)
	}
	return fmt.Sprintf("SF%d%03d", time.Now().UnixMilli(), suffix.Int64())
}

// generateExternalID mimics a gateway payment-intent id.
func generateExternalID() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 9)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			idx = big.NewInt(0)
		}
		b[i] = alphabet[idx.Int64()]
	}
	return fmt.Sprintf("pi_%d_%s", time.Now().UnixMilli(), string(b))
}
