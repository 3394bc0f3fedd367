package constants

// Order status values. Status moves pending -> confirmed -> processing ->
// shipped -> delivered, or into one of the terminal failure states.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
	OrderStatusFailed     = "failed"
)

// Payment status values on the order header.
const (
	PaymentStatusPending       = "pending"
	PaymentStatusPaid          = "paid"
	PaymentStatusPartiallyPaid = "partially_paid"
	PaymentStatusRefunded      = "refunded"
	PaymentStatusFailed        = "failed"
	PaymentStatusCancelled     = "cancelled"
)

// Fulfillment status values. Shipment progress is tracked independently of
// payment and overall order status.
const (
	FulfillmentUnfulfilled        = "unfulfilled"
	FulfillmentPartiallyFulfilled = "partially_fulfilled"
	FulfillmentFulfilled          = "fulfilled"
	FulfillmentReturned           = "returned"
)

// Payment record status values (one row per attempted charge).
const (
	ChargeStatusPending    = "pending"
	ChargeStatusProcessing = "processing"
	ChargeStatusSucceeded  = "succeeded"
	ChargeStatusFailed     = "failed"
	ChargeStatusCancelled  = "cancelled"
	ChargeStatusRefunded   = "refunded"
)

// Card brands inferred from the leading digits of the card number.
const (
	CardBrandVisa       = "visa"
	CardBrandMastercard = "mastercard"
	CardBrandAmex       = "amex"
	CardBrandUnknown    = "unknown"
)

// Supported storefront languages.
const (
	LanguageNL = "NL"
	LanguageEN = "EN"
	LanguagePL = "PL"
)

// Shipping methods recorded on the order.
const (
	ShippingMethodStandard = "standard"
	ShippingMethodFree     = "free_shipping"
)

// Setting value kinds. The settings table stores a single polymorphic value
// column; the declared kind drives decoding at the service boundary.
const (
	SettingTypeBoolean = "boolean"
	SettingTypeNumber  = "number"
	SettingTypeString  = "string"
	SettingTypeArray   = "array"
)

// SiteCurrency is the only currency the storefront charges in.
const SiteCurrency = "EUR"

// Queue names and task types.
const (
	QueueDefault = "default"

	TaskOrderConfirmationEmail = "email:order_confirmation"
	TaskNewsletterWelcome      = "email:newsletter_welcome"
)
