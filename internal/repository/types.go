package repository

import "time"

// ProductListFilter filters catalog product queries.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	OnlyActive   bool
	OnlyFeatured bool
	OnlyNew      bool
	OnlyOnSale   bool
	WithCategory bool
	OrderBy      string
}

// OrderListFilter filters admin order queries.
type OrderListFilter struct {
	Page          int
	PageSize      int
	CustomerID    uint
	Status        string
	PaymentStatus string
	OrderNumber   string
	Email         string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// CustomerListFilter filters admin customer queries.
type CustomerListFilter struct {
	Page        int
	PageSize    int
	Keyword     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// PaymentListFilter filters admin payment queries.
type PaymentListFilter struct {
	Page        int
	PageSize    int
	OrderID     uint
	Status      string
	Provider    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// DiscountCodeListFilter filters discount code queries.
type DiscountCodeListFilter struct {
	Page       int
	PageSize   int
	Search     string
	OnlyActive bool
}

// NewsletterListFilter filters subscriber queries.
type NewsletterListFilter struct {
	Page       int
	PageSize   int
	Search     string
	OnlyActive bool
}
