package service

import (
	"strings"
	"time"

	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/repository"

	"github.com/shopspring/decimal"
)

// Discount types.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// DiscountService validates storefront codes and serves the admin CRUD.
type DiscountService struct {
	repo repository.DiscountCodeRepository
}

// NewDiscountService creates the discount service.
func NewDiscountService(repo repository.DiscountCodeRepository) *DiscountService {
	return &DiscountService{repo: repo}
}

// DiscountValidation is the result of checking a code against a cart.
type DiscountValidation struct {
	Code           string       `json:"code"`
	DiscountType   string       `json:"discount_type"`
	DiscountAmount models.Money `json:"discount_amount"`
}

// Validate checks a code against the cart subtotal and computes the
// discount it would grant. A percentage code takes its share of the
// subtotal; a fixed code subtracts its value, capped at the subtotal.
func (s *DiscountService) Validate(code string, subtotal decimal.Decimal) (*DiscountValidation, error) {
	row, err := s.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if row == nil || !row.IsActive {
		return nil, ErrDiscountCodeInvalid
	}
	if row.ExpiresAt != nil && row.ExpiresAt.Before(time.Now()) {
		return nil, ErrDiscountCodeExpired
	}
	if row.UsageLimit > 0 && row.UsageCount >= row.UsageLimit {
		return nil, ErrDiscountUsedUp
	}
	if subtotal.LessThan(row.MinOrderAmount.Decimal) {
		return nil, ErrDiscountMinNotMet
	}

	var amount decimal.Decimal
	switch row.DiscountType {
	case DiscountTypePercentage:
		amount = subtotal.Mul(row.DiscountValue.Decimal).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountTypeFixed:
		amount = row.DiscountValue.Decimal
		if amount.GreaterThan(subtotal) {
			amount = subtotal
		}
	default:
		return nil, ErrDiscountCodeInvalid
	}

	return &DiscountValidation{
		Code:           row.Code,
		DiscountType:   row.DiscountType,
		DiscountAmount: models.NewMoneyFromDecimal(amount),
	}, nil
}

// List returns the admin code list.
func (s *DiscountService) List(filter repository.DiscountCodeListFilter) ([]models.DiscountCode, int64, error) {
	if filter.PageSize <= 0 || filter.PageSize > 50 {
		filter.PageSize = 50
	}
	return s.repo.List(filter)
}

// Create inserts a new code, normalized to upper case.
func (s *DiscountService) Create(code *models.DiscountCode) error {
	code.Code = strings.ToUpper(strings.TrimSpace(code.Code))
	if code.Code == "" {
		return ErrMissingField
	}
	if code.DiscountType != DiscountTypePercentage && code.DiscountType != DiscountTypeFixed {
		return ErrDiscountCodeInvalid
	}
	existing, err := s.repo.GetByCode(code.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrSlugTaken
	}
	return s.repo.Create(code)
}

// Update applies a partial update.
func (s *DiscountService) Update(id uint, updates map[string]interface{}) (*models.DiscountCode, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// Delete soft-deletes a code.
func (s *DiscountService) Delete(id uint) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// MarkUsed bumps the usage counter after an order applies the code.
func (s *DiscountService) MarkUsed(id uint) error {
	return s.repo.IncrementUsage(id)
}
