package service

import (
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/repository"
)

// CustomerService covers the back-office customer views.
type CustomerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	addressRepo  repository.AddressRepository
}

// NewCustomerService creates the customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, orderRepo repository.OrderRepository, addressRepo repository.AddressRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		addressRepo:  addressRepo,
	}
}

// List returns the admin customer list.
func (s *CustomerService) List(filter repository.CustomerListFilter) ([]models.Customer, int64, error) {
	if filter.PageSize <= 0 || filter.PageSize > 50 {
		filter.PageSize = 50
	}
	return s.customerRepo.List(filter)
}

// CustomerDetail is a customer with their full order history.
type CustomerDetail struct {
	Customer  models.Customer  `json:"customer"`
	Orders    []models.Order   `json:"orders"`
	Addresses []models.Address `json:"addresses"`
}

// Get loads one customer with addresses and order history.
func (s *CustomerService) Get(id uint) (*CustomerDetail, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}
	orders, err := s.orderRepo.ListByCustomer(id)
	if err != nil {
		return nil, err
	}
	addresses, err := s.addressRepo.ListByCustomer(id)
	if err != nil {
		return nil, err
	}
	return &CustomerDetail{
		Customer:  *customer,
		Orders:    orders,
		Addresses: addresses,
	}, nil
}

// SetMarketingOptIn flips the marketing consent flag.
func (s *CustomerService) SetMarketingOptIn(id uint, accepts bool) error {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrNotFound
	}
	return s.customerRepo.Update(id, map[string]interface{}{"accepts_marketing": accepts})
}
