package repository

import (
	"errors"

	"github.com/straatfanaat/shop/internal/models"

	"gorm.io/gorm"
)

// AddressRepository is the address data access interface.
type AddressRepository interface {
	Create(address *models.Address) error
	GetByID(id uint) (*models.Address, error)
	ListByCustomer(customerID uint) ([]models.Address, error)
}

// GormAddressRepository is the GORM implementation.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates an address repository.
func NewAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Create inserts an address.
func (r *GormAddressRepository) Create(address *models.Address) error {
	return r.db.Create(address).Error
}

// GetByID loads an address.
func (r *GormAddressRepository) GetByID(id uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// ListByCustomer returns a customer's addresses, newest first.
func (r *GormAddressRepository) ListByCustomer(customerID uint) ([]models.Address, error) {
	var addresses []models.Address
	if customerID == 0 {
		return addresses, nil
	}
	if err := r.db.Where("customer_id = ?", customerID).
		Order("id desc").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}
