package repository

import (
	"fmt"

	"github.com/straatfanaat/shop/internal/constants"
	"github.com/straatfanaat/shop/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository aggregates back-office statistics. It only counts
// and sums; business rules stay in the service layer.
type DashboardRepository interface {
	GetOverview() (DashboardOverviewRow, error)
	GetRevenueByDay(days int) ([]DashboardRevenueRow, error)
	GetTopProducts(limit int) ([]models.Product, error)
}

// DashboardOverviewRow is the raw overview aggregate.
type DashboardOverviewRow struct {
	TotalOrders      int64
	PendingOrders    int64
	TotalRevenue     float64
	TotalCustomers   int64
	TotalProducts    int64
	ActiveProducts   int64
	LowStockProducts int64
	TotalSubscribers int64
}

// DashboardRevenueRow is one day of paid revenue.
type DashboardRevenueRow struct {
	Day     string
	Orders  int64
	Revenue float64
}

// GormDashboardRepository is the GORM implementation.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a dashboard repository.
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetOverview collects the headline counters.
func (r *GormDashboardRepository) GetOverview() (DashboardOverviewRow, error) {
	result := DashboardOverviewRow{}

	if err := r.db.Model(&models.Order{}).Count(&result.TotalOrders).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Order{}).
		Where("status = ?", constants.OrderStatusPending).
		Count(&result.PendingOrders).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Order{}).
		Where("payment_status = ?", constants.PaymentStatusPaid).
		Select("COALESCE(SUM(grand_total), 0)").
		Scan(&result.TotalRevenue).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Customer{}).Count(&result.TotalCustomers).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Product{}).Count(&result.TotalProducts).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Product{}).
		Where("is_active = ?", true).
		Count(&result.ActiveProducts).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Product{}).
		Where("is_active = ? AND stock_quantity <= low_stock_threshold", true).
		Count(&result.LowStockProducts).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.NewsletterSubscriber{}).
		Where("is_active = ?", true).
		Count(&result.TotalSubscribers).Error; err != nil {
		return result, err
	}

	return result, nil
}

// GetRevenueByDay returns paid revenue grouped by calendar day for the
// trailing window.
func (r *GormDashboardRepository) GetRevenueByDay(days int) ([]DashboardRevenueRow, error) {
	if days <= 0 {
		days = 30
	}
	rows := make([]DashboardRevenueRow, 0)
	if err := r.db.Model(&models.Order{}).
		Select("CAST(date(created_at) AS TEXT) as day, COUNT(*) as orders, COALESCE(SUM(grand_total), 0) as revenue").
		Where("payment_status = ? AND created_at >= date('now', ?)", constants.PaymentStatusPaid, fmt.Sprintf("-%d days", days)).
		Group("day").
		Order("day asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetTopProducts returns the best sellers by units sold.
func (r *GormDashboardRepository) GetTopProducts(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 5
	}
	products := make([]models.Product, 0, limit)
	if err := r.db.Model(&models.Product{}).
		Where("is_active = ?", true).
		Order("sales_count DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
