package service

import (
	"github.com/straatfanaat/shop/internal/logger"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/repository"

	"golang.org/x/sync/errgroup"
)

// DashboardStats is the admin overview payload.
type DashboardStats struct {
	TotalOrders      int64                            `json:"total_orders"`
	PendingOrders    int64                            `json:"pending_orders"`
	TotalRevenue     float64                          `json:"total_revenue"`
	TotalCustomers   int64                            `json:"total_customers"`
	TotalProducts    int64                            `json:"total_products"`
	ActiveProducts   int64                            `json:"active_products"`
	LowStockProducts int64                            `json:"low_stock_products"`
	TotalSubscribers int64                            `json:"total_subscribers"`
	RecentOrders     []models.Order                   `json:"recent_orders"`
	TopProducts      []models.Product                 `json:"top_products"`
	RevenueByDay     []repository.DashboardRevenueRow `json:"revenue_by_day"`
}

// DashboardService assembles the admin overview. The aggregate queries
// run concurrently; when any of them fails the whole overview degrades
// to zeroed counters instead of erroring the page.
type DashboardService struct {
	dashboardRepo     repository.DashboardRepository
	orderRepo         repository.OrderRepository
	recentOrdersLimit int
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(dashboardRepo repository.DashboardRepository, orderRepo repository.OrderRepository, recentOrdersLimit int) *DashboardService {
	if recentOrdersLimit <= 0 {
		recentOrdersLimit = 10
	}
	return &DashboardService{
		dashboardRepo:     dashboardRepo,
		orderRepo:         orderRepo,
		recentOrdersLimit: recentOrdersLimit,
	}
}

// GetStats collects the overview.
func (s *DashboardService) GetStats() DashboardStats {
	var (
		overview repository.DashboardOverviewRow
		recent   []models.Order
		top      []models.Product
		revenue  []repository.DashboardRevenueRow
	)

	var g errgroup.Group
	g.Go(func() error {
		row, err := s.dashboardRepo.GetOverview()
		if err != nil {
			return err
		}
		overview = row
		return nil
	})
	g.Go(func() error {
		orders, err := s.orderRepo.ListRecent(s.recentOrdersLimit)
		if err != nil {
			return err
		}
		recent = orders
		return nil
	})
	g.Go(func() error {
		products, err := s.dashboardRepo.GetTopProducts(5)
		if err != nil {
			return err
		}
		top = products
		return nil
	})
	g.Go(func() error {
		rows, err := s.dashboardRepo.GetRevenueByDay(30)
		if err != nil {
			return err
		}
		revenue = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Errorw("dashboard_stats_failed", "error", err)
		return DashboardStats{
			RecentOrders: []models.Order{},
			TopProducts:  []models.Product{},
			RevenueByDay: []repository.DashboardRevenueRow{},
		}
	}

	if recent == nil {
		recent = []models.Order{}
	}
	if top == nil {
		top = []models.Product{}
	}
	if revenue == nil {
		revenue = []repository.DashboardRevenueRow{}
	}
	return DashboardStats{
		TotalOrders:      overview.TotalOrders,
		PendingOrders:    overview.PendingOrders,
		TotalRevenue:     overview.TotalRevenue,
		TotalCustomers:   overview.TotalCustomers,
		TotalProducts:    overview.TotalProducts,
		ActiveProducts:   overview.ActiveProducts,
		LowStockProducts: overview.LowStockProducts,
		TotalSubscribers: overview.TotalSubscribers,
		RecentOrders:     recent,
		TopProducts:      top,
		RevenueByDay:     revenue,
	}
}
