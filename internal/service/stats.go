package service

import (
	"context"
	"time"

	"github.com/flashfiesta/backend/internal/authz"
	"github.com/flashfiesta/backend/internal/repo"
	"github.com/flashfiesta/backend/internal/transport"
)

type StatsService struct {
	Repo *repo.GormRepo
}

// Dashboard aggregates order counts, revenue and a trailing seven-day
// daily series, oldest first and ending today. Day boundaries are
// calendar days in server-local time.
func (s *StatsService) Dashboard(ctx context.Context, p *authz.Principal) (*transport.DashboardStats, error) {
	if err := authz.Require(p, authz.CapViewStats); err != nil {
		return nil, err
	}

	totalOrders, err := s.Repo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.Repo.SumRevenue(ctx)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.Repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -6)

	orders, err := s.Repo.OrdersSince(ctx, start)
	if err != nil {
		return nil, err
	}

	series := make([]transport.DailySales, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		series[i] = transport.DailySales{Name: day.Format("Mon")}
		index[day.Format("2006-01-02")] = i
	}

	for _, order := range orders {
		key := order.CreatedAt.In(now.Location()).Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			continue
		}
		series[i].Sales++
		series[i].Revenue += order.TotalAmount
	}

	return &transport.DashboardStats{
		TotalOrders:   totalOrders,
		TotalRevenue:  totalRevenue,
		TotalProducts: totalProducts,
		RecentSales:   series,
	}, nil
}
