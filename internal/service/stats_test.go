package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashfiesta/backend/internal/authz"
	"github.com/flashfiesta/backend/internal/models"
)

func TestStatsService_Dashboard_RequiresCapability(t *testing.T) {
	t.Parallel()

	r := InitTestDB(t)
	svc := &StatsService{Repo: r}

	customer := createUser(t, r, "customer", models.RoleCustomer)
	_, err := svc.Dashboard(context.Background(), principalFor(customer))
	assert.ErrorIs(t, err, authz.ErrPermissionDenied)

	employee := createUser(t, r, "employee", models.RoleEmployee)
	employee.Profile.CanViewStats = true
	_, err = svc.Dashboard(context.Background(), principalFor(employee))
	require.NoError(t, err)
}

func TestStatsService_Dashboard_SevenDaySeries(t *testing.T) {
	t.Parallel()

	r := InitTestDB(t)
	svc := &StatsService{Repo: r}
	owner := createUser(t, r, "owner", models.RoleOwner)
	customer := createUser(t, r, "customer", models.RoleCustomer)

	createProduct(t, r, "mug", 10.0, 5)
	createProduct(t, r, "shirt", 25.5, 3)

	now := time.Now()
	createOrderAt(t, r, customer.ID, 20.0, models.OrderStatusPending, now)
	createOrderAt(t, r, customer.ID, 15.0, models.OrderStatusDelivered, now.AddDate(0, 0, -2))
	// Outside the trailing window; counts toward the totals only.
	createOrderAt(t, r, customer.ID, 10.0, models.OrderStatusDelivered, now.AddDate(0, 0, -10))

	stats, err := svc.Dashboard(context.Background(), principalFor(owner))
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalOrders)
	assert.Equal(t, 45.0, stats.TotalRevenue)
	assert.EqualValues(t, 2, stats.TotalProducts)

	require.Len(t, stats.RecentSales, 7)

	var sales int64
	var revenue float64
	for _, day := range stats.RecentSales {
		sales += day.Sales
		revenue += day.Revenue
	}
	assert.EqualValues(t, 2, sales)
	assert.Equal(t, 35.0, revenue)

	// Oldest first, ending today.
	today := stats.RecentSales[6]
	assert.Equal(t, now.Format("Mon"), today.Name)
	assert.EqualValues(t, 1, today.Sales)
	assert.Equal(t, 20.0, today.Revenue)

	twoDaysAgo := stats.RecentSales[4]
	assert.EqualValues(t, 1, twoDaysAgo.Sales)
	assert.Equal(t, 15.0, twoDaysAgo.Revenue)
}

func TestStatsService_Dashboard_EmptyStore(t *testing.T) {
	t.Parallel()

	r := InitTestDB(t)
	svc := &StatsService{Repo: r}
	owner := createUser(t, r, "owner", models.RoleOwner)

	stats, err := svc.Dashboard(context.Background(), principalFor(owner))
	require.NoError(t, err)

	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.TotalProducts)
	require.Len(t, stats.RecentSales, 7)
	for _, day := range stats.RecentSales {
		assert.Zero(t, day.Sales)
		assert.Zero(t, day.Revenue)
		assert.NotEmpty(t, day.Name)
	}
}
