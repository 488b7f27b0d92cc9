package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashfiesta/backend/internal/models"
	"github.com/flashfiesta/backend/internal/transport"
)

func TestReviewService_SubmitReview_RequiresDeliveredPurchase(t *testing.T) {
	t.Parallel()

	r := InitTestDB(t)
	svc := &ReviewService{Repo: r}
	user := createUser(t, r, "alice", models.RoleCustomer)
	product := createProduct(t, r, "mug", 10.0, 5)

	req := transport.CreateReviewRequest{ProductID: product.ID, Rating: 5, Comment: "great"}

	// No purchase at all.
	_, err := svc.SubmitReview(context.Background(), principalFor(user), req)
	assert.ErrorIs(t, err, ErrNotEligible)

	// A pending order does not qualify.
	pending := createOrderAt(t, r, user.ID, 10.0, models.OrderStatusPending, time.Now())
	addOrderItem(t, r, pending.ID, product, 1)
	_, err = svc.SubmitReview(context.Background(), principalFor(user), req)
	assert.ErrorIs(t, err, ErrNotEligible)

	// Delivered opens the gate.
	delivered := createOrderAt(t, r, user.ID, 10.0, models.OrderStatusDelivered, time.Now())
	addOrderItem(t, r, delivered.ID, product, 1)

	review, err := svc.SubmitReview(context.Background(), principalFor(user), req)
	require.NoError(t, err)
	assert.Equal(t, product.ID, review.ProductID)
	assert.Equal(t, user.ID, review.UserID)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_SubmitReview_GateIsPerUser(t *testing.T) {
	t.Parallel()

	r := InitTestDB(t)
	svc := &ReviewService{Repo: r}
	buyer := createUser(t, r, "buyer", models.RoleCustomer)
	other := createUser(t, r, "other", models.RoleCustomer)
	product := createProduct(t, r, "mug", 10.0, 5)

	order := createOrderAt(t, r, buyer.ID, 10.0, models.OrderStatusDelivered, time.Now())
	addOrderItem(t, r, order.ID, product, 1)

	req := transport.CreateReviewRequest{ProductID: product.ID, Rating: 4}

	_, err := svc.SubmitReview(context.Background(), principalFor(other), req)
	assert.ErrorIs(t, err, ErrNotEligible)

	_, err = svc.SubmitReview(context.Background(), principalFor(buyer), req)
	require.NoError(t, err)
}

func TestReviewService_SubmitReview_RatingValidation(t *testing.T) {
	t.Parallel()

	r := InitTestDB(t)
	svc := &ReviewService{Repo: r}
	user := createUser(t, r, "alice", models.RoleCustomer)
	product := createProduct(t, r, "mug", 10.0, 5)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.SubmitReview(context.Background(), principalFor(user), transport.CreateReviewRequest{
			ProductID: product.ID,
			Rating:    rating,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestReviewService_CanReview(t *testing.T) {
	t.Parallel()

	r := InitTestDB(t)
	svc := &ReviewService{Repo: r}
	user := createUser(t, r, "alice", models.RoleCustomer)
	product := createProduct(t, r, "mug", 10.0, 5)

	ok, err := svc.CanReview(context.Background(), user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	order := createOrderAt(t, r, user.ID, 10.0, models.OrderStatusDelivered, time.Now())
	addOrderItem(t, r, order.ID, product, 1)

	ok, err = svc.CanReview(context.Background(), user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
