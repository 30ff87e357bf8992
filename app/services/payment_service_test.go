package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/app/services"
)

// fakeIntents records the last request instead of calling the processor.
type fakeIntents struct {
	amount   int64
	currency string
	err      error
}

func (f *fakeIntents) CreateIntent(_ context.Context, amount int64, currency string) (string, error) {
	f.amount = amount
	f.currency = currency
	if f.err != nil {
		return "", f.err
	}
	return "cs_test_secret", nil
}

// failingCarts wraps a cart repository and refuses bulk deletes.
type failingCarts struct {
	repositories.CartRepository
}

func (failingCarts) DeleteByIDs(context.Context, []string) (*repositories.DeleteResult, error) {
	return nil, errors.New("store down")
}

func TestCreateIntentConvertsToMinorUnits(t *testing.T) {
	mem := repositories.NewMemory()
	intents := &fakeIntents{}
	svc := services.NewPaymentService(mem.Payments(), mem.Carts(), intents)

	secret, err := svc.CreateIntent(context.Background(), 10.5)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_secret", secret)
	assert.EqualValues(t, 1050, intents.amount)
	assert.Equal(t, "usd", intents.currency)
}

func TestCreateIntentPropagatesError(t *testing.T) {
	mem := repositories.NewMemory()
	svc := services.NewPaymentService(mem.Payments(), mem.Carts(), &fakeIntents{err: errors.New("processor down")})

	_, err := svc.CreateIntent(context.Background(), 10.5)
	assert.Error(t, err)
}

func TestSettleClearsPaidCartItems(t *testing.T) {
	mem := repositories.NewMemory()
	carts := mem.Carts()
	ctx := context.Background()

	r1, err := carts.Create(ctx, models.CartItem{Email: "alice@example.com", Name: "Tuna Niçoise", Price: 10.5})
	require.NoError(t, err)
	r2, err := carts.Create(ctx, models.CartItem{Email: "alice@example.com", Name: "Lemon Tart", Price: 6.5})
	require.NoError(t, err)

	svc := services.NewPaymentService(mem.Payments(), carts, &fakeIntents{})
	result, err := svc.Settle(ctx, models.Payment{
		Email:         "alice@example.com",
		Price:         17,
		TransactionID: "pi_123",
		CartIDs:       []string{r1.InsertedID, r2.InsertedID},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Payment)
	assert.NotEmpty(t, result.Payment.InsertedID)
	require.NotNil(t, result.Deleted)
	assert.EqualValues(t, 2, result.Deleted.DeletedCount)

	remaining, err := carts.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, remaining)

	history, err := svc.History(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "pi_123", history[0].TransactionID)
}

func TestSettlePartialFailureKeepsPayment(t *testing.T) {
	mem := repositories.NewMemory()
	svc := services.NewPaymentService(mem.Payments(), failingCarts{mem.Carts()}, &fakeIntents{})

	result, err := svc.Settle(context.Background(), models.Payment{
		Email:         "alice@example.com",
		Price:         17,
		TransactionID: "pi_456",
		CartIDs:       []string{"abc"},
	})
	require.ErrorIs(t, err, services.ErrPartialSettlement)
	require.NotNil(t, result)
	require.NotNil(t, result.Payment)
	assert.Nil(t, result.Deleted)

	// The payment survived even though the cart cleanup failed.
	history, err := svc.History(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
