package payments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

func TestMockProvider_RoundTrip(t *testing.T) {
	p := NewMockProvider("USD")

	intent, err := p.CreateIntent(context.Background(), 22450, "BK-1", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(intent.Handle, "mock_pi_"))
	assert.Equal(t, money.Cents(22450), intent.Amount)

	s, err := p.Confirm(context.Background(), intent.Handle)
	require.NoError(t, err)
	assert.True(t, s.Succeeded)
	assert.Equal(t, money.Cents(22450), s.SettledAmount)

	unknown, err := p.Confirm(context.Background(), "mock_pi_unknown")
	require.NoError(t, err)
	assert.False(t, unknown.Succeeded)
}

func TestMockProvider_RejectsNonPositive(t *testing.T) {
	_, err := NewMockProvider("USD").CreateIntent(context.Background(), 0, "BK-1", nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

type fakeOrders struct {
	created  map[string]interface{}
	order    map[string]interface{}
	fetchErr error
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.created = data
	return map[string]interface{}{"id": "order_123", "amount": float64(22450), "status": "created"}, nil
}

func (f *fakeOrders) Fetch(string, map[string]interface{}, map[string]string) (map[string]interface{}, error) {
	return f.order, f.fetchErr
}

func TestRazorpayProvider_CreateIntent(t *testing.T) {
	orders := &fakeOrders{}
	p := NewRazorpayProviderWithOrders(orders, "USD")

	intent, err := p.CreateIntent(context.Background(), 22450, "BK-1", map[string]string{"bookingId": "5"})
	require.NoError(t, err)

	assert.Equal(t, "order_123", intent.Handle)
	assert.Equal(t, int64(22450), orders.created["amount"])
	assert.Equal(t, "USD", orders.created["currency"])
	assert.Equal(t, "BK-1", orders.created["receipt"])
}

func TestRazorpayProvider_Confirm(t *testing.T) {
	orders := &fakeOrders{order: map[string]interface{}{"id": "order_123", "status": "paid", "amount_paid": float64(22449)}}
	p := NewRazorpayProviderWithOrders(orders, "USD")

	s, err := p.Confirm(context.Background(), "order_123")
	require.NoError(t, err)
	assert.True(t, s.Succeeded)
	assert.Equal(t, money.Cents(22449), s.SettledAmount)

	orders.order = map[string]interface{}{"id": "order_123", "status": "attempted", "amount_paid": float64(0)}
	s, err = p.Confirm(context.Background(), "order_123")
	require.NoError(t, err)
	assert.False(t, s.Succeeded)
}

func TestRazorpayProvider_FetchError(t *testing.T) {
	p := NewRazorpayProviderWithOrders(&fakeOrders{fetchErr: errors.New("timeout")}, "USD")

	_, err := p.Confirm(context.Background(), "order_123")
	assert.ErrorIs(t, err, ErrProviderFailure)
	assert.ErrorIs(t, err, domain.ErrPayment)
}
