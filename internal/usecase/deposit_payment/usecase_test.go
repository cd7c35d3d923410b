package deposit_payment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/internal/events"
	bookingRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/booking"
	guardianRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/guardian"
	paymentRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-PartyBookingService/internal/integrations/payments"
	"github.com/m04kA/SMC-PartyBookingService/pkg/logger"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
	"github.com/m04kA/SMC-PartyBookingService/pkg/ptr"
)

type fakeBookings struct {
	bookings map[int64]*domain.Booking
	updates  int
}

func (f *fakeBookings) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookings) UpdatePayment(_ context.Context, b *domain.Booking) error {
	f.updates++
	stored := f.bookings[b.ID]
	stored.PaymentStatus = b.PaymentStatus
	stored.PaymentIntentID = b.PaymentIntentID
	stored.Status = b.Status
	stored.BalanceRemaining = b.BalanceRemaining
	return nil
}

type fakeGuardians map[int64]*domain.Guardian

func (f fakeGuardians) GetByID(_ context.Context, id int64) (*domain.Guardian, error) {
	g, ok := f[id]
	if !ok {
		return nil, guardianRepo.ErrGuardianNotFound
	}
	return g, nil
}

type fakePayments struct {
	records map[string]*domain.DepositPayment
}

func (f *fakePayments) Create(_ context.Context, p *domain.DepositPayment) error {
	f.records[p.IntentID] = p
	return nil
}

func (f *fakePayments) GetByIntentID(_ context.Context, intentID string) (*domain.DepositPayment, error) {
	p, ok := f.records[intentID]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePayments) MarkCaptured(_ context.Context, intentID string, at time.Time) error {
	p, ok := f.records[intentID]
	if !ok {
		return paymentRepo.ErrPaymentNotFound
	}
	p.Status = domain.DepositPaymentCaptured
	p.CapturedAt = &at
	return nil
}

// shortProvider подтверждает оплату на сумму меньше созданной
type shortProvider struct {
	*payments.MockProvider
	short money.Cents
}

func (p *shortProvider) Confirm(ctx context.Context, handle string) (*payments.Settlement, error) {
	s, err := p.MockProvider.Confirm(ctx, handle)
	if err != nil {
		return nil, err
	}
	s.SettledAmount -= p.short
	return s, nil
}

type failingProvider struct{ *payments.MockProvider }

func (failingProvider) CreateIntent(context.Context, money.Cents, string, map[string]string) (*payments.Intent, error) {
	return nil, payments.ErrProviderFailure
}

type passTx struct{}

func (passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type env struct {
	uc       *UseCase
	bookings *fakeBookings
	payments *fakePayments
	bus      *events.Bus
}

func newEnv(provider Provider) *env {
	bookings := &fakeBookings{bookings: map[int64]*domain.Booking{
		1: {
			ID:               1,
			Reference:        "BK-202611141000-ABCDEF12",
			CustomerID:       ptr.Ptr(int64(100)),
			Total:            44900,
			DepositAmount:    22450,
			BalanceRemaining: 22450,
			PaymentStatus:    domain.PaymentAwaitingDeposit,
			Status:           domain.StatusPending,
		},
		2: {ID: 2, CustomerID: ptr.Ptr(int64(200)), DepositAmount: 100, Status: domain.StatusPending},
		3: {ID: 3, DepositAmount: 0, Status: domain.StatusPending},
		4: {ID: 4, CustomerID: ptr.Ptr(int64(100)), DepositAmount: 100, Status: domain.StatusCancelled},
		5: {
			ID:               5,
			CustomerID:       ptr.Ptr(int64(100)),
			Total:            44900,
			DepositAmount:    22450,
			BalanceRemaining: 22450,
			PaymentStatus:    domain.PaymentAwaitingDeposit,
			Status:           domain.StatusPending,
		},
	}}
	guardians := fakeGuardians{
		1: {ID: 1, CustomerID: ptr.Ptr(int64(100))},
		2: {ID: 2},
	}
	paymentsRepo := &fakePayments{records: map[string]*domain.DepositPayment{}}
	bus := events.NewBus(events.DefaultCapacity, logger.NewNop())

	uc := NewUseCase(bookings, guardians, paymentsRepo, provider, bus, passTx{}, logger.NewNop())
	return &env{uc: uc, bookings: bookings, payments: paymentsRepo, bus: bus}
}

func TestDeposit_MockRoundTrip(t *testing.T) {
	e := newEnv(payments.NewMockProvider("USD"))
	ctx := context.Background()

	intent, err := e.uc.CreateIntent(ctx, &CreateIntentRequest{GuardianID: 1, BookingID: 1})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(intent.IntentHandle, "mock_pi_"))
	assert.Equal(t, money.Cents(22450), intent.Amount)
	assert.Equal(t, payments.ProviderMock, intent.Provider)
	require.Contains(t, e.payments.records, intent.IntentHandle)
	assert.Equal(t, domain.DepositPaymentPending, e.payments.records[intent.IntentHandle].Status)

	resp, err := e.uc.ConfirmIntent(ctx, &ConfirmRequest{GuardianID: 1, BookingID: 1, IntentHandle: intent.IntentHandle})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, domain.PaymentDepositPaid, resp.PaymentStatus)
	assert.Equal(t, money.Cents(22450), resp.BalanceRemaining)
	assert.Equal(t, domain.DepositPaymentCaptured, e.payments.records[intent.IntentHandle].Status)

	recent := e.bus.Recent(10)
	require.Len(t, recent, 1)
	assert.Equal(t, domain.EventBookingDepositPaid, recent[0].Type)
}

func TestConfirm_SecondCallIsIdempotent(t *testing.T) {
	e := newEnv(payments.NewMockProvider("USD"))
	ctx := context.Background()

	intent, err := e.uc.CreateIntent(ctx, &CreateIntentRequest{GuardianID: 1, BookingID: 1})
	require.NoError(t, err)
	req := &ConfirmRequest{GuardianID: 1, BookingID: 1, IntentHandle: intent.IntentHandle}

	first, err := e.uc.ConfirmIntent(ctx, req)
	require.NoError(t, err)
	updates := e.bookings.updates

	second, err := e.uc.ConfirmIntent(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, updates, e.bookings.updates)
	assert.Len(t, e.bus.Recent(10), 1)
}

func TestConfirm_AmountOffByOneCent(t *testing.T) {
	e := newEnv(&shortProvider{MockProvider: payments.NewMockProvider("USD"), short: 1})
	ctx := context.Background()

	intent, err := e.uc.CreateIntent(ctx, &CreateIntentRequest{GuardianID: 1, BookingID: 1})
	require.NoError(t, err)

	_, err = e.uc.ConfirmIntent(ctx, &ConfirmRequest{GuardianID: 1, BookingID: 1, IntentHandle: intent.IntentHandle})
	assert.ErrorIs(t, err, ErrPaymentAmountMismatch)
	assert.ErrorIs(t, err, domain.ErrPayment)

	stored := e.bookings.bookings[1]
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, domain.PaymentAwaitingDeposit, stored.PaymentStatus)
	assert.Empty(t, e.bus.Recent(10))
}

func TestConfirm_ForeignIntentRejected(t *testing.T) {
	e := newEnv(payments.NewMockProvider("USD"))
	ctx := context.Background()

	_, err := e.uc.CreateIntent(ctx, &CreateIntentRequest{GuardianID: 1, BookingID: 1})
	require.NoError(t, err)

	_, err = e.uc.ConfirmIntent(ctx, &ConfirmRequest{GuardianID: 1, BookingID: 1, IntentHandle: "mock_pi_other"})
	assert.ErrorIs(t, err, ErrIntentMismatch)
}

func TestConfirm_UnsettledPayment(t *testing.T) {
	e := newEnv(payments.NewMockProvider("USD"))
	// запись есть, но провайдер платёж не знает
	e.payments.records["mock_pi_unknown"] = &domain.DepositPayment{BookingID: 1, IntentID: "mock_pi_unknown", Status: domain.DepositPaymentPending}

	_, err := e.uc.ConfirmIntent(context.Background(), &ConfirmRequest{GuardianID: 1, BookingID: 1, IntentHandle: "mock_pi_unknown"})
	assert.ErrorIs(t, err, ErrPaymentNotSettled)
	assert.Equal(t, domain.StatusPending, e.bookings.bookings[1].Status)
}

func TestCreateIntent_Errors(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
		req      *CreateIntentRequest
		want     error
	}{
		{"not configured", nil, &CreateIntentRequest{GuardianID: 1, BookingID: 1}, ErrPaymentsNotConfigured},
		{"bad ids", payments.NewMockProvider("USD"), &CreateIntentRequest{GuardianID: 0, BookingID: 1}, ErrInvalidInput},
		{"unknown guardian", payments.NewMockProvider("USD"), &CreateIntentRequest{GuardianID: 9, BookingID: 1}, ErrGuardianNotFound},
		{"guardian without customer", payments.NewMockProvider("USD"), &CreateIntentRequest{GuardianID: 2, BookingID: 1}, ErrGuardianNotFound},
		{"unknown booking", payments.NewMockProvider("USD"), &CreateIntentRequest{GuardianID: 1, BookingID: 9}, ErrBookingNotFound},
		{"foreign booking", payments.NewMockProvider("USD"), &CreateIntentRequest{GuardianID: 1, BookingID: 2}, ErrBookingNotFound},
		{"zero deposit", payments.NewMockProvider("USD"), &CreateIntentRequest{GuardianID: 1, BookingID: 3}, ErrInvalidDeposit},
		{"cancelled", payments.NewMockProvider("USD"), &CreateIntentRequest{GuardianID: 1, BookingID: 4}, ErrBookingCancelled},
		{"provider failure", failingProvider{payments.NewMockProvider("USD")}, &CreateIntentRequest{GuardianID: 1, BookingID: 1}, payments.ErrProviderFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(tt.provider)
			_, err := e.uc.CreateIntent(context.Background(), tt.req)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Empty(t, e.payments.records)
		})
	}
}

func TestCreateIntent_AlreadyPaid(t *testing.T) {
	e := newEnv(payments.NewMockProvider("USD"))
	e.bookings.bookings[1].PaymentStatus = domain.PaymentDepositPaid

	_, err := e.uc.CreateIntent(context.Background(), &CreateIntentRequest{GuardianID: 1, BookingID: 1})
	assert.ErrorIs(t, err, ErrDepositAlreadyPaid)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestConfirm_NotConfigured(t *testing.T) {
	e := newEnv(nil)

	_, err := e.uc.ConfirmIntent(context.Background(), &ConfirmRequest{GuardianID: 1, BookingID: 1, IntentHandle: "x"})
	assert.ErrorIs(t, err, ErrPaymentsNotConfigured)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestConfirm_CancelledBookingStaysCancelled(t *testing.T) {
	e := newEnv(payments.NewMockProvider("USD"))
	ctx := context.Background()

	intent, err := e.uc.CreateIntent(ctx, &CreateIntentRequest{GuardianID: 1, BookingID: 1})
	require.NoError(t, err)
	e.bookings.bookings[1].Status = domain.StatusCancelled

	_, err = e.uc.ConfirmIntent(ctx, &ConfirmRequest{GuardianID: 1, BookingID: 1, IntentHandle: intent.IntentHandle})
	assert.ErrorIs(t, err, ErrBookingCancelled)
	assert.ErrorIs(t, err, domain.ErrConflict)

	stored := e.bookings.bookings[1]
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	assert.Equal(t, domain.PaymentAwaitingDeposit, stored.PaymentStatus)
	assert.Equal(t, domain.DepositPaymentPending, e.payments.records[intent.IntentHandle].Status)
	assert.Empty(t, e.bus.Recent(10))
}

// cancellingTx отменяет бронирование перед началом транзакции
type cancellingTx struct {
	bookings *fakeBookings
	id       int64
}

func (c cancellingTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	c.bookings.bookings[c.id].Status = domain.StatusCancelled
	return fn(ctx)
}

func TestConfirm_CancelledWhileSettling(t *testing.T) {
	e := newEnv(payments.NewMockProvider("USD"))
	ctx := context.Background()

	intent, err := e.uc.CreateIntent(ctx, &CreateIntentRequest{GuardianID: 1, BookingID: 1})
	require.NoError(t, err)
	e.uc.txManager = cancellingTx{bookings: e.bookings, id: 1}

	_, err = e.uc.ConfirmIntent(ctx, &ConfirmRequest{GuardianID: 1, BookingID: 1, IntentHandle: intent.IntentHandle})
	assert.ErrorIs(t, err, ErrBookingCancelled)

	stored := e.bookings.bookings[1]
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	assert.Equal(t, domain.PaymentAwaitingDeposit, stored.PaymentStatus)
	assert.Empty(t, e.bus.Recent(10))
}

func TestConfirm_IntentOfAnotherBookingRejected(t *testing.T) {
	e := newEnv(payments.NewMockProvider("USD"))
	ctx := context.Background()

	intent, err := e.uc.CreateIntent(ctx, &CreateIntentRequest{GuardianID: 1, BookingID: 1})
	require.NoError(t, err)
	_, err = e.uc.ConfirmIntent(ctx, &ConfirmRequest{GuardianID: 1, BookingID: 1, IntentHandle: intent.IntentHandle})
	require.NoError(t, err)

	// Бронирование 5 с тем же депозитом платёж не запрашивало
	_, err = e.uc.ConfirmIntent(ctx, &ConfirmRequest{GuardianID: 1, BookingID: 5, IntentHandle: intent.IntentHandle})
	assert.ErrorIs(t, err, ErrIntentMismatch)

	stored := e.bookings.bookings[5]
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, domain.PaymentAwaitingDeposit, stored.PaymentStatus)
	assert.Len(t, e.bus.Recent(10), 1)
}

func TestConfirm_EarlierIntentStillApplies(t *testing.T) {
	e := newEnv(payments.NewMockProvider("USD"))
	ctx := context.Background()

	first, err := e.uc.CreateIntent(ctx, &CreateIntentRequest{GuardianID: 1, BookingID: 1})
	require.NoError(t, err)
	second, err := e.uc.CreateIntent(ctx, &CreateIntentRequest{GuardianID: 1, BookingID: 1})
	require.NoError(t, err)
	require.NotEqual(t, first.IntentHandle, second.IntentHandle)

	resp, err := e.uc.ConfirmIntent(ctx, &ConfirmRequest{GuardianID: 1, BookingID: 1, IntentHandle: first.IntentHandle})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentDepositPaid, resp.PaymentStatus)
	assert.Equal(t, first.IntentHandle, *e.bookings.bookings[1].PaymentIntentID)
	assert.Equal(t, domain.DepositPaymentCaptured, e.payments.records[first.IntentHandle].Status)
	assert.Equal(t, domain.DepositPaymentPending, e.payments.records[second.IntentHandle].Status)
}
