package addons

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/logger"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

type fakeRepo struct {
	defs  []*domain.AddOnDefinition
	err   error
	calls int
}

func (f *fakeRepo) ListActive(context.Context) ([]*domain.AddOnDefinition, error) {
	f.calls++
	return f.defs, f.err
}

func testCatalog() []*domain.AddOnDefinition {
	return []*domain.AddOnDefinition{
		{Code: "pizza", Label: "Pizza", Price: 2500, Mode: domain.AddOnModeFlat, Active: true},
		{Code: "goodie_bag", Label: "Goodie bag", Price: 800, Mode: domain.AddOnModePerChild, Active: true},
		{Code: "extra_hour", Label: "Extra hour", Price: 10000, Mode: domain.AddOnModeDuration, Active: true},
		{Code: "extra_child", Label: "Extra child", Price: 3500, Mode: domain.AddOnModePerChild, Active: true},
	}
}

func TestResolve_SnapshotsCatalogPrices(t *testing.T) {
	repo := &fakeRepo{defs: testCatalog()}
	r := NewResolver(repo, logger.NewNop())

	res, err := r.Resolve(context.Background(), []domain.AddOnSelection{
		{Code: "pizza", Quantity: 2},
		{Code: "goodie_bag", Quantity: 12 - 2},
	})
	require.NoError(t, err)

	require.Len(t, res.AddOns, 2)
	assert.Equal(t, domain.ResolvedAddOn{
		Code: "pizza", Label: "Pizza", UnitPrice: 2500, Quantity: 2, Mode: domain.AddOnModeFlat,
	}, res.AddOns[0])
	assert.Equal(t, 10, res.AddOns[1].Quantity)
	assert.False(t, res.HasDurationExtension)

	// Правка каталога после разбора не меняет снимок
	repo.defs[0].Price = 9999
	assert.Equal(t, money.Cents(2500), res.AddOns[0].UnitPrice)
}

func TestResolve_DurationModeSetsExtension(t *testing.T) {
	r := NewResolver(&fakeRepo{defs: testCatalog()}, logger.NewNop())

	res, err := r.Resolve(context.Background(), []domain.AddOnSelection{{Code: "extra_hour"}})
	require.NoError(t, err)

	assert.True(t, res.HasDurationExtension)
	assert.Equal(t, 1, res.AddOns[0].Quantity)
}

func TestResolve_UnknownCode(t *testing.T) {
	r := NewResolver(&fakeRepo{defs: testCatalog()}, logger.NewNop())

	_, err := r.Resolve(context.Background(), []domain.AddOnSelection{{Code: "bogus"}})

	assert.ErrorIs(t, err, ErrUnknownAddOn)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResolve_QuantityBounds(t *testing.T) {
	r := NewResolver(&fakeRepo{defs: testCatalog()}, logger.NewNop())

	_, err := r.Resolve(context.Background(), []domain.AddOnSelection{{Code: "pizza", Quantity: 11}})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = r.Resolve(context.Background(), []domain.AddOnSelection{{Code: "pizza", Quantity: -1}})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestResolve_FetchesCatalogEveryCall(t *testing.T) {
	repo := &fakeRepo{defs: testCatalog()}
	r := NewResolver(repo, logger.NewNop())

	_, _ = r.Resolve(context.Background(), nil)
	_, _ = r.Resolve(context.Background(), nil)

	assert.Equal(t, 2, repo.calls)
}

func TestResolve_RepositoryError(t *testing.T) {
	r := NewResolver(&fakeRepo{err: errors.New("db down")}, logger.NewNop())

	_, err := r.Resolve(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCatalog_ExtraGuestFee(t *testing.T) {
	c := NewCatalog(testCatalog())
	assert.Equal(t, money.Cents(3500), c.ExtraGuestFee("extra_child", 4000))

	empty := NewCatalog(nil)
	assert.Equal(t, money.Cents(4000), empty.ExtraGuestFee("extra_child", 4000))
}
