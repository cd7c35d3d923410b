package payments

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

const ProviderMock = "mock"

// MockProvider проводит платежи без обращения к провайдеру.
// Любой созданный им платёж считается полностью оплаченным на исходную сумму
type MockProvider struct {
	mu       sync.Mutex
	currency string
	intents  map[string]money.Cents
}

// NewMockProvider создает mock провайдер
func NewMockProvider(currency string) *MockProvider {
	return &MockProvider{
		currency: currency,
		intents:  make(map[string]money.Cents),
	}
}

func (p *MockProvider) Name() string {
	return ProviderMock
}

// CreateIntent выдаёт идентификатор вида mock_pi_<uuid>
func (p *MockProvider) CreateIntent(_ context.Context, amount money.Cents, _ string, _ map[string]string) (*Intent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	handle := "mock_pi_" + uuid.NewString()

	p.mu.Lock()
	p.intents[handle] = amount
	p.mu.Unlock()

	return &Intent{Handle: handle, Amount: amount, Currency: p.currency}, nil
}

// Confirm считает известный платёж оплаченным; неизвестный не оплачен
func (p *MockProvider) Confirm(_ context.Context, handle string) (*Settlement, error) {
	p.mu.Lock()
	amount, ok := p.intents[handle]
	p.mu.Unlock()

	return &Settlement{Handle: handle, SettledAmount: amount, Succeeded: ok}, nil
}
