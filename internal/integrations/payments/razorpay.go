package payments

import (
	"context"
	"fmt"

	"github.com/razorpay/razorpay-go"

	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

const (
	ProviderRazorpay = "razorpay"

	orderStatusPaid = "paid"
)

// OrderAPI подмножество razorpay client.Order
type OrderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
	Fetch(orderID string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// RazorpayProvider депозит как Razorpay order; подтверждение по статусу и amount_paid заказа
type RazorpayProvider struct {
	orders   OrderAPI
	currency string
}

// NewRazorpayProvider создает провайдер с ключами API
func NewRazorpayProvider(keyID, keySecret, currency string) *RazorpayProvider {
	client := razorpay.NewClient(keyID, keySecret)
	return NewRazorpayProviderWithOrders(client.Order, currency)
}

// NewRazorpayProviderWithOrders создает провайдер поверх готового OrderAPI
func NewRazorpayProviderWithOrders(orders OrderAPI, currency string) *RazorpayProvider {
	return &RazorpayProvider{orders: orders, currency: currency}
}

func (p *RazorpayProvider) Name() string {
	return ProviderRazorpay
}

// CreateIntent создаёт order на сумму в минимальных единицах валюты
func (p *RazorpayProvider) CreateIntent(_ context.Context, amount money.Cents, receipt string, metadata map[string]string) (*Intent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	notes := make(map[string]interface{}, len(metadata))
	for k, v := range metadata {
		notes[k] = v
	}

	order, err := p.orders.Create(map[string]interface{}{
		"amount":   int64(amount),
		"currency": p.currency,
		"receipt":  receipt,
		"notes":    notes,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create order: %v", ErrProviderFailure, err)
	}

	id, ok := order["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: create order: response has no id", ErrProviderFailure)
	}

	return &Intent{Handle: id, Amount: amount, Currency: p.currency}, nil
}

// Confirm читает order и сообщает оплаченную сумму
func (p *RazorpayProvider) Confirm(_ context.Context, handle string) (*Settlement, error) {
	order, err := p.orders.Fetch(handle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch order %s: %v", ErrProviderFailure, handle, err)
	}

	status, _ := order["status"].(string)
	paid, err := centsField(order, "amount_paid")
	if err != nil {
		return nil, fmt.Errorf("%w: fetch order %s: %v", ErrProviderFailure, handle, err)
	}

	return &Settlement{
		Handle:        handle,
		SettledAmount: paid,
		Succeeded:     status == orderStatusPaid,
	}, nil
}

// centsField читает целочисленную сумму из JSON ответа (числа приходят как float64)
func centsField(m map[string]interface{}, key string) (money.Cents, error) {
	switch v := m[key].(type) {
	case float64:
		return money.Cents(int64(v)), nil
	case int64:
		return money.Cents(v), nil
	case int:
		return money.Cents(v), nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("unexpected %s type %T", key, v)
	}
}
