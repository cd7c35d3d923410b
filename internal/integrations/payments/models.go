package payments

import "github.com/m04kA/SMC-PartyBookingService/pkg/money"

// Intent созданный у провайдера платёж
type Intent struct {
	Handle   string
	Amount   money.Cents
	Currency string
}

// Settlement состояние платежа у провайдера
type Settlement struct {
	Handle        string
	SettledAmount money.Cents
	Succeeded     bool
}
