package domain

import "github.com/m04kA/SMC-PartyBookingService/pkg/money"

// AddOnMode defines how an add-on contributes to the price
type AddOnMode string

const (
	// AddOnModeFlat price × quantity
	AddOnModeFlat AddOnMode = "flat"
	// AddOnModePerChild price × number of children the add-on is ordered for
	AddOnModePerChild AddOnMode = "perChild"
	// AddOnModeDuration flat price that also extends the party window
	AddOnModeDuration AddOnMode = "duration"
)

// Valid reports whether the mode is one of the known pricing modes
func (m AddOnMode) Valid() bool {
	return m == AddOnModeFlat || m == AddOnModePerChild || m == AddOnModeDuration
}

// AddOnDefinition is a catalog entry
type AddOnDefinition struct {
	ID     int64
	Code   string
	Label  string
	Price  money.Cents
	Mode   AddOnMode
	Active bool
}

// AddOnSelection is a requested add-on before catalog lookup
type AddOnSelection struct {
	Code     string
	Quantity int // 0 means default quantity
}

// ResolvedAddOn is a priced snapshot embedded in a booking
type ResolvedAddOn struct {
	Code      string      `json:"code"`
	Label     string      `json:"label"`
	UnitPrice money.Cents `json:"unitPrice"`
	Quantity  int         `json:"quantity"`
	Mode      AddOnMode   `json:"mode"`
}

// LineTotal returns unit price × quantity. For perChild add-ons the quantity
// is the number of children the add-on was ordered for.
func (a ResolvedAddOn) LineTotal() money.Cents {
	return a.UnitPrice.Mul(a.Quantity)
}

// ExtendsDuration reports whether the add-on lengthens the booking window
func (a ResolvedAddOn) ExtendsDuration() bool {
	return a.Mode == AddOnModeDuration
}
