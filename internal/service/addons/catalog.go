package addons

import (
	"fmt"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

// Catalog активные дополнения по коду
type Catalog map[string]*domain.AddOnDefinition

// NewCatalog индексирует определения по коду
func NewCatalog(defs []*domain.AddOnDefinition) Catalog {
	c := make(Catalog, len(defs))
	for _, def := range defs {
		c[def.Code] = def
	}
	return c
}

// Resolution результат разбора запрошенных дополнений
type Resolution struct {
	AddOns               []domain.ResolvedAddOn
	HasDurationExtension bool
}

// Resolve сопоставляет запрошенные коды с каталогом, сохраняя порядок запроса.
// Цена копируется в снимок, дальнейшие правки каталога на него не влияют
func (c Catalog) Resolve(selections []domain.AddOnSelection) (*Resolution, error) {
	res := &Resolution{AddOns: make([]domain.ResolvedAddOn, 0, len(selections))}

	for _, sel := range selections {
		def, ok := c[sel.Code]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAddOn, sel.Code)
		}

		quantity := sel.Quantity
		if quantity == 0 {
			quantity = domain.DefaultAddOnQuantity
		}
		if quantity < domain.MinAddOnQuantity || quantity > domain.MaxAddOnQuantity {
			return nil, fmt.Errorf("%w: %q quantity %d", ErrInvalidQuantity, sel.Code, quantity)
		}

		resolved := domain.ResolvedAddOn{
			Code:      def.Code,
			Label:     def.Label,
			UnitPrice: def.Price,
			Quantity:  quantity,
			Mode:      def.Mode,
		}
		if resolved.ExtendsDuration() {
			res.HasDurationExtension = true
		}
		res.AddOns = append(res.AddOns, resolved)
	}

	return res, nil
}

// ExtraGuestFee цена за гостя сверх пакета: цена дополнения source или fallback
func (c Catalog) ExtraGuestFee(source string, fallback money.Cents) money.Cents {
	if def, ok := c[source]; ok {
		return def.Price
	}
	return fallback
}
