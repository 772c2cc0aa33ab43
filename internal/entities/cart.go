package entities

type CartLine struct {
	SKU       string
	ProductID string
	Title     string
	UnitPrice int64
	Qty       int
}

// Cart is a read-only snapshot of the shopper's cart at checkout time.
type Cart struct {
	ID       string
	Currency string
	Lines    []CartLine
}

func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

func (c Cart) Subtotal() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.UnitPrice * int64(l.Qty)
	}
	return sum
}

type ShippingMethod struct {
	Code string
	Name string
	Cost int64
}

// Flat-rate table, no weight or distance based pricing.
var shippingMethods = []ShippingMethod{
	{Code: "standard", Name: "Standard Shipping", Cost: 0},
	{Code: "expedited", Name: "Expedited Shipping", Cost: 2500},
	{Code: "overnight", Name: "Overnight Shipping", Cost: 4500},
}

func ShippingMethods() []ShippingMethod {
	out := make([]ShippingMethod, len(shippingMethods))
	copy(out, shippingMethods)
	return out
}

func LookupShippingMethod(code string) (ShippingMethod, bool) {
	for _, m := range shippingMethods {
		if m.Code == code {
			return m, true
		}
	}
	return ShippingMethod{}, false
}
