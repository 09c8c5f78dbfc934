package bookstore

// NewSummary calculates the financial summary of the inventory in a single
// pass. Prices are expressed in currency.
func NewSummary(inv *Inventory, currency string) *Summary {
	s := &Summary{
		Currency:     currency,
		TotalValue:   M(0, currency),
		AveragePrice: M(0, currency),
	}

	totalPrice := M(0, currency)
	for _, b := range inv.books {
		price, stock := b.Price(), b.Count()
		if !price.Valid() || !stock.Valid() {
			s.Skipped++
			continue
		}
		s.Titles++
		totalPrice = totalPrice.Add(M(price.Decimal(), currency))
		s.TotalValue = s.TotalValue.Add(M(price.Decimal(), currency).Mul(stock.Decimal()))
	}

	if s.Titles > 0 {
		s.AveragePrice = totalPrice.DivInt(s.Titles)
	}
	return s
}
