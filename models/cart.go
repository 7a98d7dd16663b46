package models

import "github.com/shopspring/decimal"

// CartItem is one line of the session cart. Name, price, image and
// category are copied from the menu catalog when the item is first
// added; client input is never trusted for these fields.
type CartItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// Cart is the ephemeral, session-scoped selection of menu items keyed by
// menu item id. It only lives in the session store and is never persisted;
// order creation consumes a snapshot of it.
type Cart map[uint]CartItem

// CartView is the API shape of a cart: items plus computed totals.
type CartView struct {
	Items     []CartItem `json:"items"`
	Total     string     `json:"total"`
	ItemCount int        `json:"itemCount"`
}

// Total sums price x quantity across all entries, rounded to 2 decimals.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c {
		total = total.Add(amount(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Round(2)
}

// ItemCount sums quantities across all entries.
func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c {
		n += it.Quantity
	}
	return n
}

// View materializes the cart for API responses.
func (c Cart) View() CartView {
	items := make([]CartItem, 0, len(c))
	for _, it := range c {
		items = append(items, it)
	}
	return CartView{
		Items:     items,
		Total:     c.Total().StringFixed(2),
		ItemCount: c.ItemCount(),
	}
}
