package models

import "slices"

// Bounds on a single line item. With both in force Subtotal cannot leave
// int64, and neither can the total of any cart the catalog can produce.
const (
	MaxQuantity = 99
	MaxPrice    = int64(1_000_000_000)
)

type CartLineItem struct {
	ID          ID       `json:"id"`
	PackageID   int      `json:"packageId"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Quantity    int      `json:"quantity"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
	Destination string   `json:"destination"`
	Inclusions  []string `json:"inclusions"`
}

func (i CartLineItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// InRange reports whether the price and quantity are within the line item
// bounds. Non-positive quantities are allowed; the cart prunes them.
func (i CartLineItem) InRange() bool {
	return i.Price >= 0 && i.Price <= MaxPrice &&
		i.Quantity >= -MaxQuantity && i.Quantity <= MaxQuantity
}

func (i CartLineItem) Clone() CartLineItem {
	out := i
	out.Inclusions = slices.Clone(i.Inclusions)
	return out
}
