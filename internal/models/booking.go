package models

import "slices"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "Confirmed"
)

// Booking is a confirmed checkout. Packages is a snapshot of the cart at
// confirmation time and is never linked back to the live cart.
type Booking struct {
	ID              ID             `json:"id"`
	BookingID       string         `json:"bookingId"`
	PackageName     string         `json:"packageName"`
	TotalPrice      int64          `json:"totalPrice"`
	Duration        string         `json:"duration"`
	Travelers       int            `json:"travelers"`
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerPhone   string         `json:"customerPhone"`
	CustomerAddress string         `json:"customerAddress"`
	Inclusions      []string       `json:"inclusions"`
	Packages        []CartLineItem `json:"packages"`
	PaymentMethod   string         `json:"paymentMethod,omitempty"`
	BookingDate     string         `json:"bookingDate"`
	BookingTime     string         `json:"bookingTime"`
	Status          BookingStatus  `json:"status"`
}

// Clone returns a deep copy so that the booking list and the profile copy
// never share slices.
func (b Booking) Clone() Booking {
	out := b
	out.Inclusions = slices.Clone(b.Inclusions)
	if b.Packages != nil {
		out.Packages = make([]CartLineItem, len(b.Packages))
		for i, p := range b.Packages {
			out.Packages[i] = p.Clone()
		}
	}
	return out
}
