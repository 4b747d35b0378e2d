package models

import "slices"

type Destination struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Highlights  []string `json:"highlights"`
	BestTime    string   `json:"bestTime"`
	PriceRange  string   `json:"priceRange"`
	Image       string   `json:"image,omitempty"`
}

func (d Destination) Clone() Destination {
	out := d
	out.Highlights = slices.Clone(d.Highlights)
	return out
}

type Package struct {
	ID            int      `json:"id"`
	DestinationID int      `json:"destinationId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Duration      string   `json:"duration"`
	Price         int64    `json:"price"`
	Image         string   `json:"image"`
	Inclusions    []string `json:"inclusions"`
}

func (p Package) Clone() Package {
	out := p
	out.Inclusions = slices.Clone(p.Inclusions)
	return out
}

type SiteInfo struct {
	Name     string `json:"name"`
	Tagline  string `json:"tagline"`
	Currency string `json:"currency"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}
