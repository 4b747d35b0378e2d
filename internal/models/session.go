package models

import "slices"

type UserProfile struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	JoinDate  string    `json:"joinDate"`
	Bookings  []Booking `json:"bookings"`
	Favorites []int     `json:"favorites"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
}

func (p UserProfile) Clone() UserProfile {
	out := p
	if p.Bookings != nil {
		out.Bookings = make([]Booking, len(p.Bookings))
		for i, b := range p.Bookings {
			out.Bookings[i] = b.Clone()
		}
	}
	out.Favorites = slices.Clone(p.Favorites)
	return out
}

type UserSession struct {
	IsLoggedIn bool         `json:"isLoggedIn"`
	Profile    *UserProfile `json:"profile"`
}

// Active reports a usable session. The flag and the profile are persisted
// under separate keys, so a restored flag may come without a profile.
func (s UserSession) Active() bool {
	return s.IsLoggedIn && s.Profile != nil
}
