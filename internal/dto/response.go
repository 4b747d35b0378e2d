package dto

import (
	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/Eursukkul/tour-booking/tour-service/internal/service"
)

type DestinationResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Highlights  []string `json:"highlights"`
	BestTime    string   `json:"best_time"`
	PriceRange  string   `json:"price_range"`
	Image       string   `json:"image,omitempty"`
}

type PackageResponse struct {
	ID            int      `json:"id"`
	DestinationID int      `json:"destination_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Duration      string   `json:"duration"`
	Price         int64    `json:"price"`
	Image         string   `json:"image"`
	Inclusions    []string `json:"inclusions"`
}

type SearchResponse struct {
	Query        string                `json:"query"`
	Destinations []DestinationResponse `json:"destinations"`
	Packages     []PackageResponse     `json:"packages"`
}

type CartItemResponse struct {
	ID          string   `json:"id"`
	PackageID   int      `json:"package_id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Quantity    int      `json:"quantity"`
	Subtotal    int64    `json:"subtotal"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
	Destination string   `json:"destination"`
	Inclusions  []string `json:"inclusions"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalPrice int64              `json:"total_price"`
	TotalCount int                `json:"total_count"`
	Message    string             `json:"message,omitempty"`
}

type ProfileResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	JoinDate  string            `json:"join_date"`
	Phone     string            `json:"phone"`
	Address   string            `json:"address"`
	Favorites []int             `json:"favorites"`
	Bookings  []BookingResponse `json:"bookings"`
}

type SessionResponse struct {
	IsLoggedIn bool             `json:"is_logged_in"`
	Profile    *ProfileResponse `json:"profile"`
	Message    string           `json:"message,omitempty"`
}

type FavoriteResponse struct {
	PackageID int  `json:"package_id"`
	Favorite  bool `json:"favorite"`
}

type BookingResponse struct {
	ID              string             `json:"id"`
	BookingID       string             `json:"booking_id"`
	PackageName     string             `json:"package_name"`
	TotalPrice      int64              `json:"total_price"`
	Duration        string             `json:"duration"`
	Travelers       int                `json:"travelers"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
	Inclusions      []string           `json:"inclusions"`
	Packages        []CartItemResponse `json:"packages"`
	PaymentMethod   string             `json:"payment_method,omitempty"`
	BookingDate     string             `json:"booking_date"`
	BookingTime     string             `json:"booking_time"`
	Status          string             `json:"status"`
	Message         string             `json:"message,omitempty"`
}

type CustomerDetailsResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type SummaryResponse struct {
	BookingID    string `json:"booking_id"`
	TotalPrice   int64  `json:"total_price"`
	PackageCount int    `json:"package_count"`
	Travelers    int    `json:"travelers"`
}

type CheckoutResponse struct {
	Step          string                  `json:"step"`
	StepNumber    int                     `json:"step_number"`
	LoginRequired bool                    `json:"login_required"`
	Details       CustomerDetailsResponse `json:"details"`
	PaymentMethod string                  `json:"payment_method,omitempty"`
	Summary       *SummaryResponse        `json:"summary"`
	Items         []CartItemResponse      `json:"items"`
	TotalPrice    int64                   `json:"total_price"`
	TotalCount    int                     `json:"total_count"`
}

type ConfirmationResponse struct {
	Booking    BookingResponse `json:"booking"`
	RedirectTo string          `json:"redirect_to"`
	Message    string          `json:"message"`
}

type PreferencesResponse struct {
	DarkMode bool `json:"dark_mode"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToDestinationResponse(d models.Destination) DestinationResponse {
	return DestinationResponse{
		ID:          d.ID,
		Name:        d.Name,
		Country:     d.Country,
		Type:        d.Type,
		Description: d.Description,
		Rating:      d.Rating,
		Highlights:  nonNil(d.Highlights),
		BestTime:    d.BestTime,
		PriceRange:  d.PriceRange,
		Image:       d.Image,
	}
}

func ToDestinationResponses(ds []models.Destination) []DestinationResponse {
	out := make([]DestinationResponse, len(ds))
	for i, d := range ds {
		out[i] = ToDestinationResponse(d)
	}
	return out
}

func ToPackageResponse(p models.Package) PackageResponse {
	return PackageResponse{
		ID:            p.ID,
		DestinationID: p.DestinationID,
		Name:          p.Name,
		Description:   p.Description,
		Duration:      p.Duration,
		Price:         p.Price,
		Image:         p.Image,
		Inclusions:    nonNil(p.Inclusions),
	}
}

func ToPackageResponses(ps []models.Package) []PackageResponse {
	out := make([]PackageResponse, len(ps))
	for i, p := range ps {
		out[i] = ToPackageResponse(p)
	}
	return out
}

func ToCartItemResponse(it models.CartLineItem) CartItemResponse {
	return CartItemResponse{
		ID:          it.ID.String(),
		PackageID:   it.PackageID,
		Name:        it.Name,
		Price:       it.Price,
		Quantity:    it.Quantity,
		Subtotal:    it.Subtotal(),
		Duration:    it.Duration,
		Image:       it.Image,
		Destination: it.Destination,
		Inclusions:  nonNil(it.Inclusions),
	}
}

func ToCartItemResponses(items []models.CartLineItem) []CartItemResponse {
	out := make([]CartItemResponse, len(items))
	for i, it := range items {
		out[i] = ToCartItemResponse(it)
	}
	return out
}

func ToBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID.String(),
		BookingID:       b.BookingID,
		PackageName:     b.PackageName,
		TotalPrice:      b.TotalPrice,
		Duration:        b.Duration,
		Travelers:       b.Travelers,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		CustomerAddress: b.CustomerAddress,
		Inclusions:      nonNil(b.Inclusions),
		Packages:        ToCartItemResponses(b.Packages),
		PaymentMethod:   b.PaymentMethod,
		BookingDate:     b.BookingDate,
		BookingTime:     b.BookingTime,
		Status:          string(b.Status),
	}
}

func ToBookingResponses(bs []models.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bs))
	for i, b := range bs {
		out[i] = ToBookingResponse(b)
	}
	return out
}

func ToSessionResponse(s models.UserSession) SessionResponse {
	resp := SessionResponse{IsLoggedIn: s.IsLoggedIn}
	if s.Profile != nil {
		p := ToProfileResponse(*s.Profile)
		resp.Profile = &p
	}
	return resp
}

func ToProfileResponse(p models.UserProfile) ProfileResponse {
	favorites := p.Favorites
	if favorites == nil {
		favorites = []int{}
	}
	return ProfileResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Email:     p.Email,
		JoinDate:  p.JoinDate,
		Phone:     p.Phone,
		Address:   p.Address,
		Favorites: favorites,
		Bookings:  ToBookingResponses(p.Bookings),
	}
}

func ToCheckoutResponse(v service.CheckoutView) CheckoutResponse {
	resp := CheckoutResponse{
		Step:          v.Step.String(),
		StepNumber:    int(v.Step),
		LoginRequired: v.LoginRequired,
		Details: CustomerDetailsResponse{
			Name:    v.Details.Name,
			Email:   v.Details.Email,
			Phone:   v.Details.Phone,
			Address: v.Details.Address,
		},
		PaymentMethod: string(v.PaymentMethod),
		Items:         ToCartItemResponses(v.Items),
		TotalPrice:    v.TotalPrice,
		TotalCount:    v.TotalCount,
	}
	if v.Summary != nil {
		resp.Summary = &SummaryResponse{
			BookingID:    v.Summary.BookingID,
			TotalPrice:   v.Summary.TotalPrice,
			PackageCount: v.Summary.PackageCount,
			Travelers:    v.Summary.Travelers,
		}
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
