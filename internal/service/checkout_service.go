package service

import (
	"context"
	"log"
	"slices"
	"strings"
	"sync"

	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
)

// Step is a checkout stage. Stages only move one at a time.
type Step int

const (
	StepCart Step = iota + 1
	StepDetails
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepCart:
		return "cart"
	case StepDetails:
		return "details"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

type PaymentMethod string

const (
	PaymentCard  PaymentMethod = "card"
	PaymentBkash PaymentMethod = "bkash"
	PaymentBank  PaymentMethod = "bank"
)

// RedirectAfterConfirm is where the client goes once a booking is confirmed.
const RedirectAfterConfirm = "/bookings"

type CustomerDetails struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

func (d CustomerDetails) empty() bool {
	return d == CustomerDetails{}
}

type Summary struct {
	BookingID    string
	TotalPrice   int64
	PackageCount int
	Travelers    int
}

type CheckoutView struct {
	Step Step
	// LoginRequired is set at the details step without an active session;
	// the only ways on are logging in or going back to the cart.
	LoginRequired bool
	Details       CustomerDetails
	PaymentMethod PaymentMethod
	Summary       *Summary
	Items         []models.CartLineItem
	TotalPrice    int64
	TotalCount    int
}

type Confirmation struct {
	Booking    models.Booking
	RedirectTo string
}

type CheckoutCart interface {
	Items() []models.CartLineItem
	TotalPrice() int64
	TotalCount() int
	Reset(ctx context.Context) error
}

type CheckoutSession interface {
	Current() models.UserSession
}

type BookingCreator interface {
	Create(ctx context.Context, draft BookingDraft) (models.Booking, error)
}

type CheckoutService interface {
	View() CheckoutView
	Proceed(ctx context.Context) (CheckoutView, error)
	Back(ctx context.Context) (CheckoutView, error)
	SubmitDetails(ctx context.Context, details CustomerDetails) (CheckoutView, error)
	SubmitPayment(ctx context.Context, method PaymentMethod) (CheckoutView, error)
	Confirm(ctx context.Context) (Confirmation, error)
	Cancel(ctx context.Context) CheckoutView
}

type checkoutService struct {
	mu       sync.Mutex
	step     Step
	details  CustomerDetails
	payment  PaymentMethod
	summary  *Summary
	cart     CheckoutCart
	session  CheckoutSession
	bookings BookingCreator
	opts     Options
}

// NewCheckoutService starts at the cart step. Flow state lives in memory
// only; a restart returns the customer to the cart.
func NewCheckoutService(cart CheckoutCart, session CheckoutSession, bookings BookingCreator, opts Options) CheckoutService {
	return &checkoutService{
		step:     StepCart,
		cart:     cart,
		session:  session,
		bookings: bookings,
		opts:     opts.withDefaults(),
	}
}

func (s *checkoutService) View() CheckoutView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *checkoutService) Proceed(ctx context.Context) (CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepCart {
		return s.view(), transitionError("%s step advances through its own form", s.step)
	}
	if len(s.cart.Items()) == 0 {
		return s.view(), transitionError("cart is empty")
	}
	s.step = StepDetails
	return s.view(), nil
}

func (s *checkoutService) Back(ctx context.Context) (CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step == StepCart {
		return s.view(), transitionError("already at the first step")
	}
	if s.step == StepConfirmation {
		s.summary = nil
	}
	s.step--
	return s.view(), nil
}

func (s *checkoutService) SubmitDetails(ctx context.Context, details CustomerDetails) (CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepDetails {
		return s.view(), transitionError("details are entered at the details step, not %s", s.step)
	}
	if !s.session.Current().Active() {
		return s.view(), ErrLoginRequired
	}

	details = trimDetails(details)
	switch {
	case details.Name == "":
		return s.view(), invalid("name", "is required")
	case details.Email == "":
		return s.view(), invalid("email", "is required")
	case details.Phone == "":
		return s.view(), invalid("phone", "is required")
	case details.Address == "":
		return s.view(), invalid("address", "is required")
	}

	s.details = details
	s.step = StepPayment
	return s.view(), nil
}

// SubmitPayment is a mock: nothing is charged and any supported method
// succeeds. It produces the summary shown on the confirmation step.
func (s *checkoutService) SubmitPayment(ctx context.Context, method PaymentMethod) (CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepPayment {
		return s.view(), transitionError("payment is chosen at the payment step, not %s", s.step)
	}
	if method == "" {
		method = PaymentCard
	}
	switch method {
	case PaymentCard, PaymentBkash, PaymentBank:
	default:
		return s.view(), invalid("paymentMethod", "must be card, bkash or bank")
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return s.view(), transitionError("cart is empty")
	}

	s.payment = method
	s.summary = &Summary{
		BookingID:    bookingReference(s.opts.Now()),
		TotalPrice:   s.cart.TotalPrice(),
		PackageCount: len(items),
		Travelers:    s.cart.TotalCount(),
	}
	s.step = StepConfirmation
	return s.view(), nil
}

// Confirm turns the cart into a booking, empties the cart and rewinds the
// flow. Totals are taken from the cart as it is now, not from the summary.
func (s *checkoutService) Confirm(ctx context.Context) (Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepConfirmation || s.summary == nil {
		return Confirmation{}, transitionError("nothing to confirm at the %s step", s.step)
	}
	if !s.session.Current().Active() {
		return Confirmation{}, ErrLoginRequired
	}
	items := s.cart.Items()
	if len(items) == 0 {
		return Confirmation{}, transitionError("cart is empty")
	}

	draft := BookingDraft{
		BookingID:       s.summary.BookingID,
		PackageName:     joinNames(items),
		TotalPrice:      s.cart.TotalPrice(),
		Duration:        joinDurations(items),
		Travelers:       s.cart.TotalCount(),
		CustomerName:    s.details.Name,
		CustomerEmail:   s.details.Email,
		CustomerPhone:   s.details.Phone,
		CustomerAddress: s.details.Address,
		Inclusions:      unionInclusions(items),
		Packages:        items,
		PaymentMethod:   string(s.payment),
	}

	booking, err := s.bookings.Create(ctx, draft)
	if err != nil {
		return Confirmation{}, err
	}

	if err := s.cart.Reset(ctx); err != nil {
		log.Printf("[Checkout] booking %s confirmed but cart was not cleared: %v", booking.BookingID, err)
	}
	s.reset()

	return Confirmation{Booking: booking, RedirectTo: RedirectAfterConfirm}, nil
}

func (s *checkoutService) Cancel(ctx context.Context) CheckoutView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	return s.view()
}

func (s *checkoutService) reset() {
	s.step = StepCart
	s.details = CustomerDetails{}
	s.payment = ""
	s.summary = nil
}

// view callers hold s.mu.
func (s *checkoutService) view() CheckoutView {
	sess := s.session.Current()
	v := CheckoutView{
		Step:          s.step,
		Details:       s.details,
		PaymentMethod: s.payment,
		Items:         s.cart.Items(),
		TotalPrice:    s.cart.TotalPrice(),
		TotalCount:    s.cart.TotalCount(),
	}
	if s.step == StepDetails {
		if !sess.Active() {
			v.LoginRequired = true
			v.Details = CustomerDetails{}
		} else if v.Details.empty() {
			v.Details = CustomerDetails{
				Name:    sess.Profile.Name,
				Email:   sess.Profile.Email,
				Phone:   sess.Profile.Phone,
				Address: sess.Profile.Address,
			}
		}
	}
	if s.summary != nil {
		sum := *s.summary
		v.Summary = &sum
	}
	return v
}

func trimDetails(d CustomerDetails) CustomerDetails {
	return CustomerDetails{
		Name:    strings.TrimSpace(d.Name),
		Email:   strings.TrimSpace(d.Email),
		Phone:   strings.TrimSpace(d.Phone),
		Address: strings.TrimSpace(d.Address),
	}
}

func joinNames(items []models.CartLineItem) string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return strings.Join(names, ", ")
}

func joinDurations(items []models.CartLineItem) string {
	var out []string
	for _, it := range items {
		if it.Duration != "" && !slices.Contains(out, it.Duration) {
			out = append(out, it.Duration)
		}
	}
	return strings.Join(out, ", ")
}

// unionInclusions flattens every item's inclusions, first occurrence wins.
func unionInclusions(items []models.CartLineItem) []string {
	out := []string{}
	for _, it := range items {
		for _, inc := range it.Inclusions {
			if !slices.Contains(out, inc) {
				out = append(out, inc)
			}
		}
	}
	return out
}
