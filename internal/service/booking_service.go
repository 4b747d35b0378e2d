package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/Eursukkul/tour-booking/tour-service/internal/notify"
	"github.com/Eursukkul/tour-booking/tour-service/internal/repository"
	"github.com/dustin/go-humanize"
)

// BookingDraft is everything a booking carries before the store stamps it.
// An empty BookingID is generated from the clock.
type BookingDraft struct {
	BookingID       string
	PackageName     string
	TotalPrice      int64
	Duration        string
	Travelers       int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	Inclusions      []string
	Packages        []models.CartLineItem
	PaymentMethod   string
}

type BookingUpdate struct {
	Travelers       *int
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	CustomerAddress *string
}

// ProfileBookings receives a copy of every new booking.
type ProfileBookings interface {
	AttachBooking(ctx context.Context, booking models.Booking) error
}

type BookingService interface {
	List() []models.Booking
	Get(id models.ID) (models.Booking, error)
	Create(ctx context.Context, draft BookingDraft) (models.Booking, error)
	Update(ctx context.Context, id models.ID, upd BookingUpdate) (models.Booking, error)
	Delete(ctx context.Context, id models.ID, confirmed bool) (models.Booking, error)
	Receipt(id models.ID) (string, error)
}

type bookingService struct {
	mu       sync.Mutex
	bookings []models.Booking
	repo     repository.BookingRepository
	profiles ProfileBookings
	notifier notify.Notifier
	opts     Options
}

func NewBookingService(ctx context.Context, repo repository.BookingRepository, profiles ProfileBookings, notifier notify.Notifier, opts Options) (BookingService, error) {
	bookings, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore bookings: %w", err)
	}
	if notifier == nil {
		notifier = notify.Discard
	}
	return &bookingService{
		bookings: bookings,
		repo:     repo,
		profiles: profiles,
		notifier: notifier,
		opts:     opts.withDefaults(),
	}, nil
}

func (s *bookingService) List() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneBookings(s.bookings)
}

func (s *bookingService) Get(id models.ID) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Booking{}, ErrBookingNotFound
	}
	return s.bookings[i].Clone(), nil
}

func (s *bookingService) Create(ctx context.Context, draft BookingDraft) (models.Booking, error) {
	now := s.opts.Now()
	ref := draft.BookingID
	if ref == "" {
		ref = bookingReference(now)
	}
	inclusions := draft.Inclusions
	if inclusions == nil {
		inclusions = []string{}
	}
	packages := draft.Packages
	if packages == nil {
		packages = []models.CartLineItem{}
	}

	booking := models.Booking{
		ID:              s.opts.NewID(),
		BookingID:       ref,
		PackageName:     draft.PackageName,
		TotalPrice:      draft.TotalPrice,
		Duration:        draft.Duration,
		Travelers:       draft.Travelers,
		CustomerName:    draft.CustomerName,
		CustomerEmail:   draft.CustomerEmail,
		CustomerPhone:   draft.CustomerPhone,
		CustomerAddress: draft.CustomerAddress,
		Inclusions:      inclusions,
		Packages:        packages,
		PaymentMethod:   draft.PaymentMethod,
		BookingDate:     now.Format(dateLayout),
		BookingTime:     now.Format(timeLayout),
		Status:          models.StatusConfirmed,
	}.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(cloneBookings(s.bookings), booking)
	if err := s.commit(ctx, next); err != nil {
		return models.Booking{}, err
	}

	// The booking list is the record of truth; a failed profile copy is
	// logged and does not undo the booking.
	if s.profiles != nil {
		if err := s.profiles.AttachBooking(ctx, booking); err != nil {
			log.Printf("[BookingService] booking %s not copied to profile: %v", booking.BookingID, err)
		}
	}

	s.notifier.Notify(ctx, notify.BookingConfirmedNotice(booking))
	return booking.Clone(), nil
}

// Update merges the given fields. The profile's copy is a receipt taken at
// confirmation time and is left as it was.
func (s *bookingService) Update(ctx context.Context, id models.ID, upd BookingUpdate) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Booking{}, ErrBookingNotFound
	}

	next := cloneBookings(s.bookings)
	b := &next[i]
	if upd.Travelers != nil {
		if *upd.Travelers < 1 {
			return models.Booking{}, invalid("travelers", "must be at least 1")
		}
		b.Travelers = *upd.Travelers
	}
	if upd.CustomerName != nil {
		name := strings.TrimSpace(*upd.CustomerName)
		if name == "" {
			return models.Booking{}, invalid("customerName", "cannot be empty")
		}
		b.CustomerName = name
	}
	if upd.CustomerEmail != nil {
		email := strings.TrimSpace(*upd.CustomerEmail)
		if email == "" {
			return models.Booking{}, invalid("customerEmail", "cannot be empty")
		}
		b.CustomerEmail = email
	}
	if upd.CustomerPhone != nil {
		b.CustomerPhone = strings.TrimSpace(*upd.CustomerPhone)
	}
	if upd.CustomerAddress != nil {
		b.CustomerAddress = strings.TrimSpace(*upd.CustomerAddress)
	}

	if err := s.commit(ctx, next); err != nil {
		return models.Booking{}, err
	}
	updated := next[i].Clone()
	s.notifier.Notify(ctx, notify.BookingUpdatedNotice(updated))
	return updated, nil
}

func (s *bookingService) Delete(ctx context.Context, id models.ID, confirmed bool) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Booking{}, ErrBookingNotFound
	}
	if !confirmed {
		return models.Booking{}, ErrConfirmationRequired
	}

	removed := s.bookings[i].Clone()
	next := make([]models.Booking, 0, len(s.bookings)-1)
	for j, b := range s.bookings {
		if j != i {
			next = append(next, b.Clone())
		}
	}

	if err := s.commit(ctx, next); err != nil {
		return models.Booking{}, err
	}
	s.notifier.Notify(ctx, notify.BookingDeletedNotice(removed))
	return removed, nil
}

// Receipt renders the plain-text confirmation a customer can download.
func (s *bookingService) Receipt(id models.ID) (string, error) {
	b, err := s.Get(id)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Booking Confirmation\n")
	sb.WriteString("====================\n")
	fmt.Fprintf(&sb, "Booking ID: %s\n", b.BookingID)
	fmt.Fprintf(&sb, "Package: %s\n", b.PackageName)
	fmt.Fprintf(&sb, "Date: %s\n", b.BookingDate)
	fmt.Fprintf(&sb, "Time: %s\n", b.BookingTime)
	fmt.Fprintf(&sb, "Travelers: %d\n", b.Travelers)
	fmt.Fprintf(&sb, "Total Price: ৳%s\n", humanize.Comma(b.TotalPrice))
	fmt.Fprintf(&sb, "Status: %s\n", b.Status)
	sb.WriteString("\nCustomer Details:\n")
	fmt.Fprintf(&sb, "Name: %s\n", b.CustomerName)
	fmt.Fprintf(&sb, "Email: %s\n", b.CustomerEmail)
	fmt.Fprintf(&sb, "Phone: %s\n", b.CustomerPhone)
	return sb.String(), nil
}

func (s *bookingService) indexOf(id models.ID) int {
	for i, b := range s.bookings {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// commit callers hold s.mu.
func (s *bookingService) commit(ctx context.Context, bookings []models.Booking) error {
	if err := s.repo.Save(ctx, bookings); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	s.bookings = bookings
	return nil
}

func cloneBookings(bookings []models.Booking) []models.Booking {
	out := make([]models.Booking, len(bookings))
	for i, b := range bookings {
		out[i] = b.Clone()
	}
	return out
}
