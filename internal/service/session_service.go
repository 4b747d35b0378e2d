package service

import (
	"context"
	"fmt"
	"log"
	"net/mail"
	"slices"
	"strings"
	"sync"

	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/Eursukkul/tour-booking/tour-service/internal/notify"
	"github.com/Eursukkul/tour-booking/tour-service/internal/repository"
)

type LoginMode string

const (
	ModeLogin  LoginMode = "login"
	ModeSignup LoginMode = "signup"
)

// LoginForm is what the login/signup dialog submits. Authentication is a
// mock: the password is checked for presence (and match on signup) only.
type LoginForm struct {
	Mode            LoginMode
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Address         string
}

type ProfileUpdate struct {
	Name      *string
	Email     *string
	Phone     *string
	Address   *string
	Favorites []int
}

// CartResetter is what logout needs from the cart.
type CartResetter interface {
	Reset(ctx context.Context) error
}

type SessionService interface {
	Current() models.UserSession
	Active() bool
	Login(ctx context.Context, form LoginForm) (models.UserProfile, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, upd ProfileUpdate) (models.UserProfile, error)
	ToggleFavorite(ctx context.Context, packageID int) (bool, error)
	AttachBooking(ctx context.Context, booking models.Booking) error
}

type sessionService struct {
	mu       sync.Mutex
	loggedIn bool
	profile  *models.UserProfile
	repo     repository.SessionRepository
	cart     CartResetter
	notifier notify.Notifier
	opts     Options
}

// NewSessionService restores the flag and the profile independently. A
// restored session may therefore be flagged in without a profile; Active
// reports false in that case.
func NewSessionService(ctx context.Context, repo repository.SessionRepository, cart CartResetter, notifier notify.Notifier, opts Options) (SessionService, error) {
	loggedIn, err := repo.LoadLoggedIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session flag: %w", err)
	}
	profile, err := repo.LoadProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore profile: %w", err)
	}
	if notifier == nil {
		notifier = notify.Discard
	}
	return &sessionService{
		loggedIn: loggedIn,
		profile:  profile,
		repo:     repo,
		cart:     cart,
		notifier: notifier,
		opts:     opts.withDefaults(),
	}, nil
}

func (s *sessionService) Current() models.UserSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := models.UserSession{IsLoggedIn: s.loggedIn}
	if s.profile != nil {
		p := s.profile.Clone()
		sess.Profile = &p
	}
	return sess
}

func (s *sessionService) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn && s.profile != nil
}

func (s *sessionService) Login(ctx context.Context, form LoginForm) (models.UserProfile, error) {
	if err := validateLogin(&form); err != nil {
		return models.UserProfile{}, err
	}

	now := s.opts.Now()
	profile := models.UserProfile{
		ID:        s.opts.NewID(),
		Name:      form.Name,
		Email:     form.Email,
		JoinDate:  now.Format(dateLayout),
		Bookings:  []models.Booking{},
		Favorites: []int{},
		Phone:     strings.TrimSpace(form.Phone),
		Address:   strings.TrimSpace(form.Address),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The flag is written last. If it fails, the previous userData goes back.
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}
	if err := s.repo.SaveLoggedIn(ctx, true); err != nil {
		s.restoreProfile(ctx)
		return models.UserProfile{}, fmt.Errorf("save session flag: %w", err)
	}
	s.loggedIn = true
	s.profile = &profile

	s.notifier.Notify(ctx, notify.LoggedIn(profile))
	return profile.Clone(), nil
}

func validateLogin(form *LoginForm) error {
	form.Email = strings.TrimSpace(form.Email)
	form.Name = strings.TrimSpace(form.Name)
	if form.Mode == "" {
		form.Mode = ModeLogin
	}

	switch form.Mode {
	case ModeLogin, ModeSignup:
	default:
		return invalid("mode", "must be login or signup")
	}
	if form.Mode == ModeSignup && form.Name == "" {
		return invalid("name", "is required")
	}
	if form.Email == "" {
		return invalid("email", "is required")
	}
	if _, err := mail.ParseAddress(form.Email); err != nil {
		return invalid("email", "is not a valid address")
	}
	if form.Password == "" {
		return invalid("password", "is required")
	}
	if form.Mode == ModeSignup && form.Password != form.ConfirmPassword {
		return invalid("confirmPassword", "passwords do not match")
	}
	if form.Name == "" {
		form.Name, _, _ = strings.Cut(form.Email, "@")
	}
	return nil
}

// restoreProfile puts the in-memory profile back into storage after a failed
// login. Callers hold s.mu.
func (s *sessionService) restoreProfile(ctx context.Context) {
	var err error
	if s.profile == nil {
		err = s.repo.DeleteProfile(ctx)
	} else {
		err = s.repo.SaveProfile(ctx, *s.profile)
	}
	if err != nil {
		log.Printf("[Session] failed to restore userData after login failure: %v", err)
	}
}

// Logout always empties the cart as well. The cart goes first, then the flag,
// then the profile; memory follows each write that lands, so a failure part
// way leaves either a logged-in user with an empty cart or a logged-out one,
// and calling Logout again finishes the job.
func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart != nil {
		if err := s.cart.Reset(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
	}
	if err := s.repo.SaveLoggedIn(ctx, false); err != nil {
		return fmt.Errorf("save session flag: %w", err)
	}
	s.loggedIn = false
	if err := s.repo.DeleteProfile(ctx); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	s.profile = nil

	s.notifier.Notify(ctx, notify.LoggedOut())
	return nil
}

func (s *sessionService) UpdateProfile(ctx context.Context, upd ProfileUpdate) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return models.UserProfile{}, ErrNotLoggedIn
	}

	next := s.profile.Clone()
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return models.UserProfile{}, invalid("name", "cannot be empty")
		}
		next.Name = name
	}
	if upd.Email != nil {
		email := strings.TrimSpace(*upd.Email)
		if _, err := mail.ParseAddress(email); err != nil {
			return models.UserProfile{}, invalid("email", "is not a valid address")
		}
		next.Email = email
	}
	if upd.Phone != nil {
		next.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.Address != nil {
		next.Address = strings.TrimSpace(*upd.Address)
	}
	if upd.Favorites != nil {
		next.Favorites = slices.Clone(upd.Favorites)
	}

	if err := s.commit(ctx, next); err != nil {
		return models.UserProfile{}, err
	}
	return next.Clone(), nil
}

// ToggleFavorite reports whether the package is a favorite afterwards.
func (s *sessionService) ToggleFavorite(ctx context.Context, packageID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return false, ErrNotLoggedIn
	}

	next := s.profile.Clone()
	on := true
	if i := slices.Index(next.Favorites, packageID); i >= 0 {
		next.Favorites = slices.Delete(next.Favorites, i, i+1)
		on = false
	} else {
		next.Favorites = append(next.Favorites, packageID)
	}

	if err := s.commit(ctx, next); err != nil {
		return false, err
	}
	return on, nil
}

// AttachBooking appends a point-in-time copy of the booking to the profile.
// Later edits or deletes in the booking store do not reach this copy.
func (s *sessionService) AttachBooking(ctx context.Context, booking models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return nil
	}
	next := s.profile.Clone()
	next.Bookings = append(next.Bookings, booking.Clone())
	return s.commit(ctx, next)
}

// commit callers hold s.mu.
func (s *sessionService) commit(ctx context.Context, profile models.UserProfile) error {
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	s.profile = &profile
	return nil
}
