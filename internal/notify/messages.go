package notify

import (
	"fmt"

	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
)

func ItemAdded(item models.CartLineItem) Notification {
	return Notification{Kind: CartItemAdded, Message: fmt.Sprintf("%q added to cart!", item.Name), Payload: item}
}

func ItemRemoved(item models.CartLineItem) Notification {
	return Notification{Kind: CartItemRemoved, Message: fmt.Sprintf("%q removed from cart!", item.Name), Payload: item}
}

func CartClearedNotice() Notification {
	return Notification{Kind: CartCleared, Message: "Cart cleared successfully!"}
}

func LoggedIn(profile models.UserProfile) Notification {
	return Notification{
		Kind:    SessionLoggedIn,
		Message: fmt.Sprintf("Welcome %s! Your profile has been created successfully.", profile.Name),
		Payload: map[string]any{"id": profile.ID, "email": profile.Email},
	}
}

func LoggedOut() Notification {
	return Notification{Kind: SessionLoggedOut, Message: "You have been logged out successfully."}
}

func BookingConfirmedNotice(b models.Booking) Notification {
	return Notification{Kind: BookingConfirmed, Message: fmt.Sprintf("Booking %s confirmed!", b.BookingID), Payload: b}
}

func BookingUpdatedNotice(b models.Booking) Notification {
	return Notification{Kind: BookingUpdated, Message: fmt.Sprintf("Booking %s updated.", b.BookingID), Payload: b}
}

func BookingDeletedNotice(b models.Booking) Notification {
	return Notification{Kind: BookingDeleted, Message: fmt.Sprintf("Booking %s deleted.", b.BookingID), Payload: map[string]any{"id": b.ID, "bookingId": b.BookingID}}
}
