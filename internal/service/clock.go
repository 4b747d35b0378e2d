package service

import (
	"fmt"
	"time"

	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
	"github.com/google/uuid"
)

// Display formats of the en-BD locale the storefront renders dates in.
const (
	dateLayout = "02/01/2006"
	timeLayout = "3:04:05 PM"
)

type Clock func() time.Time

type IDGenerator func() models.ID

func newUUID() models.ID {
	return models.ID(uuid.NewString())
}

// bookingReference is the human-facing booking id: TOUR- and the last six
// digits of the millisecond clock. It is not unique on its own; Booking.ID is.
func bookingReference(now time.Time) string {
	return fmt.Sprintf("TOUR-%06d", now.UnixMilli()%1_000_000)
}

// Options carries the injectable clock and id source shared by the stores.
type Options struct {
	Now   Clock
	NewID IDGenerator
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = newUUID
	}
	return o
}
