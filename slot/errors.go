package slot

import "errors"

// ErrSlotUnavailable reports a booking precondition failure: the slot does
// not exist or has already been booked. Retrying the same booking fails the
// same way until the slot is freed out of band.
var ErrSlotUnavailable = errors.New("slot not available")
