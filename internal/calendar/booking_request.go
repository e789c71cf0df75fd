package calendar

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Ошибки валидации заявки на бронь.
var (
	ErrNameRequired     = errors.New("client name is required")
	ErrInvalidEmail     = errors.New("invalid client email")
	ErrPhoneRequired    = errors.New("client phone is required")
	ErrInvalidPartySize = errors.New("party size must be positive")
	ErrTableRequired    = errors.New("table is required")
	ErrDateInPast       = errors.New("date is in the past")
	ErrSlotNotOffered   = errors.New("slot is not in the schedule")
)

// BookingRequest: заявка гостя на бронь стола.
type BookingRequest struct {
	Name      string
	Email     string
	Phone     string
	TableID   int64
	Date      time.Time
	Slot      Slot
	PartySize int
	Notes     string
}

func (r BookingRequest) StartsAt() time.Time {
	return r.Slot.On(r.Date)
}

// ValidateBookingRequest:
//   - проверяет контактные данные гостя;
//   - проверяет размер компании и выбранный стол;
//   - проверяет, что слот есть в расписании и день не в прошлом.
//
// Занятость слота и стола здесь не проверяется, это делает вызывающий по снапшоту.
func ValidateBookingRequest(req BookingRequest, policy Policy, now time.Time) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrNameRequired
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, req.Email)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return ErrPhoneRequired
	}
	if req.PartySize <= 0 {
		return ErrInvalidPartySize
	}
	if req.TableID <= 0 {
		return ErrTableRequired
	}
	if !Contains(policy.Schedule, req.Slot) {
		return fmt.Errorf("%w: %s", ErrSlotNotOffered, req.Slot)
	}

	day := dateOnly(req.Date.In(policy.Location))
	if day.Before(dateOnly(now.In(policy.Location))) {
		return ErrDateInPast
	}

	return nil
}
