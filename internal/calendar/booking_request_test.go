package calendar

import (
	"errors"
	"testing"
	"time"
)

func validRequest(t *testing.T) BookingRequest {
	t.Helper()
	return BookingRequest{
		Name:      "Ana Pérez",
		Email:     "ana@example.com",
		Phone:     "+34 600 000 000",
		TableID:   2,
		Date:      mustTime(t, 2025, 12, 1, 0, 0),
		Slot:      Slot{Hour: 19},
		PartySize: 4,
	}
}

func TestValidateBookingRequest_OK(t *testing.T) {
	now := mustTime(t, 2025, 12, 1, 20, 0)
	if err := ValidateBookingRequest(validRequest(t), DefaultPolicy(time.UTC), now); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestValidateBookingRequest_Errors(t *testing.T) {
	now := mustTime(t, 2025, 12, 1, 10, 0)
	policy := DefaultPolicy(time.UTC)

	cases := []struct {
		name   string
		mutate func(*BookingRequest)
		want   error
	}{
		{"empty name", func(r *BookingRequest) { r.Name = "  " }, ErrNameRequired},
		{"bad email", func(r *BookingRequest) { r.Email = "ana-at-example" }, ErrInvalidEmail},
		{"no phone", func(r *BookingRequest) { r.Phone = "" }, ErrPhoneRequired},
		{"zero party", func(r *BookingRequest) { r.PartySize = 0 }, ErrInvalidPartySize},
		{"no table", func(r *BookingRequest) { r.TableID = 0 }, ErrTableRequired},
		{"off schedule", func(r *BookingRequest) { r.Slot = Slot{Hour: 16} }, ErrSlotNotOffered},
		{"yesterday", func(r *BookingRequest) { r.Date = mustTime(t, 2025, 11, 30, 0, 0) }, ErrDateInPast},
	}

	for _, tc := range cases {
		req := validRequest(t)
		tc.mutate(&req)
		if err := ValidateBookingRequest(req, policy, now); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestBookingRequest_StartsAt(t *testing.T) {
	req := validRequest(t)
	if !req.StartsAt().Equal(mustTime(t, 2025, 12, 1, 19, 0)) {
		t.Fatalf("unexpected start %v", req.StartsAt())
	}
}
