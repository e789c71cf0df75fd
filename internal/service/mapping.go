package service

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	bookingpb "github.com/Leganyst/restaurant-booking/internal/api/booking/v1"
	"github.com/Leganyst/restaurant-booking/internal/calendar"
)

func toCalendarCell(c calendar.Cell) *bookingpb.CalendarCell {
	switch c.Kind {
	case calendar.CellHeader:
		return &bookingpb.CalendarCell{Kind: bookingpb.CellKind_CELL_KIND_HEADER, Label: c.Label}
	case calendar.CellDay:
		return &bookingpb.CalendarCell{
			Kind:      bookingpb.CellKind_CELL_KIND_DAY,
			Date:      c.Date.Format(dateLayout),
			Day:       int32(c.Day),
			Occupancy: int32(c.Occupancy),
			Badge:     calendar.OccupancyBadge(c.Occupancy),
			Disabled:  c.Disabled,
		}
	default:
		return &bookingpb.CalendarCell{Kind: bookingpb.CellKind_CELL_KIND_BLANK}
	}
}

func toTable(t calendar.Table) *bookingpb.Table {
	return &bookingpb.Table{
		Id:       t.ID,
		Number:   int32(t.Number),
		Capacity: int32(t.Capacity),
		Label:    calendar.FormatTableOption(t),
	}
}

func toReservation(r calendar.Reservation, loc *time.Location) *bookingpb.Reservation {
	return &bookingpb.Reservation{
		Id:          r.ID,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		TableId:     r.TableID,
		TableNumber: int32(r.TableNumber),
		StartsAt:    timestamppb.New(r.StartsAt),
		PartySize:   int32(r.PartySize),
		Status:      string(r.Status),
		Notes:       r.Notes,
		Summary:     calendar.FormatReservationForUser(r, loc),
	}
}
