package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/restaurant-booking/internal/calendar"
	"github.com/Leganyst/restaurant-booking/internal/model"
	"github.com/Leganyst/restaurant-booking/internal/snapshot"
)

// SnapshotSource читает брони и столы прямо из базы бэкенда.
// Реализует snapshot.Source.
type SnapshotSource struct {
	tables       TableRepository
	reservations ReservationRepository
	loc          *time.Location
}

// NewSnapshotSource: loc задаёт пояс, в котором бэкенд пишет fecha_hora.
func NewSnapshotSource(tables TableRepository, reservations ReservationRepository, loc *time.Location) *SnapshotSource {
	if loc == nil {
		loc = time.UTC
	}
	return &SnapshotSource{
		tables:       tables,
		reservations: reservations,
		loc:          loc,
	}
}

func (s *SnapshotSource) Load(ctx context.Context) ([]calendar.Reservation, []calendar.Table, error) {
	rows, err := s.reservations.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list reservations: %w", err)
	}
	tableRows, err := s.tables.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list tables: %w", err)
	}

	reservations := make([]calendar.Reservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, ToCalendarReservation(row, s.loc))
	}
	tables := make([]calendar.Table, 0, len(tableRows))
	for _, row := range tableRows {
		tables = append(tables, ToCalendarTable(row))
	}

	return reservations, tables, nil
}

// Reservation читает одну бронь из базы, минуя снапшот.
func (s *SnapshotSource) Reservation(ctx context.Context, id int64) (calendar.Reservation, error) {
	row, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return calendar.Reservation{}, notFound(err, "reservation %d", id)
	}
	return ToCalendarReservation(*row, s.loc), nil
}

// Table читает стол по ID.
func (s *SnapshotSource) Table(ctx context.Context, id int64) (calendar.Table, error) {
	row, err := s.tables.GetByID(ctx, id)
	if err != nil {
		return calendar.Table{}, notFound(err, "table %d", id)
	}
	return ToCalendarTable(*row), nil
}

// ReservationsBetween отдаёт брони в [from, to). Границы переводятся
// в настенное время бэкенда, в котором хранится fecha_hora.
func (s *SnapshotSource) ReservationsBetween(ctx context.Context, from, to time.Time) ([]calendar.Reservation, error) {
	rows, err := s.reservations.ListByRange(ctx, naiveIn(from, s.loc), naiveIn(to, s.loc))
	if err != nil {
		return nil, fmt.Errorf("list reservations by range: %w", err)
	}
	out := make([]calendar.Reservation, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToCalendarReservation(row, s.loc))
	}
	return out, nil
}

func notFound(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, snapshot.ErrNotFound)
	}
	return fmt.Errorf("get %s: %w", what, err)
}

func ToCalendarReservation(m model.Reservation, loc *time.Location) calendar.Reservation {
	r := calendar.Reservation{
		ID:        m.ID,
		TableID:   m.TableID,
		StartsAt:  wallClockIn(m.StartsAt, loc),
		PartySize: m.PartySize,
		Status:    calendar.ParseStatus(m.Status),
		Notes:     m.Notes,
	}
	if m.Client != nil {
		r.ClientName = m.Client.Name
		r.ClientEmail = m.Client.Email
	}
	if m.Table != nil {
		r.TableNumber = m.Table.Number
	}
	return r
}

func ToCalendarTable(m model.Table) calendar.Table {
	return calendar.Table{
		ID:        m.ID,
		Number:    m.Number,
		Capacity:  m.Capacity,
		Available: m.Available,
	}
}

// wallClockIn переносит «настенное» время колонки без пояса в loc.
// Драйверы отдают такие значения как UTC, хотя бэкенд писал локальное время.
func wallClockIn(t time.Time, loc *time.Location) time.Time {
	y, mo, d := t.Date()
	h, mi, sec := t.Clock()
	return time.Date(y, mo, d, h, mi, sec, t.Nanosecond(), loc)
}

// naiveIn обратна wallClockIn: момент t как настенное время loc, помеченное UTC.
func naiveIn(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, mo, d := t.Date()
	h, mi, sec := t.Clock()
	return time.Date(y, mo, d, h, mi, sec, t.Nanosecond(), time.UTC)
}
