package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	bookingpb "github.com/Leganyst/restaurant-booking/internal/api/booking/v1"
	"github.com/Leganyst/restaurant-booking/internal/backend"
	"github.com/Leganyst/restaurant-booking/internal/calendar"
	"github.com/Leganyst/restaurant-booking/internal/snapshot"
)

const dateLayout = "2006-01-02"

// Backend: запись в бэкенд ресторана. Чтение идёт через снапшот.
type Backend interface {
	CreateReservation(ctx context.Context, req calendar.BookingRequest) (calendar.Reservation, error)
	CancelReservation(ctx context.Context, id int64) error
}

// Snapshots: хранилище последнего снапшота броней и столов.
type Snapshots interface {
	Current() *snapshot.Snapshot
	Reload(ctx context.Context) (*snapshot.Snapshot, error)
}

// Lookup: точечные чтения для проверок перед записью и для календаря.
// По умолчанию отвечает снапшот; в режиме db их обслуживает база бэкенда.
type Lookup interface {
	Reservation(ctx context.Context, id int64) (calendar.Reservation, error)
	Table(ctx context.Context, id int64) (calendar.Table, error)
	ReservationsBetween(ctx context.Context, from, to time.Time) ([]calendar.Reservation, error)
}

type BookingService struct {
	bookingpb.UnimplementedBookingServiceServer

	store   Snapshots
	lookup  Lookup
	backend Backend
	policy  calendar.Policy
	log     *zap.Logger
	now     func() time.Time
}

func NewBookingService(
	store Snapshots,
	backend Backend,
	policy calendar.Policy,
	log *zap.Logger,
) *BookingService {
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingService{
		store:   store,
		lookup:  snapshotLookup{store: store},
		backend: backend,
		policy:  policy,
		log:     log,
		now:     time.Now,
	}
}

// WithLookup подменяет источник точечных чтений.
func (s *BookingService) WithLookup(l Lookup) *BookingService {
	if l != nil {
		s.lookup = l
	}
	return s
}

// snapshotLookup читает из текущего снапшота.
type snapshotLookup struct {
	store Snapshots
}

func (l snapshotLookup) Reservation(_ context.Context, id int64) (calendar.Reservation, error) {
	r, ok := l.store.Current().FindReservation(id)
	if !ok {
		return calendar.Reservation{}, fmt.Errorf("reservation %d: %w", id, snapshot.ErrNotFound)
	}
	return r, nil
}

func (l snapshotLookup) Table(_ context.Context, id int64) (calendar.Table, error) {
	t, ok := l.store.Current().FindTable(id)
	if !ok {
		return calendar.Table{}, fmt.Errorf("table %d: %w", id, snapshot.ErrNotFound)
	}
	return t, nil
}

func (l snapshotLookup) ReservationsBetween(_ context.Context, from, to time.Time) ([]calendar.Reservation, error) {
	return l.store.Current().Between(from, to), nil
}

func (s *BookingService) today() time.Time {
	return s.now().In(s.policy.Location)
}

// GetCalendar строит сетку месяца с занятостью по дням.
func (s *BookingService) GetCalendar(
	ctx context.Context,
	req *bookingpb.GetCalendarRequest,
) (*bookingpb.GetCalendarResponse, error) {
	today := s.today()

	year, month := int(req.GetYear()), int(req.GetMonth())
	if year == 0 && month == 0 {
		year, month = today.Year(), int(today.Month())
	}
	if month < 1 || month > 12 {
		return nil, status.Error(codes.InvalidArgument, "month must be in 1..12")
	}
	if year < 1 || year > 9999 {
		return nil, status.Error(codes.InvalidArgument, "year is out of range")
	}

	anchor := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.policy.Location)
	reservations, err := s.lookup.ReservationsBetween(ctx, anchor, anchor.AddDate(0, 1, 0))
	if err != nil {
		s.log.Warn("read month reservations failed", zap.Time("month", anchor), zap.Error(err))
		return nil, status.Errorf(codes.Unavailable, "read reservations: %v", err)
	}
	cells := calendar.RenderCalendar(anchor, reservations, today)

	resp := &bookingpb.GetCalendarResponse{
		Title:   calendar.MonthTitle(anchor),
		Year:    int32(year),
		Month:   int32(month),
		Headers: append([]string(nil), calendar.WeekdayHeaders[:]...),
		Cells:   make([]*bookingpb.CalendarCell, 0, len(cells)),
	}
	for _, c := range cells {
		resp.Cells = append(resp.Cells, toCalendarCell(c))
	}

	return resp, nil
}

// GetDayOccupancy считает активные брони на дату.
func (s *BookingService) GetDayOccupancy(
	ctx context.Context,
	req *bookingpb.GetDayOccupancyRequest,
) (*bookingpb.GetDayOccupancyResponse, error) {
	date, err := s.parseDate(req.GetDate())
	if err != nil {
		return nil, err
	}

	reservations, err := s.lookup.ReservationsBetween(ctx, date, date.AddDate(0, 0, 1))
	if err != nil {
		s.log.Warn("read day reservations failed", zap.Time("date", date), zap.Error(err))
		return nil, status.Errorf(codes.Unavailable, "read reservations: %v", err)
	}

	count := calendar.ComputeDayOccupancy(reservations, date)
	return &bookingpb.GetDayOccupancyResponse{
		Date:  date.Format(dateLayout),
		Count: int32(count),
		Badge: calendar.OccupancyBadge(count),
	}, nil
}

// ListSlots: состояние каждого слота расписания в выбранный день.
func (s *BookingService) ListSlots(
	ctx context.Context,
	req *bookingpb.ListSlotsRequest,
) (*bookingpb.ListSlotsResponse, error) {
	date, err := s.parseDate(req.GetDate())
	if err != nil {
		return nil, err
	}

	states := calendar.SlotAvailability(
		s.store.Current().Reservations,
		date,
		s.policy.Schedule,
		s.policy.SlotCapacity,
	)

	resp := &bookingpb.ListSlotsResponse{
		Date:     date.Format(dateLayout),
		Capacity: int32(s.policy.SlotCapacity),
		Slots:    make([]*bookingpb.SlotState, 0, len(states)),
	}
	for _, st := range states {
		resp.Slots = append(resp.Slots, &bookingpb.SlotState{
			Slot:      st.Slot.String(),
			StartsAt:  timestamppb.New(st.StartsAt),
			Booked:    int32(st.Booked),
			Remaining: int32(st.Remaining),
			Available: st.Available,
		})
	}

	return resp, nil
}

// ListAvailableTables отдаёт столы, подходящие по вместимости и свободные на слот.
func (s *BookingService) ListAvailableTables(
	ctx context.Context,
	req *bookingpb.ListAvailableTablesRequest,
) (*bookingpb.ListAvailableTablesResponse, error) {
	date, err := s.parseDate(req.GetDate())
	if err != nil {
		return nil, err
	}
	slot, err := parseSlot(req.GetSlot())
	if err != nil {
		return nil, err
	}
	if req.GetPartySize() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "party_size must be positive")
	}

	snap := s.store.Current()
	tables := calendar.ListAvailableTables(snap.Tables, snap.Reservations, date, slot, int(req.GetPartySize()))

	resp := &bookingpb.ListAvailableTablesResponse{
		Tables: make([]*bookingpb.Table, 0, len(tables)),
	}
	for _, t := range tables {
		resp.Tables = append(resp.Tables, toTable(t))
	}

	return resp, nil
}

// ListReservations: брони от поздних к ранним, постранично.
func (s *BookingService) ListReservations(
	ctx context.Context,
	req *bookingpb.ListReservationsRequest,
) (*bookingpb.ListReservationsResponse, error) {
	if req.GetPage() < 0 || req.GetPageSize() < 0 {
		return nil, status.Error(codes.InvalidArgument, "page and page_size must not be negative")
	}

	sorted := calendar.SortByStartsDesc(s.store.Current().Reservations)
	page := calendar.Paginate(sorted, int(req.GetPage()), int(req.GetPageSize()))

	resp := &bookingpb.ListReservationsResponse{
		Reservations: make([]*bookingpb.Reservation, 0, len(page.Items)),
		Page:         int32(page.Page),
		PageSize:     int32(page.PageSize),
		Total:        int32(page.Total),
		HasNext:      page.HasNext,
		HasPrev:      page.HasPrev,
	}
	for _, r := range page.Items {
		resp.Reservations = append(resp.Reservations, toReservation(r, s.policy.Location))
	}

	return resp, nil
}

// CreateReservation проверяет заявку по снапшоту и отправляет её в бэкенд.
func (s *BookingService) CreateReservation(
	ctx context.Context,
	req *bookingpb.CreateReservationRequest,
) (*bookingpb.CreateReservationResponse, error) {
	date, err := s.parseDate(req.GetDate())
	if err != nil {
		return nil, err
	}
	slot, err := parseSlot(req.GetSlot())
	if err != nil {
		return nil, err
	}

	booking := calendar.BookingRequest{
		Name:      req.GetName(),
		Email:     req.GetEmail(),
		Phone:     req.GetPhone(),
		TableID:   req.GetTableId(),
		Date:      date,
		Slot:      slot,
		PartySize: int(req.GetPartySize()),
		Notes:     req.GetNotes(),
	}
	if err := calendar.ValidateBookingRequest(booking, s.policy, s.now()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	table, err := s.lookup.Table(ctx, booking.TableID)
	if err != nil {
		return nil, lookupStatus(err, "table", booking.TableID)
	}
	if table.Capacity < booking.PartySize {
		return nil, status.Errorf(codes.InvalidArgument,
			"table %d seats %d, party of %d requested", table.Number, table.Capacity, booking.PartySize)
	}

	snap := s.store.Current()
	if !calendar.IsSlotAvailable(snap.Reservations, date, slot, s.policy.SlotCapacity) {
		return nil, status.Errorf(codes.ResourceExhausted, "slot %s on %s is full", slot, date.Format(dateLayout))
	}
	free := calendar.ListAvailableTables([]calendar.Table{table}, snap.Reservations, date, slot, booking.PartySize)
	if len(free) == 0 {
		return nil, status.Errorf(codes.FailedPrecondition, "table %d is already booked at %s", table.Number, slot)
	}

	created, err := s.backend.CreateReservation(ctx, booking)
	if err != nil {
		s.log.Warn("create reservation failed", zap.Int64("table_id", booking.TableID), zap.Error(err))
		return nil, backendStatus(err, "create reservation")
	}
	if created.TableNumber == 0 {
		created.TableNumber = table.Number
	}

	s.log.Info("reservation created",
		zap.Int64("reservation_id", created.ID),
		zap.Int64("table_id", created.TableID),
		zap.Time("starts_at", created.StartsAt),
	)
	s.reloadAfterWrite(ctx)

	return &bookingpb.CreateReservationResponse{
		Reservation: toReservation(created, s.policy.Location),
	}, nil
}

// CancelReservation отменяет активную бронь.
func (s *BookingService) CancelReservation(
	ctx context.Context,
	req *bookingpb.CancelReservationRequest,
) (*bookingpb.CancelReservationResponse, error) {
	id := req.GetId()
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	r, err := s.lookup.Reservation(ctx, id)
	if err != nil {
		return nil, lookupStatus(err, "reservation", id)
	}
	if !calendar.CanTransition(r.Status, calendar.StatusCancelled) {
		return nil, status.Errorf(codes.FailedPrecondition, "reservation %d is already %s", id, r.Status)
	}

	if err := s.backend.CancelReservation(ctx, id); err != nil {
		s.log.Warn("cancel reservation failed", zap.Int64("reservation_id", id), zap.Error(err))
		return nil, backendStatus(err, "cancel reservation")
	}

	s.log.Info("reservation cancelled", zap.Int64("reservation_id", id))
	s.reloadAfterWrite(ctx)

	r.Status = calendar.StatusCancelled
	return &bookingpb.CancelReservationResponse{
		Reservation: toReservation(r, s.policy.Location),
	}, nil
}

// ReloadSnapshot принудительно перечитывает данные бэкенда.
func (s *BookingService) ReloadSnapshot(
	ctx context.Context,
	_ *bookingpb.ReloadSnapshotRequest,
) (*bookingpb.ReloadSnapshotResponse, error) {
	snap, err := s.store.Reload(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "reload snapshot: %v", err)
	}
	return &bookingpb.ReloadSnapshotResponse{
		Reservations: int32(len(snap.Reservations)),
		Tables:       int32(len(snap.Tables)),
		LoadedAt:     timestamppb.New(snap.LoadedAt),
	}, nil
}

// reloadAfterWrite вызывается после успешной записи. Ошибка только логируется,
// снапшот обновится на следующем тике.
func (s *BookingService) reloadAfterWrite(ctx context.Context) {
	if _, err := s.store.Reload(ctx); err != nil {
		s.log.Warn("snapshot reload after write failed", zap.Error(err))
	}
}

func (s *BookingService) parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, status.Error(codes.InvalidArgument, "date is required")
	}
	date, err := time.ParseInLocation(dateLayout, raw, s.policy.Location)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid date %q, expected YYYY-MM-DD", raw)
	}
	return date, nil
}

func parseSlot(raw string) (calendar.Slot, error) {
	slot, err := calendar.ParseSlot(raw)
	if err != nil {
		return calendar.Slot{}, status.Errorf(codes.InvalidArgument, "invalid slot %q, expected HH:MM", raw)
	}
	return slot, nil
}

func lookupStatus(err error, what string, id int64) error {
	switch {
	case errors.Is(err, snapshot.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s %d not found", what, id)
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "read %s %d: %v", what, id, err)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "read %s %d: %v", what, id, err)
	default:
		return status.Errorf(codes.Unavailable, "read %s %d: %v", what, id, err)
	}
}

func backendStatus(err error, op string) error {
	switch {
	case errors.Is(err, backend.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s: %v", op, err)
	case backend.IsClientError(err):
		return status.Errorf(codes.FailedPrecondition, "%s: %v", op, err)
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s: %v", op, err)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s: %v", op, err)
	default:
		return status.Errorf(codes.Unavailable, "%s: %v", op, err)
	}
}
