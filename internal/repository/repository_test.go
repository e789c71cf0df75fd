package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Leganyst/restaurant-booking/internal/calendar"
	"github.com/Leganyst/restaurant-booking/internal/model"
	"github.com/Leganyst/restaurant-booking/internal/snapshot"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// in-memory база живёт в одном соединении
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := model.SeedTables(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func seedReservations(t *testing.T, db *gorm.DB) {
	t.Helper()

	clients := []model.Client{
		{ID: 1, Name: "Ana", Email: "ana@example.com", Phone: "600000001"},
		{ID: 2, Name: "Luis", Email: "luis@example.com", Phone: "600000002"},
	}
	if err := db.Create(&clients).Error; err != nil {
		t.Fatalf("create clients: %v", err)
	}

	reservations := []model.Reservation{
		{ID: 10, ClientID: 1, TableID: 3, StartsAt: time.Date(2025, 12, 1, 19, 0, 0, 0, time.UTC), PartySize: 4, Status: model.ReservationStatusPending},
		{ID: 11, ClientID: 2, TableID: 1, StartsAt: time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC), PartySize: 2, Status: model.ReservationStatusCancelled, Notes: "ventana"},
		{ID: 12, ClientID: 1, TableID: 5, StartsAt: time.Date(2025, 12, 2, 21, 0, 0, 0, time.UTC), PartySize: 8, Status: model.ReservationStatusConfirmed},
	}
	if err := db.Create(&reservations).Error; err != nil {
		t.Fatalf("create reservations: %v", err)
	}
}

func TestSeedTables_Idempotent(t *testing.T) {
	db := newTestDB(t)

	if err := model.SeedTables(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	tables, err := NewGormTableRepository(db).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tables) != len(model.DefaultTables) {
		t.Fatalf("expected %d tables, got %d", len(model.DefaultTables), len(tables))
	}
	for i, tbl := range tables {
		if tbl.Number != i+1 || tbl.Capacity != model.DefaultTables[i].Capacity || !tbl.Available {
			t.Fatalf("unexpected table %+v at %d", tbl, i)
		}
	}
}

func TestGormTableRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormTableRepository(db)

	tbl, err := repo.GetByID(context.Background(), 4)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if tbl.Capacity != 6 {
		t.Fatalf("expected capacity 6, got %d", tbl.Capacity)
	}

	if _, err := repo.GetByID(context.Background(), 99); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestGormReservationRepository_ListPreloads(t *testing.T) {
	db := newTestDB(t)
	seedReservations(t, db)

	got, err := NewGormReservationRepository(db).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 reservations, got %d", len(got))
	}
	if got[0].ID != 11 || got[2].ID != 12 {
		t.Fatalf("expected order by fecha_hora, got %d..%d", got[0].ID, got[2].ID)
	}
	if got[0].Client == nil || got[0].Client.Name != "Luis" {
		t.Fatalf("client not preloaded: %+v", got[0].Client)
	}
	if got[0].Table == nil || got[0].Table.Number != 1 {
		t.Fatalf("table not preloaded: %+v", got[0].Table)
	}
}

func TestGormReservationRepository_ListByRange(t *testing.T) {
	db := newTestDB(t)
	seedReservations(t, db)

	from := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	got, err := NewGormReservationRepository(db).ListByRange(context.Background(), from, from.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("list by range: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reservations on Dec 1, got %d", len(got))
	}
	for _, r := range got {
		if r.ID == 12 {
			t.Fatalf("reservation from Dec 2 leaked into range")
		}
	}
}

func TestGormReservationRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	seedReservations(t, db)
	repo := NewGormReservationRepository(db)

	r, err := repo.GetByID(context.Background(), 12)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if r.Table == nil || r.Table.Capacity != 8 {
		t.Fatalf("unexpected table %+v", r.Table)
	}

	if _, err := repo.GetByID(context.Background(), 404); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestSnapshotSource_Load(t *testing.T) {
	db := newTestDB(t)
	seedReservations(t, db)

	loc := time.FixedZone("UTC-5", -5*3600)
	src := NewSnapshotSource(NewGormTableRepository(db), NewGormReservationRepository(db), loc)

	reservations, tables, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tables) != 5 || len(reservations) != 3 {
		t.Fatalf("unexpected sizes: %d tables, %d reservations", len(tables), len(reservations))
	}

	var dinner calendar.Reservation
	for _, r := range reservations {
		if r.ID == 10 {
			dinner = r
		}
	}
	// стенное время 19:00 читается в поясе бэкенда
	want := time.Date(2025, 12, 1, 19, 0, 0, 0, loc)
	if !dinner.StartsAt.Equal(want) {
		t.Fatalf("expected %v, got %v", want, dinner.StartsAt)
	}
	if dinner.ClientName != "Ana" || dinner.TableNumber != 3 || dinner.Status != calendar.StatusPending {
		t.Fatalf("unexpected reservation %+v", dinner)
	}

	day := time.Date(2025, 12, 1, 0, 0, 0, 0, loc)
	if got := calendar.ComputeDayOccupancy(reservations, day); got != 1 {
		t.Fatalf("expected occupancy 1 on Dec 1, got %d", got)
	}
}

func TestSnapshotSource_PointLookups(t *testing.T) {
	db := newTestDB(t)
	seedReservations(t, db)

	loc := time.FixedZone("UTC-5", -5*3600)
	src := NewSnapshotSource(NewGormTableRepository(db), NewGormReservationRepository(db), loc)
	ctx := context.Background()

	r, err := src.Reservation(ctx, 12)
	if err != nil {
		t.Fatalf("reservation: %v", err)
	}
	if r.Status != calendar.StatusConfirmed || r.TableNumber != 5 || r.ClientName != "Ana" {
		t.Fatalf("unexpected reservation %+v", r)
	}
	if !r.StartsAt.Equal(time.Date(2025, 12, 2, 21, 0, 0, 0, loc)) {
		t.Fatalf("unexpected starts_at %v", r.StartsAt)
	}

	if _, err := src.Reservation(ctx, 404); !errors.Is(err, snapshot.ErrNotFound) {
		t.Fatalf("expected snapshot.ErrNotFound, got %v", err)
	}

	tbl, err := src.Table(ctx, 2)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if tbl.Number != 2 || tbl.Capacity != 4 || !tbl.Available {
		t.Fatalf("unexpected table %+v", tbl)
	}

	if _, err := src.Table(ctx, 99); !errors.Is(err, snapshot.ErrNotFound) {
		t.Fatalf("expected snapshot.ErrNotFound, got %v", err)
	}
}

func TestSnapshotSource_ReservationsBetweenUsesBackendWallClock(t *testing.T) {
	db := newTestDB(t)
	seedReservations(t, db)

	loc := time.FixedZone("UTC-5", -5*3600)
	src := NewSnapshotSource(NewGormTableRepository(db), NewGormReservationRepository(db), loc)

	// 1 декабря в UTC-8 это [01.12 03:00, 02.12 03:00) по UTC-5
	west := time.FixedZone("UTC-8", -8*3600)
	from := time.Date(2025, 12, 1, 0, 0, 0, 0, west)

	got, err := src.ReservationsBetween(context.Background(), from, from.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("between: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(got))
	}
	for _, r := range got {
		if r.StartsAt.Location() != loc {
			t.Fatalf("expected times in backend zone, got %v", r.StartsAt.Location())
		}
	}

	// 1 декабря в UTC+3 это [30.11 16:00, 01.12 16:00) по UTC-5: 19:00 уже не входит
	east := time.FixedZone("UTC+3", 3*3600)
	from = time.Date(2025, 12, 1, 0, 0, 0, 0, east)
	early, err := src.ReservationsBetween(context.Background(), from, from.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("between: %v", err)
	}
	if len(early) != 1 || early[0].ID != 11 {
		t.Fatalf("expected only reservation 11, got %+v", early)
	}

	late, err := src.ReservationsBetween(context.Background(),
		time.Date(2025, 12, 2, 21, 0, 0, 0, loc), time.Date(2025, 12, 2, 21, 1, 0, 0, loc))
	if err != nil {
		t.Fatalf("between: %v", err)
	}
	if len(late) != 1 || late[0].ID != 12 {
		t.Fatalf("expected reservation 12, got %+v", late)
	}
}
