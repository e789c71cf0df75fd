package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Leganyst/restaurant-booking/internal/calendar"
)

var (
	ErrInvalidInterval = errors.New("refresh interval must be positive")
	// ErrNotFound возвращают источники точечных чтений, когда записи нет.
	ErrNotFound = errors.New("not found")
)

// Snapshot хранит данные бэкенда на момент загрузки.
// После публикации в Store не модифицируется.
type Snapshot struct {
	Reservations []calendar.Reservation
	Tables       []calendar.Table
	LoadedAt     time.Time
}

// FindReservation ищет бронь по ID.
func (s *Snapshot) FindReservation(id int64) (calendar.Reservation, bool) {
	for _, r := range s.Reservations {
		if r.ID == id {
			return r, true
		}
	}
	return calendar.Reservation{}, false
}

// FindTable ищет стол по ID.
func (s *Snapshot) FindTable(id int64) (calendar.Table, bool) {
	for _, t := range s.Tables {
		if t.ID == id {
			return t, true
		}
	}
	return calendar.Table{}, false
}

// Between возвращает брони, начинающиеся в полуинтервале [from, to).
func (s *Snapshot) Between(from, to time.Time) []calendar.Reservation {
	var out []calendar.Reservation
	for _, r := range s.Reservations {
		if !r.StartsAt.Before(from) && r.StartsAt.Before(to) {
			out = append(out, r)
		}
	}
	return out
}

// Source отдаёт брони и столы (REST-бэкенд или БД).
type Source interface {
	Load(ctx context.Context) ([]calendar.Reservation, []calendar.Table, error)
}

// Store держит последний загруженный снапшот.
// Читатели не блокируются: Current отдаёт указатель на опубликованную версию.
type Store struct {
	source Source
	log    *zap.Logger
	now    func() time.Time

	current atomic.Pointer[Snapshot]
	// reload сериализует загрузки, чтобы старый ответ не перезаписал новый
	reload sync.Mutex
}

func NewStore(source Source, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		source: source,
		log:    log,
		now:    time.Now,
	}
	s.current.Store(&Snapshot{})
	return s
}

// Current возвращает актуальный снапшот. До первой загрузки он пустой.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Reload загружает данные из источника и публикует новый снапшот.
// При ошибке остаётся предыдущий.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	s.reload.Lock()
	defer s.reload.Unlock()

	reservations, tables, err := s.source.Load(ctx)
	if err != nil {
		return s.Current(), fmt.Errorf("load snapshot: %w", err)
	}

	snap := &Snapshot{
		Reservations: reservations,
		Tables:       tables,
		LoadedAt:     s.now(),
	}
	s.current.Store(snap)

	s.log.Debug("snapshot reloaded",
		zap.Int("reservations", len(reservations)),
		zap.Int("tables", len(tables)),
	)

	return snap, nil
}

// Run перезагружает снапшот раз в interval, пока не отменён ctx.
// Ошибки загрузки логируются, цикл продолжается.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info("snapshot refresher started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			s.log.Info("snapshot refresher stopped")
			return nil
		case <-ticker.C:
			if _, err := s.Reload(ctx); err != nil {
				s.log.Warn("snapshot reload failed", zap.Error(err))
			}
		}
	}
}
