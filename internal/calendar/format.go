package calendar

import (
	"fmt"
	"sort"
	"time"
)

var esWeekdays = map[time.Weekday]string{
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
	time.Sunday:    "domingo",
}

// OccupancyBadge: подпись под числом дня. Для нуля бейджа нет.
func OccupancyBadge(count int) string {
	switch {
	case count <= 0:
		return ""
	case count == 1:
		return "1 reserva"
	default:
		return fmt.Sprintf("%d reservas", count)
	}
}

// FormatTableOption: строка выбора стола, например "Mesa 3 (capacidad: 4 personas)".
func FormatTableOption(t Table) string {
	return fmt.Sprintf("Mesa %d (capacidad: %d personas)", t.Number, t.Capacity)
}

// FormatReservationForUser форматирует бронь для списка.
// Если loc != nil, время переводится в указанный пояс.
func FormatReservationForUser(r Reservation, loc *time.Location) string {
	start := r.StartsAt
	if loc != nil {
		start = start.In(loc)
	}

	return fmt.Sprintf("%s, %s, %s, Mesa %d, %d personas",
		esWeekdays[start.Weekday()],
		start.Format("02/01/2006"),
		start.Format("15:04"),
		r.TableNumber,
		r.PartySize,
	)
}

// SortByStartsDesc возвращает копию списка, самые поздние брони первыми.
func SortByStartsDesc(reservations []Reservation) []Reservation {
	out := make([]Reservation, len(reservations))
	copy(out, reservations)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartsAt.After(out[j].StartsAt)
	})
	return out
}
