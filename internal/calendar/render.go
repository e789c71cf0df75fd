package calendar

import (
	"fmt"
	"time"
)

// Заголовки недели, неделя начинается с воскресенья.
var WeekdayHeaders = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

var esMonths = map[time.Month]string{
	time.January:   "Enero",
	time.February:  "Febrero",
	time.March:     "Marzo",
	time.April:     "Abril",
	time.May:       "Mayo",
	time.June:      "Junio",
	time.July:      "Julio",
	time.August:    "Agosto",
	time.September: "Septiembre",
	time.October:   "Octubre",
	time.November:  "Noviembre",
	time.December:  "Diciembre",
}

// Тип ячейки календарной сетки.
type CellKind int

const (
	CellHeader CellKind = iota
	CellBlank
	CellDay
)

// Cell: одна ячейка сетки месяца.
// Для CellHeader заполнен Label, для CellDay заполнены Date, Day, Occupancy и Disabled.
type Cell struct {
	Kind      CellKind
	Label     string
	Date      time.Time
	Day       int
	Occupancy int
	Disabled  bool
}

// RenderCalendar строит описание сетки месяца, в котором лежит monthAnchor:
//   - 7 заголовков дней недели;
//   - пустые ячейки до первого дня месяца;
//   - по ячейке на каждый день с числом активных броней.
//
// День недоступен, если он строго раньше today (время суток обнуляется).
// Расчёт ведётся в поясе monthAnchor.
func RenderCalendar(monthAnchor time.Time, reservations []Reservation, today time.Time) []Cell {
	loc := monthAnchor.Location()
	year, month, _ := monthAnchor.Date()

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := daysIn(year, month, loc)
	lead := int(first.Weekday())
	todayStart := dateOnly(today.In(loc))

	cells := make([]Cell, 0, len(WeekdayHeaders)+lead+days)
	for _, label := range WeekdayHeaders {
		cells = append(cells, Cell{Kind: CellHeader, Label: label})
	}
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{Kind: CellBlank})
	}

	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		cells = append(cells, Cell{
			Kind:      CellDay,
			Date:      date,
			Day:       day,
			Occupancy: ComputeDayOccupancy(reservations, date),
			Disabled:  date.Before(todayStart),
		})
	}

	return cells
}

// MonthTitle возвращает подпись над сеткой, например "Diciembre 2025".
func MonthTitle(monthAnchor time.Time) string {
	return fmt.Sprintf("%s %d", esMonths[monthAnchor.Month()], monthAnchor.Year())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// нулевой день следующего месяца равен последнему дню текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
