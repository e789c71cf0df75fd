package calendar

import "testing"

func dayCells(cells []Cell) []Cell {
	var out []Cell
	for _, c := range cells {
		if c.Kind == CellDay {
			out = append(out, c)
		}
	}
	return out
}

func TestRenderCalendar_LayoutDecember2025(t *testing.T) {
	anchor := mustTime(t, 2025, 12, 17, 10, 0)
	today := mustTime(t, 2025, 12, 10, 18, 30)

	cells := RenderCalendar(anchor, nil, today)

	for i, label := range WeekdayHeaders {
		if cells[i].Kind != CellHeader || cells[i].Label != label {
			t.Fatalf("cell %d: expected header %q, got %+v", i, label, cells[i])
		}
	}

	// 1 декабря 2025 понедельник, значит одна пустая ячейка после заголовков
	if cells[7].Kind != CellBlank {
		t.Fatalf("expected blank cell at position 7, got %+v", cells[7])
	}
	if cells[8].Kind != CellDay || cells[8].Day != 1 {
		t.Fatalf("expected day 1 at position 8, got %+v", cells[8])
	}

	days := dayCells(cells)
	if len(days) != 31 {
		t.Fatalf("expected 31 days, got %d", len(days))
	}
	if len(cells) != 7+1+31 {
		t.Fatalf("expected %d cells, got %d", 7+1+31, len(cells))
	}
}

func TestRenderCalendar_DisablesStrictlyPastDays(t *testing.T) {
	anchor := mustTime(t, 2025, 12, 1, 0, 0)
	today := mustTime(t, 2025, 12, 10, 23, 59)

	for _, c := range dayCells(RenderCalendar(anchor, nil, today)) {
		want := c.Day < 10
		if c.Disabled != want {
			t.Fatalf("day %d: expected disabled=%v, got %v", c.Day, want, c.Disabled)
		}
	}
}

func TestRenderCalendar_FutureMonthFullyEnabled(t *testing.T) {
	anchor := mustTime(t, 2026, 2, 1, 0, 0)
	today := mustTime(t, 2025, 12, 10, 0, 0)

	days := dayCells(RenderCalendar(anchor, nil, today))
	if len(days) != 28 {
		t.Fatalf("expected 28 days in Feb 2026, got %d", len(days))
	}
	for _, c := range days {
		if c.Disabled {
			t.Fatalf("day %d of a future month must be enabled", c.Day)
		}
	}
}

func TestRenderCalendar_SundayStartHasNoBlanks(t *testing.T) {
	// 1 февраля 2026 воскресенье
	cells := RenderCalendar(mustTime(t, 2026, 2, 1, 0, 0), nil, mustTime(t, 2026, 1, 1, 0, 0))
	if cells[7].Kind != CellDay || cells[7].Day != 1 {
		t.Fatalf("expected day 1 right after headers, got %+v", cells[7])
	}
}

func TestRenderCalendar_Occupancy(t *testing.T) {
	anchor := mustTime(t, 2025, 12, 1, 0, 0)
	reservations := []Reservation{
		reservationAt(1, 1, mustTime(t, 2025, 12, 5, 12, 0), StatusPending),
		reservationAt(2, 2, mustTime(t, 2025, 12, 5, 19, 0), StatusConfirmed),
		reservationAt(3, 3, mustTime(t, 2025, 12, 5, 20, 0), StatusCancelled),
		reservationAt(4, 1, mustTime(t, 2025, 12, 6, 13, 0), StatusPending),
		reservationAt(5, 1, mustTime(t, 2026, 1, 5, 13, 0), StatusPending),
	}

	for _, c := range dayCells(RenderCalendar(anchor, reservations, anchor)) {
		want := 0
		switch c.Day {
		case 5:
			want = 2
		case 6:
			want = 1
		}
		if c.Occupancy != want {
			t.Fatalf("day %d: expected occupancy %d, got %d", c.Day, want, c.Occupancy)
		}
	}
}

func TestMonthTitle(t *testing.T) {
	if got := MonthTitle(mustTime(t, 2025, 12, 1, 0, 0)); got != "Diciembre 2025" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := MonthTitle(mustTime(t, 2026, 3, 31, 0, 0)); got != "Marzo 2026" {
		t.Fatalf("unexpected title %q", got)
	}
}
