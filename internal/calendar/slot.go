package calendar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidSlot   = errors.New("invalid slot")
	ErrEmptySchedule = errors.New("slot schedule is empty")
)

// Slot задаёт время начала брони внутри дня (ЧЧ:ММ).
type Slot struct {
	Hour   int
	Minute int
}

// DefaultSchedule: часы, которые ресторан открывает для брони.
var DefaultSchedule = []Slot{
	{Hour: 12}, {Hour: 13}, {Hour: 14},
	{Hour: 18}, {Hour: 19}, {Hour: 20}, {Hour: 21},
}

// ParseSlot разбирает строку вида "19:00". Часы и минуты строго двузначные.
func ParseSlot(s string) (Slot, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidSlot, s)
	}
	hour, ok := twoDigits(h)
	if !ok || hour > 23 {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidSlot, s)
	}
	minute, ok := twoDigits(m)
	if !ok || minute > 59 {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidSlot, s)
	}
	return Slot{Hour: hour, Minute: minute}, nil
}

func twoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// ParseSchedule разбирает список слотов через запятую и сортирует его.
// Дубликаты отбрасываются.
func ParseSchedule(s string) ([]Slot, error) {
	seen := make(map[Slot]struct{})
	var slots []Slot
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		slot, err := ParseSlot(part)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		slots = append(slots, slot)
	}
	if len(slots) == 0 {
		return nil, ErrEmptySchedule
	}
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Before(slots[j])
	})
	return slots, nil
}

func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

func (s Slot) Before(o Slot) bool {
	if s.Hour != o.Hour {
		return s.Hour < o.Hour
	}
	return s.Minute < o.Minute
}

// On возвращает момент начала слота в день date (в часовом поясе date).
func (s Slot) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, s.Hour, s.Minute, 0, 0, date.Location())
}

// Contains проверяет, входит ли слот в расписание.
func Contains(schedule []Slot, s Slot) bool {
	for _, v := range schedule {
		if v == s {
			return true
		}
	}
	return false
}

// slotKey нормализует момент брони до минуты в поясе loc.
// Секунды и миллисекунды, с которыми бэкенд мог сохранить время, не мешают совпадению.
func slotKey(t time.Time, loc *time.Location) time.Time {
	return t.In(loc).Truncate(time.Minute)
}

func atSlot(r Reservation, target time.Time) bool {
	return slotKey(r.StartsAt, target.Location()).Equal(target)
}
