package calendar

import (
	"errors"
	"time"
)

// DefaultSlotCapacity: сколько броней ресторан принимает на один слот
// (по числу физических столов).
const DefaultSlotCapacity = 5

var (
	ErrInvalidCapacity = errors.New("slot capacity must be positive")
	ErrNilLocation     = errors.New("location is required")
)

// Policy: настройки ресторана, от которых зависит расчёт доступности.
type Policy struct {
	Schedule     []Slot
	SlotCapacity int
	Location     *time.Location
}

// DefaultPolicy возвращает расписание и ёмкость по умолчанию в поясе loc.
func DefaultPolicy(loc *time.Location) Policy {
	schedule := make([]Slot, len(DefaultSchedule))
	copy(schedule, DefaultSchedule)
	return Policy{
		Schedule:     schedule,
		SlotCapacity: DefaultSlotCapacity,
		Location:     loc,
	}
}

func (p Policy) Validate() error {
	if len(p.Schedule) == 0 {
		return ErrEmptySchedule
	}
	if p.SlotCapacity <= 0 {
		return ErrInvalidCapacity
	}
	if p.Location == nil {
		return ErrNilLocation
	}
	return nil
}

// ComputeDayOccupancy считает активные брони, попадающие на календарную дату date
// (год/месяц/день в поясе date, время не важно).
func ComputeDayOccupancy(reservations []Reservation, date time.Time) int {
	y, m, d := date.Date()
	loc := date.Location()

	count := 0
	for _, r := range reservations {
		if !r.Status.Active() {
			continue
		}
		ry, rm, rd := r.StartsAt.In(loc).Date()
		if ry == y && rm == m && rd == d {
			count++
		}
	}
	return count
}

// активные брони ровно на момент target
func countAtSlot(reservations []Reservation, target time.Time) int {
	count := 0
	for _, r := range reservations {
		if r.Status.Active() && atSlot(r, target) {
			count++
		}
	}
	return count
}

// IsSlotAvailable возвращает true, если на слот slot в день date
// активных броней строго меньше capacity.
func IsSlotAvailable(reservations []Reservation, date time.Time, slot Slot, capacity int) bool {
	return countAtSlot(reservations, slot.On(date)) < capacity
}

// SlotState: состояние одного слота в выбранный день.
type SlotState struct {
	Slot      Slot
	StartsAt  time.Time
	Booked    int
	Remaining int
	Available bool
}

// SlotAvailability раскладывает день по слотам расписания.
func SlotAvailability(reservations []Reservation, date time.Time, schedule []Slot, capacity int) []SlotState {
	states := make([]SlotState, 0, len(schedule))
	for _, slot := range schedule {
		at := slot.On(date)
		booked := countAtSlot(reservations, at)
		remaining := capacity - booked
		if remaining < 0 {
			remaining = 0
		}
		states = append(states, SlotState{
			Slot:      slot,
			StartsAt:  at,
			Booked:    booked,
			Remaining: remaining,
			Available: booked < capacity,
		})
	}
	return states
}

// ListAvailableTables возвращает столы, которые вмещают partySize гостей
// и не заняты активной бронью на слот slot в день date. Порядок каталога сохраняется.
// Пустой результат означает, что подходящего стола нет.
func ListAvailableTables(tables []Table, reservations []Reservation, date time.Time, slot Slot, partySize int) []Table {
	target := slot.On(date)

	booked := make(map[int64]struct{})
	for _, r := range reservations {
		if r.Status.Active() && atSlot(r, target) {
			booked[r.TableID] = struct{}{}
		}
	}

	free := make([]Table, 0, len(tables))
	for _, t := range tables {
		if t.Capacity < partySize {
			continue
		}
		if _, ok := booked[t.ID]; ok {
			continue
		}
		free = append(free, t)
	}
	return free
}
