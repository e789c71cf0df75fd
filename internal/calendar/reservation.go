package calendar

import (
	"strings"
	"time"
)

// Статус брони.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus приводит статус бэкенда к каноническому виду.
// Бэкенд ресторана хранит статусы по-испански (pendiente/confirmada/cancelada).
// Неизвестное значение сохраняется как есть и считается активным.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "pending", "pendiente":
		return StatusPending
	case "confirmed", "confirmada":
		return StatusConfirmed
	case "cancelled", "canceled", "cancelada":
		return StatusCancelled
	default:
		return Status(raw)
	}
}

// Active сообщает, учитывается ли бронь в занятости.
func (s Status) Active() bool {
	return s != StatusCancelled
}

// CanTransition описывает машину состояний брони:
// pending -> confirmed, {pending, confirmed} -> cancelled.
// Из cancelled выхода нет. Неизвестный статус активен, его можно только отменить.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled
	case StatusCancelled:
		return false
	default:
		return to == StatusCancelled
	}
}

// Reservation: бронь в том виде, в каком её видит калькулятор.
type Reservation struct {
	ID          int64
	ClientName  string
	ClientEmail string
	TableID     int64
	TableNumber int
	StartsAt    time.Time
	PartySize   int
	Status      Status
	Notes       string
}

// Стол из каталога ресторана.
type Table struct {
	ID        int64
	Number    int
	Capacity  int
	Available bool
}
