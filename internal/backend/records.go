package backend

import (
	"fmt"
	"strings"
	"time"

	"github.com/Leganyst/restaurant-booking/internal/calendar"
)

// Записи в том виде, в каком их отдаёт REST-бэкенд ресторана.

type clienteRecord struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

type mesaRecord struct {
	ID         int64 `json:"id"`
	Numero     int   `json:"numero"`
	Capacidad  *int  `json:"capacidad"`
	Disponible *bool `json:"disponible"`
}

type reservaRecord struct {
	ID          int64          `json:"id"`
	Cliente     *clienteRecord `json:"cliente"`
	Mesa        *mesaRecord    `json:"mesa"`
	MesaID      int64          `json:"mesa_id"`
	FechaHora   string         `json:"fecha_hora"`
	NumPersonas int            `json:"num_personas"`
	Estado      string         `json:"estado"`
	Notas       *string        `json:"notas"`
}

type createReservaPayload struct {
	Nombre      string `json:"nombre"`
	Email       string `json:"email"`
	Telefono    string `json:"telefono"`
	MesaID      int64  `json:"mesa_id"`
	FechaHora   string `json:"fecha_hora"`
	NumPersonas int    `json:"num_personas"`
	Notas       string `json:"notas"`
}

type updateEstadoPayload struct {
	Estado string `json:"estado"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Форматы времени без пояса; такие значения читаются в поясе бэкенда.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseTimestamp разбирает fecha_hora. Значения с поясом (RFC 3339, HTTP-дата)
// берутся как есть, остальные считаются локальным временем loc.
// Дробная часть секунд допускается.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC1123, raw); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// FormatTimestamp кодирует момент брони так же, как его отправляет веб-форма:
// UTC с миллисекундами.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

func (r reservaRecord) toReservation(loc *time.Location) (calendar.Reservation, error) {
	startsAt, err := ParseTimestamp(r.FechaHora, loc)
	if err != nil {
		return calendar.Reservation{}, fmt.Errorf("reservation %d: %w", r.ID, err)
	}

	res := calendar.Reservation{
		ID:        r.ID,
		TableID:   r.MesaID,
		StartsAt:  startsAt,
		PartySize: r.NumPersonas,
		Status:    calendar.ParseStatus(r.Estado),
	}
	if r.Cliente != nil {
		res.ClientName = r.Cliente.Nombre
		res.ClientEmail = r.Cliente.Email
	}
	if r.Mesa != nil {
		if r.Mesa.ID != 0 {
			res.TableID = r.Mesa.ID
		}
		res.TableNumber = r.Mesa.Numero
	}
	if r.Notas != nil {
		res.Notes = *r.Notas
	}
	return res, nil
}

func (m mesaRecord) toTable() calendar.Table {
	t := calendar.Table{
		ID:        m.ID,
		Number:    m.Numero,
		Available: true,
	}
	if m.Capacidad != nil {
		t.Capacity = *m.Capacidad
	}
	if m.Disponible != nil {
		t.Available = *m.Disponible
	}
	return t
}
