package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/restaurant-booking/internal/calendar"
)

const reservasJSON = `[
  {"id": 1, "cliente": {"nombre": "Ana", "email": "ana@example.com"},
   "mesa": {"id": 3, "numero": 3, "capacidad": 4},
   "fecha_hora": "2025-12-01T19:00:00", "num_personas": 2, "estado": "pendiente", "notas": null},
  {"id": 2, "cliente": {"nombre": "Luis", "email": "luis@example.com"},
   "mesa": {"id": 5, "numero": 5},
   "fecha_hora": "2025-12-01T20:00:00.123456", "num_personas": 6, "estado": "cancelada", "notas": "terraza"},
  {"id": 3, "mesa": {"id": 1, "numero": 1}, "fecha_hora": "no es fecha", "num_personas": 2, "estado": "confirmada"}
]`

const mesasJSON = `[
  {"id": 1, "numero": 1, "capacidad": 2, "disponible": true},
  {"id": 2, "numero": 2, "capacidad": 4, "disponible": false},
  {"id": 3, "numero": 3, "capacidad": 4}
]`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second, time.UTC, nil)
}

func TestClient_ListReservations(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/reservas", r.URL.Path)
		_, _ = io.WriteString(w, reservasJSON)
	})

	got, err := c.ListReservations(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2, "record with a malformed date is skipped")

	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "Ana", got[0].ClientName)
	assert.Equal(t, int64(3), got[0].TableID)
	assert.Equal(t, 3, got[0].TableNumber)
	assert.Equal(t, calendar.StatusPending, got[0].Status)
	assert.Equal(t, "", got[0].Notes)
	assert.True(t, got[0].StartsAt.Equal(time.Date(2025, 12, 1, 19, 0, 0, 0, time.UTC)))

	assert.Equal(t, calendar.StatusCancelled, got[1].Status)
	assert.Equal(t, "terraza", got[1].Notes)
	assert.Equal(t, 123456000, got[1].StartsAt.Nanosecond())
}

func TestClient_ListTables(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/mesas", r.URL.Path)
		_, _ = io.WriteString(w, mesasJSON)
	})

	got, err := c.ListTables(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, calendar.Table{ID: 1, Number: 1, Capacity: 2, Available: true}, got[0])
	assert.False(t, got[1].Available)
	assert.True(t, got[2].Available, "missing disponible defaults to available")
}

func TestClient_Load(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/reservas":
			_, _ = io.WriteString(w, reservasJSON)
		case "/api/mesas":
			_, _ = io.WriteString(w, mesasJSON)
		default:
			http.NotFound(w, r)
		}
	})

	reservations, tables, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, reservations, 2)
	assert.Len(t, tables, 3)
}

func TestClient_LoadFailsWhenOneListFails(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/mesas" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"error": "db caída"}`)
			return
		}
		_, _ = io.WriteString(w, reservasJSON)
	})

	_, _, err := c.Load(context.Background())
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Equal(t, "db caída", se.Message)
	assert.False(t, IsClientError(err))
}

func TestClient_CreateReservation(t *testing.T) {
	var payload createReservaPayload
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/reservas", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": 42, "mensaje": "Reserva creada"}`)
	})

	madrid := time.FixedZone("CET", 3600)
	req := calendar.BookingRequest{
		Name:      "Ana",
		Email:     "ana@example.com",
		Phone:     "600000000",
		TableID:   3,
		Date:      time.Date(2025, 12, 1, 0, 0, 0, 0, madrid),
		Slot:      calendar.Slot{Hour: 19},
		PartySize: 2,
		Notes:     "cumpleaños",
	}

	got, err := c.CreateReservation(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "2025-12-01T18:00:00.000Z", payload.FechaHora)
	assert.Equal(t, int64(3), payload.MesaID)
	assert.Equal(t, 2, payload.NumPersonas)
	assert.Equal(t, "cumpleaños", payload.Notas)

	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, calendar.StatusPending, got.Status)
	assert.True(t, got.StartsAt.Equal(req.StartsAt()))
}

func TestClient_CreateReservationRejected(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error": "Mesa no disponible"}`)
	})

	_, err := c.CreateReservation(context.Background(), calendar.BookingRequest{Slot: calendar.Slot{Hour: 12}})
	require.Error(t, err)
	assert.True(t, IsClientError(err))
	assert.Contains(t, err.Error(), "Mesa no disponible")
}

func TestClient_CancelReservation(t *testing.T) {
	var body updateEstadoPayload
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/reservas/7", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"mensaje": "ok"}`)
	})

	require.NoError(t, c.CancelReservation(context.Background(), 7))
	assert.Equal(t, "cancelada", body.Estado)
}

func TestClient_CancelReservationNotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "Not Found")
	})

	err := c.CancelReservation(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Not Found", se.Message)
}

func TestClient_ContextCancelled(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "[]")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListTables(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)

	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-12-01T19:00:00", time.Date(2025, 12, 1, 19, 0, 0, 0, loc)},
		{"2025-12-01 19:00:00", time.Date(2025, 12, 1, 19, 0, 0, 0, loc)},
		{"2025-12-01T19:00", time.Date(2025, 12, 1, 19, 0, 0, 0, loc)},
		{"2025-12-02T00:00:00Z", time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC)},
		{"2025-12-01T19:00:00.000-05:00", time.Date(2025, 12, 1, 19, 0, 0, 0, loc)},
		{"Tue, 02 Dec 2025 00:00:00 GMT", time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in, loc)
		require.NoError(t, err, tc.in)
		assert.True(t, got.Equal(tc.want), "%s: got %v, want %v", tc.in, got, tc.want)
	}

	_, err := ParseTimestamp("", loc)
	assert.Error(t, err)
	_, err = ParseTimestamp("01/12/2025", loc)
	assert.Error(t, err)
}
