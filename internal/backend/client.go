package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Leganyst/restaurant-booking/internal/calendar"
)

const (
	DefaultBaseURL = "https://restaurante-backend-s93j.onrender.com"
	DefaultTimeout = 10 * time.Second

	maxErrorBody = 4 << 10
)

// Client ходит в REST API ресторана (/api/reservas, /api/mesas).
type Client struct {
	baseURL string
	http    *http.Client
	loc     *time.Location
	log     *zap.Logger
}

// New создаёт клиента. loc задаёт пояс, в котором бэкенд хранит время без смещения.
func New(baseURL string, timeout time.Duration, loc *time.Location, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		loc:     loc,
		log:     log,
	}
}

// ListReservations возвращает все брони. Записи с неразборчивой датой
// пропускаются с предупреждением в лог.
func (c *Client) ListReservations(ctx context.Context) ([]calendar.Reservation, error) {
	var records []reservaRecord
	if err := c.do(ctx, http.MethodGet, "/api/reservas", nil, &records); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	out := make([]calendar.Reservation, 0, len(records))
	for _, rec := range records {
		r, err := rec.toReservation(c.loc)
		if err != nil {
			c.log.Warn("skip reservation", zap.Int64("id", rec.ID), zap.Error(err))
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// ListTables возвращает каталог столов в порядке бэкенда.
func (c *Client) ListTables(ctx context.Context) ([]calendar.Table, error) {
	var records []mesaRecord
	if err := c.do(ctx, http.MethodGet, "/api/mesas", nil, &records); err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	out := make([]calendar.Table, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.toTable())
	}
	return out, nil
}

// Load тянет брони и столы параллельно. Реализует snapshot.Source.
func (c *Client) Load(ctx context.Context) ([]calendar.Reservation, []calendar.Table, error) {
	var (
		reservations []calendar.Reservation
		tables       []calendar.Table
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reservations, err = c.ListReservations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tables, err = c.ListTables(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return reservations, tables, nil
}

// CreateReservation отправляет новую бронь. Бэкенд сам заводит клиента
// и ставит статус pendiente.
func (c *Client) CreateReservation(ctx context.Context, req calendar.BookingRequest) (calendar.Reservation, error) {
	startsAt := req.StartsAt()
	payload := createReservaPayload{
		Nombre:      req.Name,
		Email:       req.Email,
		Telefono:    req.Phone,
		MesaID:      req.TableID,
		FechaHora:   FormatTimestamp(startsAt),
		NumPersonas: req.PartySize,
		Notas:       req.Notes,
	}

	var created reservaRecord
	if err := c.do(ctx, http.MethodPost, "/api/reservas", payload, &created); err != nil {
		return calendar.Reservation{}, fmt.Errorf("create reservation: %w", err)
	}

	// Ответ может не содержать полной записи, недостающее берём из заявки.
	res := calendar.Reservation{
		ID:          created.ID,
		ClientName:  req.Name,
		ClientEmail: req.Email,
		TableID:     req.TableID,
		StartsAt:    startsAt,
		PartySize:   req.PartySize,
		Status:      calendar.StatusPending,
		Notes:       req.Notes,
	}
	if created.FechaHora != "" {
		if full, err := created.toReservation(c.loc); err == nil {
			res = full
		}
	}
	return res, nil
}

// CancelReservation переводит бронь в статус cancelada.
func (c *Client) CancelReservation(ctx context.Context, id int64) error {
	path := "/api/reservas/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodPut, path, updateEstadoPayload{Estado: "cancelada"}, nil); err != nil {
		return fmt.Errorf("cancel reservation %d: %w", id, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readStatusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func readStatusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	se := &StatusError{Code: resp.StatusCode}
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		se.Message = eb.Error
		if se.Message == "" {
			se.Message = eb.Message
		}
	}
	if se.Message == "" {
		se.Message = strings.TrimSpace(string(raw))
	}
	return se
}
