package service

import (
	"context"
	"math"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	bookingpb "github.com/Leganyst/restaurant-booking/internal/api/booking/v1"
	"github.com/Leganyst/restaurant-booking/internal/calendar"
)

func startBufServer(t *testing.T, svc *BookingService, log *zap.Logger) bookingpb.BookingServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(UnaryServerInterceptor(log)))
	bookingpb.RegisterBookingServiceServer(srv, svc)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return bookingpb.NewBookingServiceClient(conn)
}

func TestGRPC_RoundTrip(t *testing.T) {
	svc := newTestService(t, &memBackend{
		tables: defaultTables(),
		reservations: []calendar.Reservation{
			{ID: 1, TableID: 1, StartsAt: at(19, 1), Status: calendar.StatusPending},
		},
	})
	client := startBufServer(t, svc, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var header metadata.MD
	occ, err := client.GetDayOccupancy(ctx, &bookingpb.GetDayOccupancyRequest{Date: "2025-12-01"}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, int32(1), occ.Count)
	assert.Equal(t, "1 reserva", occ.Badge)
	require.Len(t, header.Get(RequestIDHeader), 1)
	assert.NotEmpty(t, header.Get(RequestIDHeader)[0])

	tables, err := client.ListAvailableTables(ctx, &bookingpb.ListAvailableTablesRequest{
		Date: "2025-12-01", Slot: "19:00", PartySize: 5,
	})
	require.NoError(t, err)
	require.Len(t, tables.Tables, 2)
	assert.Equal(t, int32(4), tables.Tables[0].Number)
	assert.Equal(t, int32(5), tables.Tables[1].Number)

	_, err = client.GetDayOccupancy(ctx, &bookingpb.GetDayOccupancyRequest{Date: "ayer"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPC_PageFarBeyondEndIsEmpty(t *testing.T) {
	svc := newTestService(t, &memBackend{
		tables: defaultTables(),
		reservations: []calendar.Reservation{
			{ID: 1, TableID: 1, StartsAt: at(19, 1), Status: calendar.StatusPending},
			{ID: 2, TableID: 2, StartsAt: at(20, 1), Status: calendar.StatusConfirmed},
		},
	})
	client := startBufServer(t, svc, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, req := range []*bookingpb.ListReservationsRequest{
		{Page: math.MaxInt32 / 10, PageSize: 20},
		{Page: math.MaxInt32, PageSize: math.MaxInt32},
	} {
		resp, err := client.ListReservations(ctx, req)
		require.NoError(t, err)
		assert.Empty(t, resp.GetReservations())
		assert.Equal(t, int32(2), resp.GetTotal())
		assert.False(t, resp.GetHasNext())
		assert.True(t, resp.GetHasPrev())
	}
}

func TestGRPC_PropagatesRequestID(t *testing.T) {
	svc := newTestService(t, &memBackend{})
	client := startBufServer(t, svc, zap.NewNop())

	ctx := metadata.AppendToOutgoingContext(context.Background(), RequestIDHeader, "req-123")
	var header metadata.MD
	_, err := client.GetCalendar(ctx, &bookingpb.GetCalendarRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"req-123"}, header.Get(RequestIDHeader))
}

func TestUnaryServerInterceptor_RecoversPanic(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := UnaryServerInterceptor(zap.New(core))

	info := &grpc.UnaryServerInfo{FullMethod: "/booking.v1.BookingService/GetCalendar"}
	var seenID string
	resp, err := interceptor(context.Background(), nil, info, func(ctx context.Context, _ any) (any, error) {
		seenID = RequestIDFromContext(ctx)
		panic("boom")
	})

	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.NotEmpty(t, seenID)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())

	entries := logs.FilterMessage("grpc request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, seenID, entries[0].ContextMap()["request_id"])
}

func TestUnaryServerInterceptor_ReusesIncomingID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	interceptor := UnaryServerInterceptor(zap.New(core))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "abc"))
	info := &grpc.UnaryServerInfo{FullMethod: "/booking.v1.BookingService/ListSlots"}

	_, err := interceptor(ctx, nil, info, func(ctx context.Context, _ any) (any, error) {
		assert.Equal(t, "abc", RequestIDFromContext(ctx))
		return "ok", nil
	})
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "OK", entries[0].ContextMap()["code"])
}
