package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	bookingpb "github.com/Leganyst/restaurant-booking/internal/api/booking/v1"
	"github.com/Leganyst/restaurant-booking/internal/backend"
	"github.com/Leganyst/restaurant-booking/internal/config"
	"github.com/Leganyst/restaurant-booking/internal/db"
	"github.com/Leganyst/restaurant-booking/internal/logger"
	"github.com/Leganyst/restaurant-booking/internal/model"
	"github.com/Leganyst/restaurant-booking/internal/repository"
	"github.com/Leganyst/restaurant-booking/internal/service"
	"github.com/Leganyst/restaurant-booking/internal/snapshot"
)

func main() {
	// 1. Загружаем конфиг из env и config.yaml.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 2. Логгер.
	zlog, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("service stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	policy, err := cfg.App.Policy()
	if err != nil {
		return err
	}
	backendLoc, err := cfg.App.BackendLocation()
	if err != nil {
		return err
	}

	// 3. Клиент REST-бэкенда: через него идут все записи.
	client := backend.New(cfg.App.BackendURL, cfg.App.BackendTimeout, backendLoc, zlog.Named("backend"))

	// 4. Источник снапшота: API бэкенда или его база напрямую.
	var (
		source snapshot.Source = client
		lookup service.Lookup
	)
	if cfg.App.SnapshotSource == config.SourceDB {
		dbSource, closeDB, err := openDBSource(&cfg.DB, backendLoc)
		if err != nil {
			return err
		}
		defer closeDB()
		source = dbSource
		// Проверки перед записью и календарь читают базу напрямую.
		lookup = dbSource
	}

	store := snapshot.NewStore(source, zlog.Named("snapshot"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Первая загрузка может не пройти, тогда сервис стартует с пустым снапшотом.
	if _, err := store.Reload(ctx); err != nil {
		zlog.Warn("initial snapshot load failed", zap.Error(err))
	}

	// 5. gRPC-сервис доступности.
	bookingSvc := service.NewBookingService(store, client, policy, zlog.Named("booking")).WithLookup(lookup)

	// 6. Настраиваем gRPC-сервер.
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(service.UnaryServerInterceptor(zlog.Named("grpc"))),
	)
	bookingpb.RegisterBookingServiceServer(grpcServer, bookingSvc)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus(bookingpb.BookingService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.App.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.App.GRPCAddr, err)
	}

	zlog.Info("core gRPC server listening",
		zap.String("addr", cfg.App.GRPCAddr),
		zap.String("snapshot_source", cfg.App.SnapshotSource),
		zap.Int("slot_capacity", policy.SlotCapacity),
		zap.String("timezone", policy.Location.String()),
	)

	// 7. Сервер и обновление снапшота живут в одной группе.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return store.Run(gctx, cfg.App.RefreshInterval)
	})

	// 8. Грейсфул-шатдаун по сигналу.
	g.Go(func() error {
		<-gctx.Done()
		zlog.Info("shutting down gRPC server...")
		healthSrv.Shutdown()
		grpcServer.GracefulStop()
		return nil
	})

	return g.Wait()
}

func openDBSource(cfg *config.DBConfig, loc *time.Location) (*repository.SnapshotSource, func(), error) {
	gormDB, err := db.NewGormDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("sql DB: %w", err)
	}
	closeDB := func() { _ = sqlDB.Close() }

	// Схемой владеет бэкенд; миграция нужна только для локальной SQLite.
	if cfg.AutoMigrate {
		if err := model.AutoMigrate(gormDB); err != nil {
			closeDB()
			return nil, nil, fmt.Errorf("auto migrate: %w", err)
		}
		if err := model.SeedTables(gormDB); err != nil {
			closeDB()
			return nil, nil, err
		}
	}

	source := repository.NewSnapshotSource(
		repository.NewGormTableRepository(gormDB),
		repository.NewGormReservationRepository(gormDB),
		loc,
	)
	return source, closeDB, nil
}
