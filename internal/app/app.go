package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/storefront-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront-backend/internal/infrastructure/kafka"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/storefront-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/closer"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/DRSN-tech/storefront-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App собирает все зависимости сервиса и управляет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer
}

func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	return &App{
		cfg:    cfg,
		logger: logger,
		closer: closer.NewCloser(2 * time.Second),
	}, nil
}

// Run инициализирует зависимости, запускает HTTP-сервер и outbox-воркер
// и блокируется до сигнала завершения или фатальной ошибки.
// Ресурсы закрываются в порядке, обратном инициализации.
func (a *App) Run() error {
	db, err := initPGDB(a.logger, a.cfg)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize database")
		return err
	}
	a.closer.Add(func(ctx context.Context) error {
		db.Close()
		a.logger.Infof("Database pool closed")
		return nil
	})

	prConv := pgdbConv.NewProductConverterImpl()
	userConv := pgdbConv.NewUserConverterImpl()
	cartConv := pgdbConv.NewCartItemConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool)
	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	cartRepo := pgdb.NewCartRepo(db.Pool, cartConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return err
	}
	a.closer.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, a.cfg.Redis, a.logger)
	sessionRepo := redis.NewSessionRepo(redisClient, a.cfg.Session)

	producer, err := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize kafka producer")
		return err
	}
	a.closer.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		a.logger.Warnf("failed to ensure kafka topic: %v", err)
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	worker := kafka.NewOutboxWorker(outboxRepo, a.logger, producer, db.Dsn)
	worker.Start(workerCtx)
	a.closer.Add(func(ctx context.Context) error {
		workerCancel()
		worker.Stop()
		a.logger.Infof("Outbox worker stopped")
		return nil
	})

	cartUC := usecase.NewCartUC(cartRepo, productRepo, outboxRepo, db.Pool, a.logger)
	catalogUC := usecase.NewCatalogUC(productRepo, categoryRepo, cacheRepo, a.logger)
	authUC := usecase.NewAuthUC(userRepo, sessionRepo, a.logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, a.logger)
	router.Init(cartUC, catalogUC, authUC, a.cfg.Session)

	httpSrv := v1Http.NewServer(r, a.cfg.Http)
	a.closer.Add(func(ctx context.Context) error {
		if err := httpSrv.Stop(ctx); err != nil {
			return err
		}
		a.logger.Infof("HTTP server stopped")
		return nil
	})

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
