package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/AndreaVaz0608/skyai/internal/adapters/primary/http"
	healthcheckController "github.com/AndreaVaz0608/skyai/internal/adapters/primary/http/controllers/healthcheck"
	paymentController "github.com/AndreaVaz0608/skyai/internal/adapters/primary/http/controllers/payment"
	reportController "github.com/AndreaVaz0608/skyai/internal/adapters/primary/http/controllers/report"
	kafkaConsumerAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/primary/kafka"
	kafkaHandlers "github.com/AndreaVaz0608/skyai/internal/adapters/primary/kafka/handlers"
	alerterAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/alerter"
	dispatchAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/dispatch"
	ephemerisAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/ephemeris"
	generatorAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/generator"
	geocoderAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/geocoder"
	kafkaAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/kafka"
	"github.com/AndreaVaz0608/skyai/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/storage/s3"
	timezoneAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/timezone"
	"github.com/AndreaVaz0608/skyai/internal/ports/cache"
	"github.com/AndreaVaz0608/skyai/internal/ports/dispatch"
	"github.com/AndreaVaz0608/skyai/internal/ports/repository"
	"github.com/AndreaVaz0608/skyai/internal/ports/service"
	"github.com/AndreaVaz0608/skyai/internal/ports/storage"
	compatibilityRepo "github.com/AndreaVaz0608/skyai/internal/repository/compatibility"
	creditRepo "github.com/AndreaVaz0608/skyai/internal/repository/credit"
	guruRepo "github.com/AndreaVaz0608/skyai/internal/repository/guru"
	paymentRepo "github.com/AndreaVaz0608/skyai/internal/repository/payment"
	sessionRepo "github.com/AndreaVaz0608/skyai/internal/repository/session"
	userRepo "github.com/AndreaVaz0608/skyai/internal/repository/user"
	jobScheduler "github.com/AndreaVaz0608/skyai/internal/services/jobs"
	astroUsecase "github.com/AndreaVaz0608/skyai/internal/usecases/astro"
	reportUsecase "github.com/AndreaVaz0608/skyai/internal/usecases/report"
	"github.com/jmoiron/sqlx"
)

type Dependencies struct {
	DB              *sqlx.DB
	HTTPServer      *http.Server
	KafkaProducer   *kafkaAdapter.Producer
	KafkaConsumer   *kafkaConsumerAdapter.Consumer
	LocalDispatcher *dispatchAdapter.LocalDispatcher
	Cache           cache.Cache
	JobScheduler    *jobScheduler.Scheduler
}

// initDependencies wires the application graph
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initPostgres()
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	repos := a.initRepositories(db)

	external, err := a.initExternalServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init external services: %w", err)
	}

	astroService := astroUsecase.New(external.Geocoder, external.TimeZone, external.Ephemeris, a.Log)
	astroService.Cache = external.Cache // may be nil

	producer, err := a.initKafkaProducer()
	if err != nil {
		return nil, fmt.Errorf("failed to init kafka producer: %w", err)
	}

	var dispatcher dispatch.Dispatcher
	if producer != nil {
		dispatcher = dispatchAdapter.NewKafkaDispatcher(producer)
	}

	reportService := reportUsecase.New(
		repos.Session,
		repos.User,
		repos.Credit,
		repos.Guru,
		repos.Compatibility,
		repos.Payment,
		astroService,
		external.Generator,
		external.Alerter, // may be nil
		dispatcher,       // filled below when no broker is configured
		external.Cache,   // may be nil
		external.Archive, // may be nil
		a.Cfg.Credits.GuruQuestionLimit,
		a.Log,
	)

	var localDispatcher *dispatchAdapter.LocalDispatcher
	if dispatcher == nil {
		localDispatcher = dispatchAdapter.NewLocalDispatcher(
			reportService,
			a.Cfg.Dispatch.Workers,
			a.Cfg.Dispatch.QueueSize,
			a.Log,
		)
		reportService.Dispatcher = localDispatcher
	}

	paymentService := a.initPayment(repos, external.Alerter)

	consumer, err := a.initKafkaConsumer(reportService)
	if err != nil {
		return nil, fmt.Errorf("failed to init kafka consumer: %w", err)
	}

	httpServer := a.initHTTP(db, reportService, paymentService)

	scheduler := a.initJobScheduler(external.Alerter, repos)

	return &Dependencies{
		DB:              db,
		HTTPServer:      httpServer,
		KafkaProducer:   producer,
		KafkaConsumer:   consumer,
		LocalDispatcher: localDispatcher,
		Cache:           external.Cache,
		JobScheduler:    scheduler,
	}, nil
}

// repositories holds the initialized repositories
type repositories struct {
	User          repository.IUserRepo
	Session       repository.ISessionRepo
	Payment       repository.IPaymentRepo
	Credit        repository.ICreditRepo
	Guru          repository.IGuruRepo
	Compatibility repository.ICompatibilityRepo
}

func (a *App) initRepositories(db *sqlx.DB) *repositories {
	persistenceLayer := pg.NewDB(db)
	return &repositories{
		User:          userRepo.New(persistenceLayer, persistenceLayer, a.Log),
		Session:       sessionRepo.New(persistenceLayer, a.Log),
		Payment:       paymentRepo.New(persistenceLayer, persistenceLayer, a.Log),
		Credit:        creditRepo.New(persistenceLayer, a.Log),
		Guru:          guruRepo.New(persistenceLayer, a.Log),
		Compatibility: compatibilityRepo.New(persistenceLayer, a.Log),
	}
}

// externalServices holds outbound service clients. Alerter, Cache and
// Archive are optional and stay nil when unconfigured.
type externalServices struct {
	Geocoder  service.IGeocoderService
	TimeZone  service.ITimeZoneService
	Ephemeris service.IEphemerisService
	Generator service.IGeneratorService
	Alerter   service.IAlerterService
	Cache     cache.Cache
	Archive   storage.IS3Client
}

func (a *App) initExternalServices(ctx context.Context) (*externalServices, error) {
	services := &externalServices{}

	if a.Cfg.Geocoder == nil {
		return nil, fmt.Errorf("geocoder configuration is missing")
	}
	services.Geocoder = geocoderAdapter.NewClient(a.Cfg.Geocoder, a.Log)

	if a.Cfg.TimeZone == nil {
		a.Cfg.TimeZone = &timezoneAdapter.Config{}
	}
	services.TimeZone = timezoneAdapter.NewClient(a.Cfg.TimeZone, a.Log)

	if a.Cfg.Ephemeris == nil {
		return nil, fmt.Errorf("ephemeris configuration is missing")
	}
	services.Ephemeris = ephemerisAdapter.NewClient(a.Cfg.Ephemeris, a.Log)

	if a.Cfg.Generator == nil {
		return nil, fmt.Errorf("generator configuration is missing")
	}
	generator, err := generatorAdapter.NewClient(ctx, a.Cfg.Generator, a.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to init generator: %w", err)
	}
	services.Generator = generator

	if a.Cfg.Alerter != nil {
		services.Alerter = alerterAdapter.NewClient(a.Cfg.Alerter, a.Log)
	}

	if a.Cfg.Redis != nil {
		redisClient, err := a.Cfg.Redis.NewConnection()
		if err != nil {
			a.Log.Warn("failed to init redis cache, continuing without cache", "error", err)
		} else {
			services.Cache = redisAdapter.NewClient(redisClient)
			a.Log.Info("redis cache connected successfully")
		}
	}

	if a.Cfg.S3 != nil {
		s3Client, err := a.Cfg.S3.NewClient()
		if err != nil {
			a.Log.Warn("failed to init s3 archive, continuing without archive", "error", err)
		} else {
			services.Archive = s3Adapter.NewClient(s3Client, a.Cfg.S3.Bucket, a.Log)
			a.Log.Info("s3 archive connected successfully")
		}
	}

	return services, nil
}

func (a *App) initKafkaProducer() (*kafkaAdapter.Producer, error) {
	if a.Cfg.Kafka == nil || a.Cfg.Kafka.Brokers == "" || a.Cfg.Kafka.Topic == "" {
		a.Log.Info("kafka is not configured, report jobs will run in-process")
		return nil, nil
	}

	return kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
}

func (a *App) initKafkaConsumer(reportService *reportUsecase.Service) (*kafkaConsumerAdapter.Consumer, error) {
	if a.Cfg.Kafka == nil || a.Cfg.Kafka.Brokers == "" || a.Cfg.Kafka.ConsumerGroup == "" {
		return nil, nil
	}

	handler := kafkaHandlers.NewReportJobHandler(reportService, a.Log)
	return kafkaConsumerAdapter.NewConsumer(a.Cfg.Kafka, handler, a.Log)
}

func (a *App) initHTTP(
	db *sqlx.DB,
	reportService *reportUsecase.Service,
	paymentCtrl *paymentController.PaymentController,
) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(db, a.Log),
		reportController.New(reportService, a.Log),
	}

	if paymentCtrl != nil {
		controllers = append(controllers, paymentCtrl)
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

func (a *App) initJobScheduler(
	alerterSvc service.IAlerterService,
	repos *repositories,
) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log, alerterSvc)

	sessionReaper := jobScheduler.NewSessionReaper(repos.Session, a.Log)
	scheduler.Register(sessionReaper)
	a.Log.Info("session reaper job registered")

	return scheduler
}

func (a *App) initPostgres() (*sqlx.DB, error) {
	db, err := a.Cfg.Postgres.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if err := pg.RunMigrations(db, a.Log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
