package report

import (
	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/ports/cache"
	"github.com/AndreaVaz0608/skyai/internal/ports/dispatch"
	"github.com/AndreaVaz0608/skyai/internal/ports/repository"
	"github.com/AndreaVaz0608/skyai/internal/ports/service"
	"github.com/AndreaVaz0608/skyai/internal/ports/storage"
	"github.com/AndreaVaz0608/skyai/internal/usecases/astro"
)

// Service runs the report pipeline: session lifecycle, chart and numerology
// calculation, narrative generation and result persistence
type Service struct {
	SessionRepo       repository.ISessionRepo
	UserRepo          repository.IUserRepo
	CreditRepo        repository.ICreditRepo
	GuruRepo          repository.IGuruRepo
	CompatibilityRepo repository.ICompatibilityRepo
	PaymentRepo       repository.IPaymentRepo

	Astro     *astro.Service
	Generator service.IGeneratorService
	Alerter   service.IAlerterService

	Dispatcher dispatch.Dispatcher

	// optional, nil-safe
	Cache   cache.Cache
	Archive storage.IS3Client

	GuruQuestionLimit int

	Log *slog.Logger
}

// New creates the report service. Cache, archive and alerter may be nil.
func New(
	sessionRepo repository.ISessionRepo,
	userRepo repository.IUserRepo,
	creditRepo repository.ICreditRepo,
	guruRepo repository.IGuruRepo,
	compatibilityRepo repository.ICompatibilityRepo,
	paymentRepo repository.IPaymentRepo,
	astroService *astro.Service,
	generator service.IGeneratorService,
	alerter service.IAlerterService,
	dispatcher dispatch.Dispatcher,
	resultCache cache.Cache,
	archive storage.IS3Client,
	guruQuestionLimit int,
	log *slog.Logger,
) *Service {
	if guruQuestionLimit <= 0 {
		guruQuestionLimit = 10
	}

	return &Service{
		SessionRepo:       sessionRepo,
		UserRepo:          userRepo,
		CreditRepo:        creditRepo,
		GuruRepo:          guruRepo,
		CompatibilityRepo: compatibilityRepo,
		PaymentRepo:       paymentRepo,
		Astro:             astroService,
		Generator:         generator,
		Alerter:           alerter,
		Dispatcher:        dispatcher,
		Cache:             resultCache,
		Archive:           archive,
		GuruQuestionLimit: guruQuestionLimit,
		Log:               log,
	}
}
