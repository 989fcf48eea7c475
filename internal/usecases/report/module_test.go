package report

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/AndreaVaz0608/skyai/internal/ports/persistence"
	"github.com/AndreaVaz0608/skyai/internal/usecases/astro"
	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- session repository ---

type fakeSessionRepo struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*domain.ReportSession
	markErr   error
	completed map[uuid.UUID]*domain.SessionResult
	failed    map[uuid.UUID]string
	marked    []uuid.UUID
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions:  make(map[uuid.UUID]*domain.ReportSession),
		completed: make(map[uuid.UUID]*domain.SessionResult),
		failed:    make(map[uuid.UUID]string),
	}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *domain.ReportSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ReportSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepo) ListByUser(_ context.Context, userID uuid.UUID, _ int) ([]domain.ReportSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ReportSession
	for _, session := range f.sessions {
		if session.UserID == userID {
			out = append(out, *session)
		}
	}
	return out, nil
}

// MarkProcessing mirrors the store-level compare-and-set: the status check
// and the write happen under one lock
func (f *fakeSessionRepo) MarkProcessing(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return f.markErr
	}
	session, ok := f.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	if session.Status != domain.SessionStatusPending {
		return domain.ErrSessionTaken
	}
	session.Status = domain.SessionStatusProcessing
	f.marked = append(f.marked, id)
	return nil
}

func (f *fakeSessionRepo) Complete(_ context.Context, id uuid.UUID, result *domain.SessionResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	session.Status = domain.SessionStatusCompleted
	f.completed[id] = result
	return nil
}

func (f *fakeSessionRepo) Fail(_ context.Context, id uuid.UUID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	session.Status = domain.SessionStatusFailed
	f.failed[id] = reason
	return nil
}

func (f *fakeSessionRepo) ListStuckProcessing(_ context.Context, _ time.Time) ([]domain.ReportSession, error) {
	return nil, nil
}

// --- user repository ---

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
	for _, user := range users {
		f.users[user.ID] = user
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) BeginTx(_ context.Context) (persistence.Transaction, error) {
	return nil, errors.New("not supported in fake")
}

func (f *fakeUserRepo) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return fn(ctx, nil)
}

func (f *fakeUserRepo) GetByEmailTx(ctx context.Context, _ persistence.Transaction, email string) (*domain.User, error) {
	return f.GetByEmail(ctx, email)
}

// --- credit repository ---

type fakeCreditRepo struct {
	mu               sync.Mutex
	guruErr          error
	compatibilityErr error
	guruConsumed     int
	guruRefunded     int
	compatibilityUse int
}

func (f *fakeCreditRepo) Get(_ context.Context, userID uuid.UUID) (*domain.CreditLedger, error) {
	return &domain.CreditLedger{UserID: userID}, nil
}

// ConsumeGuruQuestion mirrors the guarded UPDATE: check and increment are
// one atomic step
func (f *fakeCreditRepo) ConsumeGuruQuestion(_ context.Context, _ uuid.UUID, limit int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.guruErr != nil {
		return f.guruErr
	}
	if f.guruConsumed >= limit {
		return domain.ErrQuotaExceeded
	}
	f.guruConsumed++
	return nil
}

func (f *fakeCreditRepo) RefundGuruQuestion(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.guruConsumed > 0 {
		f.guruConsumed--
	}
	f.guruRefunded++
	return nil
}

func (f *fakeCreditRepo) ConsumeCompatibility(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.compatibilityErr != nil {
		return f.compatibilityErr
	}
	f.compatibilityUse++
	return nil
}

func (f *fakeCreditRepo) ResetTx(_ context.Context, _ persistence.Transaction, _ uuid.UUID) error {
	return nil
}

// --- payment repository ---

type fakePaymentRepo struct {
	paid map[uuid.UUID]bool
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{paid: make(map[uuid.UUID]bool)}
}

func (f *fakePaymentRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.PaymentRecord, error) {
	return nil, domain.ErrNotFound
}

func (f *fakePaymentRepo) GetByExternalID(_ context.Context, _ string) (*domain.PaymentRecord, error) {
	return nil, domain.ErrNotFound
}

func (f *fakePaymentRepo) BeginTx(_ context.Context) (persistence.Transaction, error) {
	return nil, errors.New("not supported in fake")
}

func (f *fakePaymentRepo) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return fn(ctx, nil)
}

func (f *fakePaymentRepo) InsertIdempotentTx(_ context.Context, _ persistence.Transaction, _ *domain.PaymentRecord) (bool, error) {
	return true, nil
}

func (f *fakePaymentRepo) HasPaidUser(_ context.Context, userID uuid.UUID) (bool, error) {
	return f.paid[userID], nil
}

// --- guru and compatibility repositories ---

type fakeGuruRepo struct {
	mu      sync.Mutex
	created []*domain.GuruQuestion
}

func (f *fakeGuruRepo) Create(_ context.Context, question *domain.GuruQuestion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, question)
	return nil
}

func (f *fakeGuruRepo) ListByUser(_ context.Context, _ uuid.UUID, _ int) ([]domain.GuruQuestion, error) {
	return nil, nil
}

type fakeCompatibilityRepo struct {
	created []*domain.CompatibilityReading
}

func (f *fakeCompatibilityRepo) Create(_ context.Context, reading *domain.CompatibilityReading) error {
	f.created = append(f.created, reading)
	return nil
}

func (f *fakeCompatibilityRepo) ListByUser(_ context.Context, _ uuid.UUID, _ int) ([]domain.CompatibilityReading, error) {
	return nil, nil
}

// --- services ---

type fakeGenerator struct {
	mu    sync.Mutex
	reply string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeDispatcher struct {
	dispatched []uuid.UUID
	err        error
}

func (f *fakeDispatcher) DispatchReportJob(_ context.Context, sessionID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.dispatched = append(f.dispatched, sessionID)
	return nil
}

func (f *fakeDispatcher) Close() error { return nil }

type fakeGeocoder struct{}

func (f *fakeGeocoder) Geocode(_ context.Context, _, _ string) (domain.Coordinates, error) {
	return domain.Coordinates{Latitude: -23.55, Longitude: -46.63}, nil
}

type fakeTimeZone struct{}

func (f *fakeTimeZone) ZoneFor(_ context.Context, _ domain.Coordinates) (string, error) {
	return "America/Sao_Paulo", nil
}

type fakeEphemeris struct{}

func (f *fakeEphemeris) BodyLongitude(_ context.Context, _ float64, body domain.Body) (float64, error) {
	// spread the bodies so every sign lookup is stable
	for i, tracked := range domain.TrackedBodies {
		if tracked == body {
			return float64(i * 33), nil
		}
	}
	return 0, nil
}

func (f *fakeEphemeris) AscendantLongitude(_ context.Context, _ float64, _ domain.Coordinates) (float64, error) {
	return 170, nil
}

// --- harness ---

type testHarness struct {
	svc        *Service
	sessions   *fakeSessionRepo
	users      *fakeUserRepo
	credits    *fakeCreditRepo
	guru       *fakeGuruRepo
	compat     *fakeCompatibilityRepo
	payments   *fakePaymentRepo
	generator  *fakeGenerator
	dispatcher *fakeDispatcher
}

// newTestHarness wires the service with fakes; every passed user starts paid
func newTestHarness(users ...*domain.User) *testHarness {
	h := &testHarness{
		sessions:   newFakeSessionRepo(),
		users:      newFakeUserRepo(users...),
		credits:    &fakeCreditRepo{},
		guru:       &fakeGuruRepo{},
		compat:     &fakeCompatibilityRepo{},
		payments:   newFakePaymentRepo(),
		generator:  &fakeGenerator{reply: validReply},
		dispatcher: &fakeDispatcher{},
	}
	for _, user := range users {
		h.payments.paid[user.ID] = true
	}

	astroService := astro.New(&fakeGeocoder{}, &fakeTimeZone{}, &fakeEphemeris{}, testLogger())

	h.svc = New(
		h.sessions,
		h.users,
		h.credits,
		h.guru,
		h.compat,
		h.payments,
		astroService,
		h.generator,
		nil,
		h.dispatcher,
		nil,
		nil,
		10,
		testLogger(),
	)

	return h
}

func pendingSession(userID uuid.UUID) *domain.ReportSession {
	now := time.Now().UTC()
	return &domain.ReportSession{
		ID:           uuid.New(),
		UserID:       userID,
		Status:       domain.SessionStatusPending,
		FullName:     "Maria Silva",
		BirthDate:    "1990-05-10",
		BirthTime:    "14:30",
		BirthCity:    "Sao Paulo",
		BirthCountry: "Brazil",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
