// Package memory is an in-process persistence adapter for local development and tests.
// Units of work are serialized and rolled back with an undo log; conditional updates
// have the same precondition semantics as the SQL repositories.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
)

type userRow struct {
	email     string
	credits   int64
	createdAt time.Time
	updatedAt time.Time
}

// Store holds all tables
type Store struct {
	mu     sync.Mutex
	unitMu sync.Mutex

	users        map[string]*userRow
	transactions map[string]entity.Transaction
	externalIDs  map[string]string
	usages       []entity.CreditUsage
	packages     map[string]entity.CreditPackage
	webhooks     map[string]entity.WebhookEvent

	timeProvider coreport.TimeProvider
}

// NewStore creates an empty store
func NewStore(timeProvider coreport.TimeProvider) *Store {
	return &Store{
		users:        make(map[string]*userRow),
		transactions: make(map[string]entity.Transaction),
		externalIDs:  make(map[string]string),
		packages:     make(map[string]entity.CreditPackage),
		webhooks:     make(map[string]entity.WebhookEvent),
		timeProvider: timeProvider,
	}
}

type unitKey struct{}

// unit is the undo log of one open unit of work
type unit struct {
	undo []func()
	done bool
}

func unitFrom(ctx context.Context) *unit {
	u, _ := ctx.Value(unitKey{}).(*unit)
	return u
}

// onUndo registers a compensation for a write; callers hold s.mu
func (s *Store) onUndo(ctx context.Context, fn func()) {
	if u := unitFrom(ctx); u != nil && !u.done {
		u.undo = append(u.undo, fn)
	}
}

// UnitOfWork implements persistence.UnitOfWork over a Store
type UnitOfWork struct {
	store *Store
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a unit of work bound to store
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// Begin opens a unit of work; units are serialized
func (w *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if unitFrom(ctx) != nil {
		return ctx, fmt.Errorf("unit of work already open in context")
	}
	w.store.unitMu.Lock()
	return context.WithValue(ctx, unitKey{}, &unit{}), nil
}

// Commit closes the unit and keeps its writes
func (w *UnitOfWork) Commit(ctx context.Context) error {
	u := unitFrom(ctx)
	if u == nil || u.done {
		return fmt.Errorf("no transaction found in context")
	}
	u.done = true
	u.undo = nil
	w.store.unitMu.Unlock()
	return nil
}

// Rollback undoes the unit's writes in reverse order
func (w *UnitOfWork) Rollback(ctx context.Context) error {
	u := unitFrom(ctx)
	if u == nil {
		return fmt.Errorf("no transaction found in context")
	}
	if u.done {
		return nil
	}

	w.store.mu.Lock()
	for i := len(u.undo) - 1; i >= 0; i-- {
		u.undo[i]()
	}
	w.store.mu.Unlock()

	u.done = true
	u.undo = nil
	w.store.unitMu.Unlock()
	return nil
}

// Execute runs fn in a unit of work, joining one already open in ctx
func (w *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if unitFrom(ctx) != nil {
		return fn(ctx)
	}

	txCtx, err := w.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(txCtx); err != nil {
		_ = w.Rollback(txCtx)
		return err
	}
	return w.Commit(txCtx)
}

// Snapshot runs fn as a unit. Units are serialized, so no other unit commits while fn reads.
func (w *UnitOfWork) Snapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	return w.Execute(ctx, fn)
}

// GetUserRepository returns the user repository
func (w *UnitOfWork) GetUserRepository(context.Context) persistence.UserRepository {
	return &UserRepository{store: w.store}
}

// GetTransactionRepository returns the transaction repository
func (w *UnitOfWork) GetTransactionRepository(context.Context) persistence.TransactionRepository {
	return &TransactionRepository{store: w.store}
}

// GetCreditUsageRepository returns the audit log repository
func (w *UnitOfWork) GetCreditUsageRepository(context.Context) persistence.CreditUsageRepository {
	return &CreditUsageRepository{store: w.store}
}

// PackageRepository returns the catalog repository
func (s *Store) PackageRepository() *CreditPackageRepository {
	return &CreditPackageRepository{store: s}
}

// WebhookEventRepository returns the inbox repository
func (s *Store) WebhookEventRepository() *WebhookEventRepository {
	return &WebhookEventRepository{store: s}
}

// TransactionRepository implements persistence.TransactionRepository
type TransactionRepository struct {
	store *Store
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.externalIDs[txn.ExternalID]; ok {
		return fmt.Errorf("%w: %s", errs.ErrDuplicateExternalID, txn.ExternalID)
	}
	if _, ok := s.transactions[txn.ID]; ok {
		return fmt.Errorf("%w: transaction id %s", errs.ErrConstraintViolation, txn.ID)
	}

	s.transactions[txn.ID] = *txn
	s.externalIDs[txn.ExternalID] = txn.ID
	s.onUndo(ctx, func() {
		delete(s.transactions, txn.ID)
		delete(s.externalIDs, txn.ExternalID)
	})
	return nil
}

// GetByID retrieves a transaction by id
func (r *TransactionRepository) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, ok := s.transactions[id]
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}
	return &txn, nil
}

// GetByIDForUpdate is GetByID; units are already serialized
func (r *TransactionRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.GetByID(ctx, id)
}

// FindByExternalID resolves exact then a unique contains-match
func (r *TransactionRepository) FindByExternalID(_ context.Context, externalID string, minContainsLen int) (*entity.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.externalIDs[externalID]; ok {
		txn := s.transactions[id]
		return &txn, nil
	}
	if minContainsLen <= 0 || len(externalID) < minContainsLen {
		return nil, errs.ErrTransactionNotFound
	}

	var matches []string
	for ext, id := range s.externalIDs {
		if strings.Contains(ext, externalID) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return nil, errs.ErrTransactionNotFound
	case 1:
		txn := s.transactions[matches[0]]
		return &txn, nil
	default:
		return nil, fmt.Errorf("%w: %q matches %d transactions", errs.ErrAmbiguousExternalID, externalID, len(matches))
	}
}

// UpdateAfterCreate applies provider data while the transaction is PENDING
func (r *TransactionRepository) UpdateAfterCreate(ctx context.Context, id string, patch entity.TransactionPatch) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.transactions[id]
	if !ok {
		return errs.ErrTransactionNotFound
	}
	next := prev
	if err := next.ApplyPatch(patch, s.timeProvider); err != nil {
		return err
	}

	s.transactions[id] = next
	s.onUndo(ctx, func() { s.transactions[id] = prev })
	return nil
}

// MarkPaid is a compare-and-swap on status
func (r *TransactionRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time, method string, from ...entity.TransactionStatus) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.transactions[id]
	if !ok {
		return false, errs.ErrTransactionNotFound
	}
	if !statusIn(prev.Status, from) {
		return false, nil
	}

	next := prev
	next.Status = entity.StatusPaid
	next.PaidAt = &paidAt
	next.PaymentMethod = method
	next.UpdatedAt = s.timeProvider.Now()

	s.transactions[id] = next
	s.onUndo(ctx, func() { s.transactions[id] = prev })
	return true, nil
}

// TransitionFromPending is a compare-and-swap from PENDING
func (r *TransactionRepository) TransitionFromPending(ctx context.Context, id string, to entity.TransactionStatus) (bool, error) {
	if to != entity.StatusExpired && to != entity.StatusFailed {
		return false, fmt.Errorf("%w: PENDING -> %s", errs.ErrInvalidStatusTransition, to)
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.transactions[id]
	if !ok {
		return false, errs.ErrTransactionNotFound
	}
	if prev.Status != entity.StatusPending {
		return false, nil
	}

	next := prev
	next.Status = to
	next.UpdatedAt = s.timeProvider.Now()

	s.transactions[id] = next
	s.onUndo(ctx, func() { s.transactions[id] = prev })
	return true, nil
}

// ListByUser returns the newest transactions of a user
func (r *TransactionRepository) ListByUser(_ context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.Transaction
	for _, txn := range s.transactions {
		if txn.UserID == userID {
			t := txn
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func statusIn(status entity.TransactionStatus, set []entity.TransactionStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

// UserRepository implements persistence.UserRepository
type UserRepository struct {
	store *Store
}

// GetByID retrieves a user
func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return entity.RestoreUser(id, row.email, row.credits, row.createdAt, row.updatedAt), nil
}

// EnsureExists creates a zero-balance user if missing
func (r *UserRepository) EnsureExists(ctx context.Context, id, email string) (*entity.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if row, ok := s.users[id]; ok {
		return entity.RestoreUser(id, row.email, row.credits, row.createdAt, row.updatedAt), nil
	}

	now := s.timeProvider.Now()
	s.users[id] = &userRow{email: email, createdAt: now, updatedAt: now}
	s.onUndo(ctx, func() { delete(s.users, id) })
	return entity.RestoreUser(id, email, 0, now, now), nil
}

// IncrementCredits adds delta
func (r *UserRepository) IncrementCredits(ctx context.Context, id string, delta int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.users[id]
	if !ok {
		return 0, errs.ErrUserNotFound
	}
	if delta <= 0 {
		return row.credits, fmt.Errorf("%w: increment must be positive", errs.ErrInvalidRequest)
	}

	row.credits += delta
	row.updatedAt = s.timeProvider.Now()
	s.onUndo(ctx, func() { row.credits -= delta })
	return row.credits, nil
}

// DecrementCredits subtracts delta only if the balance covers it
func (r *UserRepository) DecrementCredits(ctx context.Context, id string, delta int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.users[id]
	if !ok {
		return 0, errs.ErrUserNotFound
	}
	if delta <= 0 {
		return row.credits, fmt.Errorf("%w: decrement must be positive", errs.ErrInvalidRequest)
	}
	if row.credits < delta {
		return row.credits, errs.NewInsufficientCreditsError(id, delta, row.credits)
	}

	row.credits -= delta
	row.updatedAt = s.timeProvider.Now()
	s.onUndo(ctx, func() { row.credits += delta })
	return row.credits, nil
}

// CreditUsageRepository implements persistence.CreditUsageRepository
type CreditUsageRepository struct {
	store *Store
}

// Append adds an audit row; one grant per transaction
func (r *CreditUsageRepository) Append(ctx context.Context, usage *entity.CreditUsage) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if usage.Kind == entity.UsageGrant && usage.TransactionID != nil {
		for _, u := range s.usages {
			if u.Kind == entity.UsageGrant && u.TransactionID != nil && *u.TransactionID == *usage.TransactionID {
				return fmt.Errorf("%w: grant for transaction %s exists", errs.ErrConstraintViolation, *usage.TransactionID)
			}
		}
	}

	n := len(s.usages)
	s.usages = append(s.usages, *usage)
	s.onUndo(ctx, func() { s.usages = s.usages[:n] })
	return nil
}

// ListByUser returns the newest rows of a user
func (r *CreditUsageRepository) ListByUser(_ context.Context, userID string, limit int) ([]*entity.CreditUsage, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.CreditUsage
	for i := len(s.usages) - 1; i >= 0; i-- {
		if s.usages[i].UserID == userID {
			u := s.usages[i]
			out = append(out, &u)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// TotalsByUser sums the audit log of a user
func (r *CreditUsageRepository) TotalsByUser(_ context.Context, userID string) (entity.UsageTotals, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var totals entity.UsageTotals
	for _, u := range s.usages {
		if u.UserID != userID {
			continue
		}
		if u.Kind == entity.UsageGrant {
			totals.Granted += u.Credits
		} else {
			totals.Debited += u.Credits
		}
	}
	return totals, nil
}

// CreditPackageRepository implements persistence.CreditPackageRepository
type CreditPackageRepository struct {
	store *Store
}

// GetByID returns a package, active or not
func (r *CreditPackageRepository) GetByID(_ context.Context, id string) (*entity.CreditPackage, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	pkg, ok := s.packages[id]
	if !ok {
		return nil, errs.ErrPackageNotFound
	}
	return &pkg, nil
}

// ListActive returns packages on sale
func (r *CreditPackageRepository) ListActive(_ context.Context) ([]*entity.CreditPackage, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.CreditPackage
	for _, pkg := range s.packages {
		if pkg.Active {
			p := pkg
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Upsert inserts or replaces a package
func (r *CreditPackageRepository) Upsert(_ context.Context, pkg *entity.CreditPackage) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.packages[pkg.ID] = *pkg
	return nil
}

// WebhookEventRepository implements persistence.WebhookEventRepository
type WebhookEventRepository struct {
	store *Store
}

// Record stores an inbox row
func (r *WebhookEventRepository) Record(_ context.Context, event *entity.WebhookEvent) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	e := *event
	e.Payload = append([]byte(nil), event.Payload...)
	s.webhooks[event.ID] = e
	return nil
}

// MarkProcessed records what happened to a delivery
func (r *WebhookEventRepository) MarkProcessed(_ context.Context, id string, result entity.WebhookResult, processingError string, at time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.webhooks[id]
	if !ok {
		return fmt.Errorf("webhook event %s not found", id)
	}
	e.Result = result
	e.ProcessingError = processingError
	e.ProcessedAt = &at
	s.webhooks[id] = e
	return nil
}

// ListByExternalID returns the deliveries for a transaction, oldest first
func (r *WebhookEventRepository) ListByExternalID(_ context.Context, externalID string) ([]*entity.WebhookEvent, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.WebhookEvent
	for _, e := range s.webhooks {
		if e.ExternalID == externalID {
			ev := e
			out = append(out, &ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReceivedAt.Before(out[j].ReceivedAt) })
	return out, nil
}
