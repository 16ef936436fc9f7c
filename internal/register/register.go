// Package register saves, loads and queries outsourcing records. It runs the
// normalize, evaluate and finalize steps in order on every save and keeps the
// whole collection in a Store.
package register

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/outreg/internal/completeness"
	"github.com/dshills/outreg/internal/finalize"
	"github.com/dshills/outreg/internal/normalize"
	"github.com/dshills/outreg/internal/patch"
	"github.com/dshills/outreg/internal/pending"
	"github.com/dshills/outreg/internal/refnum"
	"github.com/dshills/outreg/internal/schema"
	"github.com/dshills/outreg/internal/schema/validate"
)

// Store reads and writes the whole record collection at once.
type Store interface {
	LoadRecords(ctx context.Context) ([]schema.Record, error)
	SaveRecords(ctx context.Context, records []schema.Record) error
}

// SaveMode selects how a save treats missing fields.
type SaveMode int

const (
	// SaveComplete refuses to save while any required field is missing.
	SaveComplete SaveMode = iota
	// SaveDraft defers every missing field and stores the record as Draft.
	SaveDraft
	// SaveAcknowledged stores the record with its missing fields listed in
	// incompleteFields.
	SaveAcknowledged
)

func (m SaveMode) String() string {
	switch m {
	case SaveComplete:
		return "complete"
	case SaveDraft:
		return "draft"
	case SaveAcknowledged:
		return "acknowledged"
	default:
		return fmt.Sprintf("SaveMode(%d)", int(m))
	}
}

// Service is the register. It is not safe for concurrent use.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService returns a Service over store. A nil logger disables logging.
func NewService(store Store, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{store: store, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDraft returns an empty, normalized draft with a fresh id and the next
// reference number for the current year.
func (s *Service) NewDraft(ctx context.Context) (schema.Record, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return schema.Record{}, fmt.Errorf("loading records: %w", err)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return schema.Record{}, fmt.Errorf("generating id: %w", err)
	}
	d := schema.Record{
		ID:              id.String(),
		ReferenceNumber: refnum.Next(records, s.now()),
	}
	return normalize.Normalize(d), nil
}

// NextReference returns the reference number a new draft would get.
func (s *Service) NextReference(ctx context.Context) (string, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return "", fmt.Errorf("loading records: %w", err)
	}
	return refnum.Next(records, s.now()), nil
}

// Check normalizes r and evaluates it against pending. r is not modified.
func (s *Service) Check(r schema.Record, pendingPaths []string) completeness.Result {
	n := normalize.Normalize(reopen(r))
	return completeness.Evaluate(&n, pendingPaths)
}

// Save evaluates d with its pendingFields, finalizes it according to mode and
// upserts it by id. A SaveComplete with missing fields returns an
// *IncompleteError and stores nothing.
func (s *Service) Save(ctx context.Context, d schema.Record, mode SaveMode) (schema.Record, error) {
	if d.ReferenceNumber != "" && !refnum.Valid(d.ReferenceNumber) {
		return schema.Record{}, fmt.Errorf("%w: %q", ErrInvalidReference, d.ReferenceNumber)
	}
	if err := validate.Record(&d); err != nil {
		return schema.Record{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	n := normalize.Normalize(reopen(d))
	ps := pending.New(d.PendingFields)
	res := completeness.Evaluate(&n, ps.Paths())

	var rec schema.Record
	switch mode {
	case SaveComplete:
		if !res.IsComplete {
			return schema.Record{}, &IncompleteError{Result: res}
		}
		rec = finalize.Finalize(n, nil, ps.Paths(), false)
	case SaveDraft:
		rec = finalize.Finalize(n, nil, ps.Merge(res.IncompletePaths), true)
	case SaveAcknowledged:
		rec = finalize.Finalize(n, res.IncompletePaths, ps.Paths(), false)
	default:
		return schema.Record{}, fmt.Errorf("unknown save mode %d", int(mode))
	}

	if rec.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return schema.Record{}, fmt.Errorf("generating id: %w", err)
		}
		rec.ID = id.String()
	}

	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return schema.Record{}, fmt.Errorf("loading records: %w", err)
	}

	idx := -1
	for i := range records {
		if records[i].ID == rec.ID {
			idx = i
			continue
		}
		if rec.ReferenceNumber != "" && records[i].ReferenceNumber == rec.ReferenceNumber {
			return schema.Record{}, fmt.Errorf("%w: %s", ErrDuplicateReference, rec.ReferenceNumber)
		}
	}

	now := s.now().UTC().Format(time.RFC3339)
	rec.UpdatedAt = now
	if idx >= 0 {
		rec.CreatedAt = records[idx].CreatedAt
		s.logChange(&records[idx], &rec)
		records[idx] = rec
	} else {
		rec.CreatedAt = now
		records = append(records, rec)
	}

	if err := s.store.SaveRecords(ctx, records); err != nil {
		return schema.Record{}, fmt.Errorf("saving records: %w", err)
	}

	s.logger.Info("record saved",
		zap.String("id", rec.ID),
		zap.String("reference", rec.ReferenceNumber),
		zap.Stringer("mode", mode),
		zap.String("status", string(rec.Status)),
		zap.Int("incomplete", len(rec.IncompleteFields)),
		zap.Int("pending", len(rec.PendingFields)),
	)
	return rec, nil
}

func (s *Service) logChange(before, after *schema.Record) {
	s.logger.Info("record updated",
		zap.String("reference", after.ReferenceNumber),
		zap.Strings("changed", patch.ChangedFields(before, after)),
	)
	if !s.logger.Core().Enabled(zap.DebugLevel) {
		return
	}
	diff, err := patch.Diff(before, after)
	if err != nil {
		s.logger.Warn("diffing revisions", zap.Error(err))
		return
	}
	s.logger.Debug("record diff", zap.String("reference", after.ReferenceNumber), zap.String("patch", diff))
}

// Get returns the record whose id or reference number is key.
func (s *Service) Get(ctx context.Context, key string) (schema.Record, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return schema.Record{}, fmt.Errorf("loading records: %w", err)
	}
	if i := indexOf(records, key); i >= 0 {
		return finalize.Reopen(records[i]), nil
	}
	return schema.Record{}, fmt.Errorf("%w: %s", ErrNotFound, key)
}

// Delete removes the record whose id or reference number is key. Its
// reference number becomes available to the generator again if it was the
// highest of its year.
func (s *Service) Delete(ctx context.Context, key string) error {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return fmt.Errorf("loading records: %w", err)
	}
	i := indexOf(records, key)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	removed := records[i]
	records = append(records[:i], records[i+1:]...)
	if err := s.store.SaveRecords(ctx, records); err != nil {
		return fmt.Errorf("saving records: %w", err)
	}
	s.logger.Info("record deleted", zap.String("id", removed.ID), zap.String("reference", removed.ReferenceNumber))
	return nil
}

func indexOf(records []schema.Record, key string) int {
	for i := range records {
		if records[i].ID == key || records[i].ReferenceNumber == key {
			return i
		}
	}
	return -1
}

// reopen restores implicit answers on records that were stored before.
func reopen(r schema.Record) schema.Record {
	if r.CreatedAt == "" {
		return r
	}
	return finalize.Reopen(r)
}
