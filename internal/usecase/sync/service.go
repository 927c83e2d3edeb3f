// Package sync keeps the vector indexes consistent with the relational
// store: it loads current records, canonicalizes them, embeds the text, and
// fully replaces the index entry.
package sync

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/canonical"
	"github.com/kailas-cloud/matchdex/internal/domain/entity"
	"github.com/kailas-cloud/matchdex/internal/domain/syncreport"
	"github.com/kailas-cloud/matchdex/internal/metrics"
)

// Service orchestrates relational-to-index synchronization.
type Service struct {
	store   RelationalStore
	indexes map[entity.Type]Index
	embed   Embedder
	logger  *zap.Logger
}

// New creates a sync service writing to one index per entity type.
func New(store RelationalStore, candidates, jobs Index, embed Embedder, logger *zap.Logger) *Service {
	return &Service{
		store: store,
		indexes: map[entity.Type]Index{
			entity.Candidates: candidates,
			entity.Jobs:       jobs,
		},
		embed:  embed,
		logger: logger,
	}
}

// SyncOne regenerates the index entry for one entity from its current
// relational state. The record must exist relationally; a missing record is
// domain.ErrRecordNotFound. Syncing a job that is no longer open removes its
// index entry instead, so filled and closed jobs drop out of the searchable
// set on their next sync.
func (s *Service) SyncOne(ctx context.Context, typ entity.Type, id string) error {
	if err := entity.ValidateID(id); err != nil {
		return err
	}

	document, meta, err := s.load(ctx, typ, id)
	if err != nil {
		if errors.Is(err, errJobInactive) {
			return s.deindexInactive(ctx, typ, id)
		}
		return err
	}

	result, err := s.embed.Embed(ctx, document)
	if err != nil {
		s.countSync(typ, "error")
		return fmt.Errorf("embed %s %s: %w", typ, id, err)
	}

	if err := s.indexes[typ].Upsert(ctx, id, result.Embedding, meta, document); err != nil {
		s.countSync(typ, "error")
		return fmt.Errorf("upsert %s %s: %w", typ, id, err)
	}

	s.countSync(typ, "ok")
	s.logger.Debug("Synced entity",
		zap.String("entity_type", string(typ)),
		zap.String("id", id),
		zap.Int("tokens", result.TotalTokens),
	)
	return nil
}

// SyncAll enumerates all relational records of the type (for jobs: open
// only) and syncs each in turn. A failing record is logged, recorded in the
// report, and skipped; the batch always runs to the end.
func (s *Service) SyncAll(ctx context.Context, typ entity.Type) (*syncreport.Report, error) {
	ids, err := s.listIDs(ctx, typ)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", typ, err)
	}

	report := &syncreport.Report{}
	for _, id := range ids {
		if err := s.SyncOne(ctx, typ, id); err != nil {
			s.logger.Warn("Sync failed, skipping record",
				zap.String("entity_type", string(typ)),
				zap.String("id", id),
				zap.Error(err),
			)
			report.Append(syncreport.NewError(id, err))
			continue
		}
		report.Append(syncreport.NewOK(id))
	}

	s.logger.Info("Sync batch finished",
		zap.String("entity_type", string(typ)),
		zap.Int("attempted", report.Attempted()),
		zap.Int("succeeded", report.Succeeded()),
		zap.Int("failed", len(report.Failed())),
	)
	return report, nil
}

// Remove deletes the index entry for id. The relational record is untouched;
// removing an id that was never synced is a no-op.
func (s *Service) Remove(ctx context.Context, typ entity.Type, id string) error {
	if err := entity.ValidateID(id); err != nil {
		return err
	}
	if err := s.indexes[typ].Delete(ctx, id); err != nil {
		return fmt.Errorf("remove %s %s: %w", typ, id, err)
	}
	return nil
}

// errJobInactive is internal to load/SyncOne; never escapes the package.
var errJobInactive = errors.New("job is not open")

// load reads the relational record and renders its canonical document and
// filter metadata.
func (s *Service) load(ctx context.Context, typ entity.Type, id string) (string, domain.Metadata, error) {
	switch typ {
	case entity.Candidates:
		c, err := s.store.GetCandidate(ctx, id)
		if err != nil {
			return "", domain.Metadata{}, fmt.Errorf("get candidate %s: %w", id, err)
		}
		return canonical.CandidateText(c), canonical.CandidateMetadata(c), nil
	case entity.Jobs:
		j, err := s.store.GetJob(ctx, id)
		if err != nil {
			return "", domain.Metadata{}, fmt.Errorf("get job %s: %w", id, err)
		}
		if j.Status != entity.JobOpen {
			return "", domain.Metadata{}, errJobInactive
		}
		return canonical.JobText(j), canonical.JobMetadata(j), nil
	default:
		return "", domain.Metadata{}, fmt.Errorf("%q: %w", typ, domain.ErrUnknownEntityType)
	}
}

func (s *Service) deindexInactive(ctx context.Context, typ entity.Type, id string) error {
	if err := s.indexes[typ].Delete(ctx, id); err != nil {
		s.countSync(typ, "error")
		return fmt.Errorf("deindex inactive %s %s: %w", typ, id, err)
	}
	s.countSync(typ, "ok")
	s.logger.Info("Removed inactive entity from index",
		zap.String("entity_type", string(typ)),
		zap.String("id", id),
	)
	return nil
}

func (s *Service) listIDs(ctx context.Context, typ entity.Type) ([]string, error) {
	switch typ {
	case entity.Candidates:
		cands, err := s.store.ListCandidates(ctx)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(cands))
		for _, c := range cands {
			ids = append(ids, c.ID)
		}
		return ids, nil
	case entity.Jobs:
		jobs, err := s.store.ListOpenJobs(ctx)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(jobs))
		for _, j := range jobs {
			ids = append(ids, j.ID)
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("%q: %w", typ, domain.ErrUnknownEntityType)
	}
}

func (s *Service) countSync(typ entity.Type, status string) {
	metrics.SyncRecordsTotal.WithLabelValues(string(typ), status).Inc()
}
