package usecase

import (
	"context"
	"fmt"
	"time"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/internal/domain/repository"
	"transcontrol-service/pkg/logger"
	"transcontrol-service/pkg/metrics"
	"transcontrol-service/pkg/tsv"
)

// ImportResult reports what an import batch actually wrote.
type ImportResult struct {
	Transports int `json:"transports"`
	Synced     int `json:"synced"`
}

// Importer handles the paste-import flow: parse raw rows, persist them as
// transport records, then mirror the batch into fresh worksheet rows.
type Importer struct {
	transportRepo repository.TransportRepository
	statusRepo    repository.StatusEntryRepository
	parser        *tsv.Parser
	refDate       func() time.Time
	logger        logger.Logger
	metrics       *metrics.Metrics
}

// NewImporter creates a new importer
func NewImporter(
	transportRepo repository.TransportRepository,
	statusRepo repository.StatusEntryRepository,
	parser *tsv.Parser,
	refDate func() time.Time,
	logger logger.Logger,
	m *metrics.Metrics,
) *Importer {
	return &Importer{
		transportRepo: transportRepo,
		statusRepo:    statusRepo,
		parser:        parser,
		refDate:       refDate,
		logger:        logger,
		metrics:       m,
	}
}

// Preview parses the pasted text without persisting anything.
func (i *Importer) Preview(data string) ([]entity.TransportRecord, error) {
	return i.parser.Parse(data)
}

// Imported returns the transport records currently in the staging
// collection.
func (i *Importer) Imported(ctx context.Context) ([]entity.TransportRecord, error) {
	records, err := i.transportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list imported transports: %w", err)
	}
	return records, nil
}

// Reset clears the staging collection. Worksheet rows created by earlier
// imports are left alone.
func (i *Importer) Reset(ctx context.Context) error {
	if err := i.transportRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to reset imported transports: %w", err)
	}
	i.logger.Info("Imported transports cleared")
	return nil
}

// Confirm runs the two-phase import: every parsed record is written to the
// transports collection, then an equal-length batch of blank PENDENTE
// worksheet rows is written, dated with the reference date. There is no
// rollback: a failure in the second phase leaves the first phase's records
// in place and is reported with the counts that made it in.
func (i *Importer) Confirm(ctx context.Context, data string) (*ImportResult, error) {
	start := time.Now()

	records, err := i.parser.Parse(data)
	if err != nil {
		return nil, err
	}

	i.logger.Info("Starting import", "records", len(records))

	written, err := i.transportRepo.CreateBatch(ctx, records)
	if err != nil {
		i.logger.Error("Transport phase failed", "written", written, "error", err)
		if i.metrics != nil {
			i.metrics.ErrorsCount.WithLabelValues("import").Inc()
		}
		return &ImportResult{Transports: written}, fmt.Errorf("import wrote %d of %d transports: %w", written, len(records), err)
	}

	transportDate := i.refDate().Format("2006-01-02")
	entries := make([]entity.StatusEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, entity.StatusEntryFromTransport(record, transportDate))
	}

	synced, err := i.statusRepo.CreateBatch(ctx, entries)
	if err != nil {
		// Phase one stays applied; the caller reloads to see partial state.
		i.logger.Error("Worksheet sync phase failed", "synced", synced, "error", err)
		if i.metrics != nil {
			i.metrics.ErrorsCount.WithLabelValues("import_sync").Inc()
		}
		return &ImportResult{Transports: written, Synced: synced},
			fmt.Errorf("import persisted %d transports but synced only %d of %d worksheet rows: %w", written, synced, len(entries), err)
	}

	if i.metrics != nil {
		i.metrics.TransportsImported.Add(float64(written))
		i.metrics.EntriesSynced.Add(float64(synced))
		i.metrics.ImportTime.Observe(time.Since(start).Seconds())
	}

	i.logger.Info("Import finished", "transports", written, "synced", synced)
	return &ImportResult{Transports: written, Synced: synced}, nil
}
