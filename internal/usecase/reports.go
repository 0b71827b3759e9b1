package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/internal/domain/repository"
	"transcontrol-service/pkg/logger"
	"transcontrol-service/pkg/metrics"
	"transcontrol-service/templates"
)

// ExportMode selects the date window of a report relative to the reference
// date.
type ExportMode string

const (
	// ModeDaily keeps only records dated exactly on the reference date.
	ModeDaily ExportMode = "daily"
	// ModeMonthly keeps records in the same calendar month and year.
	ModeMonthly ExportMode = "monthly"
	// ModeAll applies no date window.
	ModeAll ExportMode = "all"
)

// ErrUnknownMode is returned for an export mode outside daily/monthly/all.
var ErrUnknownMode = errors.New("unknown export mode")

// Reports renders the chat and CSV exports from date-filtered views of the
// worksheet and the schedule list.
type Reports struct {
	statusRepo   repository.StatusEntryRepository
	scheduleRepo repository.ScheduleRepository
	refDate      func() time.Time
	logger       logger.Logger
	metrics      *metrics.Metrics
}

// NewReports creates a new report generator
func NewReports(
	statusRepo repository.StatusEntryRepository,
	scheduleRepo repository.ScheduleRepository,
	refDate func() time.Time,
	logger logger.Logger,
	m *metrics.Metrics,
) *Reports {
	return &Reports{
		statusRepo:   statusRepo,
		scheduleRepo: scheduleRepo,
		refDate:      refDate,
		logger:       logger,
		metrics:      m,
	}
}

// InWindow reports whether a YYYY-MM-DD date falls inside the mode's window
// around the reference date. Malformed dates never match a bounded window.
func InWindow(date string, mode ExportMode, ref time.Time) bool {
	if mode == ModeAll {
		return true
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	switch mode {
	case ModeDaily:
		return parsed.Year() == ref.Year() && parsed.Month() == ref.Month() && parsed.Day() == ref.Day()
	case ModeMonthly:
		return parsed.Year() == ref.Year() && parsed.Month() == ref.Month()
	}
	return false
}

// ChatSummary renders the worksheet chat report for the given window.
func (r *Reports) ChatSummary(ctx context.Context, mode ExportMode) (string, error) {
	if err := validateMode(mode); err != nil {
		return "", err
	}

	entries, err := r.statusRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load worksheet for report: %w", err)
	}

	ref := r.refDate()
	filtered := make([]entity.StatusEntry, 0, len(entries))
	for _, e := range entries {
		if InWindow(e.TransportDate, mode, ref) {
			filtered = append(filtered, e)
		}
	}

	if r.metrics != nil {
		r.metrics.ReportsGenerated.WithLabelValues("chat").Inc()
	}
	return templates.TransportSummary(filtered, ref), nil
}

// ScheduleMessage renders one schedule as a chat message.
func (r *Reports) ScheduleMessage(ctx context.Context, scheduleID string) (string, error) {
	schedule, err := r.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		return "", err
	}
	if r.metrics != nil {
		r.metrics.ReportsGenerated.WithLabelValues("schedule_chat").Inc()
	}
	return templates.ScheduleMessage(*schedule), nil
}

// StatusCSV renders the worksheet CSV for the given window and returns the
// download filename alongside the bytes.
func (r *Reports) StatusCSV(ctx context.Context, baseName string, mode ExportMode) (string, []byte, error) {
	if err := validateMode(mode); err != nil {
		return "", nil, err
	}

	entries, err := r.statusRepo.List(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load worksheet for export: %w", err)
	}

	ref := r.refDate()
	filtered := make([]entity.StatusEntry, 0, len(entries))
	for _, e := range entries {
		if InWindow(e.TransportDate, mode, ref) {
			filtered = append(filtered, e)
		}
	}

	data, err := templates.StatusEntriesCSV(filtered)
	if err != nil {
		return "", nil, fmt.Errorf("failed to render status export: %w", err)
	}

	if r.metrics != nil {
		r.metrics.ReportsGenerated.WithLabelValues("status_csv").Inc()
	}
	return r.exportFilename(baseName, mode), data, nil
}

// SchedulesCSV renders the flattened schedule CSV for the given window.
func (r *Reports) SchedulesCSV(ctx context.Context, baseName string, mode ExportMode) (string, []byte, error) {
	if err := validateMode(mode); err != nil {
		return "", nil, err
	}

	schedules, err := r.scheduleRepo.List(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load schedules for export: %w", err)
	}

	ref := r.refDate()
	filtered := make([]entity.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if InWindow(s.Date, mode, ref) {
			filtered = append(filtered, s)
		}
	}

	data, err := templates.SchedulesCSV(filtered)
	if err != nil {
		return "", nil, fmt.Errorf("failed to render schedule export: %w", err)
	}

	if r.metrics != nil {
		r.metrics.ReportsGenerated.WithLabelValues("schedules_csv").Inc()
	}
	return r.exportFilename(baseName, mode), data, nil
}

func (r *Reports) exportFilename(baseName string, mode ExportMode) string {
	if mode == ModeAll {
		return fmt.Sprintf("%s-%s.csv", baseName, r.refDate().Format("2006-01-02"))
	}
	return fmt.Sprintf("%s-%s-%s.csv", baseName, mode, r.refDate().Format("2006-01-02"))
}

func validateMode(mode ExportMode) error {
	switch mode {
	case ModeDaily, ModeMonthly, ModeAll:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}
