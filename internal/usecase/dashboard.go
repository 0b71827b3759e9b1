package usecase

import (
	"context"
	"time"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/internal/domain/repository"
	"transcontrol-service/pkg/logger"
)

// DailySummary is the reconciliation view for the reference date: vehicle
// transit tallies from the schedules side and lifecycle tallies from the
// worksheet side. Always recomputed, never stored.
type DailySummary struct {
	Date              string `json:"date"`
	ScheduledVehicles int    `json:"scheduledVehicles"`
	InTransitVehicles int    `json:"inTransitVehicles"`
	CompletedVehicles int    `json:"completedVehicles"`
	TotalEntries      int    `json:"totalEntries"`
	PendingEntries    int    `json:"pendingEntries"`
	FinishedEntries   int    `json:"finishedEntries"`
	TotalPallets      int    `json:"totalPallets"`
}

// Dashboard derives the daily aggregate counts shown on the landing view.
type Dashboard struct {
	statusRepo   repository.StatusEntryRepository
	scheduleRepo repository.ScheduleRepository
	refDate      func() time.Time
	logger       logger.Logger
}

// NewDashboard creates a new dashboard service
func NewDashboard(
	statusRepo repository.StatusEntryRepository,
	scheduleRepo repository.ScheduleRepository,
	refDate func() time.Time,
	logger logger.Logger,
) *Dashboard {
	return &Dashboard{
		statusRepo:   statusRepo,
		scheduleRepo: scheduleRepo,
		refDate:      refDate,
		logger:       logger,
	}
}

// Summary computes the reference-date tallies. Read failures degrade to
// zero counts for that side rather than failing the view.
func (d *Dashboard) Summary(ctx context.Context) *DailySummary {
	today := d.refDate().Format("2006-01-02")
	summary := &DailySummary{Date: today}

	schedules, err := d.scheduleRepo.List(ctx)
	if err != nil {
		d.logger.Error("Failed to load schedules for summary", "error", err)
		schedules = nil
	}
	for _, s := range schedules {
		if s.Date != today {
			continue
		}
		for _, v := range s.Vehicles {
			summary.ScheduledVehicles++
			if v.Status == entity.VehicleConcluido {
				summary.CompletedVehicles++
			} else {
				summary.InTransitVehicles++
			}
		}
	}

	entries, err := d.statusRepo.List(ctx)
	if err != nil {
		d.logger.Error("Failed to load worksheet for summary", "error", err)
		entries = nil
	}
	for i := range entries {
		if entries[i].TransportDate != today {
			continue
		}
		summary.TotalEntries++
		summary.TotalPallets += entries[i].TotalPallets()
		if entries[i].Status == entity.StatusFinalizado {
			summary.FinishedEntries++
		} else {
			summary.PendingEntries++
		}
	}

	return summary
}
