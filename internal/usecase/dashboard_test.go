package usecase

import (
	"context"
	"fmt"
	"testing"

	"transcontrol-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDashboardSummaryTallies(t *testing.T) {
	statuses := newFakeStatusRepo()
	statuses.entries = []entity.StatusEntry{
		{ID: "1", TransportDate: "2025-07-15", Status: entity.StatusPendente, RefrigeratedPallets: 10, DryPallets: 4},
		{ID: "2", TransportDate: "2025-07-15", Status: entity.StatusFinalizado, DryPallets: 6},
		{ID: "3", TransportDate: "2025-07-14", Status: entity.StatusPendente, RefrigeratedPallets: 99},
	}

	schedules := newFakeScheduleRepo()
	schedules.schedules = []entity.Schedule{
		{
			ID:   "a",
			Date: "2025-07-15",
			Vehicles: []entity.VehicleAssignment{
				{Status: entity.VehicleEmTransito},
				{Status: entity.VehicleConcluido},
			},
		},
		{
			ID:       "b",
			Date:     "2025-07-16",
			Vehicles: []entity.VehicleAssignment{{Status: entity.VehicleEmTransito}},
		},
	}

	dashboard := NewDashboard(statuses, schedules, testRefDate, nopLogger{})
	summary := dashboard.Summary(context.Background())

	assert.Equal(t, "2025-07-15", summary.Date)
	assert.Equal(t, 2, summary.ScheduledVehicles)
	assert.Equal(t, 1, summary.InTransitVehicles)
	assert.Equal(t, 1, summary.CompletedVehicles)
	assert.Equal(t, 2, summary.TotalEntries)
	assert.Equal(t, 1, summary.PendingEntries)
	assert.Equal(t, 1, summary.FinishedEntries)
	assert.Equal(t, 20, summary.TotalPallets)
}

func TestDashboardSummaryDegradesOnReadFailure(t *testing.T) {
	statuses := newFakeStatusRepo()
	statuses.listErr = fmt.Errorf("store unavailable")

	schedules := newFakeScheduleRepo()
	schedules.schedules = []entity.Schedule{
		{ID: "a", Date: "2025-07-15", Vehicles: []entity.VehicleAssignment{{Status: entity.VehicleEmTransito}}},
	}

	dashboard := NewDashboard(statuses, schedules, testRefDate, nopLogger{})
	summary := dashboard.Summary(context.Background())

	assert.Equal(t, 1, summary.ScheduledVehicles)
	assert.Equal(t, 0, summary.TotalEntries)
	assert.Equal(t, 0, summary.TotalPallets)
}
