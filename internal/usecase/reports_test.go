package usecase

import (
	"context"
	"strings"
	"testing"

	"transcontrol-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReports(statuses *fakeStatusRepo, schedules *fakeScheduleRepo) *Reports {
	return NewReports(statuses, schedules, testRefDate, nopLogger{}, nil)
}

func TestInWindowDaily(t *testing.T) {
	ref := testRefDate()

	assert.True(t, InWindow("2025-07-15", ModeDaily, ref))
	assert.False(t, InWindow("2025-07-14", ModeDaily, ref))
	assert.False(t, InWindow("2025-08-15", ModeDaily, ref))
	assert.False(t, InWindow("garbage", ModeDaily, ref))
}

func TestInWindowMonthly(t *testing.T) {
	ref := testRefDate()

	assert.True(t, InWindow("2025-07-01", ModeMonthly, ref))
	assert.True(t, InWindow("2025-07-31", ModeMonthly, ref))
	assert.False(t, InWindow("2025-06-30", ModeMonthly, ref))
	assert.False(t, InWindow("2025-08-01", ModeMonthly, ref))
}

func TestChatSummaryFiltersByWindow(t *testing.T) {
	statuses := newFakeStatusRepo()
	statuses.entries = []entity.StatusEntry{
		{ID: "1", TransportDate: "2025-07-15", TransportSap: "11111", Status: entity.StatusPendente},
		{ID: "2", TransportDate: "2025-07-14", TransportSap: "22222", Status: entity.StatusPendente},
	}
	reports := newTestReports(statuses, newFakeScheduleRepo())

	message, err := reports.ChatSummary(context.Background(), ModeDaily)
	require.NoError(t, err)

	assert.Contains(t, message, "11111")
	assert.NotContains(t, message, "22222")
	assert.Contains(t, message, "Total: 1")
}

func TestChatSummaryRejectsUnknownMode(t *testing.T) {
	reports := newTestReports(newFakeStatusRepo(), newFakeScheduleRepo())

	_, err := reports.ChatSummary(context.Background(), ExportMode("weekly"))
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestStatusCSVFilenamePattern(t *testing.T) {
	reports := newTestReports(newFakeStatusRepo(), newFakeScheduleRepo())

	filename, data, err := reports.StatusCSV(context.Background(), "status-diario", ModeDaily)
	require.NoError(t, err)

	assert.Equal(t, "status-diario-daily-2025-07-15.csv", filename)
	assert.True(t, strings.HasPrefix(string(data), "OPERAÇÃO,"))
}

func TestSchedulesCSVFiltersByWindow(t *testing.T) {
	schedules := newFakeScheduleRepo()
	schedules.schedules = []entity.Schedule{
		{ID: "in", Date: "2025-07-20", Title: "Programação Diária 1", Vehicles: []entity.VehicleAssignment{completeVehicle()}},
		{ID: "out", Date: "2025-08-01", Title: "Programação Diária 1", Vehicles: []entity.VehicleAssignment{{Plate: "XYZ-999", Driver: "Maria", Origin: "MG", Destinations: []entity.Destination{{Name: "SP"}}}}},
	}
	reports := newTestReports(newFakeStatusRepo(), schedules)

	filename, data, err := reports.SchedulesCSV(context.Background(), "programacoes-diarias", ModeMonthly)
	require.NoError(t, err)

	assert.Equal(t, "programacoes-diarias-monthly-2025-07-15.csv", filename)
	assert.Contains(t, string(data), "ABC-123")
	assert.NotContains(t, string(data), "XYZ-999")
}

func TestScheduleMessageRendersOneSchedule(t *testing.T) {
	schedules := newFakeScheduleRepo()
	id, err := schedules.Create(context.Background(), entity.Schedule{
		Date:     "2025-07-15",
		Title:    "Programação Diária 1",
		Vehicles: []entity.VehicleAssignment{completeVehicle()},
	})
	require.NoError(t, err)
	reports := newTestReports(newFakeStatusRepo(), schedules)

	message, err := reports.ScheduleMessage(context.Background(), id)
	require.NoError(t, err)
	assert.Contains(t, message, "PROGRAMAÇÃO DIÁRIA 1")
	assert.Contains(t, message, "ABC-123")
}
