package templates

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"transcontrol-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestStatusEntriesCSVHeaderAndDerivedTotal(t *testing.T) {
	entries := []entity.StatusEntry{
		{
			Operation:           "CARGA",
			TransportDate:       "2025-07-15",
			TransportSap:        "70012345",
			Route:               "SP-RJ-01",
			Weight:              1250.5,
			Boxes:               340,
			RefrigeratedPallets: 12,
			DryPallets:          8,
			FinancialReportDoc:  true,
			Status:              entity.StatusPendente,
		},
	}

	data, err := StatusEntriesCSV(entries)
	require.NoError(t, err)
	rows := parseCSV(t, data)

	require.Len(t, rows, 2)
	header := rows[0]
	require.Len(t, header, 32)
	assert.Equal(t, "OPERAÇÃO", header[0])
	assert.Equal(t, "QTD PALLETS", header[18])
	assert.Equal(t, "STATUS", header[31])

	row := rows[1]
	assert.Equal(t, "15/07/2025", row[8])
	assert.Equal(t, "1250.5", row[11])
	assert.Equal(t, "12", row[16])
	assert.Equal(t, "8", row[17])
	assert.Equal(t, "20", row[18])
	assert.Equal(t, "SIM", row[27])
	assert.Equal(t, "NÃO", row[28])
	assert.Equal(t, "PENDENTE", row[31])
}

func TestStatusEntriesCSVHeaderOnlyWhenEmpty(t *testing.T) {
	data, err := StatusEntriesCSV(nil)
	require.NoError(t, err)

	rows := parseCSV(t, data)
	assert.Len(t, rows, 1)
}

func TestSchedulesCSVOneRowPerVehicle(t *testing.T) {
	created := time.Date(2025, time.July, 15, 9, 30, 0, 0, time.UTC)
	schedules := []entity.Schedule{
		{
			Date:      "2025-07-15",
			Title:     "Programação Diária 1",
			CreatedAt: created,
			Vehicles: []entity.VehicleAssignment{
				{
					Plate:  "ABC-123",
					Driver: "João",
					Origin: "CD São Paulo",
					Status: entity.VehicleEmTransito,
					Destinations: []entity.Destination{
						{Name: "Rio de Janeiro", Time: "08:00"},
						{Name: "Niterói"},
					},
				},
				{
					Plate:        "DEF-456",
					Driver:       "Maria",
					Origin:       "CD Campinas",
					Status:       entity.VehicleConcluido,
					Destinations: []entity.Destination{{Name: "Santos"}},
				},
			},
		},
	}

	data, err := SchedulesCSV(schedules)
	require.NoError(t, err)
	rows := parseCSV(t, data)

	require.Len(t, rows, 3)
	require.Len(t, rows[0], 8)
	assert.Equal(t, "DATA", rows[0][0])

	first := rows[1]
	assert.Equal(t, "15/07/2025", first[0])
	assert.Equal(t, "Rio de Janeiro (08:00); Niterói", first[5])
	assert.Equal(t, "Em Trânsito", first[6])
	assert.Equal(t, "15/07/2025 09:30:00", first[7])

	second := rows[2]
	assert.Equal(t, "DEF-456", second[2])
	assert.Equal(t, "Santos", second[5])
	assert.Equal(t, "Concluído", second[6])
}
