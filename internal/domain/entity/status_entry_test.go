package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPalletsIsDerived(t *testing.T) {
	e := StatusEntry{RefrigeratedPallets: 12, DryPallets: 8}
	assert.Equal(t, 20, e.TotalPallets())

	e.DryPallets = 0
	assert.Equal(t, 12, e.TotalPallets())
}

func TestNewBlankStatusEntryDefaults(t *testing.T) {
	date := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	e := NewBlankStatusEntry(date.Format("2006-01-02"))

	assert.Equal(t, StatusPendente, e.Status)
	assert.Equal(t, "2025-07-15", e.TransportDate)
	assert.Empty(t, e.TransportSap)
}

func TestStatusEntryFromTransportCopiesOnlyImportFields(t *testing.T) {
	date := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	record := TransportRecord{
		TransportSap: "70012345",
		Route:        "SP-RJ-01",
		Weight:       1250.5,
		Boxes:        340,
	}

	e := StatusEntryFromTransport(record, date.Format("2006-01-02"))

	assert.Equal(t, "70012345", e.TransportSap)
	assert.Equal(t, "SP-RJ-01", e.Route)
	assert.Equal(t, 1250.5, e.Weight)
	assert.Equal(t, 340, e.Boxes)
	assert.Equal(t, StatusPendente, e.Status)
	assert.Equal(t, "2025-07-15", e.TransportDate)
	assert.Empty(t, e.Driver)
	assert.Empty(t, e.Plate)
}

func TestPatchApplyKeepsUnsetFields(t *testing.T) {
	base := StatusEntry{
		Driver:      "Ana",
		Plate:       "ABC-123",
		Destination: "Rio de Janeiro",
		Status:      StatusPendente,
	}

	driver := "Bruno"
	finished := StatusFinalizado
	patch := StatusEntryPatch{Driver: &driver, Status: &finished}

	merged := patch.Apply(base)

	assert.Equal(t, "Bruno", merged.Driver)
	assert.Equal(t, StatusFinalizado, merged.Status)
	assert.Equal(t, "ABC-123", merged.Plate)
	assert.Equal(t, "Rio de Janeiro", merged.Destination)
	// The base row is untouched.
	assert.Equal(t, "Ana", base.Driver)
}

func TestPatchApplyAllowsClearingToZeroValue(t *testing.T) {
	base := StatusEntry{Observation: "doca 4", Boxes: 10}

	empty := ""
	zero := 0
	patch := StatusEntryPatch{Observation: &empty, Boxes: &zero}
	merged := patch.Apply(base)

	assert.Empty(t, merged.Observation)
	assert.Zero(t, merged.Boxes)
}

func TestPatchMergeLaterWins(t *testing.T) {
	first := "Ana"
	plate := "ABC-123"
	second := "Bruno"

	a := StatusEntryPatch{Driver: &first, Plate: &plate}
	b := StatusEntryPatch{Driver: &second}

	merged := a.Merge(b)

	require.NotNil(t, merged.Driver)
	assert.Equal(t, "Bruno", *merged.Driver)
	require.NotNil(t, merged.Plate)
	assert.Equal(t, "ABC-123", *merged.Plate)
}

func TestPatchFieldsListsOnlySetFields(t *testing.T) {
	driver := "Ana"
	pallets := 7
	doc := true
	patch := StatusEntryPatch{
		Driver:              &driver,
		RefrigeratedPallets: &pallets,
		FinancialReportDoc:  &doc,
	}

	fields := patch.Fields()

	assert.Equal(t, map[string]interface{}{
		"driver":              "Ana",
		"refrigeratedPallets": 7,
		"financialReportDoc":  true,
	}, fields)

	assert.Empty(t, StatusEntryPatch{}.Fields())
}
