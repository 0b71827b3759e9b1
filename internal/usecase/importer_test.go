package usecase

import (
	"context"
	"testing"
	"time"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/pkg/tsv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRefDate() time.Time {
	return time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
}

func newTestImporter(transports *fakeTransportRepo, statuses *fakeStatusRepo) *Importer {
	log := nopLogger{}
	return NewImporter(transports, statuses, tsv.NewParser(log), testRefDate, log, nil)
}

func TestImporterConfirmSyncsWorksheet(t *testing.T) {
	transports := newFakeTransportRepo()
	statuses := newFakeStatusRepo()
	importer := newTestImporter(transports, statuses)

	data := "12345\tRJ-SP\t1500.5\t50\n67890\tSP-MG\t800\t20"
	result, err := importer.Confirm(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Transports)
	assert.Equal(t, 2, result.Synced)
	require.Len(t, statuses.entries, len(transports.records))

	for i, record := range transports.records {
		entry := statuses.entries[i]
		assert.Equal(t, record.TransportSap, entry.TransportSap)
		assert.Equal(t, record.Route, entry.Route)
		assert.Equal(t, record.Weight, entry.Weight)
		assert.Equal(t, record.Boxes, entry.Boxes)
		assert.Equal(t, entity.StatusPendente, entry.Status)
		assert.Equal(t, "2025-07-15", entry.TransportDate)
		assert.Empty(t, entry.Driver)
	}
}

func TestImporterConfirmNoData(t *testing.T) {
	importer := newTestImporter(newFakeTransportRepo(), newFakeStatusRepo())

	_, err := importer.Confirm(context.Background(), "   \n  ")
	assert.ErrorIs(t, err, tsv.ErrNoData)
}

func TestImporterSecondPhaseFailureKeepsTransports(t *testing.T) {
	transports := newFakeTransportRepo()
	statuses := newFakeStatusRepo()
	statuses.failAfter = 1 // one worksheet row fits, then the store fails
	importer := newTestImporter(transports, statuses)

	data := "12345\tRJ-SP\t1500\t50\n67890\tSP-MG\t800\t20"
	result, err := importer.Confirm(context.Background(), data)
	require.Error(t, err)

	// Phase one stays applied, phase two reports what made it in.
	assert.Len(t, transports.records, 2)
	assert.Equal(t, 2, result.Transports)
	assert.Equal(t, 1, result.Synced)
	assert.Len(t, statuses.entries, 1)
}

func TestImporterResetLeavesWorksheetAlone(t *testing.T) {
	transports := newFakeTransportRepo()
	statuses := newFakeStatusRepo()
	importer := newTestImporter(transports, statuses)

	_, err := importer.Confirm(context.Background(), "12345\tRJ-SP\t1500\t50")
	require.NoError(t, err)

	require.NoError(t, importer.Reset(context.Background()))
	assert.Empty(t, transports.records)
	assert.Len(t, statuses.entries, 1)
}

func TestImporterPreviewDoesNotPersist(t *testing.T) {
	transports := newFakeTransportRepo()
	statuses := newFakeStatusRepo()
	importer := newTestImporter(transports, statuses)

	records, err := importer.Preview("12345\tRJ-SP\t1500\t50")
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Empty(t, transports.records)
	assert.Empty(t, statuses.entries)
}
