package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusEntryFieldsCoversEveryColumn(t *testing.T) {
	fields := StatusEntryFields()
	require.Len(t, fields, 31)

	byName := make(map[string]FieldDescriptor, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	assert.Equal(t, CategoryDrivers, byName["driver"].SuggestionSource)
	assert.Equal(t, FieldNumber, byName["weight"].Kind)
	assert.Equal(t, FieldBoolean, byName["receiptsDoc"].Kind)
	assert.Equal(t, []string{"PENDENTE", "FINALIZADO"}, byName["status"].EnumValues)

	// Every field is sortable.
	e := &StatusEntry{}
	for _, f := range fields {
		_, _, _, ok := SortValue(e, f.Name)
		assert.True(t, ok, f.Name)
	}
}

func TestSortValueDistinguishesNumericFields(t *testing.T) {
	e := &StatusEntry{TransportSap: "70012345", Weight: 1250.5, Boxes: 340}

	str, _, numeric, ok := SortValue(e, "transportSap")
	require.True(t, ok)
	assert.False(t, numeric)
	assert.Equal(t, "70012345", str)

	_, num, numeric, ok := SortValue(e, "weight")
	require.True(t, ok)
	assert.True(t, numeric)
	assert.Equal(t, 1250.5, num)

	_, _, _, ok = SortValue(e, "nonexistent")
	assert.False(t, ok)
}
