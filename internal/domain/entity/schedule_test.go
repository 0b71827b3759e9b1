package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleStatusToggled(t *testing.T) {
	assert.Equal(t, VehicleConcluido, VehicleEmTransito.Toggled())
	assert.Equal(t, VehicleEmTransito, VehicleConcluido.Toggled())
}

func TestVehicleAssignmentIsComplete(t *testing.T) {
	complete := VehicleAssignment{
		Plate:        "ABC-123",
		Driver:       "João",
		Origin:       "CD São Paulo",
		Destinations: []Destination{{Name: "Rio de Janeiro"}},
	}
	assert.True(t, complete.IsComplete())

	cases := map[string]VehicleAssignment{
		"missing plate":  {Driver: "João", Origin: "SP", Destinations: []Destination{{Name: "RJ"}}},
		"missing driver": {Plate: "ABC-123", Origin: "SP", Destinations: []Destination{{Name: "RJ"}}},
		"missing origin": {Plate: "ABC-123", Driver: "João", Destinations: []Destination{{Name: "RJ"}}},
		"no destination": {Plate: "ABC-123", Driver: "João", Origin: "SP"},
		"unnamed stops":  {Plate: "ABC-123", Driver: "João", Origin: "SP", Destinations: []Destination{{Name: "  "}}},
	}
	for name, v := range cases {
		v := v
		t.Run(name, func(t *testing.T) {
			assert.False(t, v.IsComplete())
		})
	}
}

func TestNamedDestinationsKeepsOrder(t *testing.T) {
	v := VehicleAssignment{
		Destinations: []Destination{
			{Name: "Rio de Janeiro"},
			{Name: "   "},
			{Name: "Niterói"},
		},
	}

	named := v.NamedDestinations()
	assert.Len(t, named, 2)
	assert.Equal(t, "Rio de Janeiro", named[0].Name)
	assert.Equal(t, "Niterói", named[1].Name)
}
