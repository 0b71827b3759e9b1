package entity

import (
	"strings"
	"time"
)

// VehicleStatus is the transit state of a scheduled vehicle.
type VehicleStatus string

const (
	VehicleEmTransito VehicleStatus = "EM_TRANSITO"
	VehicleConcluido  VehicleStatus = "CONCLUIDO"
)

// Toggled returns the opposite transit state. The toggle is strict in both
// directions: completing a vehicle twice reopens it.
func (s VehicleStatus) Toggled() VehicleStatus {
	if s == VehicleEmTransito {
		return VehicleConcluido
	}
	return VehicleEmTransito
}

// Destination is one ordered stop of a vehicle route. Time and observation
// are optional annotations; ordering is the stop sequence as entered.
type Destination struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Time        string `bson:"time,omitempty" json:"time,omitempty"`
	Observation string `bson:"observation,omitempty" json:"observation,omitempty"`
}

// VehicleAssignment is one vehicle's route within a schedule. Vehicles are
// embedded documents owned by their schedule, never shared.
type VehicleAssignment struct {
	ID           string        `bson:"id" json:"id"`
	Plate        string        `bson:"plate" json:"plate"`
	Driver       string        `bson:"driver" json:"driver"`
	Origin       string        `bson:"origin" json:"origin"`
	Destinations []Destination `bson:"destinations" json:"destinations"`
	Status       VehicleStatus `bson:"status" json:"status"`
}

// IsComplete reports whether the vehicle meets the minimum required to be
// carried into a persisted schedule: plate, driver, origin and at least one
// destination with a name.
func (v *VehicleAssignment) IsComplete() bool {
	if v.Plate == "" || v.Driver == "" || v.Origin == "" {
		return false
	}
	for _, d := range v.Destinations {
		if strings.TrimSpace(d.Name) != "" {
			return true
		}
	}
	return false
}

// NamedDestinations returns the destinations that have a name, preserving
// their order.
func (v *VehicleAssignment) NamedDestinations() []Destination {
	named := make([]Destination, 0, len(v.Destinations))
	for _, d := range v.Destinations {
		if strings.TrimSpace(d.Name) != "" {
			named = append(named, d)
		}
	}
	return named
}

// Schedule is a dated, auto-titled set of vehicle routes. Schedules are
// deleted wholesale; after creation only per-vehicle status changes.
type Schedule struct {
	ID        string              `bson:"_id,omitempty" json:"id"`
	Date      string              `bson:"date" json:"date"`
	Title     string              `bson:"title" json:"title"`
	Vehicles  []VehicleAssignment `bson:"vehicles" json:"vehicles"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}
