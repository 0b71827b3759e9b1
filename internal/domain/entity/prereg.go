package entity

// Pre-registration categories. These are also the autocomplete suggestion
// source names exposed by the field descriptor table.
const (
	CategoryOperations   = "operations"
	CategoryNumbers      = "numbers"
	CategoryIndustries   = "industries"
	CategoryOrigins      = "origins"
	CategoryDestinations = "destinations"
	CategoryPlates       = "plates"
	CategoryDrivers      = "drivers"
)

// PreRegistrationData is the singleton document holding the curated
// suggestion lists. Insertion order is preserved; uniqueness is not
// enforced. Editing it never rewrites existing worksheet or schedule rows.
type PreRegistrationData struct {
	ID           string   `bson:"_id,omitempty" json:"-"`
	Operations   []string `bson:"operations" json:"operations"`
	Numbers      []string `bson:"numbers" json:"numbers"`
	Industries   []string `bson:"industries" json:"industries"`
	Origins      []string `bson:"origins" json:"origins"`
	Destinations []string `bson:"destinations" json:"destinations"`
	Plates       []string `bson:"plates" json:"plates"`
	Drivers      []string `bson:"drivers" json:"drivers"`
}

// EmptyPreRegistrationData is the default returned when the singleton
// document does not exist yet.
func EmptyPreRegistrationData() *PreRegistrationData {
	return &PreRegistrationData{
		Operations:   []string{},
		Numbers:      []string{},
		Industries:   []string{},
		Origins:      []string{},
		Destinations: []string{},
		Plates:       []string{},
		Drivers:      []string{},
	}
}

// Clone returns a deep copy, so edit helpers never mutate a cached value.
func (d *PreRegistrationData) Clone() *PreRegistrationData {
	out := &PreRegistrationData{ID: d.ID}
	out.Operations = append([]string{}, d.Operations...)
	out.Numbers = append([]string{}, d.Numbers...)
	out.Industries = append([]string{}, d.Industries...)
	out.Origins = append([]string{}, d.Origins...)
	out.Destinations = append([]string{}, d.Destinations...)
	out.Plates = append([]string{}, d.Plates...)
	out.Drivers = append([]string{}, d.Drivers...)
	return out
}

// Category returns a pointer to the list for the given category name, or
// nil when the name is unknown.
func (d *PreRegistrationData) Category(name string) *[]string {
	switch name {
	case CategoryOperations:
		return &d.Operations
	case CategoryNumbers:
		return &d.Numbers
	case CategoryIndustries:
		return &d.Industries
	case CategoryOrigins:
		return &d.Origins
	case CategoryDestinations:
		return &d.Destinations
	case CategoryPlates:
		return &d.Plates
	case CategoryDrivers:
		return &d.Drivers
	}
	return nil
}
