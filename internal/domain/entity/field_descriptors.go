package entity

// FieldKind classifies how a worksheet field is edited.
type FieldKind string

const (
	FieldText         FieldKind = "text"
	FieldNumber       FieldKind = "number"
	FieldBoolean      FieldKind = "boolean"
	FieldEnum         FieldKind = "enum"
	FieldAutocomplete FieldKind = "autocomplete"
)

// FieldDescriptor describes one editable worksheet column for the view
// layer: its kind and, for autocomplete fields, which pre-registration
// category feeds the suggestions.
type FieldDescriptor struct {
	Name             string    `json:"name"`
	Kind             FieldKind `json:"kind"`
	SuggestionSource string    `json:"suggestionSource,omitempty"`
	EnumValues       []string  `json:"enumValues,omitempty"`
}

// StatusEntryFields returns the worksheet column descriptors in display
// order. The core model only exposes the table; rendering is the client's
// problem.
func StatusEntryFields() []FieldDescriptor {
	return []FieldDescriptor{
		{Name: "operation", Kind: FieldAutocomplete, SuggestionSource: CategoryOperations},
		{Name: "number", Kind: FieldText},
		{Name: "industry", Kind: FieldAutocomplete, SuggestionSource: CategoryIndustries},
		{Name: "scheduledTime", Kind: FieldText},
		{Name: "plate", Kind: FieldAutocomplete, SuggestionSource: CategoryPlates},
		{Name: "driver", Kind: FieldAutocomplete, SuggestionSource: CategoryDrivers},
		{Name: "origin", Kind: FieldAutocomplete, SuggestionSource: CategoryOrigins},
		{Name: "destination", Kind: FieldAutocomplete, SuggestionSource: CategoryDestinations},
		{Name: "transportDate", Kind: FieldText},
		{Name: "transportSap", Kind: FieldText},
		{Name: "route", Kind: FieldText},
		{Name: "weight", Kind: FieldNumber},
		{Name: "boxes", Kind: FieldNumber},
		{Name: "responsible", Kind: FieldText},
		{Name: "start", Kind: FieldText},
		{Name: "end", Kind: FieldText},
		{Name: "refrigeratedPallets", Kind: FieldNumber},
		{Name: "dryPallets", Kind: FieldNumber},
		{Name: "separation", Kind: FieldText},
		{Name: "observation", Kind: FieldText},
		{Name: "palletTerm", Kind: FieldText},
		{Name: "cte", Kind: FieldText},
		{Name: "mdfe", Kind: FieldText},
		{Name: "ae", Kind: FieldText},
		{Name: "originDepartureTime", Kind: FieldText},
		{Name: "destinationArrivalTime", Kind: FieldText},
		{Name: "financialReportDoc", Kind: FieldBoolean},
		{Name: "palletTermDoc", Kind: FieldBoolean},
		{Name: "protocolsDoc", Kind: FieldBoolean},
		{Name: "receiptsDoc", Kind: FieldBoolean},
		{Name: "status", Kind: FieldEnum, EnumValues: []string{string(StatusPendente), string(StatusFinalizado)}},
	}
}

// SortValue returns the comparable value of a worksheet field for list
// sorting. The second return distinguishes numeric fields; fields that are
// neither string nor number sort as equal.
func SortValue(e *StatusEntry, field string) (str string, num float64, numeric bool, ok bool) {
	switch field {
	case "operation":
		return e.Operation, 0, false, true
	case "number":
		return e.Number, 0, false, true
	case "industry":
		return e.Industry, 0, false, true
	case "scheduledTime":
		return e.ScheduledTime, 0, false, true
	case "plate":
		return e.Plate, 0, false, true
	case "driver":
		return e.Driver, 0, false, true
	case "origin":
		return e.Origin, 0, false, true
	case "destination":
		return e.Destination, 0, false, true
	case "transportDate":
		return e.TransportDate, 0, false, true
	case "transportSap":
		return e.TransportSap, 0, false, true
	case "route":
		return e.Route, 0, false, true
	case "weight":
		return "", e.Weight, true, true
	case "boxes":
		return "", float64(e.Boxes), true, true
	case "responsible":
		return e.Responsible, 0, false, true
	case "start":
		return e.Start, 0, false, true
	case "end":
		return e.End, 0, false, true
	case "refrigeratedPallets":
		return "", float64(e.RefrigeratedPallets), true, true
	case "dryPallets":
		return "", float64(e.DryPallets), true, true
	case "separation":
		return e.Separation, 0, false, true
	case "observation":
		return e.Observation, 0, false, true
	case "palletTerm":
		return e.PalletTerm, 0, false, true
	case "cte":
		return e.Cte, 0, false, true
	case "mdfe":
		return e.Mdfe, 0, false, true
	case "ae":
		return e.Ae, 0, false, true
	case "originDepartureTime":
		return e.OriginDepartureTime, 0, false, true
	case "destinationArrivalTime":
		return e.DestinationArrivalTime, 0, false, true
	case "status":
		return string(e.Status), 0, false, true
	}
	return "", 0, false, false
}
