package entity

// StatusEntryPatch is an explicit partial update for a worksheet row.
// A nil field keeps the base value; a set field replaces it at save time.
// It backs the single-row edit buffer and the PATCH payload of the API.
type StatusEntryPatch struct {
	Operation              *string          `json:"operation,omitempty"`
	Number                 *string          `json:"number,omitempty"`
	Industry               *string          `json:"industry,omitempty"`
	ScheduledTime          *string          `json:"scheduledTime,omitempty"`
	Plate                  *string          `json:"plate,omitempty"`
	Driver                 *string          `json:"driver,omitempty"`
	Origin                 *string          `json:"origin,omitempty"`
	Destination            *string          `json:"destination,omitempty"`
	TransportDate          *string          `json:"transportDate,omitempty"`
	TransportSap           *string          `json:"transportSap,omitempty"`
	Route                  *string          `json:"route,omitempty"`
	Weight                 *float64         `json:"weight,omitempty"`
	Boxes                  *int             `json:"boxes,omitempty"`
	Responsible            *string          `json:"responsible,omitempty"`
	Start                  *string          `json:"start,omitempty"`
	End                    *string          `json:"end,omitempty"`
	RefrigeratedPallets    *int             `json:"refrigeratedPallets,omitempty"`
	DryPallets             *int             `json:"dryPallets,omitempty"`
	Separation             *string          `json:"separation,omitempty"`
	Observation            *string          `json:"observation,omitempty"`
	PalletTerm             *string          `json:"palletTerm,omitempty"`
	Cte                    *string          `json:"cte,omitempty"`
	Mdfe                   *string          `json:"mdfe,omitempty"`
	Ae                     *string          `json:"ae,omitempty"`
	OriginDepartureTime    *string          `json:"originDepartureTime,omitempty"`
	DestinationArrivalTime *string          `json:"destinationArrivalTime,omitempty"`
	FinancialReportDoc     *bool            `json:"financialReportDoc,omitempty"`
	PalletTermDoc          *bool            `json:"palletTermDoc,omitempty"`
	ProtocolsDoc           *bool            `json:"protocolsDoc,omitempty"`
	ReceiptsDoc            *bool            `json:"receiptsDoc,omitempty"`
	Status                 *TransportStatus `json:"status,omitempty"`
}

// Apply shallow-merges the patch over base and returns the merged row.
func (p StatusEntryPatch) Apply(base StatusEntry) StatusEntry {
	merged := base
	if p.Operation != nil {
		merged.Operation = *p.Operation
	}
	if p.Number != nil {
		merged.Number = *p.Number
	}
	if p.Industry != nil {
		merged.Industry = *p.Industry
	}
	if p.ScheduledTime != nil {
		merged.ScheduledTime = *p.ScheduledTime
	}
	if p.Plate != nil {
		merged.Plate = *p.Plate
	}
	if p.Driver != nil {
		merged.Driver = *p.Driver
	}
	if p.Origin != nil {
		merged.Origin = *p.Origin
	}
	if p.Destination != nil {
		merged.Destination = *p.Destination
	}
	if p.TransportDate != nil {
		merged.TransportDate = *p.TransportDate
	}
	if p.TransportSap != nil {
		merged.TransportSap = *p.TransportSap
	}
	if p.Route != nil {
		merged.Route = *p.Route
	}
	if p.Weight != nil {
		merged.Weight = *p.Weight
	}
	if p.Boxes != nil {
		merged.Boxes = *p.Boxes
	}
	if p.Responsible != nil {
		merged.Responsible = *p.Responsible
	}
	if p.Start != nil {
		merged.Start = *p.Start
	}
	if p.End != nil {
		merged.End = *p.End
	}
	if p.RefrigeratedPallets != nil {
		merged.RefrigeratedPallets = *p.RefrigeratedPallets
	}
	if p.DryPallets != nil {
		merged.DryPallets = *p.DryPallets
	}
	if p.Separation != nil {
		merged.Separation = *p.Separation
	}
	if p.Observation != nil {
		merged.Observation = *p.Observation
	}
	if p.PalletTerm != nil {
		merged.PalletTerm = *p.PalletTerm
	}
	if p.Cte != nil {
		merged.Cte = *p.Cte
	}
	if p.Mdfe != nil {
		merged.Mdfe = *p.Mdfe
	}
	if p.Ae != nil {
		merged.Ae = *p.Ae
	}
	if p.OriginDepartureTime != nil {
		merged.OriginDepartureTime = *p.OriginDepartureTime
	}
	if p.DestinationArrivalTime != nil {
		merged.DestinationArrivalTime = *p.DestinationArrivalTime
	}
	if p.FinancialReportDoc != nil {
		merged.FinancialReportDoc = *p.FinancialReportDoc
	}
	if p.PalletTermDoc != nil {
		merged.PalletTermDoc = *p.PalletTermDoc
	}
	if p.ProtocolsDoc != nil {
		merged.ProtocolsDoc = *p.ProtocolsDoc
	}
	if p.ReceiptsDoc != nil {
		merged.ReceiptsDoc = *p.ReceiptsDoc
	}
	if p.Status != nil {
		merged.Status = *p.Status
	}
	return merged
}

// Merge overlays other onto p, keeping p's values where other is unset.
// Used by the edit buffer to accumulate field changes across an edit session.
func (p StatusEntryPatch) Merge(other StatusEntryPatch) StatusEntryPatch {
	out := p
	if other.Operation != nil {
		out.Operation = other.Operation
	}
	if other.Number != nil {
		out.Number = other.Number
	}
	if other.Industry != nil {
		out.Industry = other.Industry
	}
	if other.ScheduledTime != nil {
		out.ScheduledTime = other.ScheduledTime
	}
	if other.Plate != nil {
		out.Plate = other.Plate
	}
	if other.Driver != nil {
		out.Driver = other.Driver
	}
	if other.Origin != nil {
		out.Origin = other.Origin
	}
	if other.Destination != nil {
		out.Destination = other.Destination
	}
	if other.TransportDate != nil {
		out.TransportDate = other.TransportDate
	}
	if other.TransportSap != nil {
		out.TransportSap = other.TransportSap
	}
	if other.Route != nil {
		out.Route = other.Route
	}
	if other.Weight != nil {
		out.Weight = other.Weight
	}
	if other.Boxes != nil {
		out.Boxes = other.Boxes
	}
	if other.Responsible != nil {
		out.Responsible = other.Responsible
	}
	if other.Start != nil {
		out.Start = other.Start
	}
	if other.End != nil {
		out.End = other.End
	}
	if other.RefrigeratedPallets != nil {
		out.RefrigeratedPallets = other.RefrigeratedPallets
	}
	if other.DryPallets != nil {
		out.DryPallets = other.DryPallets
	}
	if other.Separation != nil {
		out.Separation = other.Separation
	}
	if other.Observation != nil {
		out.Observation = other.Observation
	}
	if other.PalletTerm != nil {
		out.PalletTerm = other.PalletTerm
	}
	if other.Cte != nil {
		out.Cte = other.Cte
	}
	if other.Mdfe != nil {
		out.Mdfe = other.Mdfe
	}
	if other.Ae != nil {
		out.Ae = other.Ae
	}
	if other.OriginDepartureTime != nil {
		out.OriginDepartureTime = other.OriginDepartureTime
	}
	if other.DestinationArrivalTime != nil {
		out.DestinationArrivalTime = other.DestinationArrivalTime
	}
	if other.FinancialReportDoc != nil {
		out.FinancialReportDoc = other.FinancialReportDoc
	}
	if other.PalletTermDoc != nil {
		out.PalletTermDoc = other.PalletTermDoc
	}
	if other.ProtocolsDoc != nil {
		out.ProtocolsDoc = other.ProtocolsDoc
	}
	if other.ReceiptsDoc != nil {
		out.ReceiptsDoc = other.ReceiptsDoc
	}
	if other.Status != nil {
		out.Status = other.Status
	}
	return out
}

// Fields returns the set attributes as a document-store update map,
// keyed by the stored field names.
func (p StatusEntryPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Operation != nil {
		fields["operation"] = *p.Operation
	}
	if p.Number != nil {
		fields["number"] = *p.Number
	}
	if p.Industry != nil {
		fields["industry"] = *p.Industry
	}
	if p.ScheduledTime != nil {
		fields["scheduledTime"] = *p.ScheduledTime
	}
	if p.Plate != nil {
		fields["plate"] = *p.Plate
	}
	if p.Driver != nil {
		fields["driver"] = *p.Driver
	}
	if p.Origin != nil {
		fields["origin"] = *p.Origin
	}
	if p.Destination != nil {
		fields["destination"] = *p.Destination
	}
	if p.TransportDate != nil {
		fields["transportDate"] = *p.TransportDate
	}
	if p.TransportSap != nil {
		fields["transportSap"] = *p.TransportSap
	}
	if p.Route != nil {
		fields["route"] = *p.Route
	}
	if p.Weight != nil {
		fields["weight"] = *p.Weight
	}
	if p.Boxes != nil {
		fields["boxes"] = *p.Boxes
	}
	if p.Responsible != nil {
		fields["responsible"] = *p.Responsible
	}
	if p.Start != nil {
		fields["start"] = *p.Start
	}
	if p.End != nil {
		fields["end"] = *p.End
	}
	if p.RefrigeratedPallets != nil {
		fields["refrigeratedPallets"] = *p.RefrigeratedPallets
	}
	if p.DryPallets != nil {
		fields["dryPallets"] = *p.DryPallets
	}
	if p.Separation != nil {
		fields["separation"] = *p.Separation
	}
	if p.Observation != nil {
		fields["observation"] = *p.Observation
	}
	if p.PalletTerm != nil {
		fields["palletTerm"] = *p.PalletTerm
	}
	if p.Cte != nil {
		fields["cte"] = *p.Cte
	}
	if p.Mdfe != nil {
		fields["mdfe"] = *p.Mdfe
	}
	if p.Ae != nil {
		fields["ae"] = *p.Ae
	}
	if p.OriginDepartureTime != nil {
		fields["originDepartureTime"] = *p.OriginDepartureTime
	}
	if p.DestinationArrivalTime != nil {
		fields["destinationArrivalTime"] = *p.DestinationArrivalTime
	}
	if p.FinancialReportDoc != nil {
		fields["financialReportDoc"] = *p.FinancialReportDoc
	}
	if p.PalletTermDoc != nil {
		fields["palletTermDoc"] = *p.PalletTermDoc
	}
	if p.ProtocolsDoc != nil {
		fields["protocolsDoc"] = *p.ProtocolsDoc
	}
	if p.ReceiptsDoc != nil {
		fields["receiptsDoc"] = *p.ReceiptsDoc
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	return fields
}
