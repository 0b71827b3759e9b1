package entity

// TransportStatus is the worksheet lifecycle state of a status entry.
type TransportStatus string

const (
	StatusPendente   TransportStatus = "PENDENTE"
	StatusFinalizado TransportStatus = "FINALIZADO"
)

// StatusEntry is one row of the daily dispatch worksheet. Entries are
// created either by import sync (one per imported transport) or manually,
// always as PENDENTE; the status only changes on explicit user action.
type StatusEntry struct {
	ID                     string          `bson:"_id,omitempty" json:"id"`
	Operation              string          `bson:"operation" json:"operation"`
	Number                 string          `bson:"number" json:"number"`
	Industry               string          `bson:"industry" json:"industry"`
	ScheduledTime          string          `bson:"scheduledTime" json:"scheduledTime"`
	Plate                  string          `bson:"plate" json:"plate"`
	Driver                 string          `bson:"driver" json:"driver"`
	Origin                 string          `bson:"origin" json:"origin"`
	Destination            string          `bson:"destination" json:"destination"`
	TransportDate          string          `bson:"transportDate" json:"transportDate"`
	TransportSap           string          `bson:"transportSap" json:"transportSap"`
	Route                  string          `bson:"route" json:"route"`
	Weight                 float64         `bson:"weight" json:"weight"`
	Boxes                  int             `bson:"boxes" json:"boxes"`
	Responsible            string          `bson:"responsible" json:"responsible"`
	Start                  string          `bson:"start" json:"start"`
	End                    string          `bson:"end" json:"end"`
	RefrigeratedPallets    int             `bson:"refrigeratedPallets" json:"refrigeratedPallets"`
	DryPallets             int             `bson:"dryPallets" json:"dryPallets"`
	Separation             string          `bson:"separation" json:"separation"`
	Observation            string          `bson:"observation" json:"observation"`
	PalletTerm             string          `bson:"palletTerm" json:"palletTerm"`
	Cte                    string          `bson:"cte" json:"cte"`
	Mdfe                   string          `bson:"mdfe" json:"mdfe"`
	Ae                     string          `bson:"ae" json:"ae"`
	OriginDepartureTime    string          `bson:"originDepartureTime" json:"originDepartureTime"`
	DestinationArrivalTime string          `bson:"destinationArrivalTime" json:"destinationArrivalTime"`
	FinancialReportDoc     bool            `bson:"financialReportDoc" json:"financialReportDoc"`
	PalletTermDoc          bool            `bson:"palletTermDoc" json:"palletTermDoc"`
	ProtocolsDoc           bool            `bson:"protocolsDoc" json:"protocolsDoc"`
	ReceiptsDoc            bool            `bson:"receiptsDoc" json:"receiptsDoc"`
	Status                 TransportStatus `bson:"status" json:"status"`
}

// TotalPallets is always derived, never stored.
func (e *StatusEntry) TotalPallets() int {
	return e.RefrigeratedPallets + e.DryPallets
}

// NewBlankStatusEntry returns a manual worksheet row for the given date.
func NewBlankStatusEntry(transportDate string) StatusEntry {
	return StatusEntry{
		TransportDate: transportDate,
		Status:        StatusPendente,
	}
}

// StatusEntryFromTransport builds the worksheet row created by import sync.
// Only the shipment fields carry over; everything else starts blank.
func StatusEntryFromTransport(t TransportRecord, transportDate string) StatusEntry {
	entry := NewBlankStatusEntry(transportDate)
	entry.TransportSap = t.TransportSap
	entry.Route = t.Route
	entry.Weight = t.Weight
	entry.Boxes = t.Boxes
	return entry
}
