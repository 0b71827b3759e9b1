package entity

// TransportRecord is a raw shipment row imported from the SAP worksheet.
// Records are immutable after import; the whole collection is replaced by
// the next bulk import.
type TransportRecord struct {
	ID           string  `bson:"_id,omitempty" json:"id"`
	TransportSap string  `bson:"transportSap" json:"transportSap"`
	Route        string  `bson:"route" json:"route"`
	Weight       float64 `bson:"weight" json:"weight"`
	Boxes        int     `bson:"boxes" json:"boxes"`
}
