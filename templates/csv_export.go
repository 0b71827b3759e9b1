package templates

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"transcontrol-service/internal/domain/entity"
)

// statusHeaders is the fixed column order of the worksheet export. QTD
// PALLETS is derived on the way out, never read from storage.
var statusHeaders = []string{
	"OPERAÇÃO", "Nº", "INDÚSTRIA", "HORÁRIO PREVISTO", "PLACA", "MOTORISTA",
	"ORIGEM", "DESTINO", "DATA TRANSPORTE", "TRANSPORTE SAP", "ROTA", "PESO",
	"CAIXAS", "RESPONSÁVEL", "INÍCIO", "FIM", "PALLETS REFRIGERADOS",
	"PALLETS SECOS", "QTD PALLETS", "SEPARAÇÃO", "OBSERVAÇÃO", "TERMO PALLET",
	"CTE", "MDFE", "AE", "HORÁRIO SAÍDA ORIGEM", "HORÁRIO DESTINO CHEGADA",
	"DOC RELATÓRIO FINANCEIRO", "DOC TERMO PALLETS", "DOC PROTOCOLOS",
	"DOC CANHOTOS", "STATUS",
}

var scheduleHeaders = []string{
	"DATA", "TÍTULO", "PLACA", "MOTORISTA", "ORIGEM", "DESTINOS",
	"STATUS VEÍCULO", "CRIADO EM",
}

// StatusEntriesCSV renders the worksheet rows as a comma-separated report.
func StatusEntriesCSV(entries []entity.StatusEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(statusHeaders); err != nil {
		return nil, err
	}
	for i := range entries {
		e := &entries[i]
		row := []string{
			e.Operation,
			e.Number,
			e.Industry,
			e.ScheduledTime,
			e.Plate,
			e.Driver,
			e.Origin,
			e.Destination,
			displayDate(e.TransportDate),
			e.TransportSap,
			e.Route,
			strconv.FormatFloat(e.Weight, 'f', -1, 64),
			strconv.Itoa(e.Boxes),
			e.Responsible,
			e.Start,
			e.End,
			strconv.Itoa(e.RefrigeratedPallets),
			strconv.Itoa(e.DryPallets),
			strconv.Itoa(e.TotalPallets()),
			e.Separation,
			e.Observation,
			e.PalletTerm,
			e.Cte,
			e.Mdfe,
			e.Ae,
			e.OriginDepartureTime,
			e.DestinationArrivalTime,
			yesNo(e.FinancialReportDoc),
			yesNo(e.PalletTermDoc),
			yesNo(e.ProtocolsDoc),
			yesNo(e.ReceiptsDoc),
			string(e.Status),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// SchedulesCSV flattens schedules into one row per vehicle. Multiple
// destinations are joined with "; ", keeping per-stop time annotations.
func SchedulesCSV(schedules []entity.Schedule) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(scheduleHeaders); err != nil {
		return nil, err
	}
	for _, s := range schedules {
		for _, v := range s.Vehicles {
			row := []string{
				displayDate(s.Date),
				s.Title,
				v.Plate,
				v.Driver,
				v.Origin,
				joinDestinations(v.Destinations),
				vehicleStatusLabel(v.Status),
				s.CreatedAt.Format("02/01/2006 15:04:05"),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func joinDestinations(dests []entity.Destination) string {
	var b bytes.Buffer
	for i, d := range dests {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(d.Name)
		if d.Time != "" {
			b.WriteString(" (")
			b.WriteString(d.Time)
			b.WriteString(")")
		}
	}
	return b.String()
}

func vehicleStatusLabel(status entity.VehicleStatus) string {
	if status == entity.VehicleEmTransito {
		return "Em Trânsito"
	}
	return "Concluído"
}

func yesNo(v bool) string {
	if v {
		return "SIM"
	}
	return "NÃO"
}

// displayDate turns a stored YYYY-MM-DD date into the display locale's
// day/month/year form; malformed values pass through untouched.
func displayDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("02/01/2006")
}
