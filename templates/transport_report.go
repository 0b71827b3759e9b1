package templates

import (
	"fmt"
	"strings"
	"time"

	"transcontrol-service/internal/domain/entity"
)

// Chat exports are pasted into group chats, which cap message size. Longer
// reports are truncated with an explicit marker, never silently.
const (
	maxChatLength    = 2000
	truncatedLength  = 1950
	truncationMarker = "...\n\n*Mensagem truncada*"
)

// TransportSummary renders the worksheet chat report: pending entries
// first, then finished ones, each group numbered from 1, with a totals
// footer.
func TransportSummary(entries []entity.StatusEntry, refDate time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🚛 *RELATÓRIO DE TRANSPORTES*\n📅 Data: %s\n\n", refDate.Format("02/01/2006"))

	var pending, finished []entity.StatusEntry
	for _, e := range entries {
		if e.Status == entity.StatusFinalizado {
			finished = append(finished, e)
		} else {
			pending = append(pending, e)
		}
	}

	if len(pending) > 0 {
		fmt.Fprintf(&b, "⏳ *PENDENTES (%d)*\n", len(pending))
		writeEntries(&b, pending)
	}
	if len(finished) > 0 {
		fmt.Fprintf(&b, "✅ *FINALIZADOS (%d)*\n", len(finished))
		writeEntries(&b, finished)
	}

	fmt.Fprintf(&b, "📊 *RESUMO*\n")
	fmt.Fprintf(&b, "Total: %d\n", len(entries))
	fmt.Fprintf(&b, "Pendentes: %d\n", len(pending))
	fmt.Fprintf(&b, "Finalizados: %d", len(finished))

	return truncate(b.String())
}

func writeEntries(b *strings.Builder, entries []entity.StatusEntry) {
	for i, e := range entries {
		fmt.Fprintf(b, "%d. SAP: %s\n", i+1, e.TransportSap)
		fmt.Fprintf(b, "   Rota: %s\n", e.Route)
		fmt.Fprintf(b, "   Destino: %s\n", e.Destination)
		if e.Plate != "" {
			fmt.Fprintf(b, "   Placa: %s\n", e.Plate)
		}
		if e.Driver != "" {
			fmt.Fprintf(b, "   Motorista: %s\n", e.Driver)
		}
		b.WriteString("\n")
	}
}

// ScheduleMessage renders one schedule as a chat message: a block per
// vehicle with its numbered stops and a vehicle-count footer.
func ScheduleMessage(schedule entity.Schedule) string {
	var b strings.Builder

	date := schedule.Date
	if parsed, err := time.Parse("2006-01-02", schedule.Date); err == nil {
		date = parsed.Format("02/01/2006")
	}
	fmt.Fprintf(&b, "🚛 *%s*\n📅 Data: %s\n\n", strings.ToUpper(schedule.Title), date)

	for i, vehicle := range schedule.Vehicles {
		fmt.Fprintf(&b, "🚚 Veículo %d:\n", i+1)
		fmt.Fprintf(&b, "   *Placa: %s*\n", vehicle.Plate)
		fmt.Fprintf(&b, "   👤 Motorista: %s\n", vehicle.Driver)
		fmt.Fprintf(&b, "   📍 Origem: %s\n", vehicle.Origin)
		for j, dest := range vehicle.Destinations {
			fmt.Fprintf(&b, "   🎯 Destino %d: %s\n", j+1, dest.Name)
			if dest.Time != "" {
				fmt.Fprintf(&b, "   🕐 Horário: %s\n", dest.Time)
			}
			if dest.Observation != "" {
				fmt.Fprintf(&b, "   💬 Obs: %s\n", dest.Observation)
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "📈 Total de veículos: %d", len(schedule.Vehicles))

	return truncate(b.String())
}

func truncate(message string) string {
	runes := []rune(message)
	if len(runes) <= maxChatLength {
		return message
	}
	return string(runes[:truncatedLength]) + truncationMarker
}
