package tsv

import (
	"errors"
	"strconv"
	"strings"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/pkg/logger"
)

// ErrNoData is returned when the pasted text yields no usable rows.
var ErrNoData = errors.New("no transport rows found in import data")

// Parser turns pasted tab-separated worksheet text into transport records.
// Expected columns: SAP id, route, weight, boxes. No header row.
type Parser struct {
	logger logger.Logger
}

// NewParser creates a new import parser
func NewParser(logger logger.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// Parse processes each line independently. A line contributes a record only
// when it has at least 4 tab-separated fields; unparsable weight or boxes
// default to 0 rather than failing the import.
func (p *Parser) Parse(data string) ([]entity.TransportRecord, error) {
	normalized := strings.ReplaceAll(data, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	lines := strings.Split(strings.TrimSpace(normalized), "\n")

	var records []entity.TransportRecord
	skipped := 0

	for _, line := range lines {
		columns := strings.Split(line, "\t")
		if len(columns) < 4 {
			if strings.TrimSpace(line) != "" {
				skipped++
			}
			continue
		}

		records = append(records, entity.TransportRecord{
			TransportSap: strings.TrimSpace(columns[0]),
			Route:        strings.TrimSpace(columns[1]),
			Weight:       parseFloat(columns[2]),
			Boxes:        parseInt(columns[3]),
		})
	}

	if len(records) == 0 {
		return nil, ErrNoData
	}

	if skipped > 0 {
		p.logger.Warn("Skipped malformed import lines", "skipped", skipped, "parsed", len(records))
	}
	return records, nil
}

func parseFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseInt(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return parsed
}
