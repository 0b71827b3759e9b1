package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/internal/domain/repository"
	"transcontrol-service/pkg/logger"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrNoActiveEdit is returned when saving without an open edit session.
var ErrNoActiveEdit = errors.New("no worksheet row is being edited")

// Worksheet drives the daily status view: listing, filtering, sorting and
// the single-row edit session. Only one row can be in edit mode at a time;
// starting a new edit closes the previous one.
type Worksheet struct {
	repo     repository.StatusEntryRepository
	refDate  func() time.Time
	logger   logger.Logger
	collator *collate.Collator

	mu      sync.Mutex
	editID  string
	base    entity.StatusEntry
	buffer  entity.StatusEntryPatch
	sortKey string
	sortAsc bool
}

// NewWorksheet creates a new worksheet service
func NewWorksheet(repo repository.StatusEntryRepository, refDate func() time.Time, logger logger.Logger) *Worksheet {
	return &Worksheet{
		repo:     repo,
		refDate:  refDate,
		logger:   logger,
		collator: collate.New(language.BrazilianPortuguese),
		sortKey:  "transportSap",
		sortAsc:  true,
	}
}

// List returns all worksheet rows; a read failure degrades to an empty list.
func (w *Worksheet) List(ctx context.Context) []entity.StatusEntry {
	entries, err := w.repo.List(ctx)
	if err != nil {
		w.logger.Error("Failed to load worksheet", "error", err)
		return []entity.StatusEntry{}
	}
	return entries
}

// NewEntry creates a blank PENDENTE row for the given date. An empty date
// defaults to the reference date.
func (w *Worksheet) NewEntry(ctx context.Context, transportDate string) (*entity.StatusEntry, error) {
	if transportDate == "" {
		transportDate = w.refDate().Format("2006-01-02")
	}
	entry := entity.NewBlankStatusEntry(transportDate)

	id, err := w.repo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create worksheet row: %w", err)
	}
	entry.ID = id
	return &entry, nil
}

// Delete removes one row. No cascading effect on imported transports.
func (w *Worksheet) Delete(ctx context.Context, id string) error {
	w.mu.Lock()
	if w.editID == id {
		w.editID = ""
		w.buffer = entity.StatusEntryPatch{}
	}
	w.mu.Unlock()
	return w.repo.Delete(ctx, id)
}

// StartEdit snapshots the row into the scratch buffer. An already-open edit
// on another row is discarded first.
func (w *Worksheet) StartEdit(entry entity.StatusEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.editID != "" && w.editID != entry.ID {
		w.logger.Debug("Closing previous edit session", "previous", w.editID, "next", entry.ID)
	}
	w.editID = entry.ID
	w.base = entry
	w.buffer = entity.StatusEntryPatch{}
}

// Edit accumulates field changes into the scratch buffer. Nothing is
// persisted until Save.
func (w *Worksheet) Edit(patch entity.StatusEntryPatch) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.editID == "" {
		return ErrNoActiveEdit
	}
	w.buffer = w.buffer.Merge(patch)
	return nil
}

// Save merges the buffer over the snapshot, persists the touched fields and
// closes the session. Untouched fields keep their prior values.
func (w *Worksheet) Save(ctx context.Context) (*entity.StatusEntry, error) {
	w.mu.Lock()
	if w.editID == "" {
		w.mu.Unlock()
		return nil, ErrNoActiveEdit
	}
	id := w.editID
	base := w.base
	buffer := w.buffer
	w.editID = ""
	w.buffer = entity.StatusEntryPatch{}
	w.mu.Unlock()

	if err := w.repo.Update(ctx, id, buffer.Fields()); err != nil {
		return nil, fmt.Errorf("failed to save worksheet row: %w", err)
	}

	merged := buffer.Apply(base)
	return &merged, nil
}

// Cancel discards the scratch buffer unchanged.
func (w *Worksheet) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.editID = ""
	w.buffer = entity.StatusEntryPatch{}
}

// EditingID returns the id of the row currently in edit mode, if any.
func (w *Worksheet) EditingID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.editID
}

// Filter keeps rows matching the exact transport date AND, when a search
// term is present, a case-insensitive substring of SAP id, route or
// destination.
func (w *Worksheet) Filter(entries []entity.StatusEntry, date, search string) []entity.StatusEntry {
	term := strings.ToLower(search)
	filtered := make([]entity.StatusEntry, 0, len(entries))
	for _, e := range entries {
		if e.TransportDate != date {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(e.TransportSap), term) &&
			!strings.Contains(strings.ToLower(e.Route), term) &&
			!strings.Contains(strings.ToLower(e.Destination), term) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// Sort orders the rows by one field, toggling direction when the same field
// is selected again. String fields use locale-aware ordering, numeric
// fields numeric ordering; anything else compares equal (stable no-op).
func (w *Worksheet) Sort(entries []entity.StatusEntry, field string) []entity.StatusEntry {
	w.mu.Lock()
	if field == w.sortKey {
		w.sortAsc = !w.sortAsc
	} else {
		w.sortKey = field
		w.sortAsc = true
	}
	asc := w.sortAsc
	w.mu.Unlock()

	return w.SortBy(entries, field, asc)
}

// SortBy is the stateless ordering used by Sort; exposed for callers that
// carry their own direction.
func (w *Worksheet) SortBy(entries []entity.StatusEntry, field string, asc bool) []entity.StatusEntry {
	sorted := make([]entity.StatusEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		aStr, aNum, aNumeric, aOK := entity.SortValue(&sorted[i], field)
		bStr, bNum, bNumeric, bOK := entity.SortValue(&sorted[j], field)
		if !aOK || !bOK {
			return false
		}
		if aNumeric && bNumeric {
			if asc {
				return aNum < bNum
			}
			return bNum < aNum
		}
		if !aNumeric && !bNumeric {
			cmp := w.collator.CompareString(aStr, bStr)
			if asc {
				return cmp < 0
			}
			return cmp > 0
		}
		return false
	})
	return sorted
}
