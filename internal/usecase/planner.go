package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/internal/domain/repository"
	"transcontrol-service/pkg/logger"
	"transcontrol-service/pkg/metrics"

	"github.com/google/uuid"
)

// Planner errors surfaced to the caller as validation state, never panics.
var (
	ErrNoCompleteVehicles = errors.New("no vehicle has plate, driver, origin and a named destination")
	ErrLastVehicle        = errors.New("a schedule draft needs at least one vehicle")
	ErrLastDestination    = errors.New("a vehicle needs at least one destination")
	ErrDraftNotFound      = errors.New("no draft vehicle with that id")
)

// ScheduleDraft is the in-progress builder state, entirely separate from
// persisted schedules.
type ScheduleDraft struct {
	Date     string                     `json:"date"`
	Vehicles []entity.VehicleAssignment `json:"vehicles"`
}

// Planner authors daily schedules and flips vehicle transit status on
// persisted ones.
type Planner struct {
	repo    repository.ScheduleRepository
	refDate func() time.Time
	now     func() time.Time
	logger  logger.Logger
	metrics *metrics.Metrics

	mu    sync.Mutex
	draft *ScheduleDraft
}

// NewPlanner creates a new schedule planner
func NewPlanner(repo repository.ScheduleRepository, refDate, now func() time.Time, logger logger.Logger, m *metrics.Metrics) *Planner {
	return &Planner{
		repo:    repo,
		refDate: refDate,
		now:     now,
		logger:  logger,
		metrics: m,
	}
}

func newDraftVehicle() entity.VehicleAssignment {
	return entity.VehicleAssignment{
		ID:           uuid.NewString(),
		Destinations: []entity.Destination{{ID: uuid.NewString()}},
		Status:       entity.VehicleEmTransito,
	}
}

// NewDraft resets the builder to one blank vehicle with one blank
// destination. An empty date defaults to the reference date.
func (p *Planner) NewDraft(date string) *ScheduleDraft {
	if date == "" {
		date = p.refDate().Format("2006-01-02")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft = &ScheduleDraft{
		Date:     date,
		Vehicles: []entity.VehicleAssignment{newDraftVehicle()},
	}
	return p.copyDraft()
}

// Draft returns the current builder state, creating a fresh one if needed.
func (p *Planner) Draft() *ScheduleDraft {
	p.mu.Lock()
	if p.draft == nil {
		p.mu.Unlock()
		return p.NewDraft("")
	}
	defer p.mu.Unlock()
	return p.copyDraft()
}

func (p *Planner) copyDraft() *ScheduleDraft {
	out := &ScheduleDraft{Date: p.draft.Date}
	out.Vehicles = append(out.Vehicles, p.draft.Vehicles...)
	return out
}

// SetDraftDate changes the date of the in-progress draft.
func (p *Planner) SetDraftDate(date string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.draft != nil && date != "" {
		p.draft.Date = date
	}
}

// AddVehicle appends a blank vehicle draft with a fresh identifier.
func (p *Planner) AddVehicle() (*entity.VehicleAssignment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.draft == nil {
		return nil, ErrDraftNotFound
	}
	vehicle := newDraftVehicle()
	p.draft.Vehicles = append(p.draft.Vehicles, vehicle)
	return &vehicle, nil
}

// RemoveVehicle drops one vehicle draft, refusing to leave zero.
func (p *Planner) RemoveVehicle(vehicleID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.draft == nil {
		return ErrDraftNotFound
	}
	if len(p.draft.Vehicles) <= 1 {
		return ErrLastVehicle
	}
	for i, v := range p.draft.Vehicles {
		if v.ID == vehicleID {
			p.draft.Vehicles = append(p.draft.Vehicles[:i], p.draft.Vehicles[i+1:]...)
			return nil
		}
	}
	return ErrDraftNotFound
}

// UpdateVehicle sets the identification fields of one vehicle draft.
func (p *Planner) UpdateVehicle(vehicleID, plate, driver, origin string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.draft == nil {
		return ErrDraftNotFound
	}
	for i := range p.draft.Vehicles {
		if p.draft.Vehicles[i].ID == vehicleID {
			p.draft.Vehicles[i].Plate = plate
			p.draft.Vehicles[i].Driver = driver
			p.draft.Vehicles[i].Origin = origin
			return nil
		}
	}
	return ErrDraftNotFound
}

// AddDestination appends a blank stop to one vehicle draft.
func (p *Planner) AddDestination(vehicleID string) (*entity.Destination, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.draft == nil {
		return nil, ErrDraftNotFound
	}
	for i := range p.draft.Vehicles {
		if p.draft.Vehicles[i].ID == vehicleID {
			dest := entity.Destination{ID: uuid.NewString()}
			p.draft.Vehicles[i].Destinations = append(p.draft.Vehicles[i].Destinations, dest)
			return &dest, nil
		}
	}
	return nil, ErrDraftNotFound
}

// RemoveDestination drops one stop, refusing to leave a vehicle with zero.
func (p *Planner) RemoveDestination(vehicleID, destinationID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.draft == nil {
		return ErrDraftNotFound
	}
	for i := range p.draft.Vehicles {
		if p.draft.Vehicles[i].ID != vehicleID {
			continue
		}
		dests := p.draft.Vehicles[i].Destinations
		if len(dests) <= 1 {
			return ErrLastDestination
		}
		for j, d := range dests {
			if d.ID == destinationID {
				p.draft.Vehicles[i].Destinations = append(dests[:j], dests[j+1:]...)
				return nil
			}
		}
		return ErrDraftNotFound
	}
	return ErrDraftNotFound
}

// UpdateDestination sets the fields of one stop.
func (p *Planner) UpdateDestination(vehicleID, destinationID, name, stopTime, observation string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.draft == nil {
		return ErrDraftNotFound
	}
	for i := range p.draft.Vehicles {
		if p.draft.Vehicles[i].ID != vehicleID {
			continue
		}
		for j := range p.draft.Vehicles[i].Destinations {
			if p.draft.Vehicles[i].Destinations[j].ID == destinationID {
				p.draft.Vehicles[i].Destinations[j].Name = name
				p.draft.Vehicles[i].Destinations[j].Time = stopTime
				p.draft.Vehicles[i].Destinations[j].Observation = observation
				return nil
			}
		}
		return ErrDraftNotFound
	}
	return ErrDraftNotFound
}

// CreateFromDraft validates and persists the current builder draft, then
// resets the builder.
func (p *Planner) CreateFromDraft(ctx context.Context) (*entity.Schedule, error) {
	p.mu.Lock()
	if p.draft == nil {
		p.mu.Unlock()
		return nil, ErrDraftNotFound
	}
	draft := *p.copyDraft()
	p.mu.Unlock()

	schedule, err := p.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.draft = nil
	p.mu.Unlock()
	return schedule, nil
}

// Create validates a draft and persists the conforming part of it.
// Vehicles missing plate, driver, origin or a named destination are
// silently dropped; their empty-named stops are dropped too. When nothing
// conforms the creation is rejected outright and no schedule is written.
// The title numbers schedules per date at creation time and is never
// renumbered, so deleted schedules leave gaps.
func (p *Planner) Create(ctx context.Context, draft ScheduleDraft) (*entity.Schedule, error) {
	date := draft.Date
	if date == "" {
		date = p.refDate().Format("2006-01-02")
	}

	var vehicles []entity.VehicleAssignment
	for _, v := range draft.Vehicles {
		if !v.IsComplete() {
			continue
		}
		kept := v
		if kept.ID == "" {
			kept.ID = uuid.NewString()
		}
		if kept.Status == "" {
			kept.Status = entity.VehicleEmTransito
		}
		kept.Destinations = v.NamedDestinations()
		for i := range kept.Destinations {
			if kept.Destinations[i].ID == "" {
				kept.Destinations[i].ID = uuid.NewString()
			}
		}
		vehicles = append(vehicles, kept)
	}

	if len(vehicles) == 0 {
		return nil, ErrNoCompleteVehicles
	}

	count, err := p.repo.CountByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to number schedule: %w", err)
	}

	schedule := entity.Schedule{
		Date:      date,
		Title:     fmt.Sprintf("Programação Diária %d", count+1),
		Vehicles:  vehicles,
		CreatedAt: p.now(),
	}

	id, err := p.repo.Create(ctx, schedule)
	if err != nil {
		if p.metrics != nil {
			p.metrics.ErrorsCount.WithLabelValues("schedule_create").Inc()
		}
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	schedule.ID = id

	if p.metrics != nil {
		p.metrics.SchedulesCreated.Inc()
	}
	p.logger.Info("Schedule created", "id", id, "title", schedule.Title, "vehicles", len(vehicles))
	return &schedule, nil
}

// List returns all schedules, newest first; a read failure degrades to an
// empty list.
func (p *Planner) List(ctx context.Context) []entity.Schedule {
	schedules, err := p.repo.List(ctx)
	if err != nil {
		p.logger.Error("Failed to load schedules", "error", err)
		return []entity.Schedule{}
	}
	return schedules
}

// Delete removes a schedule wholesale.
func (p *Planner) Delete(ctx context.Context, id string) error {
	return p.repo.Delete(ctx, id)
}

// ToggleVehicleStatus strictly flips one vehicle between EM_TRANSITO and
// CONCLUIDO. Toggling twice round-trips to the original state.
func (p *Planner) ToggleVehicleStatus(ctx context.Context, scheduleID, vehicleID string) (entity.VehicleStatus, error) {
	return p.setVehicleStatus(ctx, scheduleID, vehicleID, "")
}

// CompleteVehicle is the one-way dashboard shortcut: it sets CONCLUIDO
// regardless of the current state.
func (p *Planner) CompleteVehicle(ctx context.Context, scheduleID, vehicleID string) error {
	_, err := p.setVehicleStatus(ctx, scheduleID, vehicleID, entity.VehicleConcluido)
	return err
}

func (p *Planner) setVehicleStatus(ctx context.Context, scheduleID, vehicleID string, target entity.VehicleStatus) (entity.VehicleStatus, error) {
	schedule, err := p.repo.FindByID(ctx, scheduleID)
	if err != nil {
		return "", err
	}

	var updated entity.VehicleStatus
	found := false
	for i := range schedule.Vehicles {
		if schedule.Vehicles[i].ID != vehicleID {
			continue
		}
		if target == "" {
			updated = schedule.Vehicles[i].Status.Toggled()
		} else {
			updated = target
		}
		schedule.Vehicles[i].Status = updated
		found = true
		break
	}
	if !found {
		return "", fmt.Errorf("no vehicle %s in schedule %s", vehicleID, scheduleID)
	}

	if err := p.repo.ReplaceVehicles(ctx, scheduleID, schedule.Vehicles); err != nil {
		return "", err
	}
	return updated, nil
}
