package usecase

import (
	"context"
	"fmt"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/pkg/logger"
)

// nopLogger keeps test output quiet.
type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatal(msg string, keysAndValues ...interface{}) {}
func (l nopLogger) With(keysAndValues ...interface{}) logger.Logger {
	return l
}

type fakeTransportRepo struct {
	records []entity.TransportRecord
	// failAfter injects a failure once that many records were written; -1
	// disables it.
	failAfter int
}

func newFakeTransportRepo() *fakeTransportRepo {
	return &fakeTransportRepo{failAfter: -1}
}

func (f *fakeTransportRepo) List(ctx context.Context) ([]entity.TransportRecord, error) {
	return append([]entity.TransportRecord{}, f.records...), nil
}

func (f *fakeTransportRepo) CreateBatch(ctx context.Context, records []entity.TransportRecord) (int, error) {
	for i, r := range records {
		if f.failAfter >= 0 && i >= f.failAfter {
			return i, fmt.Errorf("store unavailable")
		}
		if r.ID == "" {
			r.ID = fmt.Sprintf("t-%d", len(f.records)+1)
		}
		f.records = append(f.records, r)
	}
	return len(records), nil
}

func (f *fakeTransportRepo) DeleteAll(ctx context.Context) error {
	f.records = nil
	return nil
}

type fakeStatusRepo struct {
	entries   []entity.StatusEntry
	nextID    int
	failAfter int
	listErr   error
	updates   []map[string]interface{}
}

func newFakeStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{failAfter: -1}
}

func (f *fakeStatusRepo) List(ctx context.Context) ([]entity.StatusEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]entity.StatusEntry{}, f.entries...), nil
}

func (f *fakeStatusRepo) Create(ctx context.Context, entry entity.StatusEntry) (string, error) {
	if f.failAfter >= 0 && len(f.entries) >= f.failAfter {
		return "", fmt.Errorf("store unavailable")
	}
	f.nextID++
	entry.ID = fmt.Sprintf("s-%d", f.nextID)
	if entry.Status == "" {
		entry.Status = entity.StatusPendente
	}
	f.entries = append(f.entries, entry)
	return entry.ID, nil
}

func (f *fakeStatusRepo) CreateBatch(ctx context.Context, entries []entity.StatusEntry) (int, error) {
	for i := range entries {
		if _, err := f.Create(ctx, entries[i]); err != nil {
			return i, err
		}
	}
	return len(entries), nil
}

func (f *fakeStatusRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	f.updates = append(f.updates, fields)
	for i := range f.entries {
		if f.entries[i].ID == id {
			applyFields(&f.entries[i], fields)
			return nil
		}
	}
	return fmt.Errorf("no status entry found with id: %s", id)
}

func (f *fakeStatusRepo) Delete(ctx context.Context, id string) error {
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no status entry found with id: %s", id)
}

// applyFields mirrors the document-store $set for the fields the tests use.
func applyFields(e *entity.StatusEntry, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "driver":
			e.Driver = v.(string)
		case "plate":
			e.Plate = v.(string)
		case "destination":
			e.Destination = v.(string)
		case "observation":
			e.Observation = v.(string)
		case "refrigeratedPallets":
			e.RefrigeratedPallets = v.(int)
		case "dryPallets":
			e.DryPallets = v.(int)
		case "status":
			e.Status = v.(entity.TransportStatus)
		}
	}
}

type fakeScheduleRepo struct {
	schedules []entity.Schedule
	nextID    int
	createErr error
	listErr   error
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{}
}

func (f *fakeScheduleRepo) List(ctx context.Context) ([]entity.Schedule, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := append([]entity.Schedule{}, f.schedules...)
	// Newest first, as the store returns them.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (f *fakeScheduleRepo) FindByID(ctx context.Context, id string) (*entity.Schedule, error) {
	for i := range f.schedules {
		if f.schedules[i].ID == id {
			copied := f.schedules[i]
			copied.Vehicles = append([]entity.VehicleAssignment{}, f.schedules[i].Vehicles...)
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("failed to find schedule %s", id)
}

func (f *fakeScheduleRepo) CountByDate(ctx context.Context, date string) (int, error) {
	count := 0
	for _, s := range f.schedules {
		if s.Date == date {
			count++
		}
	}
	return count, nil
}

func (f *fakeScheduleRepo) Create(ctx context.Context, schedule entity.Schedule) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	schedule.ID = fmt.Sprintf("sch-%d", f.nextID)
	f.schedules = append(f.schedules, schedule)
	return schedule.ID, nil
}

func (f *fakeScheduleRepo) ReplaceVehicles(ctx context.Context, id string, vehicles []entity.VehicleAssignment) error {
	for i := range f.schedules {
		if f.schedules[i].ID == id {
			f.schedules[i].Vehicles = vehicles
			return nil
		}
	}
	return fmt.Errorf("no schedule found with id: %s", id)
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id string) error {
	for i := range f.schedules {
		if f.schedules[i].ID == id {
			f.schedules = append(f.schedules[:i], f.schedules[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no schedule found with id: %s", id)
}

type fakePreregRepo struct {
	data  *entity.PreRegistrationData
	saves int
}

func newFakePreregRepo() *fakePreregRepo {
	return &fakePreregRepo{}
}

func (f *fakePreregRepo) Get(ctx context.Context) (*entity.PreRegistrationData, error) {
	if f.data == nil {
		return entity.EmptyPreRegistrationData(), nil
	}
	return f.data.Clone(), nil
}

func (f *fakePreregRepo) Save(ctx context.Context, data *entity.PreRegistrationData) error {
	f.saves++
	f.data = data.Clone()
	return nil
}
