package templates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	templateRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/template"
	"github.com/m04kA/SMC-ScheduleService/internal/service/templates/models"
)

type fakeTemplateRepo struct {
	nextID    int64
	templates map[int64]*domain.ScheduleTemplate
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: map[int64]*domain.ScheduleTemplate{}}
}

func (f *fakeTemplateRepo) Create(_ context.Context, tmpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	f.nextID++
	created := *tmpl
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.templates[created.ID] = &created
	return &created, nil
}

func (f *fakeTemplateRepo) ListBySpecialist(_ context.Context, specialistID int64, onlyActive bool) ([]*domain.ScheduleTemplate, error) {
	result := make([]*domain.ScheduleTemplate, 0)
	for _, t := range f.templates {
		if t.SpecialistID != specialistID {
			continue
		}
		if onlyActive && !t.IsActive {
			continue
		}
		copied := *t
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeTemplateRepo) SetActive(_ context.Context, id, specialistID int64, active bool) error {
	t, ok := f.templates[id]
	if !ok || t.SpecialistID != specialistID {
		return templateRepo.ErrTemplateNotFound
	}
	t.IsActive = active
	return nil
}

func (f *fakeTemplateRepo) Delete(_ context.Context, id, specialistID int64) error {
	t, ok := f.templates[id]
	if !ok || t.SpecialistID != specialistID {
		return templateRepo.ErrTemplateNotFound
	}
	delete(f.templates, id)
	return nil
}

type fakeSpecialistRepo struct {
	ensured []int64
}

func (f *fakeSpecialistRepo) EnsureExists(_ context.Context, id int64) error {
	f.ensured = append(f.ensured, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateTemplateRequest {
	return &models.CreateTemplateRequest{
		SpecialistID:        10,
		DayOfWeek:           0,
		StartTime:           "09:00",
		EndTime:             "18:00",
		SlotDurationMinutes: 60,
	}
}

func TestTemplates_Create(t *testing.T) {
	repo := newFakeTemplateRepo()
	specialists := &fakeSpecialistRepo{}
	svc := NewService(repo, specialists, nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.SpecialistID)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "18:00", resp.EndTime)
	assert.True(t, resp.IsActive)

	// Строка специалиста заведена лениво перед вставкой шаблона
	assert.Equal(t, []int64{10}, specialists.ensured)
}

func TestTemplates_Create_Validation(t *testing.T) {
	svc := NewService(newFakeTemplateRepo(), &fakeSpecialistRepo{}, nopLogger{})

	tests := []struct {
		name    string
		mutate  func(r *models.CreateTemplateRequest)
		wantErr error
	}{
		{"zero specialist", func(r *models.CreateTemplateRequest) { r.SpecialistID = 0 }, ErrInvalidInput},
		{"day below range", func(r *models.CreateTemplateRequest) { r.DayOfWeek = -1 }, ErrInvalidInput},
		{"day above range", func(r *models.CreateTemplateRequest) { r.DayOfWeek = 7 }, ErrInvalidInput},
		{"bad start time", func(r *models.CreateTemplateRequest) { r.StartTime = "junk" }, ErrInvalidInput},
		{"bad end time", func(r *models.CreateTemplateRequest) { r.EndTime = "25:99" }, ErrInvalidInput},
		{"start equals end", func(r *models.CreateTemplateRequest) { r.EndTime = r.StartTime }, ErrInvalidTimeRange},
		{"start after end", func(r *models.CreateTemplateRequest) {
			r.StartTime, r.EndTime = r.EndTime, r.StartTime
		}, ErrInvalidTimeRange},
		{"duration not allowed", func(r *models.CreateTemplateRequest) { r.SlotDurationMinutes = 25 }, ErrUnsupportedDuration},
		{"zero duration", func(r *models.CreateTemplateRequest) { r.SlotDurationMinutes = 0 }, ErrUnsupportedDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTemplates_List(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := NewService(repo, &fakeSpecialistRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, resp.Templates, 1)

	// Чужие шаблоны не видны
	empty, err := svc.List(context.Background(), 11)
	require.NoError(t, err)
	assert.Empty(t, empty.Templates)
}

func TestTemplates_SetActive(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := NewService(repo, &fakeSpecialistRepo{}, nopLogger{})

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.SetActive(context.Background(), created.ID, 10, false))
	assert.False(t, repo.templates[created.ID].IsActive)

	// Чужой или несуществующий шаблон - NotFound
	err = svc.SetActive(context.Background(), created.ID, 11, true)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	err = svc.SetActive(context.Background(), 999, 10, true)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestTemplates_Delete(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := NewService(repo, &fakeSpecialistRepo{}, nopLogger{})

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, 11)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	require.NoError(t, svc.Delete(context.Background(), created.ID, 10))
	assert.Empty(t, repo.templates)

	err = svc.Delete(context.Background(), created.ID, 10)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}
