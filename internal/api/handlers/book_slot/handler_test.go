package book_slot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	bookSlot "github.com/m04kA/SMC-ScheduleService/internal/usecase/book_slot"
)

type fakeUseCase struct {
	resp *bookSlot.Response
	err  error

	gotReq *bookSlot.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *bookSlot.Request) (*bookSlot.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *fakeUseCase) *mux.Router {
	h := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/slots/{slotId}/book", h.Handle).Methods(http.MethodPost)
	return r
}

func TestBookSlotHandler(t *testing.T) {
	uc := &fakeUseCase{resp: &bookSlot.Response{
		SessionID:    7,
		SpecialistID: 10,
		ClientID:     42,
		SlotID:       5,
		StartTime:    time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
		Status:       "confirmed",
		CreatedAt:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/5/book", nil)
	req.Header.Set(middleware.HeaderUserID, "42")
	rec := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	// ID клиента берется из заголовка, ID слота - из пути
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(5), uc.gotReq.SlotID)
	assert.Equal(t, int64(42), uc.gotReq.ClientID)

	var body BookSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.SessionID)
	assert.Equal(t, "confirmed", body.Status)
	assert.Equal(t, "2026-09-07T09:00:00Z", body.StartTime)
}

func TestBookSlotHandler_Unauthorized(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/5/book", nil)
	rec := httptest.NewRecorder()

	newRouter(&fakeUseCase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookSlotHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot not found", bookSlot.ErrSlotNotFound, http.StatusNotFound},
		{"slot already booked", bookSlot.ErrSlotNotAvailable, http.StatusConflict},
		{"internal error", bookSlot.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/5/book", nil)
			req.Header.Set(middleware.HeaderUserID, "42")
			rec := httptest.NewRecorder()

			newRouter(&fakeUseCase{err: tt.err}).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestBookSlotHandler_InvalidSlotID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/abc/book", nil)
	req.Header.Set(middleware.HeaderUserID, "42")
	rec := httptest.NewRecorder()

	newRouter(&fakeUseCase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
