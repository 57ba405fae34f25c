package submit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/draftstore"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/appointmentservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubSchedule struct {
	schedule domain.OperatingSchedule
}

func (s *stubSchedule) Load(ctx context.Context) domain.OperatingSchedule {
	return s.schedule
}

type stubAppointmentClient struct {
	requests []*appointmentservice.CreateAppointmentRequest
	err      error
}

func (c *stubAppointmentClient) CreateAppointment(ctx context.Context, req *appointmentservice.CreateAppointmentRequest) (*appointmentservice.Appointment, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return nil, c.err
	}
	return &appointmentservice.Appointment{
		ID:              "appt1",
		CustomerID:      req.CustomerID,
		Services:        req.Services,
		ComboOffers:     req.ComboOffers,
		StaffID:         req.StaffID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          "confirmed",
	}, nil
}

func mustSchedule(t *testing.T) domain.OperatingSchedule {
	t.Helper()
	// Пн-Пт 09:00-20:00
	schedule, warnings := domain.NewOperatingSchedule([]int{1, 2, 3, 4, 5}, "09:00", "20:00")
	require.Empty(t, warnings)
	return schedule
}

func completeDraft() *domain.BookingDraft {
	return &domain.BookingDraft{
		ID:         "draft1",
		UserID:     42,
		CustomerID: "cust1",
		StaffID:    "staff7",
		Date:       time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), // вторник
		Time:       "14:30",
		Items: []domain.BookableItem{
			{ID: "svc1", Kind: domain.ItemKindService},
			{ID: "combo1", Kind: domain.ItemKindCombo},
			{ID: "svc2", Kind: domain.ItemKindService},
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("success builds exact payload and deletes draft", func(t *testing.T) {
		store := draftstore.NewMemoryStore(time.Hour)
		require.NoError(t, store.Save(ctx, completeDraft()))
		client := &stubAppointmentClient{}
		uc := NewUseCase(store, &stubSchedule{schedule: mustSchedule(t)}, client, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{UserID: 42, DraftID: "draft1"})
		require.NoError(t, err)

		require.Len(t, client.requests, 1)
		sent := client.requests[0]
		assert.Equal(t, "cust1", sent.CustomerID)
		assert.Equal(t, []string{"svc1", "svc2"}, sent.Services)
		assert.Equal(t, []string{"combo1"}, sent.ComboOffers)
		assert.Equal(t, "staff7", sent.StaffID)
		assert.Equal(t, "2026-09-08", sent.AppointmentDate)
		assert.Equal(t, "14:30", sent.AppointmentTime)

		assert.Equal(t, "appt1", resp.AppointmentID)
		assert.Equal(t, "confirmed", resp.Status)

		_, err = store.Get(ctx, "draft1")
		assert.ErrorIs(t, err, draftstore.ErrDraftNotFound)
	})

	t.Run("backend failure preserves draft", func(t *testing.T) {
		store := draftstore.NewMemoryStore(time.Hour)
		require.NoError(t, store.Save(ctx, completeDraft()))
		client := &stubAppointmentClient{err: appointmentservice.ErrInternal}
		uc := NewUseCase(store, &stubSchedule{schedule: mustSchedule(t)}, client, nopLogger{})

		_, err := uc.Execute(ctx, &Request{UserID: 42, DraftID: "draft1"})
		assert.ErrorIs(t, err, ErrSubmissionFailed)

		draft, err := store.Get(ctx, "draft1")
		require.NoError(t, err)
		assert.Equal(t, "cust1", draft.CustomerID)
	})

	t.Run("incomplete draft refused without network call", func(t *testing.T) {
		store := draftstore.NewMemoryStore(time.Hour)
		draft := completeDraft()
		draft.StaffID = ""
		require.NoError(t, store.Save(ctx, draft))
		client := &stubAppointmentClient{}
		uc := NewUseCase(store, &stubSchedule{schedule: mustSchedule(t)}, client, nopLogger{})

		_, err := uc.Execute(ctx, &Request{UserID: 42, DraftID: "draft1"})
		assert.ErrorIs(t, err, ErrDraftIncomplete)
		assert.Empty(t, client.requests)
	})

	t.Run("closed day refused without network call", func(t *testing.T) {
		store := draftstore.NewMemoryStore(time.Hour)
		draft := completeDraft()
		draft.Date = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC) // воскресенье
		require.NoError(t, store.Save(ctx, draft))
		client := &stubAppointmentClient{}
		uc := NewUseCase(store, &stubSchedule{schedule: mustSchedule(t)}, client, nopLogger{})

		_, err := uc.Execute(ctx, &Request{UserID: 42, DraftID: "draft1"})
		assert.ErrorIs(t, err, ErrClosedOnDay)
		assert.Empty(t, client.requests)
	})

	t.Run("closing time refused", func(t *testing.T) {
		store := draftstore.NewMemoryStore(time.Hour)
		draft := completeDraft()
		draft.Time = "20:00"
		require.NoError(t, store.Save(ctx, draft))
		client := &stubAppointmentClient{}
		uc := NewUseCase(store, &stubSchedule{schedule: mustSchedule(t)}, client, nopLogger{})

		_, err := uc.Execute(ctx, &Request{UserID: 42, DraftID: "draft1"})
		assert.ErrorIs(t, err, ErrClosedAtTime)
		assert.Empty(t, client.requests)
	})

	t.Run("unknown draft", func(t *testing.T) {
		store := draftstore.NewMemoryStore(time.Hour)
		uc := NewUseCase(store, &stubSchedule{}, &stubAppointmentClient{}, nopLogger{})

		_, err := uc.Execute(ctx, &Request{UserID: 42, DraftID: "ghost"})
		assert.ErrorIs(t, err, ErrDraftNotFound)
	})

	t.Run("unconstrained schedule accepts any slot", func(t *testing.T) {
		store := draftstore.NewMemoryStore(time.Hour)
		draft := completeDraft()
		draft.Date = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
		draft.Time = "23:30"
		require.NoError(t, store.Save(ctx, draft))
		client := &stubAppointmentClient{}
		uc := NewUseCase(store, &stubSchedule{schedule: domain.OperatingSchedule{}}, client, nopLogger{})

		_, err := uc.Execute(ctx, &Request{UserID: 42, DraftID: "draft1"})
		require.NoError(t, err)
		require.Len(t, client.requests, 1)
	})
}

type stubMetrics struct {
	outcomes []string
	closed   int
}

func (m *stubMetrics) DraftSubmission(outcome string) { m.outcomes = append(m.outcomes, outcome) }
func (m *stubMetrics) DraftClosed()                   { m.closed++ }

func TestUseCase_SubmissionMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("success outcome", func(t *testing.T) {
		store := draftstore.NewMemoryStore(time.Hour)
		require.NoError(t, store.Save(ctx, completeDraft()))
		m := &stubMetrics{}
		uc := NewUseCase(store, &stubSchedule{schedule: mustSchedule(t)}, &stubAppointmentClient{}, nopLogger{}).WithMetrics(m)

		_, err := uc.Execute(ctx, &Request{UserID: 42, DraftID: "draft1"})
		require.NoError(t, err)

		assert.Equal(t, []string{"success"}, m.outcomes)
		assert.Equal(t, 1, m.closed)
	})

	t.Run("failure outcome on backend error", func(t *testing.T) {
		store := draftstore.NewMemoryStore(time.Hour)
		require.NoError(t, store.Save(ctx, completeDraft()))
		m := &stubMetrics{}
		client := &stubAppointmentClient{err: appointmentservice.ErrInternal}
		uc := NewUseCase(store, &stubSchedule{schedule: mustSchedule(t)}, client, nopLogger{}).WithMetrics(m)

		_, err := uc.Execute(ctx, &Request{UserID: 42, DraftID: "draft1"})
		require.Error(t, err)

		// Метка совпадает с outcome интеграционных клиентов
		assert.Equal(t, []string{"failure"}, m.outcomes)
		assert.Equal(t, 0, m.closed)
	})

	t.Run("rejected outcome on validation refusal", func(t *testing.T) {
		store := draftstore.NewMemoryStore(time.Hour)
		draft := completeDraft()
		draft.Items = nil
		require.NoError(t, store.Save(ctx, draft))
		m := &stubMetrics{}
		uc := NewUseCase(store, &stubSchedule{schedule: mustSchedule(t)}, &stubAppointmentClient{}, nopLogger{}).WithMetrics(m)

		_, err := uc.Execute(ctx, &Request{UserID: 42, DraftID: "draft1"})
		require.Error(t, err)

		assert.Equal(t, []string{"rejected"}, m.outcomes)
	})
}

func TestValidateDraft(t *testing.T) {
	schedule := mustSchedule(t)

	t.Run("complete and open", func(t *testing.T) {
		assert.NoError(t, validateDraft(completeDraft(), schedule))
	})

	t.Run("completeness checked before availability", func(t *testing.T) {
		draft := completeDraft()
		draft.CustomerID = ""
		draft.Date = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
		assert.ErrorIs(t, validateDraft(draft, schedule), ErrDraftIncomplete)
	})

	t.Run("no items", func(t *testing.T) {
		draft := completeDraft()
		draft.Items = nil
		assert.ErrorIs(t, validateDraft(draft, schedule), ErrDraftIncomplete)
	})
}
