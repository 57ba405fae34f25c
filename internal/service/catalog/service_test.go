package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/salonservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubClient struct {
	services    []salonservice.Service
	servicesErr error
	combos      []salonservice.Combo
	combosErr   error
	comboDates  []time.Time
}

func (c *stubClient) ListServices(ctx context.Context) ([]salonservice.Service, error) {
	return c.services, c.servicesErr
}

func (c *stubClient) ListActiveCombos(ctx context.Context, date time.Time) ([]salonservice.Combo, error) {
	c.comboDates = append(c.comboDates, date)
	return c.combos, c.combosErr
}

func TestService_ListForDate(t *testing.T) {
	date := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	t.Run("merges services and combos with kind tags", func(t *testing.T) {
		client := &stubClient{
			services: []salonservice.Service{
				{ID: "svc1", Name: "Haircut", DurationMinutes: 30, Price: 25},
				{ID: "svc2", Name: "Coloring", DurationMinutes: 90, Price: 80},
			},
			combos: []salonservice.Combo{
				{ID: "combo1", Name: "Spa day", DiscountPercent: 20},
			},
		}
		svc := NewService(client, nopLogger{})

		items := svc.ListForDate(context.Background(), date)

		require.Len(t, items, 3)
		assert.Equal(t, domain.ItemKindService, items[0].Kind)
		assert.Equal(t, "Haircut", items[0].Label)
		assert.Equal(t, 30, items[0].DurationMinutes)
		assert.Equal(t, domain.ItemKindCombo, items[2].Kind)
		assert.Equal(t, "Spa day (-20%)", items[2].Label)
		assert.Equal(t, 20.0, items[2].DiscountPercent)

		require.Len(t, client.comboDates, 1)
		assert.Equal(t, date, client.comboDates[0])
	})

	t.Run("combo failure does not block services", func(t *testing.T) {
		client := &stubClient{
			services:  []salonservice.Service{{ID: "svc1", Name: "Haircut"}},
			combosErr: errors.New("combo directory down"),
		}
		svc := NewService(client, nopLogger{})

		items := svc.ListForDate(context.Background(), date)

		require.Len(t, items, 1)
		assert.Equal(t, "svc1", items[0].ID)
	})

	t.Run("service failure does not block combos", func(t *testing.T) {
		client := &stubClient{
			servicesErr: errors.New("service directory down"),
			combos:      []salonservice.Combo{{ID: "combo1", Name: "Spa day", DiscountPercent: 15}},
		}
		svc := NewService(client, nopLogger{})

		items := svc.ListForDate(context.Background(), date)

		require.Len(t, items, 1)
		assert.Equal(t, "combo1", items[0].ID)
	})

	t.Run("both failures degrade to empty list", func(t *testing.T) {
		client := &stubClient{
			servicesErr: errors.New("down"),
			combosErr:   errors.New("down"),
		}
		svc := NewService(client, nopLogger{})

		items := svc.ListForDate(context.Background(), date)
		assert.Empty(t, items)
	})
}

func TestComboLabel(t *testing.T) {
	assert.Equal(t, "Spa day (-12.5%)", comboLabel("Spa day", 12.5))
	assert.Equal(t, "Spa day", comboLabel("Spa day", 0))
}
