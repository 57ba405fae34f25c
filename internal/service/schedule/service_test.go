package schedule

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/integrations/salonservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubClient struct {
	calls    atomic.Int32
	schedule *salonservice.Schedule
	err      error
	release  chan struct{} // если не nil, GetSchedule блокируется до закрытия
}

func (c *stubClient) GetSchedule(ctx context.Context) (*salonservice.Schedule, error) {
	c.calls.Add(1)
	if c.release != nil {
		<-c.release
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.schedule, nil
}

func TestService_Load_CachesResult(t *testing.T) {
	client := &stubClient{schedule: &salonservice.Schedule{
		WorkingDays: []int{1, 2, 3, 4, 5},
		OpeningTime: "10:00",
		ClosingTime: "20:00",
	}}
	svc := NewService(client, time.Minute, nopLogger{})

	first := svc.Load(context.Background())
	second := svc.Load(context.Background())

	assert.Equal(t, int32(1), client.calls.Load(), "schedule is fetched once per session")
	assert.True(t, first.HasTimeBounds())
	assert.Equal(t, first.OpeningTime(), second.OpeningTime())
}

func TestService_Load_SharesInflightFetch(t *testing.T) {
	client := &stubClient{
		schedule: &salonservice.Schedule{OpeningTime: "09:00", ClosingTime: "18:00"},
		release:  make(chan struct{}),
	}
	svc := NewService(client, time.Minute, nopLogger{})

	const callers = 5
	var wg sync.WaitGroup
	results := make([]bool, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := svc.Load(context.Background())
			results[i] = s.HasTimeBounds()
		}(i)
	}

	// Даем горутинам встать в очередь за общим запросом
	time.Sleep(20 * time.Millisecond)
	close(client.release)
	wg.Wait()

	assert.Equal(t, int32(1), client.calls.Load(), "concurrent callers share one upstream request")
	for _, ok := range results {
		assert.True(t, ok)
	}
}

func TestService_Load_FailureDegradesToUnconstrained(t *testing.T) {
	client := &stubClient{err: errors.New("boom")}
	svc := NewService(client, time.Minute, nopLogger{})

	s := svc.Load(context.Background())

	assert.False(t, s.HasDayRestriction())
	assert.False(t, s.HasTimeBounds())

	// Ошибка не кешируется - следующий вызов пробует снова
	svc.Load(context.Background())
	assert.Equal(t, int32(2), client.calls.Load())
}

func TestService_Invalidate(t *testing.T) {
	client := &stubClient{schedule: &salonservice.Schedule{OpeningTime: "10:00", ClosingTime: "20:00"}}
	svc := NewService(client, time.Minute, nopLogger{})

	svc.Load(context.Background())
	svc.Invalidate()
	svc.Load(context.Background())

	assert.Equal(t, int32(2), client.calls.Load())
}
