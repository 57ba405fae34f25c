package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Service загрузчик операционного расписания салона.
//
// Расписание запрашивается у профильного сервиса не чаще одного раза на сессию:
// результат кешируется до Invalidate или истечения TTL, а конкурентные
// вызовы во время загрузки разделяют один запрос вместо дублирования.
//
// Недоступность профильного сервиса не блокирует бронирование: возвращается
// расписание без ограничений (политика "разрешать при неполной конфигурации").
type Service struct {
	client SalonServiceClient
	log    Logger
	ttl    time.Duration

	mu       sync.Mutex
	cached   *cachedSchedule
	inflight *inflightFetch
}

type cachedSchedule struct {
	schedule  domain.OperatingSchedule
	fetchedAt time.Time
}

type inflightFetch struct {
	done     chan struct{}
	schedule domain.OperatingSchedule
	err      error
}

// NewService создает загрузчик расписания с кешем на ttl
func NewService(client SalonServiceClient, ttl time.Duration, log Logger) *Service {
	return &Service{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

// Load возвращает актуальное расписание салона.
// При ошибке загрузки возвращает расписание без ограничений и ошибку не отдает -
// ConfigIncomplete не фатален для формы бронирования.
func (s *Service) Load(ctx context.Context) domain.OperatingSchedule {
	s.mu.Lock()

	if s.cached != nil && time.Since(s.cached.fetchedAt) < s.ttl {
		schedule := s.cached.schedule
		s.mu.Unlock()
		return schedule
	}

	if s.inflight != nil {
		// Загрузка уже идет - ждем общий результат, второй запрос не шлем
		fetch := s.inflight
		s.mu.Unlock()

		select {
		case <-fetch.done:
		case <-ctx.Done():
			s.log.Warn("schedule: load cancelled while waiting for shared fetch: %v", ctx.Err())
			return domain.OperatingSchedule{}
		}

		if fetch.err != nil {
			return domain.OperatingSchedule{}
		}
		return fetch.schedule
	}

	fetch := &inflightFetch{done: make(chan struct{})}
	s.inflight = fetch
	s.mu.Unlock()

	schedule, err := s.fetch(ctx)

	fetch.schedule = schedule
	fetch.err = err
	close(fetch.done)

	s.mu.Lock()
	s.inflight = nil
	if err == nil {
		s.cached = &cachedSchedule{schedule: schedule, fetchedAt: time.Now()}
	}
	s.mu.Unlock()

	return schedule
}

// Invalidate сбрасывает кеш; следующий Load пойдет в профильный сервис
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *Service) fetch(ctx context.Context) (domain.OperatingSchedule, error) {
	raw, err := s.client.GetSchedule(ctx)
	if err != nil {
		s.log.Warn("schedule: failed to load salon schedule, booking proceeds unconstrained: %v", err)
		return domain.OperatingSchedule{}, err
	}

	schedule, warnings := domain.NewOperatingSchedule(raw.WorkingDays, raw.OpeningTime, raw.ClosingTime)
	for _, w := range warnings {
		s.log.Warn("schedule: %s", w)
	}

	s.log.Info("schedule: loaded salon schedule (days=%v, open=%s, close=%s)",
		schedule.WorkingDays(), schedule.OpeningTime(), schedule.ClosingTime())

	return schedule, nil
}
