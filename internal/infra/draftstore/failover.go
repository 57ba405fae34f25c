package draftstore

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// recoveryInterval пауза перед повторной попыткой вернуться на primary
const recoveryInterval = time.Minute

// FailoverStore хранилище с переключением на резерв: при ошибках primary
// (Redis) операции уходят в fallback (память), с периодическими попытками
// вернуться на primary.
type FailoverStore struct {
	primary   Store
	fallback  Store
	log       Logger
	isDown    atomic.Bool
	lastCheck atomic.Int64 // unix nano
}

// NewFailoverStore создает хранилище с переключением на резерв
func NewFailoverStore(primary, fallback Store, log Logger) *FailoverStore {
	return &FailoverStore{
		primary:  primary,
		fallback: fallback,
		log:      log,
	}
}

// Save сохраняет черновик в primary, при ошибке - в fallback
func (s *FailoverStore) Save(ctx context.Context, draft *domain.BookingDraft) error {
	if s.primaryAvailable() {
		err := s.primary.Save(ctx, draft)
		if err == nil {
			return nil
		}
		s.markDown(err)
	}

	return s.fallback.Save(ctx, draft)
}

// Get возвращает черновик из primary, при ошибке хранилища - из fallback.
// ErrDraftNotFound - валидный результат, не повод для переключения,
// но во время downtime черновики живут в fallback, поэтому проверяем и его.
func (s *FailoverStore) Get(ctx context.Context, draftID string) (*domain.BookingDraft, error) {
	if s.primaryAvailable() {
		draft, err := s.primary.Get(ctx, draftID)
		if err == nil {
			return draft, nil
		}
		if errors.Is(err, ErrDraftNotFound) {
			return s.fallback.Get(ctx, draftID)
		}
		s.markDown(err)
	}

	return s.fallback.Get(ctx, draftID)
}

// Delete удаляет черновик из обоих хранилищ
func (s *FailoverStore) Delete(ctx context.Context, draftID string) error {
	var primaryErr error
	if s.primaryAvailable() {
		primaryErr = s.primary.Delete(ctx, draftID)
		if primaryErr != nil {
			s.markDown(primaryErr)
		}
	}

	if err := s.fallback.Delete(ctx, draftID); err != nil {
		return err
	}
	return primaryErr
}

// primaryAvailable возвращает true, если primary считается живым
// или пришло время попробовать его снова
func (s *FailoverStore) primaryAvailable() bool {
	if !s.isDown.Load() {
		return true
	}

	last := time.Unix(0, s.lastCheck.Load())
	if time.Since(last) > recoveryInterval {
		s.isDown.Store(false)
		s.log.Info("draftstore failover: retrying primary store")
		return true
	}

	return false
}

func (s *FailoverStore) markDown(err error) {
	s.isDown.Store(true)
	s.lastCheck.Store(time.Now().UnixNano())
	s.log.Warn("draftstore failover: primary store failed, falling back to memory: %v", err)
}
