package draftstore

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// MemoryStore хранилище черновиков в памяти процесса.
// Используется как fallback при недоступности Redis и в тестах.
type MemoryStore struct {
	drafts sync.Map
	ttl    time.Duration
}

type memoryEntry struct {
	draft     domain.BookingDraft
	expiresAt time.Time
}

// NewMemoryStore создает хранилище черновиков в памяти
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl}
}

// Save сохраняет черновик (обновляет TTL)
func (s *MemoryStore) Save(ctx context.Context, draft *domain.BookingDraft) error {
	s.drafts.Store(draft.ID, memoryEntry{
		draft:     copyDraft(draft),
		expiresAt: time.Now().Add(s.ttl),
	})
	return nil
}

// Get возвращает черновик по id. Истекший черновик считается не найденным.
func (s *MemoryStore) Get(ctx context.Context, draftID string) (*domain.BookingDraft, error) {
	val, ok := s.drafts.Load(draftID)
	if !ok {
		return nil, ErrDraftNotFound
	}

	entry := val.(memoryEntry)
	if time.Now().After(entry.expiresAt) {
		s.drafts.Delete(draftID)
		return nil, ErrDraftNotFound
	}

	draft := copyDraft(&entry.draft)
	return &draft, nil
}

// Delete удаляет черновик. Удаление отсутствующего черновика не ошибка.
func (s *MemoryStore) Delete(ctx context.Context, draftID string) error {
	s.drafts.Delete(draftID)
	return nil
}

// copyDraft копирует черновик вместе со срезом позиций, чтобы хранилище
// и вызывающая сторона не делили изменяемое состояние
func copyDraft(draft *domain.BookingDraft) domain.BookingDraft {
	cp := *draft
	if draft.Items != nil {
		cp.Items = append([]domain.BookableItem(nil), draft.Items...)
	}
	return cp
}
