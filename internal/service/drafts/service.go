package drafts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/draftstore"
	salonClient "github.com/m04kA/SMC-SalonBooking/internal/integrations/salonservice"
	"github.com/m04kA/SMC-SalonBooking/internal/service/drafts/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Service жизненный цикл черновика записи: создание, пополевое редактирование,
// отмена. Черновик - единственный изменяемый объект формы бронирования;
// у него один владелец (сессия формы), блокировки между сессиями не нужны.
type Service struct {
	store       DraftStore
	salonClient SalonServiceClient
	catalog     CatalogService
	schedule    ScheduleService
	logger      Logger
	metrics     Metrics

	comboFetch comboFetchGuard
}

// NewService создает сервис черновиков
func NewService(
	store DraftStore,
	salonClient SalonServiceClient,
	catalog CatalogService,
	schedule ScheduleService,
	logger Logger,
) *Service {
	return &Service{
		store:       store,
		salonClient: salonClient,
		catalog:     catalog,
		schedule:    schedule,
		logger:      logger,
	}
}

// WithMetrics включает метрики жизненного цикла черновиков
func (s *Service) WithMetrics(m Metrics) *Service {
	s.metrics = m
	return s
}

// Create создает новый черновик, опционально сразу выбирая клиента
func (s *Service) Create(ctx context.Context, req *models.CreateDraftRequest) (*models.DraftState, error) {
	now := time.Now()
	draft := &domain.BookingDraft{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.CustomerID != nil && *req.CustomerID != "" {
		if err := s.applyCustomer(ctx, draft, *req.CustomerID); err != nil {
			return nil, err
		}
	}

	if err := s.store.Save(ctx, draft); err != nil {
		s.logger.Error("Create: failed to save draft: %v", err)
		return nil, fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.DraftCreated()
	}

	s.logger.Info("Create: draft id=%s created for user=%d", draft.ID, draft.UserID)
	return s.toState(ctx, draft), nil
}

// Get возвращает текущее состояние черновика с результатами проверок
func (s *Service) Get(ctx context.Context, draftID string) (*models.DraftState, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return s.toState(ctx, draft), nil
}

// Update применяет пополевое редактирование черновика.
//
// Порядок применения фиксирован: клиент -> мастер -> дата -> время -> позиции.
// Выбор клиента подставляет предпочитаемого мастера только как значение
// по умолчанию; смена даты перезапрашивает комбо на новую дату (last-request-wins)
// и убирает из выбора комбо, не действующие на нее. Обе проверки доступности
// пересчитываются на каждом изменении и возвращаются независимо.
func (s *Service) Update(ctx context.Context, draftID string, req *models.UpdateDraftRequest) (*models.DraftState, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != nil {
		if err := s.applyCustomer(ctx, draft, *req.CustomerID); err != nil {
			return nil, err
		}
	}

	if req.StaffID != nil {
		draft.SelectStaff(*req.StaffID)
	}

	var freshCombos []domain.BookableItem
	var removedCombos []string

	if req.Date != nil {
		freshCombos, removedCombos, err = s.applyDate(ctx, draft, *req.Date)
		if err != nil {
			return nil, err
		}
	}

	if req.Time != nil {
		if err := s.applyTime(draft, *req.Time); err != nil {
			return nil, err
		}
	}

	for _, itemID := range req.RemoveItems {
		draft.RemoveItem(itemID)
	}

	if len(req.AddItems) > 0 {
		if err := s.applyAddItems(ctx, draft, req.AddItems); err != nil {
			return nil, err
		}
	}

	draft.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, draft); err != nil {
		s.logger.Error("Update: failed to save draft id=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
	}

	state := s.toState(ctx, draft)
	state.RemovedComboIDs = removedCombos
	if freshCombos != nil {
		state.CombosForDate = models.FromDomainItems(freshCombos)
	}

	return state, nil
}

// Cancel отменяет черновик и удаляет его из хранилища
func (s *Service) Cancel(ctx context.Context, draftID string) error {
	if _, err := s.loadDraft(ctx, draftID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, draftID); err != nil {
		s.logger.Error("Cancel: failed to delete draft id=%s: %v", draftID, err)
		return fmt.Errorf("%w: failed to delete draft: %v", ErrInternal, err)
	}

	s.comboFetch.drop(draftID)
	if s.metrics != nil {
		s.metrics.DraftClosed()
	}

	s.logger.Info("Cancel: draft id=%s discarded", draftID)
	return nil
}

// applyCustomer выбирает клиента и подставляет его предпочитаемого мастера.
// Ссылка на мастера уже нормализована к каноничному id на границе клиента.
func (s *Service) applyCustomer(ctx context.Context, draft *domain.BookingDraft, customerID string) error {
	customer, err := s.salonClient.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, salonClient.ErrCustomerNotFound) {
			s.logger.Warn("draft id=%s: customer id=%s not found", draft.ID, customerID)
			return ErrCustomerNotFound
		}
		s.logger.Error("draft id=%s: failed to get customer id=%s: %v", draft.ID, customerID, err)
		return fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	draft.SelectCustomer(customer.ID, customer.PreferredStaffID())
	return nil
}

// applyDate меняет дату и перезапрашивает комбо на новую дату.
// Возвращает свежий список комбо (nil, если запрос устарел) и id комбо,
// убранных из выбора из-за смены даты.
func (s *Service) applyDate(ctx context.Context, draft *domain.BookingDraft, rawDate string) ([]domain.BookableItem, []string, error) {
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidDate, rawDate)
	}

	sameDate := !draft.Date.IsZero() && draft.Date.Equal(date)
	draft.SetDate(date)
	if sameDate {
		return nil, nil, nil
	}

	// Комбо валидны только для конкретной даты - перезапрашиваем список.
	// Медленный ответ на более раннюю дату не должен перетереть список
	// более новой: побеждает последний запрос для этого черновика.
	seq := s.comboFetch.next(draft.ID)
	combos := s.catalog.ListCombosForDate(ctx, date)

	if !s.comboFetch.isCurrent(draft.ID, seq) {
		s.logger.Info("draft id=%s: stale combo fetch for %s discarded", draft.ID, rawDate)
		return nil, nil, nil
	}

	removed := pruneStaleCombos(draft, combos)
	if len(removed) > 0 {
		s.logger.Info("draft id=%s: removed combos %v no longer active on %s", draft.ID, removed, rawDate)
	}

	return combos, removed, nil
}

// applyTime нормализует время к 24-часовому формату и устанавливает его
func (s *Service) applyTime(draft *domain.BookingDraft, rawTime string) error {
	trimmed := strings.TrimSpace(rawTime)
	if trimmed == "" {
		draft.SetTime("")
		return nil
	}

	normalized, err := normalizeTime(trimmed)
	if err != nil {
		return err
	}

	draft.SetTime(normalized)
	return nil
}

// applyAddItems добавляет позиции, разрешая их через каталог на выбранную дату.
// Тег kind берется из каталога - никогда из формата id.
func (s *Service) applyAddItems(ctx context.Context, draft *domain.BookingDraft, itemIDs []string) error {
	var available []domain.BookableItem
	if draft.Date.IsZero() {
		// Дата не выбрана - комбо еще не определены, доступны только услуги
		available = s.catalog.ListServices(ctx)
	} else {
		available = s.catalog.ListForDate(ctx, draft.Date)
	}

	byID := make(map[string]domain.BookableItem, len(available))
	for _, item := range available {
		byID[item.ID] = item
	}

	for _, itemID := range itemIDs {
		item, ok := byID[itemID]
		if !ok {
			return fmt.Errorf("%w: id=%s", ErrItemNotInCatalog, itemID)
		}
		draft.AddItem(item)
	}

	return nil
}

func (s *Service) loadDraft(ctx context.Context, draftID string) (*domain.BookingDraft, error) {
	draft, err := s.store.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftstore.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		s.logger.Error("failed to load draft id=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: failed to load draft: %v", ErrInternal, err)
	}
	return draft, nil
}

func (s *Service) toState(ctx context.Context, draft *domain.BookingDraft) *models.DraftState {
	schedule := s.schedule.Load(ctx)
	availability := domain.CheckAvailability(schedule, draft.Date, draft.Time)
	return models.FromDomainDraft(draft, availability)
}

// normalizeTime принимает 24-часовое машинное значение или 12-часовое
// отображаемое и приводит к каноничному "HH:MM"
func normalizeTime(raw string) (types.TimeString, error) {
	if t, err := types.NewTimeStringFromString(raw); err == nil {
		return t, nil
	}
	if t, err := types.NewTimeStringFrom12Hour(raw); err == nil {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTime, raw)
}

// pruneStaleCombos убирает из выбора комбо, отсутствующие в списке на новую дату
func pruneStaleCombos(draft *domain.BookingDraft, freshCombos []domain.BookableItem) []string {
	active := make(map[string]struct{}, len(freshCombos))
	for _, combo := range freshCombos {
		active[combo.ID] = struct{}{}
	}

	var removed []string
	for _, item := range draft.Items {
		if !item.IsCombo() {
			continue
		}
		if _, ok := active[item.ID]; !ok {
			removed = append(removed, item.ID)
		}
	}

	for _, id := range removed {
		draft.RemoveItem(id)
	}

	return removed
}

// comboFetchGuard реализует last-request-wins для запросов комбо по черновику
type comboFetchGuard struct {
	mu  sync.Mutex
	seq map[string]uint64
}

func (g *comboFetchGuard) next(draftID string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.seq == nil {
		g.seq = make(map[string]uint64)
	}
	g.seq[draftID]++
	return g.seq[draftID]
}

func (g *comboFetchGuard) isCurrent(draftID string, seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq[draftID] == seq
}

func (g *comboFetchGuard) drop(draftID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.seq, draftID)
}
