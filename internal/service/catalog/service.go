package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Service каталог позиций для бронирования: обычные услуги и комбо-предложения,
// слитые в единый выбираемый список. Внутри позиции различаются только тегом kind.
//
// Ошибка загрузки одного вида позиций деградирует до пустого списка этого вида
// и никогда не блокирует показ другого.
type Service struct {
	client SalonServiceClient
	log    Logger
}

// NewService создает сервис каталога
func NewService(client SalonServiceClient, log Logger) *Service {
	return &Service{
		client: client,
		log:    log,
	}
}

// ListServices возвращает все активные услуги (не зависят от даты)
func (s *Service) ListServices(ctx context.Context) []domain.BookableItem {
	services, err := s.client.ListServices(ctx)
	if err != nil {
		s.log.Warn("catalog: failed to load services, rendering empty list: %v", err)
		return []domain.BookableItem{}
	}

	items := make([]domain.BookableItem, 0, len(services))
	for _, svc := range services {
		items = append(items, domain.BookableItem{
			ID:              svc.ID,
			Kind:            domain.ItemKindService,
			Label:           svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
	}
	return items
}

// ListCombosForDate возвращает комбо-предложения, действующие на дату.
// Дата - скрытая зависимость списка: смена даты в черновике обязана
// приводить к повторному запросу.
func (s *Service) ListCombosForDate(ctx context.Context, date time.Time) []domain.BookableItem {
	combos, err := s.client.ListActiveCombos(ctx, date)
	if err != nil {
		s.log.Warn("catalog: failed to load combos for %s, rendering empty list: %v",
			date.Format(domain.DateFormat), err)
		return []domain.BookableItem{}
	}

	items := make([]domain.BookableItem, 0, len(combos))
	for _, combo := range combos {
		items = append(items, domain.BookableItem{
			ID:              combo.ID,
			Kind:            domain.ItemKindCombo,
			Label:           comboLabel(combo.Name, combo.DiscountPercent),
			DiscountPercent: combo.DiscountPercent,
		})
	}
	return items
}

// ListForDate возвращает единый список позиций на дату: услуги + комбо
func (s *Service) ListForDate(ctx context.Context, date time.Time) []domain.BookableItem {
	services := s.ListServices(ctx)
	combos := s.ListCombosForDate(ctx, date)
	return Merge(services, combos)
}

// Merge склеивает услуги и комбо в один список для выбора
func Merge(services, combos []domain.BookableItem) []domain.BookableItem {
	merged := make([]domain.BookableItem, 0, len(services)+len(combos))
	merged = append(merged, services...)
	merged = append(merged, combos...)
	return merged
}

// comboLabel помечает комбо скидкой в отображаемом названии
func comboLabel(name string, discountPercent float64) string {
	if discountPercent <= 0 {
		return name
	}
	return fmt.Sprintf("%s (-%g%%)", name, discountPercent)
}
