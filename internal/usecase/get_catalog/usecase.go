package get_catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UseCase use case для получения каталога позиций на дату
type UseCase struct {
	catalog CatalogService
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogService, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute выполняет use case получения каталога.
// Недоступность одного из справочников не ошибка: соответствующая часть
// каталога пуста, остальное возвращается как есть.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	var items []domain.BookableItem

	// 1. С датой возвращаем услуги + действующие на дату комбо,
	// без даты - только услуги
	if req.Date != nil {
		items = uc.catalog.ListForDate(ctx, *req.Date)
		uc.logger.Info("GetCatalog: %d items for date=%s", len(items), req.Date.Format(domain.DateFormat))
	} else {
		items = uc.catalog.ListServices(ctx)
		uc.logger.Info("GetCatalog: %d services (no date)", len(items))
	}

	return &Response{
		Date:  req.Date,
		Items: items,
	}, nil
}
