package get_catalog

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getCatalog "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_catalog"
)

// ItemResponse позиция каталога
type ItemResponse struct {
	ID              string  `json:"id"`
	Kind            string  `json:"kind"` // "service" | "combo"
	Label           string  `json:"label"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Price           float64 `json:"price,omitempty"`
	DiscountPercent float64 `json:"discountPercent,omitempty"`
}

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Date  *string        `json:"date,omitempty"`
	Items []ItemResponse `json:"items"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCatalog.Response) *CatalogResponse {
	items := make([]ItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = ItemResponse{
			ID:              item.ID,
			Kind:            string(item.Kind),
			Label:           item.Label,
			DurationMinutes: item.DurationMinutes,
			Price:           item.Price,
			DiscountPercent: item.DiscountPercent,
		}
	}

	result := &CatalogResponse{Items: items}
	if resp.Date != nil {
		formatted := resp.Date.Format(domain.DateFormat)
		result.Date = &formatted
	}

	return result
}
