package domain

import (
	"errors"
	"fmt"
)

// ItemKind discriminates the two bookable item variants.
// Routing decisions MUST use this tag, never the id format.
type ItemKind string

const (
	ItemKindService ItemKind = "service"
	ItemKindCombo   ItemKind = "combo"
)

// ErrUnknownItemKind возвращается при попытке обработать элемент без корректного тега kind
var ErrUnknownItemKind = errors.New("domain: unknown bookable item kind")

// BookableItem represents a selectable catalog entry: either a plain service
// or a discounted combo bundle, distinguished only by Kind.
type BookableItem struct {
	ID    string
	Kind  ItemKind
	Label string

	// Service-only fields
	DurationMinutes int
	Price           float64

	// Combo-only fields
	DiscountPercent float64
}

// IsService возвращает true для обычной услуги
func (i BookableItem) IsService() bool {
	return i.Kind == ItemKindService
}

// IsCombo возвращает true для комбо-предложения
func (i BookableItem) IsCombo() bool {
	return i.Kind == ItemKindCombo
}

// PartitionItems разделяет выбранные позиции на два списка идентификаторов
// по тегу kind. Разбиение исчерпывающее: каждая позиция попадает ровно в один
// список, элемент с неизвестным kind - ошибка, а не угадывание по формату id.
func PartitionItems(items []BookableItem) (serviceIDs []string, comboIDs []string, err error) {
	serviceIDs = make([]string, 0, len(items))
	comboIDs = make([]string, 0, len(items))

	for _, item := range items {
		switch item.Kind {
		case ItemKindService:
			serviceIDs = append(serviceIDs, item.ID)
		case ItemKindCombo:
			comboIDs = append(comboIDs, item.ID)
		default:
			return nil, nil, fmt.Errorf("%w: item id=%s kind=%q", ErrUnknownItemKind, item.ID, item.Kind)
		}
	}

	return serviceIDs, comboIDs, nil
}
