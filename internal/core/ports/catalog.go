package ports

import "github.com/hartwell-audio/daymix/internal/core/domain"

// CatalogSource exposes the fixed catalog the engine selects from.
// Items returns a fresh slice each call; the items themselves are immutable.
type CatalogSource interface {
	Items() []domain.CatalogItem
}
