package usecase

import (
	"context"
	"strings"

	"laundry_pos/internal/domain/entities"
	"laundry_pos/internal/usecase/interfaces"
)

// UncategorizedGroup is the sentinel bucket for services without a category.
const UncategorizedGroup = "Uncategorized"

// ServiceGroup is one category bucket of the filtered catalog. Groups keep
// first-seen category order so the screen stays stable across searches.
type ServiceGroup struct {
	Category string
	Services []entities.ServiceItem
}

// FilterAndGroupServices filters the catalog by a case-insensitive substring
// match on name or category (empty term matches everything) and groups the
// survivors by category. Catalog order is preserved within each group.
func FilterAndGroupServices(services []entities.ServiceItem, term string) []ServiceGroup {
	term = strings.ToLower(strings.TrimSpace(term))

	var groups []ServiceGroup
	index := make(map[string]int)

	for _, svc := range services {
		if term != "" &&
			!strings.Contains(strings.ToLower(svc.Name), term) &&
			!strings.Contains(strings.ToLower(svc.Category), term) {
			continue
		}

		category := svc.Category
		if category == "" {
			category = UncategorizedGroup
		}

		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, ServiceGroup{Category: category})
		}
		groups[i].Services = append(groups[i].Services, svc)
	}

	return groups
}

// ICatalogUseCase exposes the catalog as the POS screen consumes it: already
// filtered and grouped for display.

type ICatalogUseCase interface {
	ListGrouped(ctx context.Context, term string) ([]ServiceGroup, error)
}

type CatalogUseCase struct {
	source interfaces.ICatalogSource
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(source interfaces.ICatalogSource) *CatalogUseCase {
	return &CatalogUseCase{source: source}
}

func (u *CatalogUseCase) ListGrouped(ctx context.Context, term string) ([]ServiceGroup, error) {
	services, err := u.source.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	return FilterAndGroupServices(services, term), nil
}
