package response

import (
	"laundry_pos/internal/domain/entities"
	"laundry_pos/internal/usecase"
)

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
}

// ServiceGroupResponse is one category bucket, in display order.
type ServiceGroupResponse struct {
	Category string            `json:"category"`
	Services []ServiceResponse `json:"services"`
}

func fromService(s entities.ServiceItem) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Price:       s.PriceMinor,
	}
}

func FromServiceGroups(groups []usecase.ServiceGroup) []ServiceGroupResponse {
	out := make([]ServiceGroupResponse, 0, len(groups))
	for _, g := range groups {
		services := make([]ServiceResponse, 0, len(g.Services))
		for _, s := range g.Services {
			services = append(services, fromService(s))
		}
		out = append(out, ServiceGroupResponse{Category: g.Category, Services: services})
	}
	return out
}
