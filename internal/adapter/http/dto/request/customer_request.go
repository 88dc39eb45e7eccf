package request

import "laundry_pos/internal/domain/entities"

// CustomerCreateRequest carries the new-customer form. Field rules live in
// the domain validator, not in binding tags, so the response can report every
// invalid field at once.
type CustomerCreateRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

func (r CustomerCreateRequest) ToInput() entities.NewCustomerInput {
	return entities.NewCustomerInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Address: r.Address,
		Email:   r.Email,
	}
}
