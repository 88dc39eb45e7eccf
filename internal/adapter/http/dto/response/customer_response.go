package response

import "laundry_pos/internal/domain/entities"

type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email,omitempty"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		Email:   c.Email,
	}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}

// ValidationErrorResponse reports every invalid field of a creation form.
type ValidationErrorResponse struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Fields  []entities.FieldError `json:"fields"`
}

func FromValidationError(verr *entities.ValidationError) ValidationErrorResponse {
	return ValidationErrorResponse{
		Code:    "CUSTOMER_VALIDATION",
		Message: "Invalid customer data",
		Fields:  verr.Fields,
	}
}
