package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AgentDecisionRequest struct {
	Reason string  `json:"reason,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

type UpdateUserStatusRequest struct {
	Action string  `json:"action"` // suspend / ban / reactivate
	Reason string  `json:"reason,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

type UpdateDeliveryStatusRequest struct {
	DeliveryStatus string `json:"delivery_status"`
}

type CreateProductRequest struct {
	Name            string   `json:"name"`
	Grade           string   `json:"grade"`
	AvailableWeight float64  `json:"available_weight"`
	PricePerKg      float64  `json:"price_per_kg"`
	Location        *string  `json:"location,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Images          []string `json:"images,omitempty"`
}

type UpdateProductRequest struct {
	Name            *string  `json:"name,omitempty"`
	Grade           *string  `json:"grade,omitempty"`
	AvailableWeight *float64 `json:"available_weight,omitempty"`
	PricePerKg      *float64 `json:"price_per_kg,omitempty"`
	Location        *string  `json:"location,omitempty"`
	Description     *string  `json:"description,omitempty"`
}

type CreateAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}
