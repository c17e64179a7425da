package dto

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type PaginatedResponse struct {
	OK    bool `json:"ok"`
	Data  any  `json:"data"`
	Total int  `json:"total"`
	Page  int  `json:"page"`
	Limit int  `json:"limit"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}
