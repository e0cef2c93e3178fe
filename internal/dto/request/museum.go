package request

type ListMuseumsRequest struct {
	PaginatedRequest
	Location string `json:"location"`
}

type AvailabilityRequest struct {
	Museum string `json:"museum" validate:"required"`
	Date   string `json:"date" validate:"required"`
}
