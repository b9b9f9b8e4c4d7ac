package dto

// ErrorResponseDTO is the JSON body returned for rejected requests.
type ErrorResponseDTO struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
