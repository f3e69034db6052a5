package dto

type ClassifyRequest struct {
	Title string `json:"title" validate:"notblank"`
}

type ClassifyResponse struct {
	Category string `json:"category"`
	Title    string `json:"title"`
}
