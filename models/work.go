package models

// Work is a listed service offering.
type Work struct {
	ID                 uint    `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Charges            float64 `json:"charges"`
	EstimatedTimeHours float64 `json:"estimatedTimeHours"`
}
