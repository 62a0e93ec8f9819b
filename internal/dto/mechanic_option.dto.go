package dto

// MechanicOptionDTO is the slim roster entry the public booking form
// renders in its mechanic picker.
type MechanicOptionDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
