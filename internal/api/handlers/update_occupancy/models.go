package update_occupancy

// UpdateOccupancyRequest HTTP request model
type UpdateOccupancyRequest struct {
	Occupied bool   `json:"occupied"`
	Source   string `json:"source,omitempty"`
}
