package models

// Scenario is a named city configuration preset served read-only for
// exploration. Config uses the same flat field names the /predict endpoints
// accept, so a preset body can be POSTed back unchanged.
type Scenario struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Config      map[string]float64 `json:"config"`
}
