package model

// Vehicle classes a tire is sold for.
const (
	ClassPassenger  = "passenger"
	ClassCommercial = "commercial"
)

// Tire represents one catalogue entry. The catalogue is a process-wide
// immutable table loaded at startup.
type Tire struct {
	ID    int     `json:"id"`
	Brand string  `json:"brand"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Class string  `json:"class"`
}

// TireGroup is one brand's tires, in catalogue order.
type TireGroup struct {
	Brand string `json:"brand"`
	Tires []Tire `json:"tires"`
}
