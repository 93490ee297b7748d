package domain

// Listing represents a vehicle offered for sale on the marketplace.
type Listing struct {
	ID                 string  `json:"id"`
	SellerID           string  `json:"seller_id"`
	Brand              string  `json:"brand"`
	Model              string  `json:"model"`
	Year               int     `json:"year"`
	Price              int64   `json:"price"` // whole VND
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh,omitempty"`
}
