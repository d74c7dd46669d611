package models

import "time"

// WeatherReport is a point-in-time weather snapshot for a location.
type WeatherReport struct {
	FetchedAt   time.Time `json:"fetched_at"`
	Location    string    `json:"location"`
	Condition   string    `json:"condition"`
	Temperature float64   `json:"temperature"` // celsius
	Humidity    int       `json:"humidity"`    // percent
	WindSpeed   float64   `json:"wind_speed"`  // m/s
	Simulated   bool      `json:"simulated"`   // true when no live data was available
}
