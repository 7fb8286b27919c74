package models

import (
	"fmt"
	"strings"
)

// Facility is a hospital or clinic, either from the curated Mongo directory
// or discovered live through Overpass.
type Facility struct {
	ID        string  `bson:"external_id,omitempty" json:"id,omitempty"`
	Name      string  `bson:"name" json:"name"`
	Address   string  `bson:"address,omitempty" json:"address,omitempty"`
	City      string  `bson:"city,omitempty" json:"city,omitempty"`
	State     string  `bson:"state,omitempty" json:"state,omitempty"`
	Area      string  `bson:"area,omitempty" json:"area,omitempty"`
	Phone     string  `bson:"phone,omitempty" json:"phone,omitempty"`
	Latitude  float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Status    string  `bson:"status" json:"status"`
	Source    string  `bson:"source,omitempty" json:"source,omitempty"`
}

// DedupKey identifies a facility across Overpass elements. Different OSM
// nodes describing the same place collapse onto one key.
func (f Facility) DedupKey() string {
	return strings.ToLower(fmt.Sprintf("%s|%s|%s", f.Name, f.Address, f.City))
}
