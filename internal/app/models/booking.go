package models

import "time"

const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
)

// TokenRecord is the durable audit row written to Mongo for every issued
// token. The Redis list is the working copy; this is the paper trail.
type TokenRecord struct {
	Email      string    `bson:"email" json:"email"`
	Token      string    `bson:"token" json:"token"`
	ClinicName string    `bson:"clinic_name" json:"clinic_name"`
	Emergency  bool      `bson:"emergency" json:"emergency"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

type Booking struct {
	Token         string    `json:"token"`
	ClinicName    string    `json:"clinic_name"`
	Symptoms      string    `json:"symptoms,omitempty"`
	EtaMinutes    int       `json:"eta_minutes"`
	QueuePosition int       `json:"queue_position"`
	Emergency     bool      `json:"emergency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
