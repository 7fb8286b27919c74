package models

import "time"

type User struct {
	Email            string    `bson:"_id" json:"email"`
	Name             string    `bson:"name" json:"name"`
	PasswordHash     string    `bson:"password_hash" json:"-"`
	Phone            string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address          string    `bson:"address,omitempty" json:"address,omitempty"`
	City             string    `bson:"city,omitempty" json:"city,omitempty"`
	Age              int       `bson:"age,omitempty" json:"age,omitempty"`
	Gender           string    `bson:"gender,omitempty" json:"gender,omitempty"`
	BloodGroup       string    `bson:"blood_group,omitempty" json:"blood_group,omitempty"`
	Allergies        []string  `bson:"allergies,omitempty" json:"allergies,omitempty"`
	Conditions       []string  `bson:"conditions,omitempty" json:"conditions,omitempty"`
	ProfileCompleted bool      `bson:"profile_completed" json:"profile_completed"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}
