package models

import "time"

// User holds the structure for the users collection in mongo. Password is a bcrypt
// hash and is absent on accounts imported before credentials were required.
type User struct {
	ID                   string     `json:"_id" bson:"_id"`
	Email                string     `json:"email" bson:"email"`
	Name                 string     `json:"name" bson:"name"`
	Password             string     `json:"-" bson:"password,omitempty"`
	ResetPasswordToken   string     `json:"-" bson:"resetPasswordToken,omitempty"`
	ResetPasswordExpires *time.Time `json:"-" bson:"resetPasswordExpires,omitempty"`
	CreatedAt            time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt" bson:"updatedAt"`
}
