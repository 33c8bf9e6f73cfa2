package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "password"
	AdminRole            = "admin"
)

// AdminCredential is stored in plaintext. The seeded default is publicly known.
type AdminCredential struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminSession struct {
	Token    string    `json:"token"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	IssuedAt time.Time `json:"issuedAt"`
}
