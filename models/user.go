package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a storefront account. Password holds the bcrypt hash once stored.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"userID" json:"userID"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"password,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Credentials is the login and registration payload.
type Credentials struct {
	UserID   string `json:"userID"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Public strips the password hash before the user leaves the server.
func (u User) Public() User {
	u.Password = ""
	return u
}
