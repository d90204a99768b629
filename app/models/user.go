package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered shopper. Exactly one user exists per email
// (enforced by a unique index). The password field holds the bcrypt hash;
// the plain text is never persisted and the hash is never serialised.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name"          json:"name"`
	Email     string             `bson:"email"         json:"email"`
	Password  string             `bson:"password"      json:"-"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}
