package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusPending is the only status a checkout-stub order ever gets;
// there is no payment integration behind it.
const OrderStatusPending = "pending"

// OrderLine is one cart entry as submitted at checkout.
type OrderLine struct {
	ProductID string `bson:"productId" json:"productId"`
	Size      string `bson:"size"      json:"size"`
	Quantity  int    `bson:"quantity"  json:"quantity"`
}

// Order is a placed checkout. Amount is recomputed server-side from the
// catalog at placement time, never trusted from the client.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId"        json:"userId"`
	Lines     []OrderLine        `bson:"lines"         json:"lines"`
	Address   string             `bson:"address"       json:"address"`
	Amount    float64            `bson:"amount"        json:"amount"`
	Status    string             `bson:"status"        json:"status"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}
