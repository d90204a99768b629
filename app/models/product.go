package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is one catalog entry. Images holds at most four externally
// hosted URLs, in upload-slot order. Products are created and deleted but
// never updated.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name"          json:"name"`
	Description string             `bson:"description"   json:"description"`
	Price       float64            `bson:"price"         json:"price"`
	Category    string             `bson:"category"      json:"category"`
	SubCategory string             `bson:"subCategory"   json:"subCategory"`
	Sizes       []string           `bson:"sizes"         json:"sizes"`
	BestSeller  bool               `bson:"bestSeller"    json:"bestSeller"`
	Images      []string           `bson:"images"        json:"images"`
	CreatedAt   time.Time          `bson:"createdAt"     json:"createdAt"`
}
