package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records one settled order. Created exactly once per settlement
// call and immutable thereafter.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Price         float64            `json:"price" bson:"price"`
	TransactionID string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Date          time.Time          `json:"date" bson:"date"`
	CartIDs       []string           `json:"cartIds" bson:"cartIds"`
	MenuItemIDs   []string           `json:"menuItemIds" bson:"menuItemIds"`
	Status        string             `json:"status,omitempty" bson:"status,omitempty"`
}

// AdminStats is the revenue/volume summary served to admins.
type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// CategoryStat is one row of the per-category order statistics: how many
// line items were sold in the category and the revenue they produced.
type CategoryStat struct {
	Category string  `json:"category" bson:"category"`
	Quantity int64   `json:"quantity" bson:"quantity"`
	Revenue  float64 `json:"revenue" bson:"revenue"`
}
