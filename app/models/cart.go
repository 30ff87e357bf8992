package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is one menu item placed in a user's cart. Destroyed individually
// on removal, or in bulk when a payment settles against it.
type CartItem struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	MenuItemID string             `json:"menuItemId" bson:"menuItemId"`
	Email      string             `json:"email" bson:"email"`
	Name       string             `json:"name" bson:"name"`
	Image      string             `json:"image,omitempty" bson:"image,omitempty"`
	Price      float64            `json:"price" bson:"price"`
}
