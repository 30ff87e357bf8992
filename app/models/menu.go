package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem is a catalog entry. Referenced (never owned) by cart entries and
// payments via its id.
type MenuItem struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Recipe   string             `json:"recipe" bson:"recipe"`
	Image    string             `json:"image" bson:"image"`
	Category string             `json:"category" bson:"category"`
	Price    float64            `json:"price" bson:"price"`
}
