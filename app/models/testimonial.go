package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Testimonial is a customer review shown on the landing page.
type Testimonial struct {
	ID      primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Details string             `json:"details" bson:"details"`
	Rating  float64            `json:"rating" bson:"rating"`
}

// ChefRecommend is a chef-recommended dish highlighted on the landing page.
type ChefRecommend struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name   string             `json:"name" bson:"name"`
	Recipe string             `json:"recipe" bson:"recipe"`
	Image  string             `json:"image" bson:"image"`
}
