package repositories

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/bistro/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	colTestimonials = "testimonial"
	colRecommends   = "chefsRecommend"
)

type mongoTestimonials struct {
	col *mongo.Collection
}

// NewMongoTestimonialRepository serves the testimonial collection.
func NewMongoTestimonialRepository(db *mongo.Database) TestimonialRepository {
	return &mongoTestimonials{col: db.Collection(colTestimonials)}
}

func (r *mongoTestimonials) All(ctx context.Context) ([]models.Testimonial, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("testimonials: find: %w", err)
	}

	out := []models.Testimonial{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("testimonials: decode: %w", err)
	}
	return out, nil
}

type mongoRecommends struct {
	col *mongo.Collection
}

// NewMongoRecommendRepository serves the chefsRecommend collection.
func NewMongoRecommendRepository(db *mongo.Database) RecommendRepository {
	return &mongoRecommends{col: db.Collection(colRecommends)}
}

func (r *mongoRecommends) All(ctx context.Context) ([]models.ChefRecommend, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("recommends: find: %w", err)
	}

	out := []models.ChefRecommend{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("recommends: decode: %w", err)
	}
	return out, nil
}
