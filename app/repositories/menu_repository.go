package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/bistro/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const colMenu = "menu"

type mongoMenu struct {
	col *mongo.Collection
}

// NewMongoMenuRepository returns a MenuRepository backed by the menu
// collection.
func NewMongoMenuRepository(db *mongo.Database) MenuRepository {
	return &mongoMenu{col: db.Collection(colMenu)}
}

func (r *mongoMenu) All(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("menu: find: %w", err)
	}

	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("menu: decode: %w", err)
	}
	return items, nil
}

func (r *mongoMenu) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("menu: parse id %q: %w", id, err)
	}

	var item models.MenuItem
	err = r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("menu: find by id: %w", err)
	}
	return &item, nil
}

func (r *mongoMenu) Create(ctx context.Context, item models.MenuItem) (*InsertResult, error) {
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("menu: insert: %w", err)
	}
	return &InsertResult{InsertedID: objectIDHex(res.InsertedID)}, nil
}

func (r *mongoMenu) Update(ctx context.Context, id string, item models.MenuItem) (*UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("menu: parse id %q: %w", id, err)
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: item.Name},
		{Key: "recipe", Value: item.Recipe},
		{Key: "image", Value: item.Image},
		{Key: "category", Value: item.Category},
		{Key: "price", Value: item.Price},
	}}}

	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return nil, fmt.Errorf("menu: update: %w", err)
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *mongoMenu) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("menu: parse id %q: %w", id, err)
	}

	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, fmt.Errorf("menu: delete: %w", err)
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *mongoMenu) Count(ctx context.Context) (int64, error) {
	return r.col.EstimatedDocumentCount(ctx)
}
