package repositories

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/bistro/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const colCarts = "carts"

type mongoCarts struct {
	col *mongo.Collection
}

// NewMongoCartRepository returns a CartRepository backed by the carts
// collection.
func NewMongoCartRepository(db *mongo.Database) CartRepository {
	return &mongoCarts{col: db.Collection(colCarts)}
}

func (r *mongoCarts) FindByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cur, err := r.col.Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, fmt.Errorf("carts: find: %w", err)
	}

	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("carts: decode: %w", err)
	}
	return items, nil
}

func (r *mongoCarts) Create(ctx context.Context, item models.CartItem) (*InsertResult, error) {
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("carts: insert: %w", err)
	}
	return &InsertResult{InsertedID: objectIDHex(res.InsertedID)}, nil
}

func (r *mongoCarts) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("carts: parse id %q: %w", id, err)
	}

	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, fmt.Errorf("carts: delete: %w", err)
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *mongoCarts) DeleteByIDs(ctx context.Context, ids []string) (*DeleteResult, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("carts: parse id %q: %w", id, err)
		}
		oids = append(oids, oid)
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}}
	res, err := r.col.DeleteMany(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("carts: delete many: %w", err)
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}
