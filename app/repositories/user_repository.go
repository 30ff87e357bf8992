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

const colUsers = "users"

type mongoUsers struct {
	col *mongo.Collection
}

// NewMongoUserRepository returns a UserRepository backed by the users
// collection.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUsers{col: db.Collection(colUsers)}
}

func (r *mongoUsers) All(ctx context.Context) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("users: find: %w", err)
	}

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("users: decode: %w", err)
	}
	return users, nil
}

func (r *mongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("users: find by email: %w", err)
	}
	return &user, nil
}

func (r *mongoUsers) CreateIfAbsent(ctx context.Context, u models.User) (*InsertResult, bool, error) {
	_, err := r.FindByEmail(ctx, u.Email)
	if err == nil {
		return nil, true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return nil, false, fmt.Errorf("users: insert: %w", err)
	}
	return &InsertResult{InsertedID: objectIDHex(res.InsertedID)}, false, nil
}

func (r *mongoUsers) PromoteToAdmin(ctx context.Context, id string) (*UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("users: parse id %q: %w", id, err)
	}

	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: models.RoleAdmin}}}},
	)
	if err != nil {
		return nil, fmt.Errorf("users: promote: %w", err)
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *mongoUsers) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("users: parse id %q: %w", id, err)
	}

	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, fmt.Errorf("users: delete: %w", err)
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// IsAdmin treats a missing record as plain user privileges.
func (r *mongoUsers) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := r.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

func (r *mongoUsers) Count(ctx context.Context) (int64, error) {
	return r.col.EstimatedDocumentCount(ctx)
}

// objectIDHex renders a driver-assigned _id as its hex form.
func objectIDHex(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}
