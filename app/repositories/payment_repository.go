package repositories

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/bistro/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const colPayments = "payments"

type mongoPayments struct {
	col *mongo.Collection
}

// NewMongoPaymentRepository returns a PaymentRepository backed by the
// payments collection. The stats pipelines join against the menu collection
// in the same database.
func NewMongoPaymentRepository(db *mongo.Database) PaymentRepository {
	return &mongoPayments{col: db.Collection(colPayments)}
}

func (r *mongoPayments) Create(ctx context.Context, p models.Payment) (*InsertResult, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("payments: insert: %w", err)
	}
	return &InsertResult{InsertedID: objectIDHex(res.InsertedID)}, nil
}

func (r *mongoPayments) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cur, err := r.col.Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, fmt.Errorf("payments: find: %w", err)
	}

	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("payments: decode: %w", err)
	}
	return payments, nil
}

func (r *mongoPayments) Count(ctx context.Context) (int64, error) {
	return r.col.EstimatedDocumentCount(ctx)
}

// TotalRevenue sums price across all payment documents with a single $group
// reduction; an empty collection yields 0 rather than an absent result.
func (r *mongoPayments) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("payments: revenue aggregate: %w", err)
	}

	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("payments: revenue decode: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalRevenue, nil
}

// CategoryStats unwinds each payment's menuItemIds, converts the hex string
// references to object ids, joins each reference to its menu document, and
// groups by category.
func (r *mongoPayments) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItemIds"}},
		{{Key: "$set", Value: bson.D{
			{Key: "menuItemIds", Value: bson.D{{Key: "$convert", Value: bson.D{
				{Key: "input", Value: "$menuItemIds"},
				{Key: "to", Value: "objectId"},
			}}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colMenu},
			{Key: "localField", Value: "menuItemIds"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		{{Key: "$unwind", Value: "$menuItems"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: 1},
			{Key: "revenue", Value: 1},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("payments: category aggregate: %w", err)
	}

	stats := []models.CategoryStat{}
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("payments: category decode: %w", err)
	}
	return stats, nil
}
