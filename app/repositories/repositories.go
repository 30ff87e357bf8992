// Package repositories defines the persistence interfaces for every
// collection and provides two implementations: MongoDB-backed for the
// server, in-memory for tests and local development.
package repositories

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/bistro/app/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("repositories: not found")

// InsertResult reports the id assigned to a newly inserted document.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResult mirrors the driver's update counters.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors the driver's delete counter.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// UserRepository handles identity records.
type UserRepository interface {
	All(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// CreateIfAbsent inserts u unless a record with the same email exists;
	// existed is true when the insert was skipped.
	CreateIfAbsent(ctx context.Context, u models.User) (res *InsertResult, existed bool, err error)
	PromoteToAdmin(ctx context.Context, id string) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// MenuRepository handles the menu catalog.
type MenuRepository interface {
	All(ctx context.Context) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id string) (*models.MenuItem, error)
	Create(ctx context.Context, item models.MenuItem) (*InsertResult, error)
	Update(ctx context.Context, id string, item models.MenuItem) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

// CartRepository handles cart entries.
type CartRepository interface {
	FindByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Create(ctx context.Context, item models.CartItem) (*InsertResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
	// DeleteByIDs removes every cart entry whose id is in ids
	// (set-membership match); absent ids are not an error.
	DeleteByIDs(ctx context.Context, ids []string) (*DeleteResult, error)
}

// PaymentRepository handles payment records and the aggregation reports
// computed over them.
type PaymentRepository interface {
	Create(ctx context.Context, p models.Payment) (*InsertResult, error)
	FindByEmail(ctx context.Context, email string) ([]models.Payment, error)
	Count(ctx context.Context) (int64, error)
	// TotalRevenue sums the price field across all payments; zero
	// payments yields 0.
	TotalRevenue(ctx context.Context) (float64, error)
	// CategoryStats expands each payment's menuItemIds, joins each entry
	// to its menu item, and groups by category. Categories with no
	// matching payments never appear; ordering is unspecified.
	CategoryStats(ctx context.Context) ([]models.CategoryStat, error)
}

// TestimonialRepository serves the read-only testimonial collection.
type TestimonialRepository interface {
	All(ctx context.Context) ([]models.Testimonial, error)
}

// RecommendRepository serves the read-only chef's recommendations.
type RecommendRepository interface {
	All(ctx context.Context) ([]models.ChefRecommend, error)
}
