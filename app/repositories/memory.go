package repositories

import (
	"context"
	"sync"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/pkg/collection"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory holds every collection in process memory behind one lock. It backs
// the repository interfaces for tests, where it substitutes for the
// document store without a running MongoDB.
type Memory struct {
	mu           sync.RWMutex
	users        []models.User
	menu         []models.MenuItem
	carts        []models.CartItem
	payments     []models.Payment
	testimonials []models.Testimonial
	recommends   []models.ChefRecommend
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Users() UserRepository               { return memUsers{m} }
func (m *Memory) Menu() MenuRepository                { return memMenu{m} }
func (m *Memory) Carts() CartRepository               { return memCarts{m} }
func (m *Memory) Payments() PaymentRepository         { return memPayments{m} }
func (m *Memory) Testimonials() TestimonialRepository { return memTestimonials{m} }
func (m *Memory) Recommends() RecommendRepository     { return memRecommends{m} }

// SeedMenu loads menu items directly, assigning ids to any without one.
// Returns the stored items so tests can reference the assigned ids.
func (m *Memory) SeedMenu(items ...models.MenuItem) []models.MenuItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range items {
		if items[i].ID.IsZero() {
			items[i].ID = primitive.NewObjectID()
		}
		m.menu = append(m.menu, items[i])
	}
	return append([]models.MenuItem(nil), m.menu...)
}

// SeedUsers loads identity records directly.
func (m *Memory) SeedUsers(users ...models.User) []models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range users {
		if users[i].ID.IsZero() {
			users[i].ID = primitive.NewObjectID()
		}
		m.users = append(m.users, users[i])
	}
	return append([]models.User(nil), m.users...)
}

// ─── Users ────────────────────────────────────────────────────────────────────

type memUsers struct{ m *Memory }

func (r memUsers) All(context.Context) ([]models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return append([]models.User{}, r.m.users...), nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	u, ok := collection.First(r.m.users, func(u models.User) bool { return u.Email == email })
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r memUsers) CreateIfAbsent(_ context.Context, u models.User) (*InsertResult, bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := collection.First(r.m.users, func(e models.User) bool { return e.Email == u.Email }); ok {
		return nil, true, nil
	}
	u.ID = primitive.NewObjectID()
	r.m.users = append(r.m.users, u)
	return &InsertResult{InsertedID: u.ID.Hex()}, false, nil
}

func (r memUsers) PromoteToAdmin(_ context.Context, id string) (*UpdateResult, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.users {
		if r.m.users[i].ID.Hex() == id {
			modified := int64(0)
			if r.m.users[i].Role != models.RoleAdmin {
				r.m.users[i].Role = models.RoleAdmin
				modified = 1
			}
			return &UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &UpdateResult{}, nil
}

func (r memUsers) Delete(_ context.Context, id string) (*DeleteResult, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	before := len(r.m.users)
	r.m.users = collection.Filter(r.m.users, func(u models.User) bool { return u.ID.Hex() != id })
	return &DeleteResult{DeletedCount: int64(before - len(r.m.users))}, nil
}

func (r memUsers) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := r.FindByEmail(ctx, email)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

func (r memUsers) Count(context.Context) (int64, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return int64(len(r.m.users)), nil
}

// ─── Menu ─────────────────────────────────────────────────────────────────────

type memMenu struct{ m *Memory }

func (r memMenu) All(context.Context) ([]models.MenuItem, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return append([]models.MenuItem{}, r.m.menu...), nil
}

func (r memMenu) FindByID(_ context.Context, id string) (*models.MenuItem, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	item, ok := collection.First(r.m.menu, func(i models.MenuItem) bool { return i.ID.Hex() == id })
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (r memMenu) Create(_ context.Context, item models.MenuItem) (*InsertResult, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	item.ID = primitive.NewObjectID()
	r.m.menu = append(r.m.menu, item)
	return &InsertResult{InsertedID: item.ID.Hex()}, nil
}

func (r memMenu) Update(_ context.Context, id string, item models.MenuItem) (*UpdateResult, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.menu {
		if r.m.menu[i].ID.Hex() == id {
			item.ID = r.m.menu[i].ID
			r.m.menu[i] = item
			return &UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &UpdateResult{}, nil
}

func (r memMenu) Delete(_ context.Context, id string) (*DeleteResult, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	before := len(r.m.menu)
	r.m.menu = collection.Filter(r.m.menu, func(i models.MenuItem) bool { return i.ID.Hex() != id })
	return &DeleteResult{DeletedCount: int64(before - len(r.m.menu))}, nil
}

func (r memMenu) Count(context.Context) (int64, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return int64(len(r.m.menu)), nil
}

// ─── Carts ────────────────────────────────────────────────────────────────────

type memCarts struct{ m *Memory }

func (r memCarts) FindByEmail(_ context.Context, email string) ([]models.CartItem, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := collection.Filter(r.m.carts, func(c models.CartItem) bool { return c.Email == email })
	if out == nil {
		out = []models.CartItem{}
	}
	return out, nil
}

func (r memCarts) Create(_ context.Context, item models.CartItem) (*InsertResult, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	item.ID = primitive.NewObjectID()
	r.m.carts = append(r.m.carts, item)
	return &InsertResult{InsertedID: item.ID.Hex()}, nil
}

func (r memCarts) Delete(_ context.Context, id string) (*DeleteResult, error) {
	return r.DeleteByIDs(nil, []string{id})
}

func (r memCarts) DeleteByIDs(_ context.Context, ids []string) (*DeleteResult, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	before := len(r.m.carts)
	r.m.carts = collection.Filter(r.m.carts, func(c models.CartItem) bool {
		return !collection.Contains(ids, c.ID.Hex())
	})
	return &DeleteResult{DeletedCount: int64(before - len(r.m.carts))}, nil
}

// ─── Payments ─────────────────────────────────────────────────────────────────

type memPayments struct{ m *Memory }

func (r memPayments) Create(_ context.Context, p models.Payment) (*InsertResult, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p.ID = primitive.NewObjectID()
	r.m.payments = append(r.m.payments, p)
	return &InsertResult{InsertedID: p.ID.Hex()}, nil
}

func (r memPayments) FindByEmail(_ context.Context, email string) ([]models.Payment, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := collection.Filter(r.m.payments, func(p models.Payment) bool { return p.Email == email })
	if out == nil {
		out = []models.Payment{}
	}
	return out, nil
}

func (r memPayments) Count(context.Context) (int64, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return int64(len(r.m.payments)), nil
}

func (r memPayments) TotalRevenue(context.Context) (float64, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return collection.Reduce(r.m.payments, 0.0, func(acc float64, p models.Payment) float64 {
		return acc + p.Price
	}), nil
}

func (r memPayments) CategoryStats(context.Context) ([]models.CategoryStat, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	// Expand every payment into one reference per menu item, then join
	// each reference to its menu document. Unmatched references drop out,
	// mirroring the store's inner-join lookup.
	refs := collection.Flatten(collection.Map(r.m.payments, func(p models.Payment) []string {
		return p.MenuItemIDs
	}))

	var joined []models.MenuItem
	for _, ref := range refs {
		if item, ok := collection.First(r.m.menu, func(i models.MenuItem) bool { return i.ID.Hex() == ref }); ok {
			joined = append(joined, item)
		}
	}

	grouped := collection.GroupBy(joined, func(i models.MenuItem) string { return i.Category })

	stats := []models.CategoryStat{}
	for category, items := range grouped {
		stats = append(stats, models.CategoryStat{
			Category: category,
			Quantity: int64(len(items)),
			Revenue: collection.Reduce(items, 0.0, func(acc float64, i models.MenuItem) float64 {
				return acc + i.Price
			}),
		})
	}
	return stats, nil
}

// ─── Testimonials / Recommendations ───────────────────────────────────────────

type memTestimonials struct{ m *Memory }

func (r memTestimonials) All(context.Context) ([]models.Testimonial, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return append([]models.Testimonial{}, r.m.testimonials...), nil
}

type memRecommends struct{ m *Memory }

func (r memRecommends) All(context.Context) ([]models.ChefRecommend, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return append([]models.ChefRecommend{}, r.m.recommends...), nil
}
