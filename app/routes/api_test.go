package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/app/routes"
	"github.com/shashiranjanraj/bistro/pkg/auth"
	"github.com/shashiranjanraj/bistro/pkg/router"
)

type stubIntents struct{}

func (stubIntents) CreateIntent(context.Context, int64, string) (string, error) {
	return "cs_test_secret", nil
}

func newServer(t *testing.T) (http.Handler, *repositories.Memory) {
	t.Helper()
	mem := repositories.NewMemory()
	r := router.New()
	routes.RegisterAPI(r, routes.Deps{
		Users:        mem.Users(),
		Menu:         mem.Menu(),
		Carts:        mem.Carts(),
		Payments:     mem.Payments(),
		Testimonials: mem.Testimonials(),
		Recommends:   mem.Recommends(),
		Intents:      stubIntents{},
	})
	return r.Handler(), mem
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.GenerateToken(email, "")
	require.NoError(t, err)
	return token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func TestHome(t *testing.T) {
	h, _ := newServer(t)
	rec := doJSON(t, h, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIssueToken(t *testing.T) {
	h, _ := newServer(t)

	rec := doJSON(t, h, http.MethodPost, "/jwt", "", map[string]string{"email": "alice@example.com", "name": "Alice"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	require.NotEmpty(t, body["token"])

	claims, err := auth.ValidateToken(body["token"])
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestIssueTokenRejectsBadEmail(t *testing.T) {
	h, _ := newServer(t)
	rec := doJSON(t, h, http.MethodPost, "/jwt", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateUserIsIdempotentOnEmail(t *testing.T) {
	h, _ := newServer(t)
	payload := map[string]string{"name": "Alice", "email": "alice@example.com"}

	rec := doJSON(t, h, http.MethodPost, "/users", "", payload)
	require.Equal(t, http.StatusOK, rec.Code)
	var first map[string]interface{}
	decode(t, rec, &first)
	assert.NotEmpty(t, first["insertedId"])

	rec = doJSON(t, h, http.MethodPost, "/users", "", payload)
	require.Equal(t, http.StatusOK, rec.Code)
	var second map[string]interface{}
	decode(t, rec, &second)
	assert.Equal(t, "user already exists", second["message"])
	assert.Nil(t, second["insertedId"])
}

func TestUserListRequiresAdmin(t *testing.T) {
	h, mem := newServer(t)
	mem.SeedUsers(
		models.User{Name: "Root", Email: "root@example.com", Role: models.RoleAdmin},
		models.User{Name: "Alice", Email: "alice@example.com", Role: models.RoleUser},
	)

	rec := doJSON(t, h, http.MethodGet, "/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/users", tokenFor(t, "alice@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/users", tokenFor(t, "root@example.com"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []models.User
	decode(t, rec, &users)
	assert.Len(t, users, 2)
}

func TestAdminFlagIsSelfOnly(t *testing.T) {
	h, mem := newServer(t)
	mem.SeedUsers(models.User{Name: "Root", Email: "root@example.com", Role: models.RoleAdmin})

	// Asking about someone else is forbidden even for an admin.
	rec := doJSON(t, h, http.MethodGet, "/users/admin/alice@example.com", tokenFor(t, "root@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/users/admin/root@example.com", tokenFor(t, "root@example.com"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]bool
	decode(t, rec, &body)
	assert.True(t, body["admin"])

	// Unknown self reports false.
	rec = doJSON(t, h, http.MethodGet, "/users/admin/ghost@example.com", tokenFor(t, "ghost@example.com"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &body)
	assert.False(t, body["admin"])
}

func TestMenuWritesRequireAdmin(t *testing.T) {
	h, mem := newServer(t)
	mem.SeedUsers(models.User{Name: "Root", Email: "root@example.com", Role: models.RoleAdmin})
	item := map[string]interface{}{"name": "Lemon Tart", "category": "dessert", "price": 6.5}

	rec := doJSON(t, h, http.MethodPost, "/menu", "", item)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/menu", tokenFor(t, "alice@example.com"), item)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/menu", tokenFor(t, "root@example.com"), item)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Reads stay public.
	rec = doJSON(t, h, http.MethodGet, "/menu", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var menu []models.MenuItem
	decode(t, rec, &menu)
	assert.Len(t, menu, 1)
}

func TestMenuUpdateIsUngated(t *testing.T) {
	h, mem := newServer(t)
	seeded := mem.SeedMenu(models.MenuItem{Name: "Lemon Tart", Category: "dessert", Price: 6.5})

	// Item updates carry no gate, matching the rest of the public contract.
	rec := doJSON(t, h, http.MethodPatch, "/menu/"+seeded[0].ID.Hex(), "", map[string]interface{}{
		"name":     "Lemon Tart",
		"category": "dessert",
		"price":    7.5,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var upd repositories.UpdateResult
	decode(t, rec, &upd)
	assert.EqualValues(t, 1, upd.ModifiedCount)

	item, err := mem.Menu().FindByID(context.Background(), seeded[0].ID.Hex())
	require.NoError(t, err)
	assert.InDelta(t, 7.5, item.Price, 1e-9)
}

func TestPaymentFlow(t *testing.T) {
	h, mem := newServer(t)
	token := tokenFor(t, "alice@example.com")
	ctx := context.Background()

	r1, err := mem.Carts().Create(ctx, models.CartItem{Email: "alice@example.com", Name: "Tuna Niçoise", Price: 10.5})
	require.NoError(t, err)
	r2, err := mem.Carts().Create(ctx, models.CartItem{Email: "alice@example.com", Name: "Lemon Tart", Price: 6.5})
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodPost, "/create-payment-intent", token, map[string]float64{"price": 17})
	require.Equal(t, http.StatusOK, rec.Code)
	var intent map[string]string
	decode(t, rec, &intent)
	assert.Equal(t, "cs_test_secret", intent["clientSecret"])

	rec = doJSON(t, h, http.MethodPost, "/payment", token, map[string]interface{}{
		"email":         "alice@example.com",
		"price":         17,
		"transactionId": "pi_123",
		"cartIds":       []string{r1.InsertedID, r2.InsertedID},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Payment *repositories.InsertResult `json:"paymentResult"`
		Deleted *repositories.DeleteResult `json:"deleteResult"`
	}
	decode(t, rec, &result)
	require.NotNil(t, result.Payment)
	require.NotNil(t, result.Deleted)
	assert.EqualValues(t, 2, result.Deleted.DeletedCount)

	remaining, err := mem.Carts().FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, remaining)

	// History is self-only.
	rec = doJSON(t, h, http.MethodGet, "/payment/alice@example.com", tokenFor(t, "bob@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/payment/alice@example.com", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []models.Payment
	decode(t, rec, &history)
	assert.Len(t, history, 1)
}

func TestStatsRequireAdmin(t *testing.T) {
	h, mem := newServer(t)
	mem.SeedUsers(models.User{Name: "Root", Email: "root@example.com", Role: models.RoleAdmin})
	menu := mem.SeedMenu(models.MenuItem{Name: "Caeser Salad", Category: "salad", Price: 8})

	_, err := mem.Payments().Create(context.Background(), models.Payment{
		Email:       "alice@example.com",
		Price:       8,
		MenuItemIDs: []string{menu[0].ID.Hex()},
	})
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodGet, "/admin-stats", tokenFor(t, "alice@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/admin-stats", tokenFor(t, "root@example.com"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.AdminStats
	decode(t, rec, &stats)
	assert.EqualValues(t, 1, stats.Users)
	assert.EqualValues(t, 1, stats.MenuItems)
	assert.EqualValues(t, 1, stats.Orders)
	assert.InDelta(t, 8.0, stats.Revenue, 1e-9)

	rec = doJSON(t, h, http.MethodGet, "/order-stats", tokenFor(t, "root@example.com"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []models.CategoryStat
	decode(t, rec, &categories)
	require.Len(t, categories, 1)
	assert.Equal(t, "salad", categories[0].Category)
	assert.EqualValues(t, 1, categories[0].Quantity)
}

func TestCartRoutes(t *testing.T) {
	h, _ := newServer(t)

	rec := doJSON(t, h, http.MethodPost, "/carts", "", map[string]interface{}{
		"menuItemId": "abc123",
		"email":      "alice@example.com",
		"name":       "Tuna Niçoise",
		"price":      10.5,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var ins repositories.InsertResult
	decode(t, rec, &ins)
	require.NotEmpty(t, ins.InsertedID)

	rec = doJSON(t, h, http.MethodGet, "/carts?email=alice@example.com", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.CartItem
	decode(t, rec, &items)
	assert.Len(t, items, 1)

	rec = doJSON(t, h, http.MethodDelete, "/carts/"+ins.InsertedID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var del repositories.DeleteResult
	decode(t, rec, &del)
	assert.EqualValues(t, 1, del.DeletedCount)
}
