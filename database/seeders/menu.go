package seeders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/bistro/app/models"
)

func init() {
	Register("menu", SeedMenu)
	Register("chefsRecommend", SeedRecommendations)
}

// SeedMenu inserts a starter menu when the collection is empty.
func SeedMenu(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("menu")

	n, err := col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	items := []interface{}{
		models.MenuItem{Name: "Roast Duck Breast", Recipe: "Roasted duck breast with potato gratin and shallot jus", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-1-370x247.jpg", Category: "salad", Price: 14.5},
		models.MenuItem{Name: "Tuna Niçoise", Recipe: "Seared tuna, green beans, olives, soft egg and anchovy dressing", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-2-370x247.jpg", Category: "salad", Price: 10.5},
		models.MenuItem{Name: "Escalope de Veau", Recipe: "Veal escalope with sage butter and lemon", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-3-370x247.jpg", Category: "pizza", Price: 12.5},
		models.MenuItem{Name: "Chicken and Walnut Salad", Recipe: "Poached chicken, toasted walnuts, grapes and tarragon mayonnaise", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-4-370x247.jpg", Category: "dessert", Price: 8.99},
		models.MenuItem{Name: "Fish Parmentier", Recipe: "Smoked haddock and salmon under a cheddar mash crust", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-5-370x247.jpg", Category: "soup", Price: 11.95},
		models.MenuItem{Name: "Berries and Cream Cheesecake", Recipe: "Baked vanilla cheesecake with macerated summer berries", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-6-370x247.jpg", Category: "dessert", Price: 6.5},
	}

	_, err = col.InsertMany(ctx, items)
	return err
}

// SeedRecommendations inserts the chef's picks when the collection is empty.
func SeedRecommendations(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("chefsRecommend")

	n, err := col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	items := []interface{}{
		models.ChefRecommend{Name: "Caeser Salad", Recipe: "Romaine hearts, parmesan and garlic croutons", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-1-370x247.jpg"},
		models.ChefRecommend{Name: "Wild Mushroom Soup", Recipe: "Cep and chestnut mushroom velouté with truffle oil", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-5-370x247.jpg"},
		models.ChefRecommend{Name: "Lemon Tart", Recipe: "Classic tarte au citron with crème fraîche", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-6-370x247.jpg"},
	}

	_, err = col.InsertMany(ctx, items)
	return err
}
