package menurepo

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
)

// DefaultCatalog returns the menu a fresh installation starts with.
func DefaultCatalog() []menu.Item {
	entry := func(name, category, description string, price float64) menu.Item {
		m, _ := kernel.NewMoney(price)
		return menu.Item{Name: name, Price: m, Visible: true, Category: category, Description: description}
	}

	return []menu.Item{
		entry("Chicken Biryani", "Main Course", "Basmati rice layered with spiced chicken", 180),
		entry("Mutton Biryani", "Main Course", "Slow cooked mutton with basmati rice", 220),
		entry("Vegetable Biryani", "Main Course", "Seasonal vegetables and paneer with basmati rice", 140),
		entry("Paneer Butter Masala", "Main Course", "Paneer in tomato and butter gravy", 150),
		entry("Dal Tadka", "Main Course", "Yellow lentils tempered with cumin and garlic", 90),
		entry("Chicken 65", "Starters", "Crispy fried chicken with curry leaves", 160),
		entry("Fish Fry", "Starters", "Spice marinated fish, shallow fried", 180),
		entry("Naan", "Breads", "Tandoor baked flatbread", 40),
		entry("Garlic Naan", "Breads", "Naan brushed with garlic butter", 50),
		entry("Gulab Jamun", "Desserts", "Milk dumplings in rose syrup", 60),
	}
}

// SeedIfEmpty stores items when the catalog has no rows yet and reports how many were added.
func (r *GormMenuRepository) SeedIfEmpty(ctx context.Context, items []menu.Item) (int, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	if err = r.Add(ctx, items...); err != nil {
		return 0, err
	}
	return len(items), nil
}
