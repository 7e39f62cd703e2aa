// Package menu holds the static catalog for Savor & Spice: the full item
// list, restaurant metadata, and a compressed textual summary used in
// prompts. Loaded once, never mutated.
package menu

type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Dietary     []string `json:"dietary,omitempty"`
	Popular     bool     `json:"popular,omitempty"`
}

type RestaurantInfo struct {
	Name        string            `json:"name"`
	Cuisine     string            `json:"cuisine"`
	Description string            `json:"description"`
	Hours       map[string]string `json:"hours"`
}

var Info = RestaurantInfo{
	Name:        "Savor & Spice",
	Cuisine:     "Modern American",
	Description: "Contemporary dining with locally-sourced ingredients",
	Hours: map[string]string{
		"monday":    "5:00 PM - 10:00 PM",
		"tuesday":   "5:00 PM - 10:00 PM",
		"wednesday": "5:00 PM - 10:00 PM",
		"thursday":  "5:00 PM - 10:00 PM",
		"friday":    "5:00 PM - 11:00 PM",
		"saturday":  "4:00 PM - 11:00 PM",
		"sunday":    "4:00 PM - 9:00 PM",
	},
}

var Items = []Item{
	// Appetizers
	{ID: "a1", Name: "Crispy Calamari", Category: "Appetizers", Price: 14, Description: "Lemon aioli, marinara", Popular: true},
	{ID: "a2", Name: "Burrata & Heirloom Tomatoes", Category: "Appetizers", Price: 16, Description: "Basil, aged balsamic", Dietary: []string{"vegetarian"}},
	{ID: "a3", Name: "Tuna Tartare", Category: "Appetizers", Price: 18, Description: "Avocado, crispy wontons"},
	{ID: "a4", Name: "Wild Mushroom Soup", Category: "Appetizers", Price: 12, Description: "Truffle oil, herbs", Dietary: []string{"vegan"}},
	{ID: "a5", Name: "Beef Carpaccio", Category: "Appetizers", Price: 17, Description: "Arugula, parmesan, truffle oil"},
	{ID: "a6", Name: "Grilled Octopus", Category: "Appetizers", Price: 19, Description: "Chorizo, potatoes, paprika oil"},

	// Salads
	{ID: "s1", Name: "Caesar Salad", Category: "Salads", Price: 13, Description: "Romaine, parmesan, garlic croutons", Dietary: []string{"vegetarian"}},
	{ID: "s2", Name: "Harvest Salad", Category: "Salads", Price: 14, Description: "Mixed greens, apple, candied walnuts, goat cheese", Dietary: []string{"vegetarian"}, Popular: true},
	{ID: "s3", Name: "Greek Salad", Category: "Salads", Price: 12, Description: "Cucumber, tomato, feta, olives, red onion", Dietary: []string{"vegetarian"}},
	{ID: "s4", Name: "Quinoa Power Bowl", Category: "Salads", Price: 15, Description: "Kale, roasted vegetables, tahini dressing", Dietary: []string{"vegan"}},

	// Mains
	{ID: "m1", Name: "Pan-Seared Salmon", Category: "Mains", Price: 32, Description: "Roasted vegetables, lemon butter", Popular: true},
	{ID: "m2", Name: "Dry-Aged Ribeye", Category: "Mains", Price: 48, Description: "16oz, garlic mash, red wine jus"},
	{ID: "m3", Name: "Lobster Risotto", Category: "Mains", Price: 42, Description: "Maine lobster, parmesan, peas", Popular: true},
	{ID: "m4", Name: "Herb-Roasted Chicken", Category: "Mains", Price: 28, Description: "Free-range, seasonal vegetables"},
	{ID: "m5", Name: "Wild Mushroom Pasta", Category: "Mains", Price: 26, Description: "House-made fettuccine, truffle cream", Dietary: []string{"vegetarian"}},
	{ID: "m6", Name: "Braised Short Ribs", Category: "Mains", Price: 38, Description: "Red wine reduction, root vegetables"},
	{ID: "m7", Name: "Seared Scallops", Category: "Mains", Price: 36, Description: "Cauliflower puree, crispy prosciutto"},
	{ID: "m8", Name: "Duck Confit", Category: "Mains", Price: 34, Description: "Orange glaze, wild rice, asparagus"},
	{ID: "m9", Name: "Vegetable Wellington", Category: "Mains", Price: 24, Description: "Puff pastry, seasonal vegetables, mushroom sauce", Dietary: []string{"vegetarian"}},

	// Sides
	{ID: "sd1", Name: "Truffle Fries", Category: "Sides", Price: 9, Description: "Parmesan, truffle aioli", Dietary: []string{"vegetarian"}},
	{ID: "sd2", Name: "Garlic Mashed Potatoes", Category: "Sides", Price: 7, Description: "Butter, chives", Dietary: []string{"vegetarian"}},
	{ID: "sd3", Name: "Grilled Asparagus", Category: "Sides", Price: 8, Description: "Lemon, olive oil", Dietary: []string{"vegan"}},
	{ID: "sd4", Name: "Brussels Sprouts", Category: "Sides", Price: 8, Description: "Bacon, balsamic glaze"},
	{ID: "sd5", Name: "Mac & Cheese", Category: "Sides", Price: 9, Description: "Three cheese blend, breadcrumbs", Dietary: []string{"vegetarian"}},

	// Desserts
	{ID: "d1", Name: "Chocolate Lava Cake", Category: "Desserts", Price: 12, Description: "Vanilla ice cream, berries", Dietary: []string{"vegetarian"}, Popular: true},
	{ID: "d2", Name: "Lemon Tart", Category: "Desserts", Price: 10, Description: "Fresh raspberries, mint", Dietary: []string{"vegetarian"}},
	{ID: "d3", Name: "Tiramisu", Category: "Desserts", Price: 11, Description: "Classic Italian, espresso-soaked", Dietary: []string{"vegetarian"}},
	{ID: "d4", Name: "Crème Brûlée", Category: "Desserts", Price: 10, Description: "Vanilla bean, caramelized sugar", Dietary: []string{"vegetarian"}},
	{ID: "d5", Name: "Seasonal Cheesecake", Category: "Desserts", Price: 11, Description: "Berry compote, whipped cream", Dietary: []string{"vegetarian"}},

	// Beverages
	{ID: "b1", Name: "Espresso", Category: "Beverages", Price: 4, Description: "Italian dark roast", Dietary: []string{"vegan"}},
	{ID: "b2", Name: "Cappuccino", Category: "Beverages", Price: 5, Description: "Steamed milk, foam", Dietary: []string{"vegetarian"}},
	{ID: "b3", Name: "Fresh Juice", Category: "Beverages", Price: 6, Description: "Orange, apple, or grapefruit", Dietary: []string{"vegan"}},
	{ID: "b4", Name: "Iced Tea", Category: "Beverages", Price: 4, Description: "House-made, unsweetened", Dietary: []string{"vegan"}},
	{ID: "b5", Name: "Sparkling Water", Category: "Beverages", Price: 5, Description: "San Pellegrino", Dietary: []string{"vegan"}},
}

// Context is the pre-rendered menu summary embedded in prompts,
// compressed to keep token usage down.
const Context = `Restaurant: Savor & Spice (Modern American)
Hours: Mon-Thu 5-10PM, Fri 5-11PM, Sat 4-11PM, Sun 4-9PM

Menu Summary:
Appetizers ($12-19): Calamari★, Burrata(v), Tuna Tartare, Mushroom Soup(vg), Beef Carpaccio, Grilled Octopus
Salads ($12-15): Caesar(v), Harvest★(v), Greek(v), Quinoa Bowl(vg)
Mains ($24-48): Salmon★ $32, Ribeye $48, Lobster Risotto★ $42, Chicken $28, Mushroom Pasta(v) $26, Short Ribs $38, Scallops $36, Duck $34, Veggie Wellington(v) $24
Sides ($7-9): Truffle Fries(v), Mashed Potatoes(v), Asparagus(vg), Brussels Sprouts, Mac & Cheese(v)
Desserts ($10-12): Lava Cake★(v), Lemon Tart(v), Tiramisu(v), Crème Brûlée(v), Cheesecake(v)
Beverages ($4-6): Espresso(vg), Cappuccino(v), Fresh Juice(vg), Iced Tea(vg), Sparkling Water(vg)

★=Popular | (v)=vegetarian | (vg)=vegan`
