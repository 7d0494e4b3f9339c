package seed

// Sample is the demo data set served by a fresh install.
func Sample() Dataset {
	names := []string{
		"Gluten-Free-Friendly",
		"Vegetarian-Friendly",
		"Vegan-Friendly",
		"Paleo-Friendly",
		"Kosher-Friendly",
		"Halal-Friendly",
	}

	return Dataset{
		Restrictions: names,
		Endorsements: names,
		Users: []UserSeed{
			{Name: "John Doe", Email: "john@example.com", Restrictions: []string{"Gluten-Free-Friendly"}},
			{Name: "Jane Smith", Email: "jane@example.com", Restrictions: []string{"Vegetarian-Friendly", "Vegan-Friendly"}},
			{Name: "Bob Johnson", Email: "bob@example.com", Restrictions: []string{"Paleo-Friendly"}},
			{Name: "Alice Brown", Email: "alice@example.com", Restrictions: []string{"Kosher-Friendly"}},
			{Name: "Charlie Wilson", Email: "charlie@example.com", Restrictions: []string{"Halal-Friendly"}},
		},
		Restaurants: []RestaurantSeed{
			{
				Name:         "Green Garden",
				Address:      "123 Green St, City",
				Endorsements: []string{"Vegan-Friendly", "Vegetarian-Friendly", "Gluten-Free-Friendly"},
				Tables:       []int{4, 6, 8},
			},
			{
				Name:         "Meat Lovers",
				Address:      "456 Meat Ave, City",
				Endorsements: []string{"Paleo-Friendly"},
				Tables:       []int{2, 4, 6, 8},
			},
			{
				Name:         "Global Cuisine",
				Address:      "789 World Blvd, City",
				Endorsements: []string{"Kosher-Friendly", "Halal-Friendly"},
				Tables:       []int{2, 4, 6},
			},
		},
	}
}
