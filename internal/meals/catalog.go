package meals

import "vitality/internal/models"

// DefaultCatalog is the compiled-in recipe catalog, used when no
// database is configured or the recipes table is empty. Ingredients
// are canonical lowercase; every recipe carries at least one tag and
// one weather category.
func DefaultCatalog() []models.Recipe {
	return []models.Recipe{
		{
			ID:                1,
			Name:              "Masala Oats",
			Ingredients:       []string{"oats", "onion", "tomato", "peas"},
			Tags:              []string{models.TagBreakfast},
			WeatherCategories: []models.WeatherCategory{models.CategoryCold, models.CategoryRainy, models.CategoryCloudy},
			PrepTime:          "15 min",
			DietType:          "veg",
			Protein:           "11g",
			Calories:          "220 kcal",
		},
		{
			ID:                2,
			Name:              "Vegetable Poha",
			Ingredients:       []string{"poha", "onion", "peanuts", "curry leaves"},
			Tags:              []string{models.TagBreakfast},
			WeatherCategories: []models.WeatherCategory{models.CategoryHot, models.CategoryHumid, models.CategoryCloudy},
			PrepTime:          "20 min",
			DietType:          "veg",
			Protein:           "8g",
			Calories:          "250 kcal",
		},
		{
			ID:                3,
			Name:              "Egg Bhurji",
			Ingredients:       []string{"egg", "onion", "tomato", "green chili"},
			Tags:              []string{models.TagBreakfast, models.TagDinner},
			WeatherCategories: []models.WeatherCategory{models.CategoryCold, models.CategoryRainy},
			PrepTime:          "15 min",
			DietType:          "non-veg",
			Protein:           "14g",
			Calories:          "180 kcal",
		},
		{
			ID:                4,
			Name:              "Curd Rice",
			Ingredients:       []string{"rice", "curd", "curry leaves", "mustard seeds"},
			Tags:              []string{models.TagLunch},
			WeatherCategories: []models.WeatherCategory{models.CategoryHot, models.CategoryHumid},
			PrepTime:          "25 min",
			DietType:          "veg",
			Protein:           "9g",
			Calories:          "320 kcal",
		},
		{
			ID:                5,
			Name:              "Dal Khichdi",
			Ingredients:       []string{"rice", "moong dal", "ghee", "cumin"},
			Tags:              []string{models.TagLunch, models.TagDinner},
			WeatherCategories: []models.WeatherCategory{models.CategoryRainy, models.CategoryCold, models.CategoryCloudy},
			PrepTime:          "30 min",
			DietType:          "veg",
			Protein:           "13g",
			Calories:          "340 kcal",
		},
		{
			ID:                6,
			Name:              "Chicken Curry with Rice",
			Ingredients:       []string{"chicken", "rice", "onion", "tomato", "ginger", "garlic"},
			Tags:              []string{models.TagLunch, models.TagDinner},
			WeatherCategories: []models.WeatherCategory{models.CategoryCold, models.CategoryRainy, models.CategoryCloudy},
			PrepTime:          "45 min",
			DietType:          "non-veg",
			Protein:           "28g",
			Calories:          "520 kcal",
		},
		{
			ID:                7,
			Name:              "Cucumber Salad Bowl",
			Ingredients:       []string{"cucumber", "tomato", "lemon", "coriander"},
			Tags:              []string{models.TagLunch, models.TagSnack},
			WeatherCategories: []models.WeatherCategory{models.CategoryHot, models.CategoryHumid},
			PrepTime:          "10 min",
			DietType:          "veg",
			Protein:           "3g",
			Calories:          "90 kcal",
		},
		{
			ID:                8,
			Name:              "Tomato Soup",
			Ingredients:       []string{"tomato", "garlic", "butter", "black pepper"},
			Tags:              []string{models.TagDinner, models.TagSnack},
			WeatherCategories: []models.WeatherCategory{models.CategoryCold, models.CategoryRainy},
			PrepTime:          "25 min",
			DietType:          "veg",
			Protein:           "4g",
			Calories:          "140 kcal",
		},
		{
			ID:                9,
			Name:              "Paneer Tikka",
			Ingredients:       []string{"paneer", "curd", "capsicum", "onion"},
			Tags:              []string{models.TagDinner, models.TagSnack},
			WeatherCategories: []models.WeatherCategory{models.CategoryCloudy, models.CategoryCold},
			PrepTime:          "35 min",
			DietType:          "veg",
			Protein:           "18g",
			Calories:          "290 kcal",
		},
		{
			ID:                10,
			Name:              "Watermelon Mint Cooler",
			Ingredients:       []string{"watermelon", "mint", "lemon"},
			Tags:              []string{models.TagSnack},
			WeatherCategories: []models.WeatherCategory{models.CategoryHot},
			PrepTime:          "5 min",
			DietType:          "veg",
			Protein:           "1g",
			Calories:          "60 kcal",
		},
		{
			ID:                11,
			Name:              "Masala Chai and Pakora",
			Ingredients:       []string{"tea", "milk", "besan", "onion", "spinach"},
			Tags:              []string{models.TagSnack},
			WeatherCategories: []models.WeatherCategory{models.CategoryRainy, models.CategoryCold},
			PrepTime:          "20 min",
			DietType:          "veg",
			Protein:           "7g",
			Calories:          "260 kcal",
		},
		{
			ID:                12,
			Name:              "Ragi Porridge",
			Ingredients:       []string{"ragi", "milk", "jaggery"},
			Tags:              []string{models.TagBaby, models.TagBreakfast},
			WeatherCategories: []models.WeatherCategory{models.CategoryCold, models.CategoryCloudy, models.CategoryRainy},
			PrepTime:          "15 min",
			DietType:          "veg",
			Protein:           "6g",
			Calories:          "150 kcal",
		},
		{
			ID:                13,
			Name:              "Mashed Banana with Curd",
			Ingredients:       []string{"banana", "curd"},
			Tags:              []string{models.TagBaby},
			WeatherCategories: []models.WeatherCategory{models.CategoryHot, models.CategoryHumid, models.CategoryCloudy},
			PrepTime:          "5 min",
			DietType:          "veg",
			Protein:           "4g",
			Calories:          "120 kcal",
		},
		{
			ID:                14,
			Name:              "Vegetable Khichdi for Baby",
			Ingredients:       []string{"rice", "moong dal", "carrot", "ghee"},
			Tags:              []string{models.TagBaby},
			WeatherCategories: []models.WeatherCategory{models.CategoryRainy, models.CategoryCold, models.CategoryCloudy},
			PrepTime:          "30 min",
			DietType:          "veg",
			Protein:           "8g",
			Calories:          "180 kcal",
		},
		{
			ID:                15,
			Name:              "Lemon Rice",
			Ingredients:       []string{"rice", "lemon", "peanuts", "turmeric", "curry leaves"},
			Tags:              []string{models.TagLunch},
			WeatherCategories: []models.WeatherCategory{models.CategoryHot, models.CategoryHumid, models.CategoryCloudy},
			PrepTime:          "25 min",
			DietType:          "veg",
			Protein:           "7g",
			Calories:          "310 kcal",
		},
		{
			ID:                16,
			Name:              "Grilled Fish with Vegetables",
			Ingredients:       []string{"fish", "lemon", "garlic", "capsicum", "olive oil"},
			Tags:              []string{models.TagDinner},
			WeatherCategories: []models.WeatherCategory{models.CategoryHot, models.CategoryHumid, models.CategoryCloudy},
			PrepTime:          "30 min",
			DietType:          "non-veg",
			Protein:           "26g",
			Calories:          "380 kcal",
		},
		{
			ID:                17,
			Name:              "Fruit Chaat",
			Ingredients:       []string{"apple", "banana", "pomegranate", "lemon", "chaat masala"},
			Tags:              []string{models.TagSnack, models.TagBreakfast},
			WeatherCategories: []models.WeatherCategory{models.CategoryHot, models.CategoryHumid},
			PrepTime:          "10 min",
			DietType:          "veg",
			Protein:           "2g",
			Calories:          "130 kcal",
		},
		{
			ID:                18,
			Name:              "Palak Paneer with Roti",
			Ingredients:       []string{"spinach", "paneer", "wheat flour", "garlic", "cream"},
			Tags:              []string{models.TagLunch, models.TagDinner},
			WeatherCategories: []models.WeatherCategory{models.CategoryCold, models.CategoryCloudy},
			PrepTime:          "40 min",
			DietType:          "veg",
			Protein:           "19g",
			Calories:          "430 kcal",
		},
	}
}
