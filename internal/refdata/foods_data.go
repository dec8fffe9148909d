package refdata

import "github.com/mindmeal/mindmeal-cli/internal/model"

var foods = []model.FoodItem{
	{ID: "idli", Name: "Idli", NameHindi: "इडली", Calories: 39, Protein: 2, Carbs: 8, Fat: 0.1, Fiber: 0.5, Category: model.CategoryBreakfast, ServingSize: "1 piece", ServingGrams: 30},
	{ID: "dosa", Name: "Plain Dosa", NameHindi: "डोसा", Calories: 168, Protein: 4, Carbs: 28, Fat: 4, Fiber: 1, Category: model.CategoryBreakfast, ServingSize: "1 medium", ServingGrams: 100},
	{ID: "masala-dosa", Name: "Masala Dosa", NameHindi: "मसाला डोसा", Calories: 250, Protein: 5, Carbs: 35, Fat: 10, Fiber: 2, Category: model.CategoryBreakfast, ServingSize: "1 medium", ServingGrams: 150},
	{ID: "poha", Name: "Poha", NameHindi: "पोहा", Calories: 180, Protein: 4, Carbs: 32, Fat: 5, Fiber: 2, Category: model.CategoryBreakfast, ServingSize: "1 plate", ServingGrams: 150},
	{ID: "upma", Name: "Upma", NameHindi: "उपमा", Calories: 200, Protein: 5, Carbs: 30, Fat: 7, Fiber: 3, Category: model.CategoryBreakfast, ServingSize: "1 plate", ServingGrams: 150},
	{ID: "paratha", Name: "Aloo Paratha", NameHindi: "आलू पराठा", Calories: 300, Protein: 6, Carbs: 40, Fat: 12, Fiber: 3, Category: model.CategoryBreakfast, ServingSize: "1 piece", ServingGrams: 120},
	{ID: "puri", Name: "Puri", NameHindi: "पूड़ी", Calories: 150, Protein: 2, Carbs: 15, Fat: 9, Fiber: 1, Category: model.CategoryBreakfast, ServingSize: "2 pieces", ServingGrams: 60},
	{ID: "white-rice", Name: "White Rice", NameHindi: "चावल", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, Category: model.CategoryGrain, ServingSize: "1 cup cooked", ServingGrams: 100},
	{ID: "brown-rice", Name: "Brown Rice", NameHindi: "ब्राउन राइस", Calories: 112, Protein: 2.3, Carbs: 24, Fat: 0.8, Fiber: 1.8, Category: model.CategoryGrain, ServingSize: "1 cup cooked", ServingGrams: 100},
	{ID: "chapati", Name: "Chapati / Roti", NameHindi: "चपाती", Calories: 104, Protein: 3, Carbs: 20, Fat: 2, Fiber: 2, Category: model.CategoryGrain, ServingSize: "1 medium", ServingGrams: 40},
	{ID: "naan", Name: "Naan", NameHindi: "नान", Calories: 260, Protein: 9, Carbs: 45, Fat: 5, Fiber: 2, Category: model.CategoryGrain, ServingSize: "1 piece", ServingGrams: 90},
	{ID: "jeera-rice", Name: "Jeera Rice", NameHindi: "जीरा राइस", Calories: 180, Protein: 3, Carbs: 30, Fat: 5, Fiber: 1, Category: model.CategoryGrain, ServingSize: "1 cup", ServingGrams: 150},
	{ID: "biryani", Name: "Veg Biryani", NameHindi: "बिरयानी", Calories: 290, Protein: 6, Carbs: 45, Fat: 10, Fiber: 3, Category: model.CategoryGrain, ServingSize: "1 plate", ServingGrams: 200},
	{ID: "dal-tadka", Name: "Dal Tadka", NameHindi: "दाल तड़का", Calories: 150, Protein: 9, Carbs: 20, Fat: 4, Fiber: 6, Category: model.CategoryProtein, ServingSize: "1 bowl", ServingGrams: 150},
	{ID: "sambar", Name: "Sambar", NameHindi: "सांभर", Calories: 120, Protein: 6, Carbs: 18, Fat: 3, Fiber: 5, Category: model.CategoryProtein, ServingSize: "1 bowl", ServingGrams: 150},
	{ID: "chana-masala", Name: "Chana Masala", NameHindi: "छोले", Calories: 210, Protein: 12, Carbs: 30, Fat: 6, Fiber: 8, Category: model.CategoryProtein, ServingSize: "1 bowl", ServingGrams: 150},
	{ID: "rajma", Name: "Rajma", NameHindi: "राजमा", Calories: 180, Protein: 10, Carbs: 28, Fat: 4, Fiber: 7, Category: model.CategoryProtein, ServingSize: "1 bowl", ServingGrams: 150},
	{ID: "dal-makhani", Name: "Dal Makhani", NameHindi: "दाल मखनी", Calories: 250, Protein: 10, Carbs: 25, Fat: 12, Fiber: 6, Category: model.CategoryProtein, ServingSize: "1 bowl", ServingGrams: 150},
	{ID: "aloo-gobi", Name: "Aloo Gobi", NameHindi: "आलू गोभी", Calories: 150, Protein: 4, Carbs: 22, Fat: 5, Fiber: 4, Category: model.CategoryVegetable, ServingSize: "1 bowl", ServingGrams: 150},
	{ID: "palak-paneer", Name: "Palak Paneer", NameHindi: "पालक पनीर", Calories: 280, Protein: 14, Carbs: 10, Fat: 20, Fiber: 4, Category: model.CategoryVegetable, ServingSize: "1 bowl", ServingGrams: 150},
	{ID: "bhindi", Name: "Bhindi Fry", NameHindi: "भिंडी", Calories: 120, Protein: 3, Carbs: 15, Fat: 6, Fiber: 4, Category: model.CategoryVegetable, ServingSize: "1 bowl", ServingGrams: 100},
	{ID: "baingan-bharta", Name: "Baingan Bharta", NameHindi: "बैंगन भर्ता", Calories: 130, Protein: 3, Carbs: 12, Fat: 8, Fiber: 5, Category: model.CategoryVegetable, ServingSize: "1 bowl", ServingGrams: 150},
	{ID: "mixed-veg", Name: "Mixed Vegetable", NameHindi: "मिक्स वेज", Calories: 110, Protein: 4, Carbs: 15, Fat: 4, Fiber: 4, Category: model.CategoryVegetable, ServingSize: "1 bowl", ServingGrams: 150},
	{ID: "paneer-tikka", Name: "Paneer Tikka", NameHindi: "पनीर टिक्का", Calories: 260, Protein: 18, Carbs: 8, Fat: 18, Fiber: 1, Category: model.CategoryProtein, ServingSize: "6 pieces", ServingGrams: 150},
	{ID: "boiled-egg", Name: "Boiled Egg", NameHindi: "उबला अंडा", Calories: 78, Protein: 6, Carbs: 0.6, Fat: 5, Fiber: 0, Category: model.CategoryProtein, ServingSize: "1 large", ServingGrams: 50},
	{ID: "egg-bhurji", Name: "Egg Bhurji", NameHindi: "अंडा भुर्जी", Calories: 200, Protein: 14, Carbs: 4, Fat: 14, Fiber: 0.5, Category: model.CategoryProtein, ServingSize: "2 eggs", ServingGrams: 120},
	{ID: "chicken-curry", Name: "Chicken Curry", NameHindi: "चिकन करी", Calories: 280, Protein: 25, Carbs: 8, Fat: 16, Fiber: 2, Category: model.CategoryProtein, ServingSize: "1 bowl", ServingGrams: 150},
	{ID: "tandoori-chicken", Name: "Tandoori Chicken", NameHindi: "तंदूरी चिकन", Calories: 220, Protein: 30, Carbs: 4, Fat: 10, Fiber: 0, Category: model.CategoryProtein, ServingSize: "2 pieces", ServingGrams: 150},
	{ID: "fish-curry", Name: "Fish Curry", NameHindi: "मछली करी", Calories: 200, Protein: 22, Carbs: 6, Fat: 10, Fiber: 1, Category: model.CategoryProtein, ServingSize: "1 piece", ServingGrams: 150},
	{ID: "samosa", Name: "Samosa", NameHindi: "समोसा", Calories: 260, Protein: 4, Carbs: 28, Fat: 15, Fiber: 2, Category: model.CategorySnack, ServingSize: "1 piece", ServingGrams: 80},
	{ID: "pakora", Name: "Pakora", NameHindi: "पकौड़ा", Calories: 180, Protein: 3, Carbs: 18, Fat: 11, Fiber: 2, Category: model.CategorySnack, ServingSize: "5 pieces", ServingGrams: 80},
	{ID: "dhokla", Name: "Dhokla", NameHindi: "ढोकला", Calories: 160, Protein: 5, Carbs: 28, Fat: 3, Fiber: 2, Category: model.CategorySnack, ServingSize: "4 pieces", ServingGrams: 100},
	{ID: "sprouts-chaat", Name: "Sprouts Chaat", NameHindi: "स्प्राउट्स चाट", Calories: 120, Protein: 7, Carbs: 18, Fat: 2, Fiber: 5, Category: model.CategorySnack, ServingSize: "1 bowl", ServingGrams: 100},
	{ID: "makhana", Name: "Roasted Makhana", NameHindi: "मखाना", Calories: 100, Protein: 3, Carbs: 18, Fat: 0.5, Fiber: 1, Category: model.CategorySnack, ServingSize: "1 cup", ServingGrams: 30},
	{ID: "banana", Name: "Banana", NameHindi: "केला", Calories: 89, Protein: 1, Carbs: 23, Fat: 0.3, Fiber: 2.6, Category: model.CategoryFruit, ServingSize: "1 medium", ServingGrams: 100},
	{ID: "apple", Name: "Apple", NameHindi: "सेब", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, Fiber: 2.4, Category: model.CategoryFruit, ServingSize: "1 medium", ServingGrams: 100},
	{ID: "mango", Name: "Mango", NameHindi: "आम", Calories: 60, Protein: 0.8, Carbs: 15, Fat: 0.4, Fiber: 1.6, Category: model.CategoryFruit, ServingSize: "1 cup sliced", ServingGrams: 100},
	{ID: "papaya", Name: "Papaya", NameHindi: "पपीता", Calories: 43, Protein: 0.5, Carbs: 11, Fat: 0.3, Fiber: 1.7, Category: model.CategoryFruit, ServingSize: "1 cup", ServingGrams: 100},
	{ID: "pomegranate", Name: "Pomegranate", NameHindi: "अनार", Calories: 83, Protein: 1.7, Carbs: 19, Fat: 1.2, Fiber: 4, Category: model.CategoryFruit, ServingSize: "1/2 fruit", ServingGrams: 100},
	{ID: "milk", Name: "Milk (Full Fat)", NameHindi: "दूध", Calories: 150, Protein: 8, Carbs: 12, Fat: 8, Fiber: 0, Category: model.CategoryDairy, ServingSize: "1 glass", ServingGrams: 250},
	{ID: "curd", Name: "Curd / Dahi", NameHindi: "दही", Calories: 100, Protein: 4, Carbs: 8, Fat: 6, Fiber: 0, Category: model.CategoryDairy, ServingSize: "1 bowl", ServingGrams: 150},
	{ID: "lassi", Name: "Sweet Lassi", NameHindi: "मीठी लस्सी", Calories: 180, Protein: 5, Carbs: 30, Fat: 5, Fiber: 0, Category: model.CategoryDairy, ServingSize: "1 glass", ServingGrams: 250},
	{ID: "buttermilk", Name: "Chaas / Buttermilk", NameHindi: "छाछ", Calories: 40, Protein: 3, Carbs: 5, Fat: 1, Fiber: 0, Category: model.CategoryDairy, ServingSize: "1 glass", ServingGrams: 250},
	{ID: "paneer", Name: "Paneer (Raw)", NameHindi: "पनीर", Calories: 265, Protein: 18, Carbs: 4, Fat: 20, Fiber: 0, Category: model.CategoryDairy, ServingSize: "100g", ServingGrams: 100},
	{ID: "chai", Name: "Masala Chai", NameHindi: "चाय", Calories: 100, Protein: 2, Carbs: 12, Fat: 4, Fiber: 0, Category: model.CategoryBeverage, ServingSize: "1 cup", ServingGrams: 150},
	{ID: "black-coffee", Name: "Black Coffee", NameHindi: "ब्लैक कॉफी", Calories: 2, Protein: 0.3, Carbs: 0, Fat: 0, Fiber: 0, Category: model.CategoryBeverage, ServingSize: "1 cup", ServingGrams: 240},
	{ID: "coconut-water", Name: "Coconut Water", NameHindi: "नारियल पानी", Calories: 45, Protein: 2, Carbs: 9, Fat: 0.5, Fiber: 2.6, Category: model.CategoryBeverage, ServingSize: "1 cup", ServingGrams: 240},
	{ID: "nimbu-pani", Name: "Nimbu Pani (Lemonade)", NameHindi: "नींबू पानी", Calories: 50, Protein: 0, Carbs: 13, Fat: 0, Fiber: 0, Category: model.CategoryBeverage, ServingSize: "1 glass", ServingGrams: 250},
	{ID: "green-tea", Name: "Green Tea", NameHindi: "ग्रीन टी", Calories: 2, Protein: 0, Carbs: 0, Fat: 0, Fiber: 0, Category: model.CategoryBeverage, ServingSize: "1 cup", ServingGrams: 240},
}
