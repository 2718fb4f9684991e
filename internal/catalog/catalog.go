// Package catalog provides the built-in activity templates users pick from.
// The scheduling core never inspects templates beyond name, category, and
// default duration; everything else is display payload.
package catalog

// Activity is a catalog template, distinct from a scheduled placement.
type Activity struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	Category      string `json:"category"`
	Duration      int    `json:"duration"` // default minutes
	Description   string `json:"description"`
	NeedsLocation bool   `json:"needs_location"`
}

// Categories lists the catalog's category keys in display order.
var Categories = []string{"food", "outdoor", "entertainment", "relaxation", "social", "creative", "errands"}

var builtin = []Activity{
	{ID: "brunch", Name: "Brunch", Icon: "Utensils", Category: "food", Duration: 120, Description: "Enjoy a leisurely brunch with friends or family", NeedsLocation: true},
	{ID: "hiking", Name: "Hiking", Icon: "Hiking", Category: "outdoor", Duration: 180, Description: "Explore nature trails and get some fresh air", NeedsLocation: true},
	{ID: "movie", Name: "Movie Night", Icon: "Film", Category: "entertainment", Duration: 150, Description: "Watch a great film at home or theater", NeedsLocation: true},
	{ID: "reading", Name: "Reading", Icon: "Book", Category: "relaxation", Duration: 90, Description: "Dive into a good book and unwind"},
	{ID: "coffee", Name: "Coffee Date", Icon: "Coffee", Category: "social", Duration: 60, Description: "Catch up over coffee with someone special", NeedsLocation: true},
	{ID: "gaming", Name: "Gaming", Icon: "Gamepad2", Category: "entertainment", Duration: 120, Description: "Play your favorite video games"},
	{ID: "music", Name: "Music Session", Icon: "Music", Category: "creative", Duration: 90, Description: "Listen to music or play an instrument"},
	{ID: "photography", Name: "Photography", Icon: "Camera", Category: "creative", Duration: 120, Description: "Capture beautiful moments with your camera", NeedsLocation: true},
	{ID: "shopping", Name: "Shopping", Icon: "ShoppingBag", Category: "errands", Duration: 150, Description: "Browse stores and find something special", NeedsLocation: true},
	{ID: "yoga", Name: "Yoga or Meditation", Icon: "Activity", Category: "relaxation", Duration: 60, Description: "Mindful stretch and calm"},
	{ID: "cooking", Name: "Cooking a New Recipe", Icon: "ChefHat", Category: "food", Duration: 90, Description: "Try something new in the kitchen"},
	{ID: "picnic", Name: "Picnic in the Park", Icon: "Sun", Category: "outdoor", Duration: 120, Description: "Pack snacks and relax", NeedsLocation: true},
	{ID: "cycling", Name: "Cycling", Icon: "Bike", Category: "outdoor", Duration: 90, Description: "Ride around your city", NeedsLocation: true},
	{ID: "painting", Name: "Painting or Drawing", Icon: "Palette", Category: "creative", Duration: 120, Description: "Express yourself on canvas"},
	{ID: "explore_cafe", Name: "Explore a New Café/Restaurant", Icon: "Utensils", Category: "food", Duration: 90, Description: "Try a new spot nearby", NeedsLocation: true},
	{ID: "museum", Name: "Visit a Museum / Art Gallery", Icon: "Building", Category: "entertainment", Duration: 120, Description: "Culture and inspiration", NeedsLocation: true},
	{ID: "gardening", Name: "Gardening", Icon: "Flower", Category: "relaxation", Duration: 90, Description: "Hands in the soil"},
	{ID: "local_event", Name: "Local Event / Concert", Icon: "Music", Category: "entertainment", Duration: 120, Description: "Find something happening nearby", NeedsLocation: true},
	{ID: "road_trip", Name: "Road Trip / Short Drive", Icon: "Car", Category: "outdoor", Duration: 180, Description: "Explore the surroundings", NeedsLocation: true},
	{ID: "family_board_game", Name: "Family Board Game Night", Icon: "Gamepad2", Category: "social", Duration: 120, Description: "Fun games with family"},
	{ID: "exercise", Name: "Exercise / Workout", Icon: "Dumbbell", Category: "relaxation", Duration: 60, Description: "Get your body moving and stay fit"},
	{ID: "meditation", Name: "Meditation", Icon: "Zap", Category: "relaxation", Duration: 30, Description: "Find inner peace and mindfulness"},
}

// Builtin returns a copy of the built-in template list.
func Builtin() []Activity {
	out := make([]Activity, len(builtin))
	copy(out, builtin)
	return out
}

// Find looks up a template by id.
func Find(id string) (Activity, bool) {
	for _, a := range builtin {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// ByCategory returns the templates in the given category, preserving order.
func ByCategory(category string) []Activity {
	var out []Activity
	for _, a := range builtin {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// Custom builds a one-off template for activities the catalog doesn't cover.
func Custom(name, category string, duration int) Activity {
	return Activity{
		ID:       "custom",
		Name:     name,
		Icon:     "Star",
		Category: category,
		Duration: duration,
	}
}
