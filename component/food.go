package component

// FoodComponent tags an edible entity
// Variant indexes the food palette and is drawn from the food stream at spawn
type FoodComponent struct {
	Variant int
}
