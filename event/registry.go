package event

var typeNames = [eventTypeCount]string{
	EventSound:        "Sound",
	EventScore:        "Score",
	EventSnakeSpawned: "SnakeSpawned",
	EventSnakeDied:    "SnakeDied",
	EventFoodSpawned:  "FoodSpawned",
}

// String returns the event name used in logs
func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return typeNames[t]
	}
	return "Unknown"
}
