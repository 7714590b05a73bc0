package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityGrid     RenderPriority = 100
	PriorityWall     RenderPriority = 150
	PriorityEntities RenderPriority = 200
	PriorityUI       RenderPriority = 400
	PriorityDebug    RenderPriority = 1000
)
