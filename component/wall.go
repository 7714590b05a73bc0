package component

// CollidableComponent marks an entity a snake head dies on
// Kept on dying segments until the entity is removed
type CollidableComponent struct{}

// WallComponent tags static level geometry
type WallComponent struct{}
