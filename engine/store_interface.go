package engine

import (
	"github.com/lixenwraith/hebi/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World uses it to strip a destroyed entity from every store
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}
