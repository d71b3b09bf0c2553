package engine

import (
	"github.com/lixenwraith/blocksmash/core"
)

// AnyStore is the type-erased view World uses to strip an entity from every store on destroy
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

var (
	_ AnyStore = (*Store[struct{}])(nil)
)
