package model

import "sync"

// GridPool recycles superseded grids so steady-state stepping allocates
// nothing. Grids handed out are always cleared and sized first.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid of the requested dimension from the pool
func (p *GridPool) Get(size int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(size)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	g.Clear()
	p.pool.Put(g)
}
