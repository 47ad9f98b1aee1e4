package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grids and their cell maps between generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{cells: NewCellSet()}
			},
		},
	}
}

// Get retrieves an empty grid from the pool with the given extent
func (p *GridPool) Get(dim Dim) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(dim)
	return g
}

// Put returns a grid to the pool, clearing its state. The caller must not use g afterwards.
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}
