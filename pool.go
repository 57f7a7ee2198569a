package lsys

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Breaks collects segment boundaries found while segmenting a word.
// Every entry is the position right after the end of a segment, so for a word
// of length n a complete segmentation ends with n.
//
// Segmenting happens once per generation, over words which may grow large,
// and the boundaries are thrown away as soon as the generation is complete.
// To avoid re-allocating large slices for every pass, Breaks are pooled.
type Breaks struct {
	Positions []int
}

// Add appends a boundary position.
func (b *Breaks) Add(pos int) {
	b.Positions = append(b.Positions, pos)
}

// Len returns the number of boundaries collected.
func (b *Breaks) Len() int {
	return len(b.Positions)
}

// Segment returns the range [from…to) of segment #i.
func (b *Breaks) Segment(i int) (from, to int) {
	if i > 0 {
		from = b.Positions[i-1]
	}
	return from, b.Positions[i]
}

type breaksPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBreaksPool *breaksPool

func init() {
	globalBreaksPool = &breaksPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			b := &Breaks{Positions: make([]int, 0, 256)}
			return b, nil
		})
	globalBreaksPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBreaksPool.opool = pool.NewObjectPool(globalBreaksPool.ctx, factory, config)
}

// BorrowBreaks returns an empty Breaks buffer from the pool. Clients should
// call Release when done with it.
func BorrowBreaks() *Breaks {
	o, err := globalBreaksPool.opool.BorrowObject(globalBreaksPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow break buffer from pool: %v", err)
		return &Breaks{}
	}
	b := o.(*Breaks)
	b.Positions = b.Positions[:0]
	return b
}

// Release clears b and puts it back into the pool.
// b must not be used after it has been released.
func (b *Breaks) Release() {
	if b == nil {
		return
	}
	b.Positions = b.Positions[:0]
	if err := globalBreaksPool.opool.ReturnObject(globalBreaksPool.ctx, b); err != nil {
		CT().Debugf("break buffer not returned to pool: %v", err)
	}
}
