package fractal

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/lsys"
	"github.com/npillmayer/lsys/dictionary"
	"github.com/npillmayer/lsys/segment"
)

// ErrDepthExceeded is returned for generation depths above the maximum depth of a fractal.
// ErrWordTooLong is returned if a generation would grow beyond the maximum length of a fractal.
var (
	ErrDepthExceeded = errors.New("generation depth exceeds maximum")
	ErrWordTooLong   = errors.New("generation exceeds maximum word length")
)

// DefaultMaxDepth is the maximum generation depth of fractals created without
// option MaxDepth.
const DefaultMaxDepth = 16

// Fractal holds the axiom of an L-system, its dictionary and the generations
// computed so far.
//
// A fractal is not safe for concurrent use. Its dictionary must not be
// modified while a generation is being computed.
type Fractal[L lsys.Letter, P any] struct {
	dict        *dictionary.Dictionary[L, P]
	generations *arraylist.List // of lsys.Word[L]; index 0 is the axiom
	maxDepth    int
	maxLength   int // 0 = unlimited
}

// New creates a fractal for a start word and a dictionary.
// Generations are not computed before they are asked for.
func New[L lsys.Letter, P any](axiom lsys.Word[L], dict *dictionary.Dictionary[L, P],
	opts ...Option) (*Fractal[L, P], error) {
	//
	if dict == nil {
		return nil, segment.ErrNoDictionary
	}
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxLength > 0 && axiom.Len() > o.maxLength {
		return nil, fmt.Errorf("axiom of length %d: %w", axiom.Len(), ErrWordTooLong)
	}
	f := &Fractal[L, P]{
		dict:        dict,
		generations: arraylist.New(axiom),
		maxDepth:    o.maxDepth,
		maxLength:   o.maxLength,
	}
	return f, nil
}

// Axiom returns the start word, i.e. generation 0.
func (f *Fractal[L, P]) Axiom() lsys.Word[L] {
	return f.at(0)
}

// Dictionary returns the dictionary of f.
func (f *Fractal[L, P]) Dictionary() *dictionary.Dictionary[L, P] {
	return f.dict
}

// Depth returns the depth of the deepest generation computed so far.
func (f *Fractal[L, P]) Depth() int {
	return f.generations.Size() - 1
}

// MaxDepth returns the maximum generation depth of f.
func (f *Fractal[L, P]) MaxDepth() int {
	return f.maxDepth
}

// Generation returns the word at generation depth. Generations up to depth
// are computed and cached as necessary.
//
// If computing a generation fails, the error is returned and generations
// computed before stay cached. Depths above the maximum depth of f are
// rejected with ErrDepthExceeded.
func (f *Fractal[L, P]) Generation(depth int) (lsys.Word[L], error) {
	if depth < 0 {
		return lsys.Word[L]{}, &lsys.IndexError{Index: depth, Len: f.generations.Size()}
	}
	if depth > f.maxDepth {
		return lsys.Word[L]{}, fmt.Errorf("depth %d > %d: %w", depth, f.maxDepth, ErrDepthExceeded)
	}
	for d := f.Depth(); d < depth; d++ {
		next, err := advance(f.at(d), f.dict, f.maxLength)
		if err != nil {
			tracer().P("depth", strconv.Itoa(d+1)).Errorf("fractal: %v", err)
			return lsys.Word[L]{}, err
		}
		f.generations.Add(next)
		tracer().P("depth", strconv.Itoa(d+1)).Infof("fractal: generation has %d letters", next.Len())
	}
	return f.at(depth), nil
}

// Reset drops all cached generations except the axiom. Clients call Reset
// after changing the dictionary of f.
func (f *Fractal[L, P]) Reset() {
	for f.generations.Size() > 1 {
		f.generations.Remove(f.generations.Size() - 1)
	}
}

func (f *Fractal[L, P]) at(depth int) lsys.Word[L] {
	w, ok := f.generations.Get(depth)
	if !ok {
		return lsys.Word[L]{}
	}
	return w.(lsys.Word[L])
}

// --- Rewriting -------------------------------------------------------------

// Advance computes the successor generation of current: current is segmented
// into patterns of dict, and every pattern is replaced by its replacement, if
// it has one. Patterns without a replacement are kept.
//
// Advance is all-or-nothing: if current does not segment completely, the
// segmenting error is returned and no word is produced.
func Advance[L lsys.Letter, P any](current lsys.Word[L], dict *dictionary.Dictionary[L, P]) (lsys.Word[L], error) {
	return advance(current, dict, 0)
}

func advance[L lsys.Letter, P any](current lsys.Word[L], dict *dictionary.Dictionary[L, P],
	maxLength int) (lsys.Word[L], error) {
	//
	segments, err := segment.Split(current, dict)
	if err != nil {
		return lsys.Word[L]{}, err
	}
	pieces := make([]lsys.Word[L], len(segments))
	length := 0
	for i, seg := range segments {
		pieces[i] = seg.Word
		if r, ok := seg.Entry.Replacement(); ok {
			pieces[i] = r
		}
		length += pieces[i].Len()
	}
	if maxLength > 0 && length > maxLength {
		return lsys.Word[L]{}, fmt.Errorf("length %d > %d: %w", length, maxLength, ErrWordTooLong)
	}
	var b lsys.Builder[L]
	b.Grow(length)
	for _, p := range pieces {
		b.WriteWord(p)
	}
	return b.Word(), nil
}

// --- Options ---------------------------------------------------------------

// Option configures a fractal.
type Option func(o *options)

type options struct {
	maxDepth  int
	maxLength int
}

// MaxDepth sets the maximum generation depth a fractal will compute.
// Words usually grow exponentially with depth. Values < 0 are ignored.
func MaxDepth(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxDepth = n
		}
	}
}

// MaxLength limits the length of generations. A generation longer than n
// letters is not computed, but reported as ErrWordTooLong. n = 0 means
// unlimited.
func MaxLength(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxLength = n
		}
	}
}
