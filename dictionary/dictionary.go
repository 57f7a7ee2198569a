package dictionary

import (
	"sort"
	"strings"

	"github.com/npillmayer/lsys"
)

// Dictionary maps patterns to entries. Patterns are non-empty words, unique
// by content.
//
// A dictionary is not safe for concurrent use. Clients must not modify it
// while a generation is being computed.
type Dictionary[L lsys.Letter, P any] struct {
	root    *node[L, P]
	size    int // number of patterns
	longest int // length of the longest pattern
}

// node is a node of the pattern trie. A node carrying an entry marks the end
// of a pattern.
type node[L lsys.Letter, P any] struct {
	children map[L]*node[L, P]
	entry    *Entry[L, P]
}

func newNode[L lsys.Letter, P any]() *node[L, P] {
	return &node[L, P]{}
}

func (n *node[L, P]) child(l L) *node[L, P] {
	if n.children == nil {
		return nil
	}
	return n.children[l]
}

// New creates an empty dictionary.
func New[L lsys.Letter, P any]() *Dictionary[L, P] {
	return &Dictionary[L, P]{root: newNode[L, P]()}
}

// FromWords creates a dictionary with an empty entry for each word.
// Each word will be matched during segmenting, but neither be rewritten nor
// carry an action.
func FromWords[L lsys.Letter, P any](words ...lsys.Word[L]) (*Dictionary[L, P], error) {
	d := New[L, P]()
	for _, w := range words {
		if err := d.Insert(w, NewEntry[L, P]()); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Pair is a pattern together with its entry.
type Pair[L lsys.Letter, P any] struct {
	Key   lsys.Word[L]
	Entry Entry[L, P]
}

// FromEntries creates a dictionary from a list of pairs. Later pairs override
// earlier ones with an equal key.
func FromEntries[L lsys.Letter, P any](pairs ...Pair[L, P]) (*Dictionary[L, P], error) {
	d := New[L, P]()
	for _, p := range pairs {
		if err := d.Insert(p.Key, p.Entry); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Insert stores entry for key, replacing any entry stored for an equal key.
// Empty keys are rejected with lsys.ErrEmptyKey.
func (d *Dictionary[L, P]) Insert(key lsys.Word[L], entry Entry[L, P]) error {
	if key.IsEmpty() {
		tracer().Errorf("dictionary: refusing to insert empty key")
		return lsys.ErrEmptyKey
	}
	d.lazyInit()
	n := d.root
	key.Each(func(_ int, l L) bool {
		c := n.child(l)
		if c == nil {
			if n.children == nil {
				n.children = make(map[L]*node[L, P])
			}
			c = newNode[L, P]()
			n.children[l] = c
		}
		n = c
		return true
	})
	if n.entry == nil {
		d.size++
	}
	e := entry
	n.entry = &e
	if key.Len() > d.longest {
		d.longest = key.Len()
	}
	tracer().Debugf("dictionary: %s -> %s", key, entry)
	return nil
}

// Get returns the entry stored for key. Get matches keys exactly.
func (d *Dictionary[L, P]) Get(key lsys.Word[L]) (Entry[L, P], bool) {
	if n := d.find(key); n != nil && n.entry != nil {
		return *n.entry, true
	}
	return Entry[L, P]{}, false
}

// Has is true if key is a pattern of d.
func (d *Dictionary[L, P]) Has(key lsys.Word[L]) bool {
	n := d.find(key)
	return n != nil && n.entry != nil
}

func (d *Dictionary[L, P]) find(key lsys.Word[L]) *node[L, P] {
	if d == nil || d.root == nil || key.IsEmpty() {
		return nil
	}
	n := d.root
	key.Each(func(_ int, l L) bool {
		n = n.child(l)
		return n != nil
	})
	return n
}

// Remove deletes the entry for key. It returns false if key has not been a
// pattern of d.
func (d *Dictionary[L, P]) Remove(key lsys.Word[L]) bool {
	if d == nil || d.root == nil || key.IsEmpty() {
		return false
	}
	path := make([]*node[L, P], 0, key.Len()+1)
	path = append(path, d.root)
	n := d.root
	key.Each(func(_ int, l L) bool {
		n = n.child(l)
		if n != nil {
			path = append(path, n)
		}
		return n != nil
	})
	if n == nil || n.entry == nil {
		return false
	}
	n.entry = nil
	d.size--
	// prune nodes which neither end a pattern nor lead to one
	letters := key.Letters()
	for i := len(path) - 1; i > 0; i-- {
		if path[i].entry != nil || len(path[i].children) > 0 {
			break
		}
		delete(path[i-1].children, letters[i-1])
	}
	if key.Len() == d.longest {
		d.longest = d.root.height()
	}
	return true
}

// height returns the length of the longest pattern below n.
func (n *node[L, P]) height() int {
	h := 0
	for _, c := range n.children {
		if ch := c.height() + 1; ch > h {
			h = ch
		}
	}
	return h
}

// Len returns the number of patterns in d.
func (d *Dictionary[L, P]) Len() int {
	if d == nil {
		return 0
	}
	return d.size
}

// MaxKeyLen returns the length of the longest pattern in d.
func (d *Dictionary[L, P]) MaxKeyLen() int {
	if d == nil {
		return 0
	}
	return d.longest
}

// Keys returns all patterns of d, ordered by their display form.
// The order is for the convenience of humans; segmenting does not depend
// on it.
func (d *Dictionary[L, P]) Keys() []lsys.Word[L] {
	if d == nil || d.root == nil {
		return nil
	}
	keys := make([]lsys.Word[L], 0, d.size)
	var prefix []L
	var collect func(*node[L, P])
	collect = func(n *node[L, P]) {
		if n.entry != nil {
			keys = append(keys, lsys.FromLetters(prefix...))
		}
		for l, c := range n.children {
			prefix = append(prefix, l)
			collect(c)
			prefix = prefix[:len(prefix)-1]
		}
	}
	collect(d.root)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}

func (d *Dictionary[L, P]) String() string {
	var sb strings.Builder
	sb.WriteString("Dictionary {\n")
	for _, k := range d.Keys() {
		e, _ := d.Get(k)
		sb.WriteString("\t")
		sb.WriteString(k.String())
		sb.WriteString(" -> ")
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (d *Dictionary[L, P]) lazyInit() {
	if d.root == nil {
		d.root = newNode[L, P]()
	}
}

// --- Cursor ----------------------------------------------------------------

// Cursor walks the pattern trie of a dictionary, one letter at a time.
// It is a one-off iterator: after Advance has returned false, the cursor
// is exhausted.
//
// Usage, finding the longest pattern which is a prefix of some text:
//
//	c := dict.Cursor()
//	longest := 0
//	for i := 0; i < text.Len() && c.Advance(letterAt(i)); i++ {
//	    if _, ok := c.Entry(); ok {
//	        longest = c.Depth()
//	    }
//	}
type Cursor[L lsys.Letter, P any] struct {
	n     *node[L, P]
	depth int
}

// Cursor returns a new cursor positioned at the root of the trie, i.e. at
// the empty prefix.
func (d *Dictionary[L, P]) Cursor() Cursor[L, P] {
	if d == nil {
		return Cursor[L, P]{}
	}
	d.lazyInit()
	return Cursor[L, P]{n: d.root}
}

// Advance extends the current prefix by l. It returns false if no pattern
// starts with the extended prefix.
func (c *Cursor[L, P]) Advance(l L) bool {
	if c.n == nil {
		return false
	}
	c.n = c.n.child(l)
	if c.n == nil {
		return false
	}
	c.depth++
	return true
}

// Entry returns the entry for the current prefix, if the prefix is a pattern.
func (c *Cursor[L, P]) Entry() (Entry[L, P], bool) {
	if c.n == nil || c.n.entry == nil {
		return Entry[L, P]{}, false
	}
	return *c.n.entry, true
}

// Depth returns the length of the current prefix.
func (c *Cursor[L, P]) Depth() int {
	return c.depth
}
