package fractal

import (
	"github.com/npillmayer/lsys"
	"github.com/npillmayer/lsys/dictionary"
	"github.com/npillmayer/lsys/segment"
)

// ApplySemantics interprets word by executing the actions of its patterns
// against payload. word is segmented completely before the first action is
// executed; if segmenting fails, no action is executed at all.
// Actions are executed in textual order. Patterns without an action are
// skipped.
func ApplySemantics[L lsys.Letter, P any](word lsys.Word[L], dict *dictionary.Dictionary[L, P], payload P) error {
	segments, err := segment.Split(word, dict)
	if err != nil {
		tracer().Errorf("fractal: cannot interpret word: %v", err)
		return err
	}
	n := 0
	for _, seg := range segments {
		if a := seg.Entry.Action(); a != nil {
			a.Execute(seg.Word, payload)
			n++
		}
	}
	tracer().Debugf("fractal: executed %d actions for %d segments", n, len(segments))
	return nil
}

// ApplySemantics interprets the generation at depth, executing the actions of
// its patterns against payload.
func (f *Fractal[L, P]) ApplySemantics(depth int, payload P) error {
	w, err := f.Generation(depth)
	if err != nil {
		return err
	}
	return ApplySemantics(w, f.dict, payload)
}
