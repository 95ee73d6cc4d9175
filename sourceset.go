// File: slate/sourceset.go
package slate

import (
	"iter"
	"math"
	"slices"
	"sort"
)

// DefaultPriority is assigned to locators added without an explicit
// priority. It is the maximum representable int, so such locators are
// searched last on reads and become the default write destination.
const DefaultPriority = math.MaxInt

// SourceSet is an ordered collection of locators keyed by an integer
// priority. Lower priorities are consulted first. Locators sharing a
// priority keep their insertion order, so traversal is a total order
// and reproducible across runs.
//
// SourceSet is not safe for concurrent use on its own; the Container
// guards its set with the container lock.
type SourceSet struct {
	entries []sourceEntry
	nextSeq int
}

type sourceEntry struct {
	loc      Locator
	priority int
	seq      int
}

// NewSourceSet returns an empty source set.
func NewSourceSet() *SourceSet {
	return &SourceSet{}
}

// Add inserts a locator at the given priority. Duplicate priorities
// are allowed; insertion order among equal priorities is preserved.
// A nil locator is rejected with ErrNilLocator.
func (s *SourceSet) Add(loc Locator, priority int) error {
	if loc == nil {
		return ErrNilLocator
	}

	entry := sourceEntry{loc: loc, priority: priority, seq: s.nextSeq}
	s.nextSeq++

	// Binary insertion keeps the slice sorted by (priority, seq).
	// Search finds the first entry with a strictly greater priority,
	// so a new entry lands after all existing equals.
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].priority > priority
	})
	s.entries = slices.Insert(s.entries, i, entry)

	return nil
}

// All returns a lazy traversal of the locators in ascending
// (priority, insertion) order. Each call produces a fresh traversal.
func (s *SourceSet) All() iter.Seq[Locator] {
	return func(yield func(Locator) bool) {
		for _, e := range s.entries {
			if !yield(e.loc) {
				return
			}
		}
	}
}

// Len returns the number of registered locators.
func (s *SourceSet) Len() int {
	return len(s.entries)
}

// Last returns the locator with the greatest priority value, i.e. the
// one searched last. The second return is false if the set is empty.
func (s *SourceSet) Last() (Locator, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[len(s.entries)-1].loc, true
}
