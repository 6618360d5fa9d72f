// Package selection tracks which genes are currently plotted.
package selection

// DefaultMax is the number of genes that can be selected at once.
const DefaultMax = 5

// Outcome reports what an Add did.
type Outcome int

const (
	Added Outcome = iota
	Duplicate
	AtCapacity
	// Rejected is returned alongside an error when the name was never
	// offered to the store.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Duplicate:
		return "duplicate"
	case AtCapacity:
		return "capacity"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Store is the ordered set of selected names, in selection order, holding at
// most Max entries. It knows nothing about colors or rendering; callers react
// to the returned outcomes.
type Store struct {
	max   int
	names []string
}

// New returns an empty Store. A max below 1 is raised to 1.
func New(max int) *Store {
	if max < 1 {
		max = 1
	}
	return &Store{max: max, names: make([]string, 0, max)}
}

// Add appends name unless it is already selected or the store is full.
// A full store is reported before a duplicate.
func (s *Store) Add(name string) Outcome {
	if len(s.names) >= s.max {
		return AtCapacity
	}
	if s.Contains(name) {
		return Duplicate
	}
	s.names = append(s.names, name)
	return Added
}

// Remove drops name and reports whether it was selected.
func (s *Store) Remove(name string) bool {
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Contains(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

func (s *Store) Len() int {
	return len(s.names)
}

func (s *Store) Max() int {
	return s.max
}

func (s *Store) Full() bool {
	return len(s.names) >= s.max
}

// List returns the selection in insertion order.
func (s *Store) List() []string {
	return append([]string(nil), s.names...)
}
