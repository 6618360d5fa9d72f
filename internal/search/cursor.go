package search

// Cursor tracks the active row of a suggestion list. Index -1 means no row
// is active; moving past either end wraps around.
type Cursor struct {
	items  []string
	active int
}

func NewCursor(items []string) Cursor {
	return Cursor{items: items, active: -1}
}

func (c *Cursor) Down() {
	c.move(1)
}

func (c *Cursor) Up() {
	c.move(-1)
}

func (c *Cursor) move(delta int) {
	n := len(c.items)
	if n == 0 {
		c.active = -1
		return
	}
	c.active += delta
	if c.active >= n {
		c.active = 0
	}
	if c.active < 0 {
		c.active = n - 1
	}
}

// Set activates row i when it is in range.
func (c *Cursor) Set(i int) bool {
	if i < 0 || i >= len(c.items) {
		return false
	}
	c.active = i
	return true
}

// Active returns the active item, if any.
func (c Cursor) Active() (string, bool) {
	if c.active < 0 || c.active >= len(c.items) {
		return "", false
	}
	return c.items[c.active], true
}

func (c Cursor) Index() int {
	return c.active
}

func (c Cursor) Items() []string {
	return c.items
}

func (c Cursor) Len() int {
	return len(c.items)
}
