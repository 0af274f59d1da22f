// Package catalog keeps the demo's mutable item list. Items are created from
// plain labels and deduplicated by a derived identifier, so typing a label
// twice never yields two entries.
package catalog

import (
	"strings"
	"sync"

	"github.com/emirpasic/gods/v2/lists/arraylist"
)

// Item is one selectable entry
type Item struct {
	ID    string
	Label string
}

// Catalog is a deduplicated item list safe for concurrent use
type Catalog struct {
	mu   sync.Mutex
	list *arraylist.List[Item]
}

// New builds a catalog from seed labels, dropping blanks and duplicates
func New(labels ...string) *Catalog {
	c := &Catalog{list: arraylist.New[Item]()}
	for _, label := range labels {
		c.Add(label)
	}
	return c
}

// Add creates an item from label and appends it. The second return is false
// when the label is blank or an item with the same identifier exists.
func (c *Catalog) Add(label string) (Item, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Item{}, false
	}
	id := slug(label)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(id) >= 0 {
		return Item{}, false
	}
	item := Item{ID: id, Label: label}
	c.list.Add(item)
	return item, true
}

// Remove deletes the item with the given identifier
func (c *Catalog) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.list.Remove(i)
	return true
}

// Items returns a snapshot in insertion order
func (c *Catalog) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Values()
}

// Labels returns the item labels in insertion order
func (c *Catalog) Labels() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	labels := make([]string, 0, c.list.Size())
	for i := 0; i < c.list.Size(); i++ {
		if item, ok := c.list.Get(i); ok {
			labels = append(labels, item.Label)
		}
	}
	return labels
}

// Len reports the number of items
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Size()
}

func (c *Catalog) indexOf(id string) int {
	for i := 0; i < c.list.Size(); i++ {
		if item, ok := c.list.Get(i); ok && item.ID == id {
			return i
		}
	}
	return -1
}

// slug lowercases the label and keeps letters, digits and dashes. Labels
// that reduce to nothing, all-symbol ones for instance, fall back to the
// trimmed lowercase label so they still get a usable identifier.
func slug(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return strings.ToLower(label)
	}
	return b.String()
}
