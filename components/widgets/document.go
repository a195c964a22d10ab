package widgets

import "sync"

// MemoryDocument keeps rendered markup per container id. Servers use it to
// hand the latest fragment back to the client; tests use it to inspect output.
type MemoryDocument struct {
	mu         sync.RWMutex
	containers map[string]*MemoryContainer
}

// NewMemoryDocument creates a document with the provided container ids.
func NewMemoryDocument(ids ...string) *MemoryDocument {
	doc := &MemoryDocument{containers: make(map[string]*MemoryContainer, len(ids))}
	for _, id := range ids {
		doc.Add(id)
	}
	return doc
}

// Add registers a container and returns it. Existing containers are reused.
func (d *MemoryDocument) Add(id string) *MemoryContainer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c, ok := d.containers[id]; ok {
		return c
	}
	c := &MemoryContainer{id: id}
	d.containers[id] = c
	return c
}

// Container satisfies Document.
func (d *MemoryDocument) Container(id string) (Container, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.containers[id]
	if !ok {
		return nil, false
	}
	return c, true
}

// Content returns the last markup written to the container.
func (d *MemoryDocument) Content(id string) string {
	d.mu.RLock()
	c, ok := d.containers[id]
	d.mu.RUnlock()
	if !ok {
		return ""
	}
	return c.Content()
}

// MemoryContainer stores the most recent render and a write counter.
type MemoryContainer struct {
	id      string
	mu      sync.RWMutex
	content string
	writes  int
}

// ID satisfies Container.
func (c *MemoryContainer) ID() string { return c.id }

// SetContent satisfies Container.
func (c *MemoryContainer) SetContent(html string) {
	c.mu.Lock()
	c.content = html
	c.writes++
	c.mu.Unlock()
}

// Content returns the last rendered markup.
func (c *MemoryContainer) Content() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.content
}

// Writes reports how many renders reached the container.
func (c *MemoryContainer) Writes() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.writes
}

func lookupContainer(doc Document, id string) Container {
	if doc == nil || id == "" {
		return nil
	}
	c, ok := doc.Container(id)
	if !ok {
		return nil
	}
	return c
}
