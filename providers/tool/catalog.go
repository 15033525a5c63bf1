package tool

import (
	"sort"
	"strings"
	"sync"

	"github.com/askweb/askweb/providers/ai"
)

// Catalog is a thread-safe registry mapping tool names to tools. Lookup is
// case-insensitive because models occasionally change the casing of tool
// names they were given.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]GenericTool
}

// NewCatalog creates a new empty tool catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tools: make(map[string]GenericTool),
	}
}

// NewCatalogWithTools creates a catalog pre-populated with the given tools.
// Tool names are taken from each tool's ToolInfo().Name.
func NewCatalogWithTools(tools ...GenericTool) *Catalog {
	catalog := NewCatalog()
	catalog.AddTools(tools...)
	return catalog
}

// AddTools registers the given tools, replacing any existing tool with the
// same (case-insensitive) name.
func (c *Catalog) AddTools(tools ...GenericTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		info := t.ToolInfo()
		c.tools[strings.ToLower(info.Name)] = t
	}
}

// Get retrieves a tool by name (case-insensitive).
// Returns the tool and true if found, nil and false otherwise.
func (c *Catalog) Get(name string) (GenericTool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, exists := c.tools[strings.ToLower(name)]
	return t, exists
}

// Has reports whether a tool with the given name exists (case-insensitive).
func (c *Catalog) Has(name string) bool {
	_, exists := c.Get(name)
	return exists
}

// Descriptions returns the advertised descriptions of all registered tools,
// sorted by name so the order presented to the model is stable.
func (c *Catalog) Descriptions() []ai.ToolDescription {
	c.mu.RLock()
	defer c.mu.RUnlock()

	descriptions := make([]ai.ToolDescription, 0, len(c.tools))
	for _, t := range c.tools {
		descriptions = append(descriptions, t.ToolInfo())
	}
	sort.Slice(descriptions, func(i, j int) bool {
		return descriptions[i].Name < descriptions[j].Name
	})
	return descriptions
}

// Size returns the number of registered tools.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}
