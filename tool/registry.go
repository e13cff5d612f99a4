package tool

import "sort"

// Registry maps tool names to tools. Adding a tool under an existing name
// replaces the previous registration; there is no removal.
//
// Registry is not safe for concurrent mutation; agents populate it at
// construction and only read it afterwards.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates a registry pre-populated with tools (later entries win
// on name collision).
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.Add(t)
	}
	return r
}

// Add registers t under t.Name(). A nil tool is ignored.
func (r *Registry) Add(t Tool) {
	if t == nil {
		return
	}
	r.tools[t.Name()] = t
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for n := range r.tools {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.tools) }
