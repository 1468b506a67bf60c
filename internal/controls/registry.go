package controls

import (
	"golang.org/x/exp/slices"

	"scene-lab/internal/ui"
)

// Section is one category group of the laid-out panel.
type Section struct {
	Category Category
	Controls []Control
}

// Registry is the ordered list of controls shown in one panel. Controls are appended at
// registration and never removed individually; Teardown drops them all.
type Registry struct {
	order    Order
	controls []Control
}

// NewRegistry returns an empty registry that orders categories with order.
func NewRegistry(order Order) *Registry {
	return &Registry{order: order}
}

// Order returns the configured category order.
func (r *Registry) Order() Order {
	return r.order
}

// Register appends c. Registering the same control twice lists it twice.
func (r *Registry) Register(c Control) {
	r.controls = append(r.controls, c)
}

// Controls returns the registered controls in registration order.
func (r *Registry) Controls() []Control {
	out := make([]Control, len(r.controls))
	copy(out, r.controls)
	return out
}

// Len returns the number of registered controls.
func (r *Registry) Len() int {
	return len(r.controls)
}

// Layout groups controls by category key, orders the groups with the registry's Order and
// keeps registration order inside each group. The first name seen for a key is the header.
func (r *Registry) Layout() []Section {
	var sections []Section
	index := make(map[string]int)
	for _, c := range r.controls {
		cat := c.Category()
		i, ok := index[cat.Key]
		if !ok {
			i = len(sections)
			index[cat.Key] = i
			sections = append(sections, Section{Category: cat})
		}
		if sections[i].Category.Name == "" && cat.Name != "" {
			sections[i].Category.Name = cat.Name
		}
		sections[i].Controls = append(sections[i].Controls, c)
	}
	slices.SortStableFunc(sections, func(a, b Section) int {
		return r.order.Compare(a.Category.Key, b.Category.Key)
	})
	return sections
}

// Build clears host and renders the whole panel: for each section a header and divider
// (skipped for the sentinel and for unnamed categories) followed by its controls.
// Every control is destroyed and rendered again, so Build can be called to rebuild.
func (r *Registry) Build(host Host) {
	for _, c := range r.controls {
		c.Destroy()
	}
	host.Clear()
	for _, s := range r.Layout() {
		if s.Category.HasHeader() {
			host.Append(ui.NewNode(ui.TypeHeader, "", "", s.Category.Name))
			host.Append(ui.NewNode(ui.TypeDivider, "", "", ""))
		}
		for _, c := range s.Controls {
			c.Render(host)
		}
	}
}

// Teardown destroys every control, clears host and empties the registry.
func (r *Registry) Teardown(host Host) {
	for _, c := range r.controls {
		c.Destroy()
	}
	host.Clear()
	r.controls = nil
}
