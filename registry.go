package fader

// Registry maps concrete addon names to the Element that owns them. Each
// addon belongs to exactly one element; the first registration wins.
// Iteration order is registration order.
type Registry struct {
	owner    map[string]Element
	order    []string
	byElem   map[Element][]string
	elements []Element
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		owner:  make(map[string]Element),
		byElem: make(map[Element][]string),
	}
}

// Register assigns addons to element. Addons already owned by any element
// are skipped. It returns the number of addons that were newly added.
func (r *Registry) Register(element Element, addons ...string) int {
	if _, ok := r.byElem[element]; !ok {
		r.byElem[element] = nil
		r.elements = append(r.elements, element)
	}
	added := 0
	for _, name := range addons {
		if name == "" {
			continue
		}
		if _, taken := r.owner[name]; taken {
			continue
		}
		r.owner[name] = element
		r.order = append(r.order, name)
		r.byElem[element] = append(r.byElem[element], name)
		added++
	}
	return added
}

// Element returns the element owning addon.
func (r *Registry) Element(addon string) (Element, bool) {
	e, ok := r.owner[addon]
	return e, ok
}

// Addons returns every registered addon in registration order. The returned
// slice MUST NOT be mutated.
func (r *Registry) Addons() []string {
	return r.order
}

// AddonsOf returns the addons owned by element. The returned slice MUST NOT
// be mutated.
func (r *Registry) AddonsOf(element Element) []string {
	return r.byElem[element]
}

// Elements returns every element seen by Register, in first-seen order.
func (r *Registry) Elements() []Element {
	return r.elements
}

// Len returns the number of registered addons.
func (r *Registry) Len() int {
	return len(r.order)
}
