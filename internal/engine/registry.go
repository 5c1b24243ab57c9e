package engine

import "fmt"

// ComponentFactory creates a Component from JSON props.
type ComponentFactory func(props map[string]any) Component

// ComponentSerializer converts a Component back to props for JSON saving.
// Returns nil if the component is not of the serializer's kind.
type ComponentSerializer func(c Component) map[string]any

type registryEntry struct {
	factory    ComponentFactory
	serializer ComponentSerializer
}

var componentRegistry = map[string]registryEntry{}

// RegisterComponent registers a named component kind with a factory and an
// optional serializer. The serializer is used when saving a scene to JSON.
func RegisterComponent(name string, factory ComponentFactory, serializer ComponentSerializer) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = registryEntry{factory: factory, serializer: serializer}
}

// CreateComponent looks up a registered kind by name and creates it with the
// given props. Returns nil for unknown names.
func CreateComponent(name string, props map[string]any) Component {
	entry, ok := componentRegistry[name]
	if !ok {
		return nil
	}
	return entry.factory(props)
}

// SerializeComponent tries to serialize a component by checking all
// registered kinds. Returns (name, props, true) if found.
func SerializeComponent(c Component) (string, map[string]any, bool) {
	for name, entry := range componentRegistry {
		if entry.serializer == nil {
			continue
		}
		props := entry.serializer(c)
		if props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// RegisteredComponents returns a sorted list of all registered kind names.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	// Sort for consistent ordering in listings
	for i := 0; i < len(names)-1; i++ {
		for j := i + 1; j < len(names); j++ {
			if names[i] > names[j] {
				names[i], names[j] = names[j], names[i]
			}
		}
	}
	return names
}
