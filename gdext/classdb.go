package gdext

import (
	"fmt"
	"sync"
)

// PropertyInfo describes one editor-visible property of a class.
type PropertyInfo struct {
	ClassName string
	Name      string
	Type      VariantType
	Getter    string
	Setter    string
}

type classEntry struct {
	plugin ClassPlugin
	props  []PropertyInfo
}

// ClassDB is the host-side database of registered classes and their
// properties. It is safe for concurrent use.
type ClassDB struct {
	mu      sync.RWMutex
	order   []string
	classes map[string]*classEntry
}

// NewClassDB returns an empty database.
func NewClassDB() *ClassDB {
	return &ClassDB{classes: map[string]*classEntry{}}
}

// AddClass stores a class record. Class names are unique across the
// database.
func (db *ClassDB) AddClass(p ClassPlugin) error {
	if p.ClassName == "" {
		return fmt.Errorf("gdext: add class: empty class name")
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, dup := db.classes[p.ClassName]; dup {
		return fmt.Errorf("gdext: class %s already registered", p.ClassName)
	}
	db.classes[p.ClassName] = &classEntry{plugin: p}
	db.order = append(db.order, p.ClassName)
	return nil
}

// RegisterProperty declares a property on an already-registered class.
// Property names are unique per class; getter and setter name methods on
// the class binding and are recorded as given.
func (db *ClassDB) RegisterProperty(class, name string, t VariantType, getter, setter string) error {
	if name == "" {
		return fmt.Errorf("gdext: class %s: empty property name", class)
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	entry, ok := db.classes[class]
	if !ok {
		return fmt.Errorf("gdext: class %s not registered, cannot declare property %s", class, name)
	}
	for _, p := range entry.props {
		if p.Name == name {
			return fmt.Errorf("gdext: class %s: property %s already declared", class, name)
		}
	}
	entry.props = append(entry.props, PropertyInfo{
		ClassName: class,
		Name:      name,
		Type:      t,
		Getter:    getter,
		Setter:    setter,
	})
	return nil
}

// Lookup returns the stored record for a class.
func (db *ClassDB) Lookup(class string) (ClassPlugin, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	entry, ok := db.classes[class]
	if !ok {
		return ClassPlugin{}, false
	}
	return entry.plugin, true
}

// Classes returns all registered class names in registration order.
func (db *ClassDB) Classes() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := make([]string, len(db.order))
	copy(out, db.order)
	return out
}

// Properties returns the properties declared on a class in declaration
// order.
func (db *ClassDB) Properties(class string) []PropertyInfo {
	db.mu.RLock()
	defer db.mu.RUnlock()
	entry, ok := db.classes[class]
	if !ok {
		return nil
	}
	out := make([]PropertyInfo, len(entry.props))
	copy(out, entry.props)
	return out
}

// Instantiate constructs an instance of a registered class around the
// given base handle.
func (db *ClassDB) Instantiate(class string, base Base) (Class, error) {
	db.mu.RLock()
	entry, ok := db.classes[class]
	db.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("gdext: class %s not registered", class)
	}
	if entry.plugin.CreateFn == nil {
		return nil, fmt.Errorf("gdext: class %s has no constructor", class)
	}
	return entry.plugin.CreateFn(base), nil
}

// Free releases an instance through the owning class's free function.
func (db *ClassDB) Free(obj Class) error {
	db.mu.RLock()
	entry, ok := db.classes[obj.ClassName()]
	db.mu.RUnlock()
	if !ok {
		return fmt.Errorf("gdext: class %s not registered", obj.ClassName())
	}
	if entry.plugin.FreeFn == nil {
		return fmt.Errorf("gdext: class %s has no free function", obj.ClassName())
	}
	entry.plugin.FreeFn(obj)
	return nil
}
