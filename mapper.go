package hypermedia

import (
	"bytes"
	"encoding/json"
)

// Field naming strategies carried by a Mapper. The strategy is configuration
// consumed by format handlers; the Mapper itself does not rewrite field names.
const (
	NamingAsIs      = "as-is"
	NamingSnakeCase = "snake_case"
	NamingCamelCase = "camelCase"
)

// Mapper is the shared base codec template pipelines are built from.
//
// A Mapper carries serialization configuration: a field naming strategy,
// a strict-unknown-fields flag, and the modules and handlers registered on
// it. Pipelines never use the base Mapper directly; they Clone it and apply
// one format overlay to the clone, so the base stays untouched across
// registration passes.
//
// A frozen Mapper rejects all further mutation with ErrMapperFrozen.
// Pipelines freeze their clone at construction, which is what makes them
// safe to share across request-handling goroutines.
type Mapper struct {
	naming     string
	strict     bool
	modules    []Module
	handlers   map[string]any
	hypermedia bool
	frozen     bool
}

// NewMapper returns a Mapper with default configuration: as-is field naming
// and strict unknown-field rejection.
func NewMapper() *Mapper {
	return &Mapper{
		naming:   NamingAsIs,
		strict:   true,
		handlers: make(map[string]any),
	}
}

// Naming returns the field naming strategy.
func (m *Mapper) Naming() string { return m.naming }

// SetNaming sets the field naming strategy.
func (m *Mapper) SetNaming(naming string) error {
	if m.frozen {
		return ErrMapperFrozen
	}
	m.naming = naming
	return nil
}

// Strict reports whether unmarshaling rejects unknown fields.
func (m *Mapper) Strict() bool { return m.strict }

// SetStrict toggles unknown-field rejection.
func (m *Mapper) SetStrict(strict bool) error {
	if m.frozen {
		return ErrMapperFrozen
	}
	m.strict = strict
	return nil
}

// Frozen reports whether the Mapper still accepts mutation.
func (m *Mapper) Frozen() bool { return m.frozen }

// freeze makes all subsequent mutation fail with ErrMapperFrozen.
func (m *Mapper) freeze() { m.frozen = true }

// Modules returns the modules registered on the Mapper, in registration order.
func (m *Mapper) Modules() []Module {
	return append([]Module(nil), m.modules...)
}

// HasModule reports whether a module with the given name is registered.
func (m *Mapper) HasModule(name string) bool {
	for _, mod := range m.modules {
		if mod.Name() == name {
			return true
		}
	}
	return false
}

// HasHypermediaModule reports whether a HAL-family module is registered.
// This is the marker the duplicate guard checks.
func (m *Mapper) HasHypermediaModule() bool { return m.hypermedia }

// RegisterModule installs a module on the Mapper.
func (m *Mapper) RegisterModule(mod Module) error {
	if m.frozen {
		return ErrMapperFrozen
	}
	m.installModule(mod)
	return nil
}

// installModule appends the module, records the family marker, and lets the
// module register its handlers. Callers must hold an unfrozen Mapper.
func (m *Mapper) installModule(mod Module) {
	m.modules = append(m.modules, mod)
	if mod.Family() == FamilyHAL {
		m.hypermedia = true
	}
	mod.Apply(m)
}

// SetHandler registers a named serializer handler.
func (m *Mapper) SetHandler(name string, handler any) error {
	if m.frozen {
		return ErrMapperFrozen
	}
	m.setHandler(name, handler)
	return nil
}

func (m *Mapper) setHandler(name string, handler any) {
	m.handlers[name] = handler
}

// Handler returns the handler registered under name.
func (m *Mapper) Handler(name string) (any, bool) {
	h, ok := m.handlers[name]
	return h, ok
}

// Handlers returns the names of all registered handlers.
func (m *Mapper) Handlers() []string {
	names := make([]string, 0, len(m.handlers))
	for name := range m.handlers {
		names = append(names, name)
	}
	return names
}

// Clone returns a deep-enough copy of the Mapper: the module list and
// handler registry are copied, so registering modules or handlers on the
// clone is invisible to the original and to sibling clones. Modules and
// handlers themselves are immutable values and are shared.
//
// The clone is mutable regardless of the receiver's frozen state.
func (m *Mapper) Clone() *Mapper {
	clone := &Mapper{
		naming:     m.naming,
		strict:     m.strict,
		hypermedia: m.hypermedia,
		modules:    append([]Module(nil), m.modules...),
		handlers:   make(map[string]any, len(m.handlers)),
	}
	for name, handler := range m.handlers {
		clone.handlers[name] = handler
	}
	return clone
}

// Marshal encodes v as JSON.
func (m *Mapper) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v, rejecting unknown fields when the
// Mapper is strict.
func (m *Mapper) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if m.strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(v)
}
