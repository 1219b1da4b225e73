package hypermedia

// Family classifies the codec family a module belongs to. The duplicate
// guard keys on FamilyHAL: registering any HAL-family module marks the
// Mapper as hypermedia-configured.
type Family string

const (
	// FamilyGeneral modules carry no duplicate-guard marker.
	FamilyGeneral Family = "general"

	// FamilyHAL modules mark the Mapper as hypermedia-configured.
	FamilyHAL Family = "hal"
)

// Module is a bundle of serializer customizations applied to a Mapper clone
// when a pipeline is built. Modules are immutable values; one module is
// registered per pipeline.
type Module interface {
	// Name identifies the module within a Mapper.
	Name() string

	// Family returns the codec family the module belongs to.
	Family() Family

	// Apply registers the module's handlers on m. Called once by the Mapper
	// during module registration.
	Apply(m *Mapper)
}
