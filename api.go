// Package hypermedia builds and registers content-type converters for
// hypermedia representation formats.
//
// Given a set of enabled formats (HAL, HAL-FORMS, Collection+JSON), a
// Registry constructs one isolated serialization pipeline per format and
// prepends each to an ordered converter chain consulted during content
// negotiation. The format encoders themselves live elsewhere; this package
// configures and installs the pipelines that front them.
//
// # Pipelines
//
// Every pipeline is built from a shared base Mapper, which is cloned per
// format and never mutated. The clone gets unknown-field tolerance, exactly
// one format overlay module, and the format's media types, then is frozen.
// Frozen pipelines are safe for concurrent read use.
//
// # Duplicate detection
//
// Registration is idempotent at chain level: if any chain entry backed by
// the shared codec family already carries a HAL-family module, the whole
// pass is skipped. See Registry.Register.
//
// # Basic Usage
//
//	registry := hypermedia.New(
//	    hypermedia.WithRelationResolver(hypermedia.DefaultRelationResolver{}),
//	    hypermedia.WithResolverLookup(lookup),
//	)
//
//	chain := hypermedia.NewChain(existing...)
//	err := registry.Register(ctx, chain, hypermedia.Formats(
//	    hypermedia.FormatHAL,
//	    hypermedia.FormatHALForms,
//	))
//
//	conv, ok := chain.Select("application/hal+json")
//
// # Dependencies
//
// All collaborators are injected explicitly via options:
//
//   - WithRelationResolver: required, derives link relation names
//   - WithResolverLookup: required, serves the link relation MessageResolver
//   - WithBaseMapper: optional, defaults to a fresh Mapper
//   - WithCurieResolver: optional, defaults to no prefixing
//   - WithHALConfiguration, WithHALFormsConfiguration: optional, defaulted
package hypermedia

// Converter is one entry in a content-negotiation chain: it owns a set of
// media types and encodes/decodes response bodies for them.
type Converter interface {
	// MediaTypes returns the media types this converter produces and consumes.
	MediaTypes() []string

	// Marshal encodes v into the converter's wire representation.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// MapperCarrier marks a Converter as backed by this package's Mapper codec
// family. The duplicate guard only inspects entries that implement it.
type MapperCarrier interface {
	// Mapper returns the backing codec configuration.
	Mapper() *Mapper
}

// Override interfaces allow domain types to bypass name-derived relation
// resolution. When a type implements one of these, DefaultRelationResolver
// calls the interface method instead of deriving a name from type metadata.

// Relatable overrides the relation name used for a single resource.
type Relatable interface {
	// ItemRelation returns the link relation for one instance of the type.
	ItemRelation() string
}

// CollectionRelatable overrides the relation name used for a collection.
type CollectionRelatable interface {
	// CollectionRelation returns the link relation for a collection of the type.
	CollectionRelation() string
}
