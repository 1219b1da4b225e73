package hypermedia

import (
	"context"
	"time"
)

// Registry builds one serialization pipeline per enabled format and installs
// each at the front of a converter chain. All collaborators are injected
// explicitly; nothing is looked up from ambient state.
//
// A Registry is constructed once per server-configuration build and used for
// a single registration pass.
type Registry struct {
	base           *Mapper
	relations      RelationResolver
	curies         CurieResolver
	halConfig      HALConfiguration
	halFormsConfig HALFormsConfiguration
	lookup         ResolverLookup
}

// Option configures a Registry.
type Option func(*Registry)

// WithBaseMapper supplies the base codec template pipelines are cloned from.
// The registry never mutates it. Defaults to a fresh Mapper.
func WithBaseMapper(m *Mapper) Option {
	return func(r *Registry) { r.base = m }
}

// WithRelationResolver supplies the relation resolver. Required: Register
// fails with ErrMissingRelationResolver when absent.
func WithRelationResolver(resolver RelationResolver) Option {
	return func(r *Registry) { r.relations = resolver }
}

// WithCurieResolver supplies the curie resolver. Defaults to NoCuries.
func WithCurieResolver(resolver CurieResolver) Option {
	return func(r *Registry) { r.curies = resolver }
}

// WithHALConfiguration supplies the HAL format configuration.
func WithHALConfiguration(cfg HALConfiguration) Option {
	return func(r *Registry) { r.halConfig = cfg }
}

// WithHALFormsConfiguration supplies the HAL-FORMS format configuration.
// A zero configuration is replaced by DefaultHALFormsConfiguration.
func WithHALFormsConfiguration(cfg HALFormsConfiguration) Option {
	return func(r *Registry) { r.halFormsConfig = cfg }
}

// WithResolverLookup supplies the component lookup the link relation
// MessageResolver is resolved through. Required: Register fails with
// ErrMissingMessageResolver when absent or when the lookup cannot serve
// RelationMessagesName.
func WithResolverLookup(lookup ResolverLookup) Option {
	return func(r *Registry) { r.lookup = lookup }
}

// New returns a Registry configured by the given options.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register builds a pipeline for every enabled format and prepends each to
// chain. Formats are processed in the fixed order HAL, HAL-FORMS,
// Collection+JSON, each inserted at the front, so the resulting head order
// is Collection+JSON, HAL-FORMS, HAL filtered to the enabled set.
//
// If any chain entry backed by this package's codec family already carries
// a HAL-family module, the whole pass is skipped and Register returns nil:
// hypermedia support is treated as already configured, for every format.
// The guard runs before any dependency validation.
//
// Missing required dependencies (relation resolver, link relation message
// resolver) fail the whole pass with a ConfigError before any pipeline is
// built; the chain is never partially extended.
func (r *Registry) Register(ctx context.Context, chain *Chain, enabled FormatSet) error {
	start := time.Now()
	emitRegistrationStart(ctx, len(enabled), chain.Len())

	if alreadyRegistered(chain) {
		emitRegistrationSkipped(ctx, chain.Len())
		return nil
	}

	var retErr error
	var built int
	defer func() {
		emitRegistrationComplete(ctx, built, chain.Len(), time.Since(start), retErr)
	}()

	if r.relations == nil {
		retErr = newConfigError(ErrMissingRelationResolver, "")
		return retErr
	}

	messages, err := r.lookupMessages()
	if err != nil {
		retErr = err
		return retErr
	}

	base := r.base
	if base == nil {
		base = NewMapper()
	}

	curies := r.curies
	if curies == nil {
		curies = NoCuries{}
	}

	deps := overlayDeps{
		relations: r.relations,
		curies:    curies,
		messages:  messages,
		hal:       r.halConfig,
		halForms:  r.halFormsConfig,
	}

	for _, profile := range profiles {
		if !enabled.Has(profile.id) {
			continue
		}
		pipeline := buildPipeline(profile, base, deps)
		chain.Prepend(pipeline)
		built++
		emitPipelineBuilt(ctx, profile.id, pipeline.MediaTypes())
	}

	return nil
}

// lookupMessages resolves the link relation MessageResolver.
func (r *Registry) lookupMessages() (MessageResolver, error) {
	if r.lookup == nil {
		return nil, newConfigError(ErrMissingMessageResolver, RelationMessagesName)
	}
	messages, err := r.lookup(RelationMessagesName)
	if err != nil {
		return nil, &ConfigError{Err: ErrMissingMessageResolver, Resource: RelationMessagesName, Cause: err}
	}
	if messages == nil {
		return nil, newConfigError(ErrMissingMessageResolver, RelationMessagesName)
	}
	return messages, nil
}

// alreadyRegistered reports whether some chain entry backed by the shared
// codec family already carries a HAL-family module. One hit blocks the
// whole pass, Collection+JSON included; entries of other codec families and
// unmarked Mapper-backed entries are scanned past.
func alreadyRegistered(chain *Chain) bool {
	for _, entry := range chain.entries {
		carrier, ok := entry.(MapperCarrier)
		if !ok {
			continue
		}
		if carrier.Mapper().HasHypermediaModule() {
			return true
		}
	}
	return false
}
