// Package testing provides test utilities for hypermedia.
package testing

import (
	"fmt"
	"reflect"

	"github.com/zoobzio/hypermedia"
)

// StaticRelations resolves every type to fixed relation names.
type StaticRelations struct {
	Item       string
	Collection string
}

// ItemRelation implements hypermedia.RelationResolver.
func (r StaticRelations) ItemRelation(reflect.Type) string { return r.Item }

// CollectionRelation implements hypermedia.RelationResolver.
func (r StaticRelations) CollectionRelation(reflect.Type) string { return r.Collection }

// Messages is a map-backed MessageResolver.
type Messages map[string]string

// Message implements hypermedia.MessageResolver.
func (m Messages) Message(key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// LookupMessages returns a ResolverLookup serving resolvers by name.
func LookupMessages(resolvers map[string]hypermedia.MessageResolver) hypermedia.ResolverLookup {
	return func(name string) (hypermedia.MessageResolver, error) {
		r, ok := resolvers[name]
		if !ok {
			return nil, fmt.Errorf("no resolver named %q", name)
		}
		return r, nil
	}
}

// RelationMessages returns a lookup serving msgs under the link relation
// messages name.
func RelationMessages(msgs Messages) hypermedia.ResolverLookup {
	return LookupMessages(map[string]hypermedia.MessageResolver{
		hypermedia.RelationMessagesName: msgs,
	})
}

// FailingLookup returns a lookup that cannot serve any resolver.
func FailingLookup() hypermedia.ResolverLookup {
	return func(name string) (hypermedia.MessageResolver, error) {
		return nil, fmt.Errorf("no resolver named %q", name)
	}
}

// PlainConverter is a chain entry not backed by a Mapper, for exercising
// the duplicate guard's family check.
type PlainConverter struct {
	Types []string
}

// MediaTypes implements hypermedia.Converter.
func (c PlainConverter) MediaTypes() []string {
	return append([]string(nil), c.Types...)
}

// Marshal implements hypermedia.Converter.
func (c PlainConverter) Marshal(v any) ([]byte, error) {
	return fmt.Appendf(nil, "%v", v), nil
}

// Unmarshal implements hypermedia.Converter.
func (c PlainConverter) Unmarshal([]byte, any) error { return nil }

// NewRegistry returns a registry wired with working test resolvers. Extra
// options are applied after the defaults and may override them.
func NewRegistry(opts ...hypermedia.Option) *hypermedia.Registry {
	base := []hypermedia.Option{
		hypermedia.WithRelationResolver(hypermedia.DefaultRelationResolver{}),
		hypermedia.WithResolverLookup(RelationMessages(Messages{})),
	}
	return hypermedia.New(append(base, opts...)...)
}
