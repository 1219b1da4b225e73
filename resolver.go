package hypermedia

import (
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

// RelationResolver derives the link relation name to use for a domain type.
// A resolver is a required registration dependency.
type RelationResolver interface {
	// ItemRelation returns the relation for a single instance of t.
	ItemRelation(t reflect.Type) string

	// CollectionRelation returns the relation for a collection of t.
	CollectionRelation(t reflect.Type) string
}

// CurieResolver maps compact relation names to fully qualified link relation
// identifiers.
type CurieResolver interface {
	// Expand returns the qualified form of rel.
	Expand(rel string) string
}

// MessageResolver resolves localized text for link relation keys. It is
// consumed as an opaque collaborator; this package never enumerates its
// contents.
type MessageResolver interface {
	// Message returns the text for key, or fallback if key is unknown.
	Message(key, fallback string) string
}

// ResolverLookup retrieves a named MessageResolver from the surrounding
// component registry. Register fails the whole pass when the lookup cannot
// serve RelationMessagesName.
type ResolverLookup func(name string) (MessageResolver, error)

// RelationMessagesName is the resource name Register resolves link relation
// messages under.
const RelationMessagesName = "link-relation-messages"

// DefaultRelationResolver derives relation names from type identity.
//
// Resolution order: the Relatable/CollectionRelatable override interfaces,
// sentinel-scanned type metadata, then the lowercased reflect type name.
// Collection relations are pluralized with basic English rules.
type DefaultRelationResolver struct{}

var (
	relatableType           = reflect.TypeOf((*Relatable)(nil)).Elem()
	collectionRelatableType = reflect.TypeOf((*CollectionRelatable)(nil)).Elem()
)

// ItemRelation implements RelationResolver.
func (DefaultRelationResolver) ItemRelation(t reflect.Type) string {
	t = indirectType(t)
	if t == nil {
		return ""
	}
	if override, ok := overrideFor(t, relatableType); ok {
		return override.(Relatable).ItemRelation()
	}
	return typeRelation(t)
}

// CollectionRelation implements RelationResolver.
func (DefaultRelationResolver) CollectionRelation(t reflect.Type) string {
	t = indirectType(t)
	if t == nil {
		return ""
	}
	if override, ok := overrideFor(t, collectionRelatableType); ok {
		return override.(CollectionRelatable).CollectionRelation()
	}
	return pluralize(typeRelation(t))
}

// indirectType strips pointer indirection.
func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// overrideFor returns a zero instance of t when *t implements the override
// interface iface.
func overrideFor(t, iface reflect.Type) (any, bool) {
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	if !reflect.PointerTo(t).Implements(iface) {
		return nil, false
	}
	return reflect.New(t).Interface(), true
}

// typeRelation derives the base relation name for t, preferring scanned
// sentinel metadata over the raw reflect name.
func typeRelation(t reflect.Type) string {
	if spec, ok := sentinel.Lookup(t.String()); ok && spec.TypeName != "" {
		return strings.ToLower(spec.TypeName)
	}
	return strings.ToLower(t.Name())
}

// pluralize applies basic English pluralization, enough for relation names.
func pluralize(rel string) string {
	switch {
	case rel == "":
		return rel
	case strings.HasSuffix(rel, "s"), strings.HasSuffix(rel, "x"),
		strings.HasSuffix(rel, "z"), strings.HasSuffix(rel, "ch"),
		strings.HasSuffix(rel, "sh"):
		return rel + "es"
	case strings.HasSuffix(rel, "y") && !endsWithVowelY(rel):
		return rel[:len(rel)-1] + "ies"
	default:
		return rel + "s"
	}
}

func endsWithVowelY(rel string) bool {
	if len(rel) < 2 {
		return false
	}
	return strings.ContainsRune("aeiou", rune(rel[len(rel)-2]))
}

// NoCuries performs no prefix expansion. It is the default curie resolver.
type NoCuries struct{}

// Expand returns rel unchanged.
func (NoCuries) Expand(rel string) string { return rel }

// ianaRelations contains registered relation names that are never prefixed.
var ianaRelations = map[string]bool{
	"self":       true,
	"first":      true,
	"last":       true,
	"next":       true,
	"prev":       true,
	"item":       true,
	"collection": true,
	"search":     true,
	"index":      true,
}

// PrefixCuries qualifies custom relation names with a fixed curie prefix.
// IANA-registered relations and already-qualified names pass through
// unchanged.
type PrefixCuries struct {
	Prefix string
}

// Expand implements CurieResolver.
func (c PrefixCuries) Expand(rel string) string {
	if c.Prefix == "" || rel == "" {
		return rel
	}
	if ianaRelations[rel] || strings.Contains(rel, ":") {
		return rel
	}
	return c.Prefix + ":" + rel
}
