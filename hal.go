package hypermedia

// HALConfiguration tunes HAL serialization.
type HALConfiguration struct {
	// SingleLinksAsArrays renders a lone link for a relation as a
	// one-element array instead of a bare object.
	SingleLinksAsArrays bool
}

const halModuleName = "hal"

// halModule is the HAL overlay: link and embedded-resource handlers wired
// with the relation, curie, and message resolvers.
type halModule struct {
	relations RelationResolver
	curies    CurieResolver
	messages  MessageResolver
	config    HALConfiguration
}

func newHALModule(deps overlayDeps) Module {
	return halModule{
		relations: deps.relations,
		curies:    deps.curies,
		messages:  deps.messages,
		config:    deps.hal,
	}
}

func (halModule) Name() string   { return halModuleName }
func (halModule) Family() Family { return FamilyHAL }

func (mod halModule) Apply(m *Mapper) {
	m.setHandler("hal.links", halLinkHandler{
		curies:   mod.curies,
		messages: mod.messages,
		config:   mod.config,
	})
	m.setHandler("hal.resources", halResourceHandler{
		relations: mod.relations,
		curies:    mod.curies,
	})
}

// halLinkHandler carries the dependencies the _links serializer is
// instantiated with. The encoder consuming it lives outside this package.
type halLinkHandler struct {
	curies   CurieResolver
	messages MessageResolver
	config   HALConfiguration
}

// halResourceHandler carries the dependencies the _embedded serializer is
// instantiated with.
type halResourceHandler struct {
	relations RelationResolver
	curies    CurieResolver
}
