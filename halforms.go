package hypermedia

// HALFormsConfiguration tunes HAL-FORMS serialization.
type HALFormsConfiguration struct {
	// TemplatesProperty is the document property affordance templates are
	// exposed under.
	TemplatesProperty string
}

// DefaultHALFormsConfiguration returns the configuration used when none is
// supplied.
func DefaultHALFormsConfiguration() HALFormsConfiguration {
	return HALFormsConfiguration{TemplatesProperty: "_templates"}
}

const halFormsModuleName = "hal-forms"

// halFormsModule is the HAL-FORMS overlay. It carries the same resolver set
// as HAL plus the forms configuration and the affordance flag.
type halFormsModule struct {
	relations   RelationResolver
	curies      CurieResolver
	messages    MessageResolver
	config      HALFormsConfiguration
	affordances bool
}

func newHALFormsModule(deps overlayDeps) Module {
	cfg := deps.halForms
	if cfg == (HALFormsConfiguration{}) {
		cfg = DefaultHALFormsConfiguration()
	}
	return halFormsModule{
		relations: deps.relations,
		curies:    deps.curies,
		messages:  deps.messages,
		config:    cfg,
		// Pipelines built by the registry always serialize affordances.
		affordances: true,
	}
}

func (halFormsModule) Name() string   { return halFormsModuleName }
func (halFormsModule) Family() Family { return FamilyHAL }

func (mod halFormsModule) Apply(m *Mapper) {
	m.setHandler("hal-forms.links", halLinkHandler{
		curies:   mod.curies,
		messages: mod.messages,
	})
	m.setHandler("hal-forms.templates", halFormsTemplateHandler{
		relations:   mod.relations,
		messages:    mod.messages,
		config:      mod.config,
		affordances: mod.affordances,
	})
}

// halFormsTemplateHandler carries the dependencies the _templates serializer
// is instantiated with.
type halFormsTemplateHandler struct {
	relations   RelationResolver
	messages    MessageResolver
	config      HALFormsConfiguration
	affordances bool
}
