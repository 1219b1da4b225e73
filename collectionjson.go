package hypermedia

const collectionJSONModuleName = "collection+json"

// collectionJSONModule is the Collection+JSON overlay. The format does not
// model link relations the way the HAL family does, so the overlay takes
// only the message resolver.
type collectionJSONModule struct {
	messages MessageResolver
}

func newCollectionJSONModule(deps overlayDeps) Module {
	return collectionJSONModule{messages: deps.messages}
}

func (collectionJSONModule) Name() string   { return collectionJSONModuleName }
func (collectionJSONModule) Family() Family { return FamilyGeneral }

func (mod collectionJSONModule) Apply(m *Mapper) {
	m.setHandler("collection+json.documents", collectionJSONDocumentHandler{
		messages: mod.messages,
	})
}

// collectionJSONDocumentHandler carries the dependencies the collection
// document serializer is instantiated with.
type collectionJSONDocumentHandler struct {
	messages MessageResolver
}
