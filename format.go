package hypermedia

// Format identifies a supported hypermedia representation format.
type Format string

const (
	// FormatHAL is the Hypertext Application Language.
	FormatHAL Format = "hal"

	// FormatHALForms is HAL with form affordances.
	FormatHALForms Format = "hal-forms"

	// FormatCollectionJSON is the Collection+JSON format.
	FormatCollectionJSON Format = "collection+json"
)

// validFormats contains all supported formats.
var validFormats = map[Format]bool{
	FormatHAL:            true,
	FormatHALForms:       true,
	FormatCollectionJSON: true,
}

// IsValidFormat returns true if f is a supported format.
func IsValidFormat(f Format) bool {
	return validFormats[f]
}

// Media types owned by the supported formats.
const (
	MediaTypeHALJSON        = "application/hal+json"
	MediaTypeHALJSONUTF8    = "application/hal+json;charset=UTF-8"
	MediaTypeHALFormsJSON   = "application/prs.hal-forms+json"
	MediaTypeCollectionJSON = "application/vnd.collection+json"
)

// FormatSet is a membership set of enabled formats. Membership alone is
// significant; registration order is fixed by the profile table.
type FormatSet map[Format]bool

// Formats builds a FormatSet from the given formats.
func Formats(formats ...Format) FormatSet {
	set := make(FormatSet, len(formats))
	for _, f := range formats {
		set[f] = true
	}
	return set
}

// Has reports whether f is in the set.
func (s FormatSet) Has(f Format) bool { return s[f] }

// overlayDeps carries the resolver set and format configurations overlay
// factories are parameterized with.
type overlayDeps struct {
	relations RelationResolver
	curies    CurieResolver
	messages  MessageResolver
	hal       HALConfiguration
	halForms  HALFormsConfiguration
}

// FormatProfile is the immutable description of one supported format: its
// identity, the media types its pipelines own, and the factory producing
// its overlay module.
type FormatProfile struct {
	id         Format
	mediaTypes []string
	overlay    func(deps overlayDeps) Module
}

// ID returns the format the profile describes.
func (p FormatProfile) ID() Format { return p.id }

// MediaTypes returns a copy of the profile's media types.
func (p FormatProfile) MediaTypes() []string {
	return append([]string(nil), p.mediaTypes...)
}

// profiles lists the supported formats in registration priority order.
// Pipelines are prepended to the chain one by one, so the last profile
// registered ends up frontmost: with all formats enabled the chain head
// reads Collection+JSON, HAL-FORMS, HAL.
var profiles = []FormatProfile{
	{
		id:         FormatHAL,
		mediaTypes: []string{MediaTypeHALJSON, MediaTypeHALJSONUTF8},
		overlay:    newHALModule,
	},
	{
		id:         FormatHALForms,
		mediaTypes: []string{MediaTypeHALFormsJSON},
		overlay:    newHALFormsModule,
	},
	{
		id:         FormatCollectionJSON,
		mediaTypes: []string{MediaTypeCollectionJSON},
		overlay:    newCollectionJSONModule,
	},
}

// Profile returns the FormatProfile for f.
func Profile(f Format) (FormatProfile, bool) {
	for _, p := range profiles {
		if p.id == f {
			return p, true
		}
	}
	return FormatProfile{}, false
}
