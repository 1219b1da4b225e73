package hypermedia

// Pipeline is a fully configured, format-scoped converter: a frozen Mapper
// clone plus the media types it owns. Pipelines are immutable after
// construction and safe for concurrent use.
type Pipeline struct {
	format     Format
	mediaTypes []string
	mapper     *Mapper
}

// buildPipeline clones the base Mapper, relaxes unknown-field rejection,
// installs the profile's overlay module, and freezes the result. Hypermedia
// payloads commonly carry fields unknown to any one consumer, so tolerance
// is not configurable here.
//
// The base and sibling pipelines are unaffected: the clone shares no mutable
// registries with either. All inputs are valid by construction, so there is
// no error path.
func buildPipeline(profile FormatProfile, base *Mapper, deps overlayDeps) *Pipeline {
	m := base.Clone()
	m.strict = false
	m.installModule(profile.overlay(deps))
	m.freeze()

	return &Pipeline{
		format:     profile.id,
		mediaTypes: append([]string(nil), profile.mediaTypes...),
		mapper:     m,
	}
}

// Format returns the format the pipeline serves.
func (p *Pipeline) Format() Format { return p.format }

// MediaTypes returns a copy of the media types the pipeline owns.
func (p *Pipeline) MediaTypes() []string {
	return append([]string(nil), p.mediaTypes...)
}

// Mapper returns the backing codec configuration. The Mapper is frozen;
// mutation attempts fail with ErrMapperFrozen.
func (p *Pipeline) Mapper() *Mapper { return p.mapper }

// Marshal encodes v using the pipeline's codec.
func (p *Pipeline) Marshal(v any) ([]byte, error) {
	return p.mapper.Marshal(v)
}

// Unmarshal decodes data into v using the pipeline's codec.
func (p *Pipeline) Unmarshal(data []byte, v any) error {
	return p.mapper.Unmarshal(data, v)
}
