package hypermedia

import "mime"

// Chain is the ordered sequence of converters a server consults when
// producing a response body. Earlier entries win content negotiation.
//
// Chains are built and mutated during the one-shot configuration phase and
// read-only afterwards; no locking is provided.
type Chain struct {
	entries []Converter
}

// NewChain returns a chain holding the given entries in order.
func NewChain(entries ...Converter) *Chain {
	return &Chain{entries: append([]Converter(nil), entries...)}
}

// Prepend inserts conv at the front of the chain.
func (c *Chain) Prepend(conv Converter) {
	c.entries = append([]Converter{conv}, c.entries...)
}

// Append adds conv at the end of the chain.
func (c *Chain) Append(conv Converter) {
	c.entries = append(c.entries, conv)
}

// Len returns the number of entries.
func (c *Chain) Len() int { return len(c.entries) }

// Entries returns a copy of the chain's entries in order.
func (c *Chain) Entries() []Converter {
	return append([]Converter(nil), c.entries...)
}

// Select returns the first converter owning the given media type.
// Parameters such as charset are ignored on both sides, so
// "application/hal+json; charset=UTF-8" selects the HAL pipeline.
func (c *Chain) Select(mediaType string) (Converter, bool) {
	want, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return nil, false
	}
	for _, entry := range c.entries {
		for _, mt := range entry.MediaTypes() {
			got, _, err := mime.ParseMediaType(mt)
			if err != nil {
				continue
			}
			if got == want {
				return entry, true
			}
		}
	}
	return nil, false
}
