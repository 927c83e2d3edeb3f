package domain

// KeyPrefix namespaces all matchdex keys and index names in the store.
const KeyPrefix = "mdx:"

// Metadata is the flat filterable projection of an entity stored next to its
// vector. Tags hold string fields (lists joined with commas), Numerics hold
// numeric fields. Metadata is used only for filter predicates, never for
// similarity.
type Metadata struct {
	Tags     map[string]string
	Numerics map[string]float64
}

// Clone returns a deep copy so stored metadata cannot alias caller maps.
func (m Metadata) Clone() Metadata {
	c := Metadata{}
	if m.Tags != nil {
		c.Tags = make(map[string]string, len(m.Tags))
		for k, v := range m.Tags {
			c.Tags[k] = v
		}
	}
	if m.Numerics != nil {
		c.Numerics = make(map[string]float64, len(m.Numerics))
		for k, v := range m.Numerics {
			c.Numerics[k] = v
		}
	}
	return c
}
