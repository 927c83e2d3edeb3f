package index

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/kailas-cloud/matchdex/internal/db"
	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/domain/canonical"
	"github.com/kailas-cloud/matchdex/internal/domain/entity"
	"github.com/kailas-cloud/matchdex/internal/domain/match"
)

const (
	contentField = "__content"
	vectorField  = "__vector"
)

// numericFields lists the numeric schema fields per entity type. Every
// other hash field besides the reserved content/vector pair is a tag, so a
// digit-only tag value (a name "1984", a location "90210") stays a tag.
var numericFields = map[entity.Type]map[string]bool{
	entity.Candidates: {
		canonical.FieldExperience:        true,
		canonical.FieldSalaryExpectation: true,
	},
	entity.Jobs: {
		canonical.FieldSalaryMin: true,
		canonical.FieldSalaryMax: true,
	},
}

// buildHashFields flattens an index entry into a map[string]string for HSET.
func buildHashFields(vector []float32, meta domain.Metadata, document string) map[string]string {
	m := make(map[string]string, 2+len(meta.Tags)+len(meta.Numerics))
	m[contentField] = document
	m[vectorField] = vectorToBytes(vector)
	for k, v := range meta.Tags {
		m[k] = v
	}
	for k, v := range meta.Numerics {
		m[k] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return m
}

// parseHashFields splits a flat hash back into document and metadata,
// classifying fields by the entity type's schema.
func parseHashFields(typ entity.Type, fields map[string]string) (string, domain.Metadata) {
	var document string
	meta := domain.Metadata{
		Tags:     make(map[string]string),
		Numerics: make(map[string]float64),
	}

	numeric := numericFields[typ]
	for k, v := range fields {
		switch {
		case k == contentField:
			document = v
		case k == vectorField:
			// vectors are never surfaced through Get
		case numeric[k]:
			f, _ := strconv.ParseFloat(v, 64)
			meta.Numerics[k] = f
		default:
			meta.Tags[k] = v
		}
	}

	return document, meta
}

// parseEntry converts a search hit into a match result with its metadata
// reconstructed the same way as parseHashFields.
func parseEntry(typ entity.Type, id string, entry db.SearchEntry) match.Result {
	document, meta := parseHashFields(typ, entry.Fields)
	return match.New(id, entry.Score, entry.Distance, document, meta.Tags, meta.Numerics)
}

// vectorToBytes serializes []float32 to a binary string (4 bytes per float, little-endian).
func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}
