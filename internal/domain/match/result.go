package match

// Result is a single ranked match returned by the query engine.
type Result struct {
	id       string
	score    float64
	distance float64
	document string
	tags     map[string]string
	numerics map[string]float64
}

// New creates a match result. Score is the fixed transform 1 - distance for
// a cosine-distance index, clamped to [0,1]; it is not a learned scale.
func New(
	id string, score, distance float64, document string,
	tags map[string]string, numerics map[string]float64,
) Result {
	return Result{
		id: id, score: score, distance: distance,
		document: document, tags: tags, numerics: numerics,
	}
}

// ID returns the matched entity identifier.
func (r *Result) ID() string { return r.id }

// Score returns the similarity score in [0,1].
func (r *Result) Score() float64 { return r.score }

// Distance returns the raw index distance.
func (r *Result) Distance() float64 { return r.distance }

// Document returns the matched entity's stored canonical text.
func (r *Result) Document() string { return r.document }

// Tags returns the matched entity's string metadata.
func (r *Result) Tags() map[string]string { return r.tags }

// Numerics returns the matched entity's numeric metadata.
func (r *Result) Numerics() map[string]float64 { return r.numerics }
