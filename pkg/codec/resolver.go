package codec

import (
	"strings"

	"github.com/rs/zerolog"
)

// aliases maps the accepted synonyms for each tier to its canonical tag.
var aliases = map[string]string{
	"ulaw":       NameReference,
	"mulaw":      NameReference,
	"pure":       NameReference,
	"ref":        NameReference,
	"std":        NameG711,
	"stdlib":     NameG711,
	"c":          NameG711,
	"zaf":        NameG711,
	"lut":        NameTable,
	"np":         NameTable,
	"vectorized": NameTable,
	"fast":       NameTable,
}

// Resolver maps requested backend names to discovered backends. It is
// immutable after construction and safe for concurrent use.
type Resolver struct {
	backends []Backend
	byName   map[string]Backend
	log      zerolog.Logger
}

// NewResolver builds a resolver over a discovered backend list. An empty
// list runs Detect. The logger only ever records fallback decisions; pass
// zerolog.Nop() to silence them.
func NewResolver(backends []Backend, logger zerolog.Logger) *Resolver {
	if len(backends) == 0 {
		backends = Detect()
	}
	byName := make(map[string]Backend, len(backends))
	for _, b := range backends {
		byName[b.Name] = b
	}
	return &Resolver{backends: backends, byName: byName, log: logger}
}

// Default returns the most preferred discovered backend.
func (r *Resolver) Default() Backend {
	return r.backends[0]
}

// Resolve returns the backend for a requested name. Names are
// case-insensitive and run through the alias table; an empty, unknown or
// unavailable name falls back to the default backend. Resolve never fails:
// naming an unsupported tier is an environment fact, not a caller error.
func (r *Resolver) Resolve(name string) Backend {
	if name == "" {
		return r.Default()
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	if b, ok := r.byName[key]; ok {
		return b
	}
	r.log.Warn().
		Str("codec", name).
		Str("fallback", r.Default().Name).
		Msg("requested codec not available, using default")
	return r.Default()
}

// Info describes the discovered backends for observability surfaces.
type Info struct {
	Available []string `json:"available_codecs"`
	Default   string   `json:"current_best"`

	G711Available      bool `json:"g711_available"`
	TableAvailable     bool `json:"table_available"`
	ReferenceAvailable bool `json:"reference_available"`
}

// Info reports the discovered backend tags, the current default, and
// per-tier availability.
func (r *Resolver) Info() Info {
	names := make([]string, len(r.backends))
	for i, b := range r.backends {
		names[i] = b.Name
	}
	_, g711OK := r.byName[NameG711]
	_, tableOK := r.byName[NameTable]
	_, refOK := r.byName[NameReference]
	return Info{
		Available:          names,
		Default:            r.Default().Name,
		G711Available:      g711OK,
		TableAvailable:     tableOK,
		ReferenceAvailable: refOK,
	}
}
