package rules

import (
	gocache "github.com/patrickmn/go-cache"
)

// Registry hands out loaded rule sets, caching them by language so that
// multi-language invocations (frequency sweeps, rules show) compile each
// configuration once.
type Registry struct {
	dir   string
	cache *gocache.Cache
}

// NewRegistry creates a registry reading rule documents from dir.
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:   dir,
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Load returns the RuleSet for lang, loading and caching it on first use.
func (g *Registry) Load(lang string) (*RuleSet, error) {
	if v, ok := g.cache.Get(lang); ok {
		return v.(*RuleSet), nil
	}
	rs, err := Load(g.dir, lang)
	if err != nil {
		return nil, err
	}
	g.cache.Set(lang, rs, gocache.NoExpiration)
	return rs, nil
}
