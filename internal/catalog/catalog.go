// Package catalog holds the immutable in-memory catalog of modules and the
// derived prerequisite graph. A Catalog is built once from external records
// and shared read-only by every other component; no operation mutates it.
package catalog

import (
	"sort"

	"github.com/alexanderramin/curricle/internal/domain"
)

// Catalog indexes all modules by code plus the prerequisite adjacency in
// both directions (code -> prerequisites, code -> dependents).
type Catalog struct {
	modules    map[string]domain.Module
	prereqs    map[string][]string
	dependents map[string][]string
	codes      []string
}

// Build validates and indexes module records into an immutable Catalog.
// It fails with DuplicateModuleError if two records share a code, and with
// DanglingPrerequisiteError when prerequisite codes never appear as modules
// (all offenders collected, not just the first). There is no partially
// valid catalog: on error the caller must fix the data and rebuild.
func Build(records []domain.Module) (*Catalog, error) {
	c := &Catalog{
		modules:    make(map[string]domain.Module, len(records)),
		prereqs:    make(map[string][]string, len(records)),
		dependents: make(map[string][]string),
	}

	for _, rec := range records {
		code := domain.NormalizeCode(rec.Code)
		if _, exists := c.modules[code]; exists {
			return nil, &domain.DuplicateModuleError{Code: code}
		}
		m := rec
		m.Code = code
		m.Prerequisites = normalizeCodes(rec.Prerequisites)
		c.modules[code] = m
		c.codes = append(c.codes, code)
	}

	dangling := make(map[string][]string)
	for _, code := range c.codes {
		m := c.modules[code]
		for _, pre := range m.Prerequisites {
			if _, ok := c.modules[pre]; !ok {
				dangling[pre] = append(dangling[pre], code)
				continue
			}
			c.prereqs[code] = append(c.prereqs[code], pre)
			c.dependents[pre] = append(c.dependents[pre], code)
		}
	}
	if len(dangling) > 0 {
		for _, refs := range dangling {
			sort.Strings(refs)
		}
		return nil, &domain.DanglingPrerequisiteError{Missing: dangling}
	}

	sort.Strings(c.codes)
	for code := range c.prereqs {
		sort.Strings(c.prereqs[code])
	}
	for code := range c.dependents {
		sort.Strings(c.dependents[code])
	}
	return c, nil
}

// Get returns the module for a code (normalized before lookup).
func (c *Catalog) Get(code string) (domain.Module, bool) {
	m, ok := c.modules[domain.NormalizeCode(code)]
	return m, ok
}

// Has reports whether a code exists in the catalog.
func (c *Catalog) Has(code string) bool {
	_, ok := c.modules[domain.NormalizeCode(code)]
	return ok
}

// Codes returns all module codes, sorted ascending. The returned slice is a
// copy; callers may modify it freely.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Len returns the number of modules in the catalog.
func (c *Catalog) Len() int {
	return len(c.codes)
}

// Prerequisites returns the direct prerequisites of a module, sorted.
func (c *Catalog) Prerequisites(code string) []string {
	return copyOf(c.prereqs[domain.NormalizeCode(code)])
}

// Dependents returns the modules that list code as a prerequisite, sorted.
func (c *Catalog) Dependents(code string) []string {
	return copyOf(c.dependents[domain.NormalizeCode(code)])
}

// SumCredits returns the total credits of the given codes. Codes absent
// from the catalog contribute nothing; callers validate membership first.
func (c *Catalog) SumCredits(codes []string) int {
	total := 0
	for _, code := range codes {
		if m, ok := c.modules[domain.NormalizeCode(code)]; ok {
			total += m.Credits
		}
	}
	return total
}

// SumCreditsSet is SumCredits over a completed-set.
func (c *Catalog) SumCreditsSet(set map[string]bool) int {
	total := 0
	for code := range set {
		if m, ok := c.modules[code]; ok {
			total += m.Credits
		}
	}
	return total
}

// TrackModules returns the codes of all modules belonging to any of the
// given tracks, sorted.
func (c *Catalog) TrackModules(tracks ...string) []string {
	var out []string
	for _, code := range c.codes {
		m := c.modules[code]
		if m.HasAnyTrack(tracks) {
			out = append(out, code)
		}
	}
	return out
}

func normalizeCodes(codes []string) []string {
	out := make([]string, len(codes))
	for i, code := range codes {
		out[i] = domain.NormalizeCode(code)
	}
	return out
}

func copyOf(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
