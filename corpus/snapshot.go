package corpus

import (
	"sort"
	"strings"

	"github.com/halcyonforge/eu5ref/core"
)

// Snapshot is the complete immutable in-memory corpus after a successful
// load. All index structures are derived from the category sequences at
// construction time and are never updated afterwards; a reload produces a
// whole new Snapshot instead of patching an existing one.
type Snapshot struct {
	all         []*core.Entry                        // every entry in load order
	categories  map[core.Category][]*core.Entry     // per-category sequences
	dataTypes   map[core.DataTypeGroup][]*core.Entry // data_type sub-sequences
	byName      map[string][]*core.Entry             // lowercased name -> entries
	byScope     map[string][]*core.Entry             // lowercased scope -> entries
	counts      map[core.Category]int
	groupCounts map[core.DataTypeGroup]int
}

// newSnapshot builds a Snapshot from the per-manifest-file collections,
// in manifest order. collections must be parallel to manifest.
func newSnapshot(collections [][]*core.Entry) *Snapshot {
	s := &Snapshot{
		categories:  make(map[core.Category][]*core.Entry),
		dataTypes:   make(map[core.DataTypeGroup][]*core.Entry),
		byName:      make(map[string][]*core.Entry),
		byScope:     make(map[string][]*core.Entry),
		counts:      make(map[core.Category]int),
		groupCounts: make(map[core.DataTypeGroup]int),
	}

	for i, cf := range manifest {
		entries := collections[i]
		if cf.Category == core.CategoryDataType {
			s.dataTypes[cf.Group] = entries
			s.groupCounts[cf.Group] = len(entries)
		}
		s.categories[cf.Category] = append(s.categories[cf.Category], entries...)

		for _, entry := range entries {
			s.all = append(s.all, entry)

			key := strings.ToLower(entry.Name)
			s.byName[key] = append(s.byName[key], entry)

			if entry.Scope != "" {
				scopeKey := strings.ToLower(entry.Scope)
				s.byScope[scopeKey] = append(s.byScope[scopeKey], entry)
			}
		}
	}

	for _, cat := range core.Categories() {
		s.counts[cat] = len(s.categories[cat])
	}

	return s
}

// All returns every entry in the corpus in load order.
func (s *Snapshot) All() []*core.Entry {
	return s.all
}

// Category returns the entry sequence for a category, in load order.
// For data_type this is the concatenation of all five group sequences.
func (s *Snapshot) Category(cat core.Category) []*core.Entry {
	return s.categories[cat]
}

// DataTypes returns the entry sequence for one data type group.
func (s *Snapshot) DataTypes(group core.DataTypeGroup) []*core.Entry {
	return s.dataTypes[group]
}

// Lookup returns every entry whose name equals the given name
// case-insensitively, across all categories, in load order.
func (s *Snapshot) Lookup(name string) []*core.Entry {
	return s.byName[strings.ToLower(name)]
}

// Scope returns every entry declaring the given scope, matched
// case-insensitively, in load order.
func (s *Snapshot) Scope(scope string) []*core.Entry {
	return s.byScope[strings.ToLower(scope)]
}

// Scopes returns the distinct scope tags declared by the corpus, sorted.
func (s *Snapshot) Scopes() []string {
	scopes := make([]string, 0, len(s.byScope))
	for scope := range s.byScope {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)
	return scopes
}

// Count returns the number of entries in a category.
func (s *Snapshot) Count(cat core.Category) int {
	return s.counts[cat]
}

// GroupCount returns the number of entries in a data type group.
func (s *Snapshot) GroupCount(group core.DataTypeGroup) int {
	return s.groupCounts[group]
}

// TotalEntries returns the number of entries across all categories.
func (s *Snapshot) TotalEntries() int {
	return len(s.all)
}

// TotalScopes returns the number of distinct scope tags.
func (s *Snapshot) TotalScopes() int {
	return len(s.byScope)
}
