package engine

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/errors"
)

// SortKey selects the display order of a superstar list
type SortKey string

// Sort keys. SortNone keeps catalog order.
const (
	SortNone     SortKey = ""
	SortCostDesc SortKey = "cost-desc"
	SortCostAsc  SortKey = "cost-asc"
	SortNameAsc  SortKey = "name-asc"
	SortNameDesc SortKey = "name-desc"
	SortPopDesc  SortKey = "pop-desc"
	SortStaDesc  SortKey = "sta-desc"
)

// SortKeys lists every recognized key
var SortKeys = []SortKey{SortCostDesc, SortCostAsc, SortNameAsc, SortNameDesc, SortPopDesc, SortStaDesc}

// collationTag is the locale used for name ordering
var collationTag = language.English

// ParseSortKey validates a sort key name. The empty name is SortNone.
func ParseSortKey(name string) (SortKey, error) {
	key := SortKey(name)
	if key == SortNone || slices.Contains(SortKeys, key) {
		return key, nil
	}
	return SortNone, errors.InvalidArgumentf("unknown sort key %q", name).
		WithMeta("sort_key", name)
}

// ApplySort returns a stably sorted copy of seq. Unrecognized keys return
// the copy in input order.
func ApplySort(seq []*entities.Superstar, key SortKey) []*entities.Superstar {
	out := slices.Clone(seq)

	var compare func(a, b *entities.Superstar) int
	switch key {
	case SortCostDesc:
		compare = func(a, b *entities.Superstar) int { return cmp.Compare(b.Cost, a.Cost) }
	case SortCostAsc:
		compare = func(a, b *entities.Superstar) int { return cmp.Compare(a.Cost, b.Cost) }
	case SortNameAsc:
		c := collate.New(collationTag)
		compare = func(a, b *entities.Superstar) int { return c.CompareString(a.Name, b.Name) }
	case SortNameDesc:
		c := collate.New(collationTag)
		compare = func(a, b *entities.Superstar) int { return c.CompareString(b.Name, a.Name) }
	case SortPopDesc:
		compare = func(a, b *entities.Superstar) int { return cmp.Compare(b.Pop, a.Pop) }
	case SortStaDesc:
		compare = func(a, b *entities.Superstar) int { return cmp.Compare(b.Sta, a.Sta) }
	default:
		return out
	}

	slices.SortStableFunc(out, compare)
	return out
}
