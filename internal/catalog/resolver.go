package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sbilibin2017/equiv/internal/models"
)

type aliasTarget struct {
	category models.Category
	index    int
}

var aliasIndex, aliasProblems = buildAliasIndex(aliasTable)

// buildAliasIndex keeps the first target of every normalised pattern and
// reports duplicates and dangling indices.
func buildAliasIndex(table []alias) (map[string]aliasTarget, []string) {
	index := make(map[string]aliasTarget, len(table))
	var problems []string
	for _, a := range table {
		key := normalize(a.pattern)
		if prev, ok := index[key]; ok {
			problems = append(problems, fmt.Sprintf("alias %q maps to %s[%d] and %s[%d]",
				key, prev.category, prev.index, a.category, a.index))
			continue
		}
		if _, ok := UnitAt(a.category, a.index); !ok {
			problems = append(problems, fmt.Sprintf("alias %q points at missing unit %s[%d]",
				key, a.category, a.index))
			continue
		}
		index[key] = aliasTarget{category: a.category, index: a.index}
	}
	return index, problems
}

// normalize lower-cases and trims the input. A Caser is not safe for
// concurrent use, so one is built per call.
func normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// ValidateAliases reports every authoring error in the alias table.
func ValidateAliases() error {
	if len(aliasProblems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid alias table: %s", strings.Join(aliasProblems, "; "))
}

// Resolve maps free text such as "kg", "Miles" or "celsius" to a unit.
// Matching is exact after lower-casing and trimming.
func Resolve(text string) (models.ResolvedUnitReference, bool) {
	t, ok := aliasIndex[normalize(text)]
	if !ok {
		return models.ResolvedUnitReference{}, false
	}
	u, _ := UnitAt(t.category, t.index)
	return models.ResolvedUnitReference{
		Category:  t.category,
		UnitIndex: t.index,
		Symbol:    u.Symbol,
	}, true
}
