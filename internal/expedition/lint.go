package expedition

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ereliastudio/oneblock-tools/internal/ident"
)

// Finding is a non-fatal problem worth reporting before generation.
type Finding struct {
	Expedition string
	Message    string
}

// Lint looks for likely mistakes: expedition names that differ only by a
// typo, and items of one expedition that would overwrite each other's file.
func Lint(cfg *Config) []Finding {
	var findings []Finding

	names := cfg.Names()
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a, b := strings.ToLower(names[i]), strings.ToLower(names[j])
			dist := levenshtein.ComputeDistance(a, b)
			if dist > distanceLimit(min(len(a), len(b))) {
				continue
			}
			findings = append(findings, Finding{
				Expedition: names[j],
				Message:    fmt.Sprintf("name is %d edit(s) away from %q", dist, names[i]),
			})
		}
	}

	for _, exp := range cfg.Expeditions {
		seen := make(map[string]bool)
		note := func(id string) {
			if seen[id] {
				findings = append(findings, Finding{
					Expedition: exp.Name,
					Message:    fmt.Sprintf("item %s is generated more than once", id),
				})
			}
			seen[id] = true
		}

		for _, d := range exp.BaseDropPool {
			if ok, target := ident.ParseRecipe(d.ID); ok && target != "" {
				note(ident.RecipeItemID(target))
			}
		}
		if exp.KeyCraft != nil {
			id := exp.KeyCraft.ID
			if id == "" {
				id = ident.KeyItemID(exp.Name)
			}
			note(id)
		}
		for _, u := range exp.Unlockable {
			if strings.TrimSpace(u.ID) != "" {
				note(ident.UnlockItemID(u.ID))
			}
		}
	}

	return findings
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
