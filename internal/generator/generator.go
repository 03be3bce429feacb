// Package generator turns an expedition config into the files consumed by the
// game: item definitions, the upgrader bench, the language file and the
// static defaults table.
package generator

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ereliastudio/oneblock-tools/internal/bench"
	"github.com/ereliastudio/oneblock-tools/internal/config"
	"github.com/ereliastudio/oneblock-tools/internal/defaults"
	"github.com/ereliastudio/oneblock-tools/internal/expedition"
	"github.com/ereliastudio/oneblock-tools/internal/ident"
	"github.com/ereliastudio/oneblock-tools/internal/items"
	"github.com/ereliastudio/oneblock-tools/internal/jsonfile"
	"github.com/ereliastudio/oneblock-tools/internal/lang"
	"github.com/ereliastudio/oneblock-tools/internal/storage"
)

// File is one planned output.
type File struct {
	Path string
	Data []byte
}

// Plan holds every output of a run, in write order.
type Plan struct {
	Files       []File
	Expeditions int
	Items       int
	LangEntries int
}

// Run loads the config at configPath, plans every output and writes it
// through w. Nothing is written unless planning succeeds.
func Run(cfg *config.Config, configPath string, w storage.Writer, log *slog.Logger) (*Plan, error) {
	exps, err := expedition.LoadFile(configPath)
	if err != nil {
		return nil, err
	}

	for _, f := range expedition.Lint(exps) {
		log.Warn("config lint", "expedition", f.Expedition, "finding", f.Message)
	}

	plan, err := Build(cfg, exps)
	if err != nil {
		return nil, err
	}

	if err := Apply(plan, w); err != nil {
		return nil, err
	}

	log.Info("generation complete",
		"expeditions", plan.Expeditions,
		"items", plan.Items,
		"lang_entries", plan.LangEntries,
		"files", len(plan.Files),
	)
	return plan, nil
}

// Build computes every output in memory. It reads the bench and language
// files but writes nothing.
func Build(cfg *config.Config, exps *expedition.Config) (*Plan, error) {
	if err := expedition.Validate(exps); err != nil {
		return nil, err
	}

	targets, err := parseTargets(cfg.DefaultsTargets)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Expeditions: len(exps.Expeditions)}
	entries := lang.NewEntries()
	categories := make([]bench.Category, 0, len(exps.Expeditions))

	for _, exp := range exps.Expeditions {
		generated := generateExpedition(cfg, exp)

		recipes := make([]string, 0, len(generated))
		for _, g := range generated {
			data, err := jsonfile.Encode(g.item.Payload)
			if err != nil {
				return nil, fmt.Errorf("encode %s: %w", g.item.ID, err)
			}
			plan.Files = append(plan.Files, File{
				Path: filepath.Join(cfg.Resolve(g.dir), g.subdir, g.item.ID+".json"),
				Data: data,
			})
			for _, e := range g.item.Lang {
				entries.Set(e.Key, e.Value)
			}
			recipes = append(recipes, g.item.ID)
		}
		plan.Items += len(generated)

		entries.Set(ident.BenchCategoryLangKey(exp.Name), "Expedition - "+exp.Name)
		categories = append(categories, bench.NewCategory(exp.Name, recipes))
	}

	benchFile, err := buildBench(cfg.Resolve(cfg.BenchPath), categories)
	if err != nil {
		return nil, err
	}
	plan.Files = append(plan.Files, benchFile)

	langPath := cfg.Resolve(cfg.LangPath)
	langData, ok, err := lang.Render(langPath, entries)
	if err != nil {
		return nil, err
	}
	if ok {
		plan.Files = append(plan.Files, File{Path: langPath, Data: langData})
		plan.LangEntries = entries.Len()
	}

	table := defaults.Build(exps)
	for _, target := range targets {
		data, err := defaults.Render(target, table, defaults.Options{GoPackage: cfg.GoPackage})
		if err != nil {
			return nil, err
		}
		plan.Files = append(plan.Files, File{Path: cfg.Resolve(defaultsPath(cfg, target)), Data: data})
	}

	return plan, nil
}

// Apply writes the planned files in order.
func Apply(plan *Plan, w storage.Writer) error {
	for _, f := range plan.Files {
		if err := w.WriteFile(f.Path, f.Data); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
	}
	return nil
}

type planned struct {
	item   items.Generated
	dir    string
	subdir string
}

// generateExpedition builds the items of one expedition in bench order:
// recipe drops, key, unlocks.
func generateExpedition(cfg *config.Config, exp expedition.Expedition) []planned {
	categoryID := ident.BenchCategoryID(exp.Name)
	subdir := "Expedition_" + exp.Name

	var out []planned
	for _, d := range exp.BaseDropPool {
		ref := ident.ClassifyDrop(d.ID)
		if ref.Kind != ident.KindRecipe || ref.ID == "" {
			continue
		}
		out = append(out, planned{item: items.BuildRecipeDrop(exp.Name, ref.ID, d), dir: cfg.RecipeDropDir, subdir: subdir})
	}

	if exp.KeyCraft != nil {
		out = append(out, planned{item: items.BuildKey(exp.Name, categoryID, *exp.KeyCraft), dir: cfg.ExpeditionItemDir})
	}

	for _, u := range exp.Unlockable {
		if strings.TrimSpace(u.ID) == "" {
			continue
		}
		out = append(out, planned{item: items.BuildUnlock(exp.Name, categoryID, u), dir: cfg.UnlockDir, subdir: subdir})
	}
	return out
}

func buildBench(path string, categories []bench.Category) (File, error) {
	doc, err := jsonfile.Read(path)
	if err != nil {
		return File{}, fmt.Errorf("bench: %w", err)
	}
	root, err := bench.Rewrite(doc, categories)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	data, err := jsonfile.Encode(root)
	if err != nil {
		return File{}, fmt.Errorf("encode bench: %w", err)
	}
	return File{Path: path, Data: data}, nil
}

func parseTargets(names []string) ([]defaults.Target, error) {
	var targets []defaults.Target
	seen := make(map[defaults.Target]bool)
	for _, name := range names {
		t, err := defaults.ParseTarget(name)
		if err != nil {
			return nil, err
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		targets = append(targets, t)
	}
	return targets, nil
}

func defaultsPath(cfg *config.Config, target defaults.Target) string {
	if target == defaults.TargetGo {
		return cfg.DefaultsGoPath
	}
	return cfg.DefaultsJavaPath
}
