package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SettingsFile is looked up under the root when --settings is not given.
const SettingsFile = "expeditiongen.json"

// Config holds the generator settings. Paths are relative to Root unless
// absolute.
type Config struct {
	Root              string   `json:"-"`
	BenchPath         string   `json:"bench_path"`
	UnlockDir         string   `json:"unlock_dir"`
	RecipeDropDir     string   `json:"recipe_drop_dir"`
	ExpeditionItemDir string   `json:"expedition_item_dir"`
	LangPath          string   `json:"lang_path"`
	DefaultsJavaPath  string   `json:"defaults_java_path"`
	DefaultsGoPath    string   `json:"defaults_go_path"`
	GoPackage         string   `json:"go_package"`
	DefaultsTargets   []string `json:"defaults_targets"`
	DryRun            bool     `json:"-"`
}

// DefaultConfig returns the layout of the OneBlock mod repository.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:              root,
		BenchPath:         "src/main/resources/Server/Item/Items/OneBlockUpgrader/Bench_OneBlockUpgrader.json",
		UnlockDir:         "src/main/resources/Server/Item/Items/UnlockRecipe",
		RecipeDropDir:     "src/main/resources/Server/Item/Items/RecipeDrop",
		ExpeditionItemDir: "src/main/resources/Server/Item/Items/Expedition",
		LangPath:          "src/main/resources/Server/Languages/en-US/server.lang",
		DefaultsJavaPath:  "src/main/java/com/EreliaStudio/OneBlock/OneBlockExpeditionDefaults.java",
		DefaultsGoPath:    "generated/expeditions/defaults.go",
		GoPackage:         "expeditions",
		DefaultsTargets:   []string{"java"},
	}
}

// Resolve joins a configured path with Root.
func (c *Config) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Root, path)
}

// LoadFile reads a settings file on top of a copy of base. A missing file
// returns base unchanged and ok == false.
func LoadFile(path string, base *Config) (cfg *Config, ok bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return base, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read settings: %w", err)
	}

	loaded := *base
	loaded.DefaultsTargets = append([]string(nil), base.DefaultsTargets...)
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, false, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return &loaded, true, nil
}

// LoadSettings loads the settings file named by --settings, or
// <root>/expeditiongen.json when path is empty. Only the implicit file may be
// absent. The returned path is empty when no file was loaded.
func LoadSettings(path string, base *Config) (*Config, string, error) {
	if path == "" {
		implicit := base.Resolve(SettingsFile)
		cfg, ok, err := LoadFile(implicit, base)
		if err != nil || !ok {
			return cfg, "", err
		}
		return cfg, implicit, nil
	}

	cfg, ok, err := LoadFile(path, base)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", fmt.Errorf("settings file %s: %w", path, os.ErrNotExist)
	}
	return cfg, path, nil
}

// Merge copies generator settings read from a file into cfg. The output
// paths have no flags and always come from the file; go_package and
// defaults_targets are kept from cfg when their flag was given, as listed in
// explicitFlags.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	cfg.BenchPath = fromFile.BenchPath
	cfg.UnlockDir = fromFile.UnlockDir
	cfg.RecipeDropDir = fromFile.RecipeDropDir
	cfg.ExpeditionItemDir = fromFile.ExpeditionItemDir
	cfg.LangPath = fromFile.LangPath
	cfg.DefaultsJavaPath = fromFile.DefaultsJavaPath
	cfg.DefaultsGoPath = fromFile.DefaultsGoPath

	if !explicitFlags["go-package"] {
		cfg.GoPackage = fromFile.GoPackage
	}
	if !explicitFlags["defaults-target"] {
		cfg.DefaultsTargets = fromFile.DefaultsTargets
	}
}
