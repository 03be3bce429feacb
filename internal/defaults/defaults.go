// Package defaults renders the static default drop table consumed by the
// runtime, one source file per target language.
package defaults

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/ereliastudio/oneblock-tools/internal/expedition"
	"github.com/ereliastudio/oneblock-tools/internal/ident"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type Target string

const (
	TargetJava Target = "java"
	TargetGo   Target = "go"
)

// ParseTarget validates a target name.
func ParseTarget(s string) (Target, error) {
	switch t := Target(strings.ToLower(strings.TrimSpace(s))); t {
	case TargetJava, TargetGo:
		return t, nil
	}
	return "", fmt.Errorf("unknown defaults target %q (want java or go)", s)
}

// Entry is one default drop. ID is the id the runtime sees: the bare entity
// id for entities, the recipe item id for recipes, the trimmed id otherwise.
type Entry struct {
	Kind   ident.Kind
	ID     string
	Weight int
}

type Expedition struct {
	Name    string
	Entries []Entry
}

// Build derives the table from the base drop pools. Entries without an id are
// skipped and expeditions left without entries are omitted.
func Build(cfg *expedition.Config) []Expedition {
	var out []Expedition
	for _, exp := range cfg.Expeditions {
		var entries []Entry
		for _, d := range exp.BaseDropPool {
			if d.ID == "" {
				continue
			}
			ref := ident.ClassifyDrop(d.ID)
			entry := Entry{Kind: ref.Kind, ID: ref.ID, Weight: max(d.Weight, 1)}
			if ref.ID == "" {
				continue
			}
			if ref.Kind == ident.KindRecipe {
				entry.ID = ident.RecipeItemID(ref.ID)
			}
			entries = append(entries, entry)
		}
		if len(entries) == 0 {
			continue
		}
		out = append(out, Expedition{Name: exp.Name, Entries: entries})
	}
	return out
}

// Options tune target specific output.
type Options struct {
	// GoPackage names the package of the generated Go file.
	GoPackage string
}

type templateData struct {
	Package     string
	Expeditions []tmplExpedition
}

type tmplExpedition struct {
	Name  string
	Drops []string
}

// Render produces the source file for target.
func Render(target Target, table []Expedition, opts Options) ([]byte, error) {
	switch target {
	case TargetJava:
		return renderJava(table)
	case TargetGo:
		return renderGo(table, opts)
	}
	return nil, fmt.Errorf("unknown defaults target %q", target)
}

func renderJava(table []Expedition) ([]byte, error) {
	td := templateData{}
	for _, exp := range table {
		te := tmplExpedition{Name: javaString(exp.Name)}
		for i, e := range exp.Entries {
			line := fmt.Sprintf("drop(%s, %d)", javaDropID(e), e.Weight)
			if i < len(exp.Entries)-1 {
				line += ","
			}
			te.Drops = append(te.Drops, line)
		}
		td.Expeditions = append(td.Expeditions, te)
	}
	return execute("defaults.java.tmpl", td)
}

func renderGo(table []Expedition, opts Options) ([]byte, error) {
	pkg := opts.GoPackage
	if pkg == "" {
		pkg = "expeditions"
	}
	td := templateData{Package: pkg}
	for _, exp := range table {
		te := tmplExpedition{Name: strconv.Quote(exp.Name)}
		for _, e := range exp.Entries {
			id := strconv.Quote(e.ID)
			if e.Kind == ident.KindEntity {
				id = "oneblock.EntityDropID(" + id + ")"
			}
			te.Drops = append(te.Drops, fmt.Sprintf("oneblock.Drop(%s, %d)", id, e.Weight))
		}
		td.Expeditions = append(td.Expeditions, te)
	}

	src, err := execute("defaults.go.tmpl", td)
	if err != nil {
		return nil, err
	}
	formatted, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("format generated go: %w", err)
	}
	return formatted, nil
}

func execute(name string, data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func javaDropID(e Entry) string {
	if e.Kind == ident.KindEntity {
		return "OneBlockDropId.entityDropId(" + javaString(e.ID) + ")"
	}
	return javaString(e.ID)
}

// javaString quotes s as a Java string literal.
func javaString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
