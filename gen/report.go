package gen

import (
	"fmt"
	"log"

	"github.com/qiniu/x/errors"

	"github.com/xrbinds/pyxrgen/ast"
	"github.com/xrbinds/pyxrgen/conv"
	"github.com/xrbinds/pyxrgen/internal/dbg"
)

// Entry is the rendering of one dump entry across the three surfaces.
type Entry struct {
	Name    string   `json:"name"`
	C       string   `json:"c"`
	CTypes  string   `json:"ctypes"`
	Python  string   `json:"python"`
	Imports []string `json:"imports,omitempty"`
}

// Report is what the emitter consumes: every entry rendered per surface,
// plus the union of ctypes imports the generated file must declare.
type Report struct {
	Name    string   `json:"name"`
	Entries []*Entry `json:"entries"`
	Imports []string `json:"imports,omitempty"`
}

type Config struct {
	Name         string
	TrimPrefixes []string
}

// Generator walks a type dump and renders a report from it.
type Generator struct {
	name       string
	classifier *conv.Classifier
}

func New(conf *Config) *Generator {
	if conf == nil {
		conf = &Config{}
	}
	return &Generator{
		name:       conf.Name,
		classifier: conv.NewClassifier(&conv.Config{TrimPrefixes: conf.TrimPrefixes}),
	}
}

// Generate classifies every entry of the dump and renders all three
// surfaces. Classification defects do not stop the walk, but any defect
// fails the whole run: the errors are aggregated and no report is
// returned.
func (g *Generator) Generate(dump *ast.Dump) (*Report, error) {
	report := &Report{Name: g.name}
	all := conv.NewCTypeSet()
	var errs errors.List
	for _, entry := range dump.Entries {
		if dbg.GetDebugLog() && entry.Type != nil {
			log.Printf("classify %s: %s", entry.Name, entry.Type.Spelling)
		}
		typ, err := g.classifier.Classify(entry.Type)
		if err != nil {
			if dbg.GetDebugError() {
				log.Printf("classify %s fail: %s", entry.Name, err.Error())
			}
			errs.Add(fmt.Errorf("%s: %w", entry.Name, err))
			continue
		}
		used := typ.UsedCTypes(conv.ApiCTypes)
		all.Merge(used)
		report.Entries = append(report.Entries, &Entry{
			Name:    entry.Name,
			C:       typ.Name(conv.ApiC),
			CTypes:  typ.Name(conv.ApiCTypes),
			Python:  typ.Name(conv.ApiPython),
			Imports: used.Sorted(),
		})
	}
	if err := errs.ToError(); err != nil {
		return nil, err
	}
	report.Imports = all.Sorted()
	return report, nil
}
