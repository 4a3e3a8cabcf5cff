package pywrite

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/xrbinds/pyxrgen/conv"
	"github.com/xrbinds/pyxrgen/gen"
)

// ImportLine spells the ctypes import preamble for a dependency set, with
// the symbols in lexical order. An empty set gives an empty line.
func ImportLine(set conv.CTypeSet) string {
	syms := set.Sorted()
	if len(syms) == 0 {
		return ""
	}
	return "from ctypes import " + strings.Join(syms, ", ")
}

// WriteTo writes the report as indented JSON.
func WriteTo(dst io.Writer, report *gen.Report) error {
	enc := json.NewEncoder(dst)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteFile writes the report to outFile.
func WriteFile(report *gen.Report, outFile string) error {
	var buf bytes.Buffer
	if err := WriteTo(&buf, report); err != nil {
		return err
	}
	return os.WriteFile(outFile, buf.Bytes(), 0644)
}
