package libdiff

import (
	"bytes"
	"strings"

	"github.com/signadot/pathtree/encode"
	"github.com/signadot/pathtree/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line diff of the dumps of from and to, or "" if they
// render the same. Removed lines start with "-", added lines with "+" and
// common lines with a space.
func Diff(from, to *ir.Node, opts ...encode.EncodeOption) (string, error) {
	a, err := render(from, opts)
	if err != nil {
		return "", err
	}
	b, err := render(to, opts)
	if err != nil {
		return "", err
	}
	return Lines(a, b), nil
}

// Lines returns a line diff of two texts in the format of Diff.
func Lines(from, to string) string {
	if from == to {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	buf := bytes.NewBuffer(nil)
	for _, diff := range diffs {
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteString("\n")
			}
		}
	}
	return buf.String()
}

func render(node *ir.Node, opts []encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
