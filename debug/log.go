package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/pathtree/encode"
	"github.com/signadot/pathtree/ir"
)

var out io.Writer = os.Stderr

// Logf writes a debug message to stderr. Node arguments are rendered as a
// single line dump, plain Go containers as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf, encode.EncodeWire(true)); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = string(bytes.TrimSpace(buf.Bytes()))
		}
	}
	fmt.Fprintf(out, msg, args...)
}
