package debug

import (
	"bytes"
	"testing"

	"github.com/signadot/pathtree/ir"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prev := out
	out = buf
	defer func() { out = prev }()

	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	Logf("set %s to %v\n", "a/b", node)
	if got, want := buf.String(), "set a/b to {a: 1}\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
