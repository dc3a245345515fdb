package yyjson

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yyjson-go/yyjson/ir"
	"github.com/yyjson-go/yyjson/opts"
	"github.com/yyjson-go/yyjson/value"
)

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`null`,
		`true`,
		`-42`,
		`0.5`,
		`"hello"`,
		`[]`,
		`{}`,
		`[1,2.5,"three",null,true]`,
		`{"a":1,"b":[1,2,3]}`,
		`{"z":1,"a":{"nested":[{"deep":"value"}]}}`,
		`{"dup":1,"dup":2}`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			v, err := Load([]byte(doc))
			if err != nil {
				t.Fatal(err)
			}
			out, err := DumpString(v)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(doc, out); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadStrict(t *testing.T) {
	if _, err := Load([]byte("// c\n[1]")); err != nil {
		t.Fatalf("compat comments: %v", err)
	}
	if _, err := Load([]byte("// c\n[1]"), opts.WithMode(opts.Strict)); !errors.Is(err, ir.ErrParse) {
		t.Error("strict comments: expected parse error")
	}
	if _, err := Load([]byte(`[NaN]`)); err != nil {
		t.Fatalf("compat NaN: %v", err)
	}
	if _, err := Load([]byte(`[NaN]`), opts.WithMode(opts.Strict)); !errors.Is(err, ir.ErrParse) {
		t.Error("strict NaN: expected parse error")
	}
	if _, err := Load([]byte(`[NaN]`), opts.WithMode(opts.Strict), opts.AllowNaN(true)); err != nil {
		t.Fatalf("strict with override: %v", err)
	}
}

func TestLoadRails(t *testing.T) {
	v, err := Load([]byte(`{"key":1}`), opts.WithMode(opts.Rails))
	if err != nil {
		t.Fatal(err)
	}
	m := v.(*value.Map)
	if _, ok := m.Get(value.Atom("key")); !ok {
		t.Error("rails mode: key is not an Atom")
	}
}

func TestDumpRailsHTML(t *testing.T) {
	out, err := DumpString("<script>alert('x')</script>", opts.WithMode(opts.Rails))
	if err != nil {
		t.Fatal(err)
	}
	want := `"\u003cscript\u003ealert(\u0027x\u0027)\u003c/script\u003e"`
	if out != want {
		t.Errorf("got %s, want %s", out, want)
	}
	// compat leaves markup alone
	out, err = DumpString("<a>")
	if err != nil {
		t.Fatal(err)
	}
	if out != `"<a>"` {
		t.Errorf("got %s", out)
	}
}

func TestDumpStrict(t *testing.T) {
	if _, err := Dump(math.NaN(), opts.WithMode(opts.Strict)); !errors.Is(err, ir.ErrGenerate) {
		t.Error("strict NaN: expected generate error")
	}
	out, err := DumpString("a/b", opts.WithMode(opts.Strict))
	if err != nil {
		t.Fatal(err)
	}
	if out != `"a\/b"` {
		t.Errorf("strict slash: got %s", out)
	}
}

func TestDumpPretty(t *testing.T) {
	v, err := Load([]byte(`{"a":[1,2]}`))
	if err != nil {
		t.Fatal(err)
	}
	out, err := DumpString(v, opts.Pretty(true))
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": [\n    1,\n    2\n  ]\n}"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestAliases(t *testing.T) {
	v, err := Parse([]byte(`[1]`))
	if err != nil {
		t.Fatal(err)
	}
	d, err := Generate(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `[1]` {
		t.Errorf("got %s", d)
	}
	if _, err := LoadString(`{"a":1}`); err != nil {
		t.Fatal(err)
	}
}

func TestImportExport(t *testing.T) {
	node := ir.FromKeyVals(ir.KeyVal{Key: "n", Val: ir.FromInt(1)})
	v, err := Import(node)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Export(v)
	if err != nil {
		t.Fatal(err)
	}
	if back.Type != ir.ObjectType || back.Keys[0] != "n" {
		t.Errorf("export mismatch: %+v", back)
	}
}

func TestLoadFreeze(t *testing.T) {
	v, err := Load([]byte(`{"a":{"b":1}}`), opts.Freeze(true))
	if err != nil {
		t.Fatal(err)
	}
	m := v.(*value.Map)
	if !m.Frozen() {
		t.Error("outer map not frozen")
	}
	inner, _ := m.Get("a")
	if !inner.(*value.Map).Frozen() {
		t.Error("inner map not frozen")
	}
	if err := m.Set("x", 1); !errors.Is(err, value.ErrFrozen) {
		t.Errorf("Set on frozen: got %v", err)
	}
}

func TestDumpCycleError(t *testing.T) {
	a := make([]any, 1)
	a[0] = a
	_, err := Dump(a)
	if !errors.Is(err, ir.ErrCircularReference) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, ir.Err) {
		t.Error("cycle error must match the package base error")
	}
}
