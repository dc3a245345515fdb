package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleNode() *Node {
	return FromKeyVals(
		KeyVal{Key: "a", Val: FromInt(1)},
		KeyVal{Key: "b", Val: FromSlice([]*Node{FromString("x"), FromBool(true)})},
	)
}

func TestCloneIsDeep(t *testing.T) {
	orig := sampleNode()
	cl := orig.Clone()
	if diff := cmp.Diff(orig, cl); diff != "" {
		t.Fatalf("(-orig +clone):\n%s", diff)
	}
	cl.Values[1].Values[0].String = "mutated"
	if orig.Values[1].Values[0].String != "x" {
		t.Error("clone shares children with the original")
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	node := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
	})
	want := []string{"a", "z"}
	if diff := cmp.Diff(want, node.Keys); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestGetFirstMatch(t *testing.T) {
	node := FromKeyVals(
		KeyVal{Key: "dup", Val: FromInt(1)},
		KeyVal{Key: "dup", Val: FromInt(2)},
	)
	got := Get(node, "dup")
	if got == nil || got.Int != 1 {
		t.Errorf("Get(dup) = %+v, want first entry", got)
	}
	if Get(node, "missing") != nil {
		t.Error("Get(missing) != nil")
	}
}

func TestVisitOrder(t *testing.T) {
	var pre, post int
	err := sampleNode().Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// object, int, array, string, bool
	if pre != 5 || post != 5 {
		t.Errorf("pre = %d, post = %d, want 5 each", pre, post)
	}
}

func TestVisitStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	err := sampleNode().Visit(func(y *Node, isPost bool) (bool, error) {
		if y.Type == ArrayType {
			return false, boom
		}
		return true, nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("got %v", err)
	}
}

func TestErrTaxonomy(t *testing.T) {
	ge := NewGenerateErr(ErrCircularReference)
	if !errors.Is(ge, ErrGenerate) {
		t.Error("generate error must match ErrGenerate")
	}
	if !errors.Is(ge, Err) {
		t.Error("generate error must match the base error")
	}
	if !errors.Is(ge, ErrCircularReference) {
		t.Error("generate error must keep its cause")
	}
	if errors.Is(ge, ErrParse) {
		t.Error("generate error must not match ErrParse")
	}
}

func TestTypeText(t *testing.T) {
	for _, ty := range Types() {
		t.Run(ty.String(), func(t *testing.T) {
			d, err := ty.MarshalText()
			if err != nil {
				t.Fatal(err)
			}
			var back Type
			if err := back.UnmarshalText(d); err != nil {
				t.Fatal(err)
			}
			if back != ty {
				t.Errorf("round trip: got %s, want %s", back, ty)
			}
		})
	}
}
