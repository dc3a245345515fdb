package opts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveParseModes(t *testing.T) {
	tests := []struct {
		name string
		in   []Option
		want *ParseOptions
	}{
		{
			name: "default",
			want: &ParseOptions{Mode: Compat, AllowNaN: true, AllowComments: true, MaxNesting: 100},
		},
		{
			name: "strict",
			in:   []Option{WithMode(Strict)},
			want: &ParseOptions{Mode: Strict, MaxNesting: 100},
		},
		{
			name: "rails",
			in:   []Option{WithMode(Rails)},
			want: &ParseOptions{Mode: Rails, SymbolizeNames: true, AllowNaN: true, AllowComments: true, MaxNesting: 100},
		},
		{
			name: "object",
			in:   []Option{WithMode(Object)},
			want: &ParseOptions{Mode: Object, AllowNaN: true, AllowComments: true, MaxNesting: 100},
		},
		{
			name: "strict-with-nan-override",
			in:   []Option{WithMode(Strict), AllowNaN(true)},
			want: &ParseOptions{Mode: Strict, AllowNaN: true, MaxNesting: 100},
		},
		{
			name: "override-before-mode-still-wins",
			in:   []Option{AllowComments(true), WithMode(Strict)},
			want: &ParseOptions{Mode: Strict, AllowComments: true, MaxNesting: 100},
		},
		{
			name: "rails-symbolize-off",
			in:   []Option{WithMode(Rails), SymbolizeNames(false)},
			want: &ParseOptions{Mode: Rails, AllowNaN: true, AllowComments: true, MaxNesting: 100},
		},
		{
			name: "freeze-and-depth",
			in:   []Option{Freeze(true), MaxNesting(7)},
			want: &ParseOptions{Mode: Compat, Freeze: true, AllowNaN: true, AllowComments: true, MaxNesting: 7},
		},
		{
			name: "unlimited-depth",
			in:   []Option{MaxNesting(0)},
			want: &ParseOptions{Mode: Compat, AllowNaN: true, AllowComments: true, MaxNesting: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveParse(tt.in...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveDumpModes(t *testing.T) {
	tests := []struct {
		name string
		in   []Option
		want *DumpOptions
	}{
		{
			name: "default",
			want: &DumpOptions{Mode: Compat, AllowNaN: true, Indent: 2, MaxNesting: 100},
		},
		{
			name: "strict",
			in:   []Option{WithMode(Strict)},
			want: &DumpOptions{Mode: Strict, EscapeSlash: true, Indent: 2, MaxNesting: 100},
		},
		{
			name: "rails",
			in:   []Option{WithMode(Rails)},
			want: &DumpOptions{Mode: Rails, AllowNaN: true, EscapeHTML: true, Indent: 2, MaxNesting: 100},
		},
		{
			name: "strict-escape-slash-off",
			in:   []Option{WithMode(Strict), EscapeSlash(false)},
			want: &DumpOptions{Mode: Strict, Indent: 2, MaxNesting: 100},
		},
		{
			name: "pretty",
			in:   []Option{Pretty(true)},
			want: &DumpOptions{Mode: Compat, Pretty: true, AllowNaN: true, Indent: 2, MaxNesting: 100},
		},
		{
			name: "indent-implies-pretty",
			in:   []Option{Indent(4)},
			want: &DumpOptions{Mode: Compat, Pretty: true, AllowNaN: true, Indent: 4, MaxNesting: 100},
		},
		{
			name: "indent-zero-stays-compact",
			in:   []Option{Indent(0)},
			want: &DumpOptions{Mode: Compat, AllowNaN: true, MaxNesting: 100},
		},
		{
			name: "rails-html-off",
			in:   []Option{WithMode(Rails), EscapeHTML(false)},
			want: &DumpOptions{Mode: Rails, AllowNaN: true, Indent: 2, MaxNesting: 100},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDump(tt.in...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestModeText(t *testing.T) {
	for _, m := range Modes() {
		t.Run(m.String(), func(t *testing.T) {
			got, err := ParseMode(m.String())
			if err != nil {
				t.Fatal(err)
			}
			if got != m {
				t.Errorf("round trip: got %s, want %s", got, m)
			}
		})
	}
	if _, err := ParseMode("bogus"); err == nil {
		t.Error("ParseMode(bogus): expected error")
	}
}
