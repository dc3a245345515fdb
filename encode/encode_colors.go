package encode

import (
	"github.com/yyjson-go/yyjson/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.CyanString
	}
	valueColors := map[ir.Type]func(string, ...any) string{
		ir.NullType:   color.HiBlackString,
		ir.BoolType:   color.YellowString,
		ir.IntType:    color.MagentaString,
		ir.UintType:   color.MagentaString,
		ir.FloatType:  color.MagentaString,
		ir.StringType: color.GreenString,
	}
	for t, f := range valueColors {
		colors.Map[Colorable{Type: t, Attr: ValueColor}] = f
	}
	return colors
}

func colorDefault(s string, args ...any) string {
	return color.WhiteString(s, args...)
}

func (c *Colors) Color(t ir.Type, attr ColorAttr, v string) string {
	f, ok := c.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", v)
}
