package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Build  bool
	Dump   bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("YYJSON_DEBUG_PARSE")
	d.Build = boolEnv("YYJSON_DEBUG_BUILD")
	d.Dump = boolEnv("YYJSON_DEBUG_DUMP")
	d.Encode = boolEnv("YYJSON_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Build() bool {
	return d.Build
}
func Dump() bool {
	return d.Dump
}
func Encode() bool {
	return d.Encode
}
