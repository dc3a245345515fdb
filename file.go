package yyjson

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/yyjson-go/yyjson/ir"
	"github.com/yyjson-go/yyjson/opts"
)

// LoadFile parses a JSON file into a host value. Files ending in ".gz"
// are decompressed transparently. An unreadable file surfaces as the
// underlying I/O error, not a parse error.
func LoadFile(path string, options ...opts.Option) (any, error) {
	d, err := readFile(path)
	if err != nil {
		return nil, err
	}
	v, err := Load(d, options...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// DumpFile generates JSON from a host value and writes it to path. Files
// ending in ".gz" are compressed transparently. Write failures match
// ir.ErrWrite.
func DumpFile(v any, path string, options ...opts.Option) error {
	d, err := Dump(v, options...)
	if err != nil {
		return err
	}
	if err := writeFile(path, d); err != nil {
		return ir.NewGenerateErr(fmt.Errorf("%w: %s: %v", ir.ErrWrite, path, err))
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	if !strings.HasSuffix(path, ".gz") {
		return os.ReadFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func writeFile(path string, d []byte) error {
	if !strings.HasSuffix(path, ".gz") {
		return os.WriteFile(path, d, 0o644)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write(d); err != nil {
		zw.Close()
		f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
