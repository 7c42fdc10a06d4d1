// Package hwio reads and writes hardware models in the on-disk YAML
// configuration format, optionally gzip-compressed.
//
// The format is a YAML mapping with one section per collection
// (telescopes, tube_slots, wafer_slots, card_slots, crate_slots, bands,
// detectors), each section mapping entity name to attribute record.
// Collection ordering is preserved exactly on round trip, and every loaded
// model is validated before it is returned, so a successful load implies
// referential integrity.
//
// Compression is transparent: ReadFile and Parse detect the gzip magic
// bytes, WriteFile compresses when the target path ends in ".gz".
package hwio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"

	"github.com/ccatp/go-hardware"
)

// configPermissions is the file permission mode for dumped configs.
const configPermissions = 0o644

// gzipMagic is the two-byte header identifying gzip streams.
var gzipMagic = []byte{0x1f, 0x8b}

// ReadFile reads, parses and validates a hardware model from the given
// path. Gzip-compressed files are detected by content, not extension.
func ReadFile(path string) (*hardware.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hardware config: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// Parse parses hardware config data, decompressing it first if it is a
// gzip stream. The model is validated before being returned; referential
// errors surface as *hardware.MalformedModelError.
func Parse(data []byte) (*hardware.Model, error) {
	if bytes.HasPrefix(data, gzipMagic) {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer zr.Close()
		if data, err = io.ReadAll(zr); err != nil {
			return nil, fmt.Errorf("decompress: %w", err)
		}
	}

	var m hardware.Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode hardware config YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Marshal renders the model as YAML with collections in their insertion
// order. Output is deterministic for a given model.
func Marshal(m *hardware.Model) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode hardware config YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode hardware config YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes the model to the given path, gzip-compressing when the
// path ends in ".gz".
func WriteFile(m *hardware.Model, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	if strings.HasSuffix(path, ".gz") {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("compress: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("compress: %w", err)
		}
		data = buf.Bytes()
	}
	return os.WriteFile(path, data, configPermissions)
}

// WriteTo writes the uncompressed YAML rendering of the model to w.
func WriteTo(m *hardware.Model, w io.Writer) (int64, error) {
	data, err := Marshal(m)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}
