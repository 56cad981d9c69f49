// Package document loads character documents and decodes them into the
// typed dnd5e model.
//
// Only the root shape is validated; every field below the root is read
// tolerantly and coerced to a safe default when it has the wrong shape.
package document

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Document is a validated character document. Key order is preserved.
type Document struct {
	root gjson.Result
}

// Parse validates JSON bytes and returns a Document. The root must be an
// object.
func Parse(data []byte) (*Document, error) {
	return parse(data, "JSON")
}

func parse(data []byte, kind string) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if !gjson.ValidBytes(data) {
		// gjson reports validity only; the stdlib decoder supplies the detail
		var v interface{}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, errors.Formatf("Invalid %s format: %v", kind, err)
		}
		return nil, errors.Formatf("Invalid %s format", kind)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.Formatf("%s data must be an object", kind)
	}

	return &Document{root: root}, nil
}

// LoadFile reads a document from disk. Files ending in .yaml or .yml are
// read as YAML; everything else as JSON.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.MissingFilef("JSON file not found: %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	if IsYAMLPath(path) {
		return ParseYAML(data)
	}
	return Parse(data)
}

// IsYAMLPath reports whether the path names a YAML document
func IsYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Character decodes the document into the typed model
func (d *Document) Character() *dnd5e.Character {
	return decodeCharacter(d.root)
}
