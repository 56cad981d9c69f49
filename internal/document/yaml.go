package document

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	// maxAliasDepth bounds alias expansion so self-referencing anchors fail
	// instead of recursing forever
	maxAliasDepth = 64

	// the JSON produced from a YAML document may grow to expansionRatio
	// times the input, and never below minExpansionBudget bytes
	expansionRatio     = 8
	minExpansionBudget = 1 << 20
)

// ParseYAML decodes a YAML document into the same representation a JSON
// document would have. Mapping order is kept.
func ParseYAML(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Formatf("Invalid YAML format: %v", err)
	}

	w := &nodeWriter{budget: max(len(data)*expansionRatio, minExpansionBudget)}
	if err := w.writeNode(&node, 0); err != nil {
		return nil, err
	}
	return parse(w.buf.Bytes(), "YAML")
}

// nodeWriter emits a yaml.Node tree as JSON text
type nodeWriter struct {
	buf    bytes.Buffer
	budget int
}

func (w *nodeWriter) writeNode(n *yaml.Node, depth int) error {
	if depth > maxAliasDepth {
		return errors.Format("Invalid YAML format: alias nesting too deep")
	}
	if w.buf.Len() > w.budget {
		return errors.Formatf("Invalid YAML format: document expands beyond %d bytes", w.budget)
	}
	buf := &w.buf

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return w.writeNode(n.Content[0], depth)

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, n.Content[i].Value)
			buf.WriteByte(':')
			if err := w.writeNode(n.Content[i+1], depth); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := w.writeNode(item, depth); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.AliasNode:
		if n.Alias == nil {
			buf.WriteString("null")
			return nil
		}
		return w.writeNode(n.Alias, depth+1)

	case yaml.ScalarNode:
		writeScalar(buf, n)
		return nil
	}

	buf.WriteString("null")
	return nil
}

func writeScalar(buf *bytes.Buffer, n *yaml.Node) {
	switch n.ShortTag() {
	case "!!null":
		buf.WriteString("null")
		return
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			buf.WriteString(strconv.FormatBool(b))
			return
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			buf.WriteString(strconv.FormatInt(i, 10))
			return
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
			return
		}
	}
	writeString(buf, n.Value)
}

func writeString(buf *bytes.Buffer, s string) {
	// json.Marshal on a string cannot fail
	b, _ := json.Marshal(s)
	buf.Write(b)
}
