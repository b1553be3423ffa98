package node

import (
	"encoding/json"
	"fmt"
)

// MaxDecodeBytes bounds the size of a single Decode call's input,
// SPEC_FULL §12's size-bounded decoding requirement (the Rust server
// this was distilled from guards against pathological payloads before
// ever handing them to the renderer; this package carries the same
// posture without the HMAC verification step, which SPEC_FULL leaves
// to the caller).
const MaxDecodeBytes = 16 << 20

// MaxDecodeDepth bounds container nesting so a maliciously deep tree
// can't exhaust the stack during decoding or the later layout walk.
const MaxDecodeDepth = 128

// rawNode mirrors spec.md §6.4's wire shape: a "type" discriminator
// plus variant-specific fields alongside the flat style fields Style's
// own UnmarshalJSON consumes from the same object. "width"/"height" are
// kept raw: a bare number on an image node is also its intrinsic-size
// hint, while a CSS string ("100px") is only a style length.
type rawNode struct {
	Type     string            `json:"type"`
	Text     string            `json:"text"`
	Src      string            `json:"src"`
	Width    json.RawMessage   `json:"width"`
	Height   json.RawMessage   `json:"height"`
	Children []json.RawMessage `json:"children"`
}

// Decode parses one node tree from JSON, spec.md §6.4: a "type" field
// names the variant (container/text/image), unknown fields are
// ignored, and out-of-range enums fail decoding (delegated to
// style.Style.UnmarshalJSON, which already enforces that per field).
func Decode(data []byte) (*Node, error) {
	if len(data) > MaxDecodeBytes {
		return nil, fmt.Errorf("node: payload of %d bytes exceeds the %d byte limit", len(data), MaxDecodeBytes)
	}
	return decodeNode(data, 0)
}

func decodeNode(data []byte, depth int) (*Node, error) {
	if depth > MaxDecodeDepth {
		return nil, fmt.Errorf("node: nesting depth exceeds %d", MaxDecodeDepth)
	}

	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("node: %w", err)
	}

	n := &Node{}
	if err := n.Style.UnmarshalJSON(data); err != nil {
		return nil, err
	}

	switch raw.Type {
	case "", "container":
		n.Kind = KindContainer
		for _, c := range raw.Children {
			child, err := decodeNode(c, depth+1)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	case "text":
		n.Kind = KindText
		n.Text = raw.Text
	case "image":
		n.Kind = KindImage
		n.Src = raw.Src
		hint := func(m json.RawMessage) *float32 {
			var v float32
			if len(m) == 0 || string(m) == "null" || json.Unmarshal(m, &v) != nil {
				return nil
			}
			return &v
		}
		n.Width = hint(raw.Width)
		n.Height = hint(raw.Height)
	default:
		return nil, fmt.Errorf("node: unknown type %q", raw.Type)
	}
	return n, nil
}
