package node

import (
	"strings"
	"testing"
)

func TestDecodeDefaultsToContainer(t *testing.T) {
	n, err := Decode([]byte(`{"children":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind != KindContainer {
		t.Fatalf("expected KindContainer, got %v", n.Kind)
	}
}

func TestDecodeTextNode(t *testing.T) {
	n, err := Decode([]byte(`{"type":"text","text":"hello"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind != KindText || n.Text != "hello" {
		t.Fatalf("unexpected node: %+v", n)
	}
}

func TestDecodeImageNodeWithHints(t *testing.T) {
	n, err := Decode([]byte(`{"type":"image","src":"foo.png","width":10,"height":20}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind != KindImage || n.Src != "foo.png" {
		t.Fatalf("unexpected node: %+v", n)
	}
	if n.Width == nil || *n.Width != 10 || n.Height == nil || *n.Height != 20 {
		t.Fatalf("expected width/height hints, got %+v %+v", n.Width, n.Height)
	}
}

func TestDecodeNestedChildren(t *testing.T) {
	n, err := Decode([]byte(`{"children":[{"type":"text","text":"a"},{"type":"text","text":"b"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(n.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(n.Children))
	}
	if n.Children[0].Text != "a" || n.Children[1].Text != "b" {
		t.Fatalf("unexpected children: %+v", n.Children)
	}
}

func TestDecodeUnknownTypeFails(t *testing.T) {
	_, err := Decode([]byte(`{"type":"video"}`))
	if err == nil {
		t.Fatal("expected an error for an unknown node type")
	}
}

func TestDecodeUnknownFieldsAreIgnored(t *testing.T) {
	n, err := Decode([]byte(`{"type":"text","text":"hi","bogusField":123}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Text != "hi" {
		t.Fatalf("unexpected node: %+v", n)
	}
}

func TestDecodeRejectsOversizedPayload(t *testing.T) {
	huge := `{"type":"text","text":"` + strings.Repeat("a", MaxDecodeBytes) + `"}`
	_, err := Decode([]byte(huge))
	if err == nil {
		t.Fatal("expected an error for an oversized payload")
	}
}

func TestDecodeRejectsExcessiveNesting(t *testing.T) {
	data := []byte(`{"type":"text","text":"leaf"}`)
	for i := 0; i <= MaxDecodeDepth+1; i++ {
		data = []byte(`{"children":[` + string(data) + `]}`)
	}
	_, err := Decode(data)
	if err == nil {
		t.Fatal("expected an error for nesting beyond MaxDecodeDepth")
	}
}

func TestDecodeCarriesStyleFields(t *testing.T) {
	n, err := Decode([]byte(`{"type":"container","width":"100px"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Style.Width.Value.Unit == 0 && n.Style.Width.Value.Value == 0 && !n.Style.Width.IsSet() {
		t.Fatalf("expected width to be set from the same JSON object, got %+v", n.Style.Width)
	}
}
