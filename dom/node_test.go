package dom

import (
	stderrors "errors"
	"testing"

	xmlerrors "github.com/jacoelho/xmldom/errors"
)

func mustElement(t *testing.T, name string) *Element {
	t.Helper()
	e, err := NewElement(name)
	if err != nil {
		t.Fatalf("NewElement(%q) error = %v", name, err)
	}
	return e
}

func mustComment(t *testing.T, content string) *Comment {
	t.Helper()
	c, err := NewComment(content)
	if err != nil {
		t.Fatalf("NewComment(%q) error = %v", content, err)
	}
	return c
}

func TestNodeTypes(t *testing.T) {
	cd, err := NewCData("x")
	if err != nil {
		t.Fatalf("NewCData error = %v", err)
	}
	tests := []struct {
		node Node
		want NodeType
	}{
		{mustElement(t, "e"), ElementNode},
		{NewText("t"), TextNode},
		{mustComment(t, "c"), CommentNode},
		{cd, CDataNode},
	}
	for _, tt := range tests {
		if got := tt.node.Type(); got != tt.want {
			t.Errorf("Type() = %v, want %v", got, tt.want)
		}
	}
	if IsElement(tests[1].node) || !IsElement(tests[0].node) {
		t.Error("IsElement misclassifies")
	}
	if !IsText(tests[1].node) || !IsComment(tests[2].node) || !IsCData(tests[3].node) {
		t.Error("Is* misclassifies")
	}
}

func TestDowncasts(t *testing.T) {
	var n Node = NewText("content")
	text, err := AsText(n)
	if err != nil {
		t.Fatalf("AsText error = %v", err)
	}
	if text.Content() != "content" {
		t.Errorf("Content = %q, want content", text.Content())
	}

	_, err = AsElement(n)
	var cast *xmlerrors.TypeCastError
	if !stderrors.As(err, &cast) {
		t.Fatalf("AsElement error = %T, want *TypeCastError", err)
	}
	if cast.From != "Text" || cast.To != "Element" {
		t.Errorf("TypeCastError = %s to %s, want Text to Element", cast.From, cast.To)
	}
	if _, err := AsComment(n); err == nil {
		t.Error("AsComment on Text succeeded")
	}
	if _, err := AsCData(n); err == nil {
		t.Error("AsCData on Text succeeded")
	}
}

func TestNodeEqual(t *testing.T) {
	a := mustElement(t, "a")
	b := mustElement(t, "a")
	if !Equal(a, b) {
		t.Error("identical empty elements not equal")
	}
	if Equal(a, NewText("a")) {
		t.Error("element equal to text")
	}
	if !Equal(NewText("x"), NewText("x")) {
		t.Error("identical text nodes not equal")
	}
	if Equal(NewText("x"), NewText("y")) {
		t.Error("different text nodes equal")
	}
	if !Equal(nil, nil) || Equal(a, nil) {
		t.Error("nil comparison wrong")
	}
}

func TestClone(t *testing.T) {
	parent, err := NewElementWithAttrs("parent", map[string]string{"k": "v"})
	if err != nil {
		t.Fatalf("NewElementWithAttrs error = %v", err)
	}
	parent.Append(NewText("hello"))
	parent.Append(mustElement(t, "child"))

	cp, err := AsElement(parent.Clone())
	if err != nil {
		t.Fatalf("AsElement error = %v", err)
	}
	if !parent.Equal(cp) {
		t.Fatal("clone not equal to original")
	}
	if err := cp.SetAttr("k", "changed"); err != nil {
		t.Fatalf("SetAttr error = %v", err)
	}
	if parent.Equal(cp) {
		t.Error("mutating clone affected original")
	}
}
