package dom

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	xmlerrors "github.com/jacoelho/xmldom/errors"
)

func TestNewElementValidation(t *testing.T) {
	if _, err := NewElement("valid-name"); err != nil {
		t.Fatalf("NewElement error = %v", err)
	}
	var nameErr *xmlerrors.InvalidElementName
	if _, err := NewElement("1bad"); !stderrors.As(err, &nameErr) {
		t.Errorf("NewElement(1bad) error = %v, want *InvalidElementName", err)
	}
	if _, err := NewElement("a b"); err == nil {
		t.Error("NewElement with space succeeded")
	}
	var attrErr *xmlerrors.InvalidAttributeName
	_, err := NewElementWithAttrs("a", map[string]string{"bad name": "v"})
	if !stderrors.As(err, &attrErr) {
		t.Errorf("invalid attribute error = %v, want *InvalidAttributeName", err)
	}
}

func TestQualifiedName(t *testing.T) {
	e, err := NewElement("ns:item")
	if err != nil {
		t.Fatalf("NewElement error = %v", err)
	}
	if e.Name() != "item" || e.NamespacePrefix() != "ns" {
		t.Errorf("name/prefix = %q/%q, want item/ns", e.Name(), e.NamespacePrefix())
	}
	if e.QualifiedName() != "ns:item" {
		t.Errorf("QualifiedName = %q, want ns:item", e.QualifiedName())
	}
}

func TestAttributeOperations(t *testing.T) {
	e := mustElement(t, "e")
	if err := e.SetAttr("k", "v"); err != nil {
		t.Fatalf("SetAttr error = %v", err)
	}
	if err := e.SetAttr("bad name", "v"); err == nil {
		t.Error("SetAttr with invalid name succeeded")
	}
	if v, ok := e.Attr("k"); !ok || v != "v" {
		t.Errorf("Attr(k) = %q, %v", v, ok)
	}
	if _, ok := e.Attr("missing"); ok {
		t.Error("Attr(missing) reported present")
	}
	if diff := cmp.Diff(map[string]string{"k": "v"}, e.Attributes()); diff != "" {
		t.Errorf("Attributes mismatch (-want +got):\n%s", diff)
	}
	if v, ok := e.RemoveAttr("k"); !ok || v != "v" {
		t.Errorf("RemoveAttr = %q, %v", v, ok)
	}
	if len(e.Attributes()) != 0 {
		t.Error("attributes remain after removal")
	}
}

func TestChildAccess(t *testing.T) {
	root := mustElement(t, "root")
	root.Append(mustElement(t, "a"))
	root.Append(NewText("text"))
	root.Append(mustElement(t, "b"))

	if root.NumChildren() != 3 {
		t.Fatalf("NumChildren = %d, want 3", root.NumChildren())
	}
	n, err := root.Child(1)
	if err != nil {
		t.Fatalf("Child(1) error = %v", err)
	}
	if !IsText(n) {
		t.Error("Child(1) is not text")
	}
	var oob *xmlerrors.IndexOutOfBounds
	if _, err := root.Child(5); !stderrors.As(err, &oob) {
		t.Errorf("Child(5) error = %v, want *IndexOutOfBounds", err)
	}

	var names []string
	for _, el := range root.ChildElements() {
		names = append(names, el.Name())
	}
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Errorf("ChildElements mismatch (-want +got):\n%s", diff)
	}
}

func TestElementLookups(t *testing.T) {
	root := mustElement(t, "root")
	first, err := NewElementWithText("item", "1")
	if err != nil {
		t.Fatalf("NewElementWithText error = %v", err)
	}
	second, err := NewElementWithText("item", "2")
	if err != nil {
		t.Fatalf("NewElementWithText error = %v", err)
	}
	root.AppendAll(first, second, mustElement(t, "other"))

	got, err := root.FirstElementByName("item")
	if err != nil {
		t.Fatalf("FirstElementByName error = %v", err)
	}
	if got.Text() != "1" {
		t.Errorf("first item text = %q, want 1", got.Text())
	}
	var missing *xmlerrors.DoesNotExistError
	if _, err := root.FirstElementByName("absent"); !stderrors.As(err, &missing) {
		t.Errorf("FirstElementByName(absent) error = %v, want *DoesNotExistError", err)
	}
	if n := len(root.ElementsByName("item")); n != 2 {
		t.Errorf("ElementsByName(item) = %d, want 2", n)
	}
}

func TestSearchIsRecursive(t *testing.T) {
	root := mustElement(t, "root")
	mid := mustElement(t, "mid")
	leaf, err := NewElementWithText("leaf", "deep")
	if err != nil {
		t.Fatalf("NewElementWithText error = %v", err)
	}
	mid.Append(leaf)
	root.Append(mid)
	root.Append(mustComment(t, "note"))

	if n := len(root.SearchElementsByName("leaf")); n != 1 {
		t.Fatalf("SearchElementsByName(leaf) = %d, want 1", n)
	}
	texts := root.SearchText(func(*Text) bool { return true })
	if len(texts) != 1 || texts[0].Content() != "deep" {
		t.Errorf("SearchText = %v, want [deep]", texts)
	}
	comments := root.SearchComments(func(*Comment) bool { return true })
	if len(comments) != 1 {
		t.Errorf("SearchComments = %d, want 1", len(comments))
	}
	all := root.Search(func(Node) bool { return true })
	if len(all) != 4 {
		t.Errorf("Search(all) = %d nodes, want 4", len(all))
	}
}

func TestTextMergeOnAppend(t *testing.T) {
	e := mustElement(t, "e")
	e.Append(NewText("one "))
	e.Append(NewText("two "))
	e.Append(NewText("three"))
	if e.NumChildren() != 1 {
		t.Fatalf("NumChildren = %d, want 1 merged text", e.NumChildren())
	}
	if got, want := e.Text(), "one two three"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestWhitespaceTextDropped(t *testing.T) {
	e := mustElement(t, "e")
	e.Append(NewText("  "))
	e.Append(NewText("\n\t"))
	if e.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0 after whitespace-only merge", e.NumChildren())
	}
}

func TestInsertAndRemove(t *testing.T) {
	root := mustElement(t, "root")
	root.Append(mustElement(t, "b"))
	if err := root.Insert(0, mustElement(t, "a")); err != nil {
		t.Fatalf("Insert error = %v", err)
	}
	if err := root.Insert(9, mustElement(t, "x")); err == nil {
		t.Error("Insert out of range succeeded")
	}
	names := func() []string {
		var out []string
		for _, el := range root.ChildElements() {
			out = append(out, el.Name())
		}
		return out
	}
	if diff := cmp.Diff([]string{"a", "b"}, names()); diff != "" {
		t.Fatalf("after insert (-want +got):\n%s", diff)
	}

	removed, err := root.Remove(0)
	if err != nil {
		t.Fatalf("Remove error = %v", err)
	}
	if el, _ := AsElement(removed); el.Name() != "a" {
		t.Errorf("removed %q, want a", el.Name())
	}

	root.Append(mustElement(t, "b"))
	if n := root.RemoveElementsByName("b"); n != 2 {
		t.Errorf("RemoveElementsByName = %d, want 2", n)
	}
	if root.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", root.NumChildren())
	}
}

func TestPrepend(t *testing.T) {
	root, err := NewElementWithAttrs("root", map[string]string{"xmlns": "NS1"})
	if err != nil {
		t.Fatalf("NewElementWithAttrs error = %v", err)
	}
	root.Append(mustElement(t, "b"))
	first := mustElement(t, "a")
	root.Prepend(first)

	var names []string
	for _, el := range root.ChildElements() {
		names = append(names, el.Name())
	}
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Fatalf("after prepend (-want +got):\n%s", diff)
	}
	if got := first.Namespace(); got != "NS1" {
		t.Errorf("prepended child namespace = %q, want NS1", got)
	}

	text := mustElement(t, "text")
	text.Append(NewText("world"))
	text.Prepend(NewText("hello "))
	if got := text.Text(); got != "hello world" {
		t.Errorf("text after prepend = %q, want %q", got, "hello world")
	}
	if text.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1 merged text node", text.NumChildren())
	}
}

func TestRemoveElementCountsElementsOnly(t *testing.T) {
	root := mustElement(t, "root")
	root.Append(NewText("keep "))
	root.Append(mustElement(t, "a"))
	root.Append(mustElement(t, "b"))

	el, err := root.RemoveElement(1)
	if err != nil {
		t.Fatalf("RemoveElement error = %v", err)
	}
	if el.Name() != "b" {
		t.Errorf("RemoveElement(1) = %q, want b", el.Name())
	}
	if _, err := root.RemoveElement(5); err == nil {
		t.Error("RemoveElement out of range succeeded")
	}
	if got := root.Text(); got != "keep " {
		t.Errorf("text lost during element removal: %q", got)
	}
}

func TestSetText(t *testing.T) {
	e := mustElement(t, "e")
	e.Append(mustElement(t, "old"))
	e.SetText("replaced")
	if e.NumChildren() != 1 {
		t.Fatalf("NumChildren = %d, want 1", e.NumChildren())
	}
	if e.Text() != "replaced" {
		t.Errorf("Text = %q, want replaced", e.Text())
	}
}

func TestElementTextSkipsCommentsAndCData(t *testing.T) {
	e := mustElement(t, "e")
	e.Append(NewText("a"))
	e.Append(mustComment(t, "hidden"))
	cd, err := NewCData("raw")
	if err != nil {
		t.Fatalf("NewCData error = %v", err)
	}
	e.Append(cd)
	inner, err := NewElementWithText("i", "b")
	if err != nil {
		t.Fatalf("NewElementWithText error = %v", err)
	}
	e.Append(inner)
	if got, want := e.Text(), "ab"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}
