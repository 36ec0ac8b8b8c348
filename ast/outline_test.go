package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOutline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.ast")
	defer teardown()
	//
	tree := NewAssign(NewIdentifier("a"), NewInteger(42, SourceBase(16)))
	expected := Outline{
		Kind: "Assign",
		Children: []Outline{
			{Kind: "Identifier", Payload: []string{"a", ""}},
			{Kind: "Integer", Payload: []string{"42"}, Options: map[string]string{"sourceBase": "16"}},
		},
	}
	if diff := cmp.Diff(expected, OutlineOf(tree)); diff != "" {
		t.Errorf("unexpected outline (-want +got):\n%s", diff)
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gtfo.ast")
	defer teardown()
	//
	t1 := sample()
	t2 := sample()
	if Fingerprint(t1) == "" {
		t.Fatalf("empty fingerprint")
	}
	if Fingerprint(t1) != Fingerprint(t2) || !Equal(t1, t2) {
		t.Errorf("expected equal trees to have equal fingerprints")
	}
	a := NewList([]Node{NewInteger(1)})
	b := NewList([]Node{NewInteger(1, SourceBase(16))})
	c := NewList([]Node{NewDecimal(1)})
	if Equal(a, b) {
		t.Errorf("expected options to distinguish trees")
	}
	if Equal(a, c) {
		t.Errorf("expected variants to distinguish trees")
	}
}
