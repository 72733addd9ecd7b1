package client

import (
	"net/url"
	"testing"
)

func TestEncodeEmpty(t *testing.T) {
	if got := (Params{}).Encode(); got != "" {
		t.Fatalf("empty params encoded to %q", got)
	}
	var nilParams Params
	if got := nilParams.Encode(); got != "" {
		t.Fatalf("nil params encoded to %q", got)
	}
}

func TestEncodeScalars(t *testing.T) {
	got := Params{"status": "publish", "per_page": 20, "on_sale": true}.Encode()
	want := "on_sale=true&per_page=20&status=publish"
	if got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeOmitsNil(t *testing.T) {
	got := Params{"status": "draft", "search": nil}.Encode()
	if got != "status=draft" {
		t.Fatalf("nil value not omitted: %q", got)
	}

	var emptyInclude []int
	if enc := (Params{"include": emptyInclude}).Encode(); enc != "" {
		t.Fatalf("nil slice not omitted: %q", enc)
	}

	var nilObj map[string]any
	if enc := (Params{"filter": nilObj}).Encode(); enc != "" {
		t.Fatalf("nil map not omitted: %q", enc)
	}
}

func TestEncodeArraysPreserveOrder(t *testing.T) {
	got := Params{"include": []int{9, 3, 7}}.Encode()
	values, err := url.ParseQuery(got)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	items := values["include[]"]
	if len(items) != 3 || items[0] != "9" || items[1] != "3" || items[2] != "7" {
		t.Fatalf("array order not preserved: %v", items)
	}

	got = Params{"slug": []string{"b", "a"}}.Encode()
	if got != "slug%5B%5D=b&slug%5B%5D=a" {
		t.Fatalf("string array encoding: %q", got)
	}
}

func TestEncodeObjectAsJSON(t *testing.T) {
	got := Params{"meta": map[string]any{"color": "red"}}.Encode()
	values, err := url.ParseQuery(got)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	if values.Get("meta") != `{"color":"red"}` {
		t.Fatalf("object not JSON-encoded: %q", values.Get("meta"))
	}
}

func TestEncodePercentEscapes(t *testing.T) {
	got := Params{"search": "blue shirt & tie"}.Encode()
	if got != "search=blue+shirt+%26+tie" {
		t.Fatalf("escaping mismatch: %q", got)
	}
}
