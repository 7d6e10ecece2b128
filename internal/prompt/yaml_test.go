package prompt

import (
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"sample.yml": {Data: []byte("system: hello\nuser: |\n  line one\n  line two\ncount: 3\nempty:\n")},
	}

	fields, err := loadFile(fsys, "sample.yml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields["system"] != "hello" || fields["count"] != "3" || fields["empty"] != "" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if fields["user"] != "line one\nline two" {
		t.Fatalf("expected trailing newline to be trimmed, got %q", fields["user"])
	}
}

func TestLoadFileRejects(t *testing.T) {
	cases := map[string]string{
		"placeholder in system": "system: \"hello {name}\"\n",
		"nested mapping":        "user:\n  nested: value\n",
		"sequence":              "user:\n  - a\n",
		"malformed":             "user: [unterminated\n",
	}
	for name, data := range cases {
		fsys := fstest.MapFS{"bad.yml": {Data: []byte(data)}}
		if _, err := loadFile(fsys, "bad.yml"); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadDir(t *testing.T) {
	fsys := fstest.MapFS{
		"prompts/a.yml":  {Data: []byte("system: alpha\n")},
		"prompts/b.yaml": {Data: []byte("system: beta\n")},
	}

	set, err := loadDir(fsys, "prompts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(set))
	}
	if value, _ := set.field("a", "system"); value != "alpha" {
		t.Fatalf("unexpected prompt value: %q", value)
	}
}

func TestLoadDirErrors(t *testing.T) {
	dup := fstest.MapFS{
		"prompts/a.yml":  {Data: []byte("system: one\n")},
		"prompts/a.yaml": {Data: []byte("system: two\n")},
	}
	if _, err := loadDir(dup, "prompts"); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	if _, err := loadDir(fstest.MapFS{}, "prompts"); err == nil {
		t.Fatalf("expected empty dir error")
	}
}

func TestBundleRender(t *testing.T) {
	fsys := fstest.MapFS{
		"prompts/detect.yml": {Data: []byte("user: \"Text: {text}\"\n")},
		"prompts/chat.yml":   {Data: []byte("system: persona\n")},
	}

	bundle, err := LoadBundle(fsys, "prompts", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(bundle.prompts.names(), []string{"chat", "detect"}) {
		t.Fatalf("unexpected names: %v", bundle.prompts.names())
	}

	rendered, err := bundle.Render("detect", "user", map[string]string{"text": "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rendered != "Text: hello" {
		t.Fatalf("unexpected render: %s", rendered)
	}

	if _, err := bundle.Render("detect", "missing", nil); err == nil {
		t.Fatalf("expected missing field error")
	}
	_, err = bundle.Text("unknown", "user")
	if err == nil || !strings.HasPrefix(err.Error(), "test: ") || !strings.Contains(err.Error(), "loaded: chat, detect") {
		t.Fatalf("expected labelled missing prompt error listing loaded prompts, got %v", err)
	}
}

func TestBundleRequire(t *testing.T) {
	fsys := fstest.MapFS{
		"prompts/chat.yml": {Data: []byte("system: persona\n")},
	}
	bundle, err := LoadBundle(fsys, "prompts", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bundle.Require(map[string][]string{"chat": {"system"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bundle.Require(map[string][]string{"chat": {"user"}}); err == nil {
		t.Fatalf("expected missing field error")
	}

	var nilBundle *Bundle
	if _, err := nilBundle.Text("chat", "system"); err == nil {
		t.Fatalf("expected nil bundle error")
	}
}
