package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		Package:  "arity",
		MaxArity: 4,
		Families: []string{"types", "tuple", "make", "map", "zip", "deque"},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing package", func(c *Config) { c.Package = "" }, "package name is required"},
		{"zero arity", func(c *Config) { c.MaxArity = 0 }, "out of range"},
		{"huge arity", func(c *Config) { c.MaxArity = 100 }, "out of range"},
		{"no families", func(c *Config) { c.Families = nil }, "at least one family"},
		{"unknown family", func(c *Config) { c.Families = []string{"bogus"} }, `unknown family "bogus"`},
		{"duplicate family", func(c *Config) { c.Families = []string{"map", "map"} }, `duplicate family "map"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testConfig()
			tc.mutate(&c)
			err := c.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.yaml")
	doc := "package: arity\nmax_arity: 8\nfamilies:\n  - map\n  - zip\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Package != "arity" || c.MaxArity != 8 || len(c.Families) != 2 {
		t.Errorf("unexpected config %+v", c)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.yaml")
	if err := os.WriteFile(path, []byte("package: arity\nmax_arity: 0\nfamilies: [map]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected invalid config to be rejected")
	}
}

func TestFilesNamesAndHeader(t *testing.T) {
	files, err := Files(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 6 {
		t.Fatalf("expected 6 files, got %d", len(files))
	}
	for _, name := range []string{"types_gen.go", "tuple_gen.go", "make_gen.go", "map_gen.go", "zip_gen.go", "deque_gen.go"} {
		src, ok := files[name]
		if !ok {
			t.Errorf("missing %s", name)
			continue
		}
		if !strings.HasPrefix(string(src), "// Code generated by aritygen; DO NOT EDIT.") {
			t.Errorf("%s missing generated-code header", name)
		}
		if !strings.Contains(string(src), "package arity\n") {
			t.Errorf("%s missing package clause", name)
		}
	}
}

// Every emitted file must be syntactically valid Go.
func TestFilesParse(t *testing.T) {
	files, err := Files(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	fset := token.NewFileSet()
	for name, src := range files {
		if _, err := parser.ParseFile(fset, name, src, parser.AllErrors); err != nil {
			t.Errorf("%s does not parse: %v", name, err)
		}
	}
}

func TestFilesCoverConfiguredRange(t *testing.T) {
	files, err := Files(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	types := string(files["types_gen.go"])
	for _, decl := range []string{"type A0[T any] [0]T", "type A4[T any] [4]T", "~[0]T | ~[1]T | ~[2]T | ~[3]T | ~[4]T"} {
		if !strings.Contains(types, decl) {
			t.Errorf("types_gen.go missing %q", decl)
		}
	}
	if strings.Contains(types, "type A5[T any]") {
		t.Error("types_gen.go exceeds the configured arity ceiling")
	}

	// Push stops one arity short of the ceiling; pop starts at 1.
	deque := string(files["deque_gen.go"])
	if !strings.Contains(deque, "func (a A3[T]) PushBack(item T) A4[T]") {
		t.Error("deque_gen.go missing push at ceiling-1")
	}
	if strings.Contains(deque, "func (a A4[T]) PushBack") {
		t.Error("deque_gen.go must not push past the ceiling")
	}
	if !strings.Contains(deque, "func (a A4[T]) PopBack() (A3[T], T)") {
		t.Error("deque_gen.go missing pop at the ceiling")
	}
	if strings.Contains(deque, "func (a A0[T]) PopBack") {
		t.Error("deque_gen.go must not pop the empty array")
	}

	mk := string(files["make_gen.go"])
	if !strings.Contains(mk, "func Generate1[T any](f ProducerOnce[T]) A1[T]") {
		t.Error("make_gen.go: Generate1 must take a ProducerOnce")
	}
	if !strings.Contains(mk, "func Generate2[T any](f Producer[T]) A2[T]") {
		t.Error("make_gen.go: Generate2 must take a Producer")
	}
}

// The same config must always produce byte-identical output.
func TestFilesDeterministic(t *testing.T) {
	first, err := Files(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Files(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	for name := range first {
		if string(first[name]) != string(second[name]) {
			t.Errorf("%s differs between runs", name)
		}
	}
}
