package marshal_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/uniyakcom/object/core"
	"github.com/uniyakcom/object/json"
	"github.com/uniyakcom/object/marshal"
)

func sample() *core.Map {
	m := core.NewMap(2)
	m.Insert("name", core.NewString("Ryan"))
	m.Insert("age", core.NewInt(30))
	m.Insert("ok", core.NewBool(true))
	m.Insert("none", core.NewNull())
	m.Insert("ratio", core.NewFloat(1.5))
	m.Insert("whole", core.NewFloat(2))
	m.Insert("code", core.NewString("123"))
	return m
}

func TestJSONMarshal(t *testing.T) {
	var c marshal.Codec = marshal.JSON{}
	data, err := c.Marshal(sample())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"Ryan","age":30,"ok":true,"none":null,"ratio":1.5,"whole":2,"code":"123"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
	if c.Name() != "json" {
		t.Errorf("Name() = %q, want %q", c.Name(), "json")
	}
}

func TestYAMLMarshal(t *testing.T) {
	data, err := marshal.YAML{}.Marshal(sample())
	if err != nil {
		t.Fatal(err)
	}
	want := "name: Ryan\n" +
		"age: 30\n" +
		"ok: true\n" +
		"none: null\n" +
		"ratio: 1.5\n" +
		"whole: 2.0\n" +
		"code: \"123\"\n"
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}
}

func TestYAMLMarshalSequence(t *testing.T) {
	tags := core.NewArray(2)
	tags.Push(core.NewString("go"))
	tags.Push(core.NewInt(1))
	m := core.NewMap(1)
	m.Insert("tags", tags)

	data, err := marshal.YAML{}.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.HasPrefix(s, "tags:\n") || !strings.Contains(s, "- go\n") || !strings.Contains(s, "- 1\n") {
		t.Errorf("Marshal() = %q", s)
	}
	if strings.Index(s, "- go") > strings.Index(s, "- 1") {
		t.Error("sequence order not preserved")
	}
}

func TestMarshalUnsupported(t *testing.T) {
	p := core.NewPair(core.NewNull(), core.NewNull())
	for _, c := range []marshal.Codec{marshal.JSON{}, marshal.YAML{}} {
		data, err := c.Marshal(p)
		if data != nil || !errors.Is(err, json.ErrUnsupportedType) {
			t.Errorf("%s: Marshal(pair) = %q, %v", c.Name(), data, err)
		}
	}

	a := core.NewArray(1)
	a.PushRef(a)
	if _, err := (marshal.YAML{}).Marshal(a); !errors.Is(err, json.ErrCircular) {
		t.Errorf("YAML Marshal(circular) error = %v, want ErrCircular", err)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"json", "json", true},
		{"JSON", "json", true},
		{"yaml", "yaml", true},
		{"yml", "yaml", true},
		{"toml", "", false},
	}
	for _, tt := range tests {
		c, ok := marshal.ByName(tt.in)
		if ok != tt.ok {
			t.Errorf("ByName(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && c.Name() != tt.want {
			t.Errorf("ByName(%q).Name() = %q, want %q", tt.in, c.Name(), tt.want)
		}
	}
}
