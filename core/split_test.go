package core

import "testing"

func arrayStrings(a *Array) []string {
	out := make([]string, 0, a.Len())
	a.Range(func(_ int, v Value) bool {
		out = append(out, v.(*String).String())
		return true
	})
	return out
}

// TestSplit 测试单字节分隔切分
func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a,b,,c", []string{"a", "b", "", "c"}},
		{"", []string{}},
		{"abc", []string{"abc"}},
		{",a", []string{"a"}},
		{"a,", []string{"a", ""}},
		{",,a", []string{"", "a"}},
		{"Ryan,Tom,Jerry,Lily,Kate,Bob", []string{"Ryan", "Tom", "Jerry", "Lily", "Kate", "Bob"}},
	}
	for _, tt := range tests {
		arr, err := Split(tt.in, ',')
		if err != nil {
			t.Fatalf("Split(%q) error: %v", tt.in, err)
		}
		got := arrayStrings(arr)
		if len(got) != len(tt.want) {
			t.Errorf("Split(%q) = %q, want %q", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Split(%q) = %q, want %q", tt.in, got, tt.want)
				break
			}
		}
	}
}

// TestCat 测试拼接
func TestCat(t *testing.T) {
	a, b := NewString("Hello, "), NewString("World")
	c := Cat(a, b)
	if c.String() != "Hello, World" {
		t.Errorf("Cat() = %q", c.String())
	}
	if !Equal(c, NewString("Hello, World")) {
		t.Error("Cat result hash mismatch")
	}
	if a.String() != "Hello, " {
		t.Error("Cat must not modify its inputs")
	}
}
