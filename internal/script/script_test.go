package script

import "testing"

func TestIsJapanese(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"Plain English text", false},
		{"中文文本", false},
		{"こんにちは", true},
		{"カタカナ", true},
		{"ｶﾀｶﾅ", true},
		{"東京へ行く", true},
		{"Hello\nこんこん\nWorld", true},
	}
	for _, c := range cases {
		if got := IsJapanese(c.in); got != c.want {
			t.Errorf("IsJapanese(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRatio(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"123 !?", 0},
		{"abcd", 0},
		{"日本", 1},
		{"ab日本", 0.5},
		{"ｱｲ ab", 0.5},
	}
	for _, c := range cases {
		if got := Ratio(c.in); got != c.want {
			t.Errorf("Ratio(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
