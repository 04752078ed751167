package furigana

import (
	"strings"
	"testing"
)

func always(string) bool { return true }
func never(string) bool  { return false }

func TestIsSkippable(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{" ", true},
		{"　", true},
		{"﹅﹅﹅", true},
		{"こんにちは", true},
		{"カタカナ", true},
		{"ひら カタ", true},
		{"ㇰㇱㇲ", true},
		{"ゝゞヽヾー", true},
		{"漢字", false},
		{"かな漢", false},
		{"abc", false},
		{"か\t", false},
		{"か\n", false},
		{"\xff", false},
	}
	for _, c := range cases {
		if got := IsSkippable(c.in); got != c.want {
			t.Errorf("IsSkippable(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRewriteScenarios(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"kana middle line", "Hello\nこんこん\nWorld", "HelloWorld", true},
		{"empty middle line", "こんにちは\n\nさようなら", "こんにちはさようなら", true},
		{"no line breaks", "Plain English text", "", false},
		{"two segments", "A\nB", "AB", true},
		{"crlf", "本日\r\nほんじつ\r\nは晴れ", "本日は晴れ", true},
		{"sesame dots", "強調\n﹅﹅\n文字", "強調文字", true},
		{"interior kanji kept", "一\n二\n三", "一二三", true},
		{"boundary kana kept", "かな\nかな\nかな", "かなかな", true},
		{"segments trimmed", "  東京 \n とうきょう \n 駅  ", "東京駅", true},
		{"only whitespace", " \n ", "", true},
		{"trailing break only", "文字\n", "文字", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rw := New(always)
			got, ok := rw.Rewrite(c.in)
			if ok != c.ok || got != c.want {
				t.Fatalf("Rewrite(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestRewriteRejectedByDetector(t *testing.T) {
	rw := New(never)
	if got, ok := rw.Rewrite("Hello\nこんこん\nWorld"); ok {
		t.Fatalf("Rewrite = %q, true; want no rewrite", got)
	}
}

func TestRewriteNilDetectorAcceptsAll(t *testing.T) {
	rw := New(nil)
	if got, ok := rw.Rewrite("A\nB"); !ok || got != "AB" {
		t.Fatalf("Rewrite = %q, %v; want AB, true", got, ok)
	}
}

func TestRewriteBoundaryException(t *testing.T) {
	rw := New(always)
	for _, edge := range []string{"abc", "漢字", "かな", "﹅", "x y"} {
		in := edge + "\nふりがな\n" + edge
		got, ok := rw.Rewrite(in)
		if !ok {
			t.Fatalf("Rewrite(%q) reported no change", in)
		}
		if got != edge+edge {
			t.Errorf("Rewrite(%q) = %q, want %q", in, got, edge+edge)
		}
	}
}

func TestRewriteOutputIsStable(t *testing.T) {
	rw := New(always)
	out, ok := rw.Rewrite("ルビ\nるび\n付き\nつき\n文章")
	if !ok || out != "ルビ付き文章" {
		t.Fatalf("Rewrite = %q, %v", out, ok)
	}
	if again, ok := rw.Rewrite(out); ok {
		t.Fatalf("second Rewrite = %q, true; want no-op", again)
	}
}

func TestRewriterReusesBuffer(t *testing.T) {
	rw := New(always)
	first, _ := rw.Rewrite("一\nいち\n二")
	second, _ := rw.Rewrite("三\nさん\n四")
	if first != "一二" || second != "三四" {
		t.Fatalf("got %q and %q", first, second)
	}
	if rw.buf.Len() != 0 {
		t.Fatalf("buffer not cleared: %d bytes", rw.buf.Len())
	}
}

func TestChangedComparesUntrimmedLength(t *testing.T) {
	if changed("abcd", "abcd") {
		t.Error("equal length reported as changed")
	}
	if changed("wxyz", "abcd") {
		t.Error("different content with equal length reported as changed")
	}
	if !changed("abc", " abc") {
		t.Error("trimmed output reported as unchanged")
	}
}

func TestShouldProcess(t *testing.T) {
	rw := New(always)
	if rw.ShouldProcess("no breaks here") {
		t.Error("text without line breaks accepted")
	}
	if !rw.ShouldProcess("a\rb") {
		t.Error("CR not treated as a line break")
	}
	if New(never).ShouldProcess("a\nb") {
		t.Error("detector verdict ignored")
	}
}

func TestClean(t *testing.T) {
	if got := Clean("Hello\nこんこん\nWorld"); got != "HelloWorld" {
		t.Fatalf("Clean = %q", got)
	}
	if got := Clean("single line"); got != "single line" {
		t.Fatalf("Clean = %q", got)
	}
	if got := Clean(""); got != "" {
		t.Fatalf("Clean(\"\") = %q", got)
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines("a\r\nb\nc")
	want := []string{"a", "", "b", "c"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("splitLines = %q, want %q", got, want)
	}
}

func BenchmarkRewrite(b *testing.B) {
	rw := New(always)
	text := strings.Repeat("漢字\nかんじ\n", 200) + "終わり"
	b.ReportAllocs()
	for b.Loop() {
		rw.Rewrite(text)
	}
}
