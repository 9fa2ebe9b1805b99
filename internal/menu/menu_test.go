package menu

import (
	"bytes"
	"strings"
	"testing"

	"ssh-roads/internal/domain"
	"ssh-roads/internal/placeholder"

	"github.com/charmbracelet/x/ansi"
)

func TestPad(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		width     int
		want      string
		wantWidth int
	}{
		{"ascii short", "ab", 6, "ab    ", 6},
		{"empty", "", 3, "   ", 3},
		{"exact", "abcdef", 6, "abcdef", 6},
		{"too long", "abcdefgh", 6, "abcdefgh", 8},
		{"wide glyphs", "服务器", 10, "服务器    ", 10},
		{"wide at width", "服务", 4, "服务", 4},
		{"wide overflow", "服务器", 5, "服务器", 6},
		{"mixed", "db-东京", 10, "db-东京   ", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pad(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("Pad(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if w := ansi.StringWidth(got); w != tt.wantWidth {
				t.Errorf("width of %q = %d, want %d", got, w, tt.wantWidth)
			}
		})
	}
}

func testResolver(vars map[string]string) *placeholder.Resolver {
	return &placeholder.Resolver{LookupEnv: func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}}
}

func TestRow_DefaultPortOmitted(t *testing.T) {
	s := domain.Server{Key: "a", Name: "Box", IP: "1.2.3.4", Port: "22"}

	got := Row(s, testResolver(nil))
	want := Pad("a", KeyWidth) + " " + Pad("Box", NameWidth) + " " + Pad("1.2.3.4", AddressWidth) + " "
	if got != want {
		t.Errorf("Row =\n%q\nwant\n%q", got, want)
	}
}

func TestRow_CustomPortAndComment(t *testing.T) {
	s := domain.Server{Key: "b", Name: "Other", IP: "$HOST", Port: "$PORT", Comment: "backup"}

	got := Row(s, testResolver(map[string]string{"HOST": "5.6.7.8", "PORT": "2222"}))
	if !strings.Contains(got, "5.6.7.8:2222") {
		t.Errorf("expected resolved address in row, got %q", got)
	}
	if !strings.HasSuffix(got, "(backup)") {
		t.Errorf("expected comment suffix, got %q", got)
	}
}

func TestRow_UnresolvedPlaceholderRendersLiterally(t *testing.T) {
	s := domain.Server{Key: "c", Name: "Ghost", IP: "$NOT_SET", Port: "oops"}

	got := Row(s, testResolver(nil))
	if !strings.Contains(got, "$NOT_SET ") {
		t.Errorf("expected literal placeholder in row, got %q", got)
	}
}

func TestRow_WideNameAligns(t *testing.T) {
	narrow := Row(domain.Server{Key: "a", Name: "Tokyo", IP: "h"}, testResolver(nil))
	wide := Row(domain.Server{Key: "b", Name: "東京サーバー", IP: "h"}, testResolver(nil))

	if ansi.StringWidth(narrow) != ansi.StringWidth(wide) {
		t.Errorf("rows have different widths: %d vs %d", ansi.StringWidth(narrow), ansi.StringWidth(wide))
	}
}

func TestPresent(t *testing.T) {
	servers := []domain.Server{
		{Key: "a", Name: "Box", IP: "1.2.3.4", Port: "22"},
		{Key: "b", Name: "Other", IP: "5.6.7.8", Port: "2222", Comment: "backup"},
	}

	var buf bytes.Buffer
	Present(&buf, servers, testResolver(nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, blank, 2 rows), got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != Header {
		t.Errorf("header = %q, want %q", lines[0], Header)
	}
	if !strings.HasPrefix(lines[2], "a     ") || !strings.HasPrefix(lines[3], "b     ") {
		t.Errorf("rows out of file order:\n%s", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\n\n") {
		t.Errorf("expected trailing blank line, got %q", buf.String())
	}
}

func TestPresent_Empty(t *testing.T) {
	var buf bytes.Buffer
	Present(&buf, nil, testResolver(nil))

	if got := buf.String(); got != Header+"\n\n\n" {
		t.Errorf("Present(nil) = %q", got)
	}
}
