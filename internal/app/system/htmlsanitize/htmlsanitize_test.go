package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/crestlinedev/crestline/internal/app/system/htmlsanitize"
)

func TestSanitize_KeepsFormatting(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "headings and paragraphs",
			in:   "<h2>Our Story</h2><p>Founded in 1998.</p>",
			want: "<h2>Our Story</h2><p>Founded in 1998.</p>",
		},
		{
			name: "inline formatting",
			in:   "<p><strong>Bold</strong> and <em>italic</em> and <u>underline</u></p>",
			want: "<p><strong>Bold</strong> and <em>italic</em> and <u>underline</u></p>",
		},
		{
			name: "lists",
			in:   "<ul><li>Pools</li><li>Clubhouse</li></ul>",
			want: "<ul><li>Pools</li><li>Clubhouse</li></ul>",
		},
		{
			name: "line break and rule",
			in:   "Phase one<br>Phase two<hr>",
			want: "Phase one<br>Phase two<hr>",
		},
		{
			name: "class attribute",
			in:   `<p class="lead">Welcome home.</p>`,
			want: `<p class="lead">Welcome home.</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlsanitize.Sanitize(tt.in)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitize_StripsExecutable(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		removed []string
	}{
		{
			name:    "script tag",
			in:      `<p>News</p><script>alert("x")</script>`,
			removed: []string{"<script", "alert"},
		},
		{
			name:    "event handler",
			in:      `<img src="/media/hero.jpg" onerror="steal()">`,
			removed: []string{"onerror", "steal"},
		},
		{
			name:    "iframe",
			in:      `<iframe src="https://evil.example/"></iframe><p>body</p>`,
			removed: []string{"<iframe"},
		},
		{
			name:    "javascript href",
			in:      `<a href="javascript:alert(1)">click</a>`,
			removed: []string{"javascript:"},
		},
		{
			name:    "form elements",
			in:      `<form action="/x"><input name="q"></form>`,
			removed: []string{"<form", "<input"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlsanitize.Sanitize(tt.in)
			for _, bad := range tt.removed {
				if strings.Contains(got, bad) {
					t.Errorf("Sanitize(%q) = %q, still contains %q", tt.in, got, bad)
				}
			}
		})
	}
}

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("Sanitize(%q) = %q, want empty", "", got)
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Move-in ready homes from the low 300s.", true},
		{"5 < 10 and 10 > 5", true},
		{"<p>Open house Saturday</p>", false},
		{"text with <br> inside", false},
		{"", true},
	}

	for _, tt := range tests {
		if got := htmlsanitize.IsPlainText(tt.in); got != tt.want {
			t.Errorf("IsPlainText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPlainTextToHTML(t *testing.T) {
	got := htmlsanitize.PlainTextToHTML("Line one\nLine two & three")
	want := "<p>Line one<br>Line two &amp; three</p>"
	if got != want {
		t.Errorf("PlainTextToHTML = %q, want %q", got, want)
	}

	if got := htmlsanitize.PlainTextToHTML(""); got != "" {
		t.Errorf("PlainTextToHTML(%q) = %q, want empty", "", got)
	}
}

func TestPrepareForDisplay(t *testing.T) {
	t.Run("plain text is wrapped and escaped", func(t *testing.T) {
		got := string(htmlsanitize.PrepareForDisplay("Visit us at Lot 4 <today>"))
		if !strings.HasPrefix(got, "<p>") || strings.Contains(got, "<today>") {
			t.Errorf("PrepareForDisplay plain text = %q", got)
		}
	})

	t.Run("html is sanitized", func(t *testing.T) {
		got := string(htmlsanitize.PrepareForDisplay(`<p>ok</p><script>x()</script>`))
		if strings.Contains(got, "<script") {
			t.Errorf("PrepareForDisplay left script in %q", got)
		}
		if !strings.Contains(got, "<p>ok</p>") {
			t.Errorf("PrepareForDisplay dropped content: %q", got)
		}
	})
}
