package parser

import "testing"

func TestStripMarkup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "nested tags",
			fragment: "<p>Great <b>show</b></p>",
			want:     "Great show",
		},
		{
			name:     "single paragraph",
			fragment: "<p>HBO show</p>",
			want:     "HBO show",
		},
		{
			name:     "plain text untouched",
			fragment: "  no markup here  ",
			want:     "  no markup here  ",
		},
		{
			name:     "whitespace between paragraphs preserved",
			fragment: "<p>One</p>\n<p>Two</p>",
			want:     "One\nTwo",
		},
		{
			name:     "self-closing and attributes",
			fragment: `<p>Line<br/>break <a href="https://example.com">link</a></p>`,
			want:     "Linebreak link",
		},
		{
			name:     "entities decoded",
			fragment: "<p>Tom &amp; Jerry</p>",
			want:     "Tom & Jerry",
		},
		{
			name:     "leading whitespace before a tag",
			fragment: "\n  <p>Great <b>show</b></p>",
			want:     "\n  Great show",
		},
		{
			name:     "leading whitespace before an entity",
			fragment: "  a &amp; b",
			want:     "  a & b",
		},
		{
			name:     "leading whitespace with bare ampersand",
			fragment: "  a & b",
			want:     "  a & b",
		},
		{
			name:     "trailing whitespace kept",
			fragment: "<p>Great</p> ",
			want:     "Great ",
		},
		{
			name:     "empty",
			fragment: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := StripMarkup(tt.fragment)
			if err != nil {
				t.Fatalf("StripMarkup returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.fragment, got, tt.want)
			}
		})
	}
}
