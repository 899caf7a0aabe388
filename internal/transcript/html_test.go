package transcript

import "testing"

func TestRenderHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold italic and paragraph break",
			in:   "**a** *b*\n\nc",
			want: "<p><strong>a</strong> <em>b</em></p><p>c</p>",
		},
		{
			name: "single newline becomes line break",
			in:   "one\ntwo",
			want: "<p>one<br/>two</p>",
		},
		{
			name: "plain text wraps in one paragraph",
			in:   "hello",
			want: "<p>hello</p>",
		},
		{
			name: "speaker lines",
			in:   "Speaker 1 (0:00): Hi. \nSpeaker 2 (0:04): Hey. ",
			want: "<p>Speaker 1 (0:00): Hi. <br/>Speaker 2 (0:04): Hey. </p>",
		},
	}

	for _, tc := range cases {
		if got := RenderHTML(tc.in); got != tc.want {
			t.Errorf("%s: RenderHTML(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}
