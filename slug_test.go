package erroz

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "camel case", input: "TestError", want: "test-error"},
		{name: "single word", input: "Duplicate", want: "duplicate"},
		{name: "lower camel", input: "notFound", want: "not-found"},
		{name: "acronym", input: "HTTPError", want: "http-error"},
		{name: "acronym in the middle", input: "InvalidJSONPayload", want: "invalid-json-payload"},
		{name: "spaces", input: "Not Found", want: "not-found"},
		{name: "underscores", input: "not_found_error", want: "not-found-error"},
		{name: "repeated separators", input: "not -- found", want: "not-found"},
		{name: "trimmed separators", input: "  NotFound!  ", want: "not-found"},
		{name: "digits", input: "Error404", want: "error404"},
		{name: "non-ascii upper", input: "ÖtherError", want: "öther-error"},
		{name: "non-ascii inside", input: "GrößeFehler", want: "größe-fehler"},
		{name: "already slugified", input: "test-error", want: "test-error"},
		{name: "empty", input: "", want: ""},
		{name: "only separators", input: "--", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	for _, input := range []string{"TestError", "ÖtherError", "HTTPError", "Not Found", "a-b-c"} {
		once := Slugify(input)
		require.Equal(t, once, Slugify(once), "input %q", input)
	}
}

func TestSlugifyLanguage(t *testing.T) {
	require.Equal(t, "ırmak-error", SlugifyLanguage("IrmakError", language.Turkish))
	require.Equal(t, "irmak-error", SlugifyLanguage("IrmakError", language.English))
}

func FuzzSlugify_Idempotent(f *testing.F) {
	f.Add("TestError")
	f.Add("HTTPError")
	f.Add("not_found error")
	f.Fuzz(func(t *testing.T, input string) {
		for _, r := range input {
			if r > 127 {
				t.Skip()
			}
		}

		once := Slugify(input)
		if twice := Slugify(once); twice != once {
			t.Fatalf("Slugify(%q) = %q, Slugify(%q) = %q", input, once, once, twice)
		}
	})
}
