package slug

import "testing"

func TestDerive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		want  string
	}{
		{"Hola Mundo", "hola-mundo"},
		{"¡Mi Show #1!", "mi-show-1"},
		{"Gira   2025:   Madrid & Barcelona", "gira-2025-madrid-barcelona"},
		{"UPPERCASE", "uppercase"},
		{"ya-con-guiones", "yaconguiones"},
		{"  bordes  ", "bordes"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Derive(tc.title); got != tc.want {
			t.Errorf("Derive(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestDeriveStripsNonASCIILetters(t *testing.T) {
	t.Parallel()

	// Word characters are ASCII only, so accented letters are dropped the
	// same way punctuation is.
	if got := Derive("Cámara Oculta"); got != "cmara-oculta" {
		t.Errorf("Derive(%q) = %q, want %q", "Cámara Oculta", got, "cmara-oculta")
	}
}
