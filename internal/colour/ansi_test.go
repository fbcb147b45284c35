package colour

import "testing"

func TestSwatch(t *testing.T) {
	tests := []struct {
		name  string
		c     RGB
		width int
		want  string
	}{
		{"red", RGB{R: 255}, 2, "\033[48;2;255;0;0m  \033[0m"},
		{"default width", RGB{R: 1, G: 2, B: 3}, 0, "\033[48;2;1;2;3m    \033[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Swatch(tt.c, tt.width); got != tt.want {
				t.Errorf("Swatch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatWithSwatch(t *testing.T) {
	want := "\033[48;2;18;52;86m \033[0m #123456"
	if got := FormatWithSwatch(RGB{R: 0x12, G: 0x34, B: 0x56}, 1); got != want {
		t.Errorf("FormatWithSwatch() = %q, want %q", got, want)
	}
}
