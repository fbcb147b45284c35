package colour

import (
	"image/color"
	"testing"
)

func TestFromColor(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  RGB
	}{
		{
			name:  "opaque rgba",
			color: color.RGBA{R: 127, G: 178, B: 56, A: 255},
			want:  RGB{R: 127, G: 178, B: 56},
		},
		{
			name:  "nrgba keeps channels",
			color: color.NRGBA{R: 200, G: 100, B: 50, A: 10},
			want:  RGB{R: 200, G: 100, B: 50},
		},
		{
			name:  "gray",
			color: color.Gray{Y: 153},
			want:  RGB{R: 153, G: 153, B: 153},
		},
		{
			name:  "rgb passthrough",
			color: RGB{R: 1, G: 2, B: 3},
			want:  RGB{R: 1, G: 2, B: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.color); got != tt.want {
				t.Errorf("FromColor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		input   string
		want    RGB
		wantErr bool
	}{
		{input: "#7fb238", want: RGB{R: 127, G: 178, B: 56}},
		{input: "#FFFFFF", want: RGB{R: 255, G: 255, B: 255}},
		{input: "#000000", want: RGB{}},
		{input: "7fb238", wantErr: true},
		{input: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %+v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	if got := (RGB{R: 255, G: 0, B: 16}).Hex(); got != "#ff0010" {
		t.Errorf("Hex() = %q, want %q", got, "#ff0010")
	}
}
