package convert

import (
	"errors"
	"math"
	"testing"
)

func TestParseRGBW(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [4]float64
		wantErr bool
	}{
		{"plain", "255,0,0,0", [4]float64{255, 0, 0, 0}, false},
		{"spaces", " 10, 20, 30, 40 ", [4]float64{10, 20, 30, 40}, false},
		{"three components", "255,0,0", [4]float64{}, true},
		{"five components", "1,2,3,4,5", [4]float64{}, true},
		{"non numeric component", "255,x,0,0", [4]float64{}, true},
		{"empty", "", [4]float64{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, w, err := ParseRGBW(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRGBW(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrBadColor) {
					t.Errorf("ParseRGBW(%q) error = %v, want ErrBadColor", tt.input, err)
				}
				return
			}
			got := [4]float64{r, g, b, w}
			if got != tt.want {
				t.Errorf("ParseRGBW(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGBWToHSV(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, w float64
		want       HSV
	}{
		{"pure red", 255, 0, 0, 0, HSV{H: 0, S: 100, V: 100}},
		{"pure green", 0, 255, 0, 0, HSV{H: 120, S: 100, V: 100}},
		{"pure blue", 0, 0, 255, 0, HSV{H: 240, S: 100, V: 100}},
		{"white channel dominates", 0, 0, 0, 255, HSV{H: 0, S: 0, V: 100}},
		{"all off", 0, 0, 0, 0, HSV{H: 0, S: 0, V: 0}},
		{"half red", 128, 0, 0, 0, HSV{H: 0, S: 100, V: 128.0 / 255 * 100}},
		{"grey", 128, 128, 128, 0, HSV{H: 0, S: 0, V: 128.0 / 255 * 100}},
		{"white raises value only", 100, 0, 0, 255, HSV{H: 0, S: 100, V: 100}},
	}

	const epsilon = 1e-9

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBWToHSV(tt.r, tt.g, tt.b, tt.w)
			if math.Abs(got.H-tt.want.H) > epsilon ||
				math.Abs(got.S-tt.want.S) > epsilon ||
				math.Abs(got.V-tt.want.V) > epsilon {
				t.Errorf("RGBWToHSV(%v,%v,%v,%v) = %+v, want %+v",
					tt.r, tt.g, tt.b, tt.w, got, tt.want)
			}
		})
	}
}
