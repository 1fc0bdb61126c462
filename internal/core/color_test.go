package core

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#ff0000", RGB{R: 1, G: 0, B: 0}, false},
		{"00ff00", RGB{R: 0, G: 1, B: 0}, false},
		{"#0000ff", RGB{R: 0, G: 0, B: 1}, false},
		{"#000000", RGB{}, false},
		{"#fff", RGB{}, true},
		{"#gggggg", RGB{}, true},
		{"", RGB{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, in := range []string{"#ff8040", "#000000", "#ffffff", "#123456"} {
		c, err := ParseHex(in)
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", in, err)
		}
		if got := c.Hex(); got != in {
			t.Errorf("Round trip %q -> %q", in, got)
		}
	}
}

func TestHexClampsOutOfRange(t *testing.T) {
	c := RGB{R: 1.5, G: -0.2, B: 0.5}
	if got := c.Hex(); got != "#ff0080" {
		t.Errorf("Hex() = %q, want clamped #ff0080", got)
	}
}

func TestLerp(t *testing.T) {
	a := NewRGB(0, 0, 0)
	b := NewRGB(1, 0.5, 0.2)

	mid := a.Lerp(b, 0.5)
	if mid.R != 0.5 || mid.G != 0.25 || mid.B != 0.1 {
		t.Errorf("Lerp(0.5) = %+v", mid)
	}
	if a.Lerp(b, 0) != a {
		t.Error("Lerp(0) should return the receiver")
	}
	if a.Lerp(b, 1) != b {
		t.Error("Lerp(1) should return the target")
	}
}

func TestScaleAndClamp(t *testing.T) {
	c := NewRGB(0.8, 0.4, 0.2).Scale(2)
	if c.R != 1.6 || c.G != 0.8 || c.B != 0.4 {
		t.Errorf("Scale(2) = %+v", c)
	}
	clamped := c.Clamp()
	if clamped.R != 1 || clamped.G != 0.8 || clamped.B != 0.4 {
		t.Errorf("Clamp() = %+v", clamped)
	}
}
