package utils

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	got, err := ParseHexColor("#8b5cf6")
	if err != nil {
		t.Fatal(err)
	}
	if got != (color.RGBA{R: 0x8b, G: 0x5c, B: 0xf6, A: 0xff}) {
		t.Errorf("ParseHexColor = %+v", got)
	}

	got, err = ParseHexColor("ffffff80")
	if err != nil {
		t.Fatal(err)
	}
	if got.A != 0x80 {
		t.Errorf("alpha = %x, 期望 80", got.A)
	}

	for _, bad := range []string{"", "#fff", "#gggggg"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) 应该失败", bad)
		}
	}
}

func TestWithAlphaAndMix(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	half := WithAlpha(white, 0.5)
	if half.A != 127 || half.R != 127 {
		t.Errorf("WithAlpha(white, 0.5) = %+v", half)
	}

	black := color.RGBA{A: 255}
	if got := MixColor(black, white, 1); got != white {
		t.Errorf("MixColor(t=1) = %+v, 期望白色", got)
	}
	if got := MixColor(black, white, 0); got != black {
		t.Errorf("MixColor(t=0) = %+v, 期望黑色", got)
	}
}
