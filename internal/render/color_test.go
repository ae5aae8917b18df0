package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLighterShade(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"default maps to its partner", "#243e36", "#7ca982"},
		{"default normalizes case", "#243E36", "#7ca982"},
		{"custom color gets alpha suffix", "#112233", "#11223380"},
		{"missing hash accepted", "336655", "#33665580"},
		{"empty falls back", "", "#7ca982"},
		{"named color falls back", "teal", "#7ca982"},
		{"short hex falls back", "#fff", "#7ca982"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LighterShade(tt.in))
		})
	}
}

func TestLighterShade_Stable(t *testing.T) {
	assert.Equal(t, LighterShade("#445566"), LighterShade("#445566"))
}

func TestHexRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#ff8040", 255, 128, 64},
		{"243e36", 36, 62, 54},
		{"#11223380", 17, 34, 51}, // alpha byte ignored
		{"#fff", 0, 0, 0},
		{"garbage!", 0, 0, 0},
		{"", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := HexRGB(tt.in)
		assert.Equal(t, []int{tt.r, tt.g, tt.b}, []int{r, g, b}, "input %q", tt.in)
	}
}

func TestThemeFor(t *testing.T) {
	creative := themeFor(TemplateCreative, Options{SidebarColor: "#336655"})
	assert.Equal(t, "#336655", creative.Accent)
	assert.Equal(t, "#33665580", creative.AccentLight)

	creativeDefault := themeFor(TemplateCreative, Options{})
	assert.Equal(t, DefaultSidebarColor, creativeDefault.Accent)
	assert.Equal(t, DefaultSidebarLight, creativeDefault.AccentLight)

	// an unusable color behaves like no color at all
	creativeBad := themeFor(TemplateCreative, Options{SidebarColor: "chartreuse"})
	assert.Equal(t, DefaultSidebarColor, creativeBad.Accent)

	// fixed palettes ignore the option entirely
	modern := themeFor(TemplateModern, Options{SidebarColor: "#336655"})
	assert.Equal(t, "#243e36", modern.Accent)
	assert.NotEmpty(t, themeFor(TemplateClassic, Options{}).Accent)
	assert.NotEmpty(t, themeFor(TemplateMinimal, Options{}).Accent)
}
