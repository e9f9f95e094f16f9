package escape

import (
	"errors"
	"testing"

	"github.com/willbeason/escape-field/pkg/geometry"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Width:         4,
		Height:        3,
		Viewport:      geometry.Viewport{Scaling: 0.1},
		MaxIterations: 10,
		ColourScale:   2,
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "zero width", modify: func(c *Config) { c.Width = 0 }, wantErr: true},
		{name: "negative height", modify: func(c *Config) { c.Height = -1 }, wantErr: true},
		{name: "zero scaling", modify: func(c *Config) { c.Viewport.Scaling = 0 }, wantErr: true},
		{name: "zero iterations", modify: func(c *Config) { c.MaxIterations = 0 }, wantErr: true},
		{name: "negative colour scale", modify: func(c *Config) { c.ColourScale = -3 }, wantErr: true},
		{name: "negative offsets are fine", modify: func(c *Config) { c.Viewport.XOffset = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)

			err := c.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestPreset(t *testing.T) {
	for _, name := range PresetNames() {
		c, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("Preset(%q) invalid: %v", name, err)
		}
	}

	c, err := Preset("P5")
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 1400 || c.Height != 1050 || c.MaxIterations != 360 || c.ColourScale != 28 {
		t.Errorf("p5 preset = %+v", c)
	}

	if _, err := Preset(DefaultPreset); err != nil {
		t.Errorf("default preset: %v", err)
	}

	if _, err := Preset("nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Preset(nope) = %v, want ErrUnknownPreset", err)
	}
}
