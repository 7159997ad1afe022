package gradient

import "fmt"

// Config is the serialized form of a gradient as it appears in surface config files.
type Config struct {
	Mode      string           `json:"mode" mapstructure:"mode"`
	ColorKeys []ColorKeyConfig `json:"color_keys" mapstructure:"color_keys"`
	AlphaKeys []AlphaKeyConfig `json:"alpha_keys,omitempty" mapstructure:"alpha_keys"`
}

type ColorKeyConfig struct {
	Time  float32 `json:"time" mapstructure:"time"`
	Color string  `json:"color" mapstructure:"color"`
}

type AlphaKeyConfig struct {
	Time  float32 `json:"time" mapstructure:"time"`
	Alpha float32 `json:"alpha" mapstructure:"alpha"`
}

// Build turns the config into a Gradient. An empty config yields Default.
func (c Config) Build() (*Gradient, error) {
	if len(c.ColorKeys) == 0 && len(c.AlphaKeys) == 0 && c.Mode == "" {
		return Default(), nil
	}

	mode, err := ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	colorKeys := make([]ColorKey, 0, len(c.ColorKeys))
	for i, key := range c.ColorKeys {
		color, err := ParseHex(key.Color)
		if err != nil {
			return nil, fmt.Errorf("color key %d: %w", i, err)
		}
		colorKeys = append(colorKeys, ColorKey{Time: key.Time, Color: color})
	}

	alphaKeys := make([]AlphaKey, 0, len(c.AlphaKeys))
	for _, key := range c.AlphaKeys {
		alphaKeys = append(alphaKeys, AlphaKey{Time: key.Time, Alpha: key.Alpha})
	}

	return New(mode, colorKeys, alphaKeys)
}

// Clone returns a copy that shares no key slices with c. Nil and empty slices keep
// their form so the copy stays reflect.DeepEqual to c.
func (c Config) Clone() Config {
	if c.ColorKeys != nil {
		c.ColorKeys = append(make([]ColorKeyConfig, 0, len(c.ColorKeys)), c.ColorKeys...)
	}
	if c.AlphaKeys != nil {
		c.AlphaKeys = append(make([]AlphaKeyConfig, 0, len(c.AlphaKeys)), c.AlphaKeys...)
	}
	return c
}
