// types.go
package profile

// RawConfig is a probability profile as written in YAML. Pointer fields tell
// an unset value apart from an explicit zero.
type RawConfig struct {
	Version     string             `yaml:"version"`
	Outcomes    OutcomeConfig      `yaml:"outcomes"`
	Advancement *AdvancementConfig `yaml:"advancement,omitempty"`
	Notes       string             `yaml:"notes,omitempty"`
}

type OutcomeConfig struct {
	Walk    *float64 `yaml:"walk"`
	Single  *float64 `yaml:"single"`
	Double  *float64 `yaml:"double"`
	Triple  *float64 `yaml:"triple"`
	HomeRun *float64 `yaml:"home_run"`
}

type AdvancementConfig struct {
	SingleHome  *float64 `yaml:"single_home,omitempty"`
	SingleThird *float64 `yaml:"single_third,omitempty"`
	DoubleHome  *float64 `yaml:"double_home,omitempty"`
}
