package config

import _ "embed"

//go:embed sample_config.toml
var sampleConfig string

const (
	defaultInputDir    = "~/cardconvert/input"
	defaultOutputDir   = "~/cardconvert/output"
	defaultLogDir      = "~/.local/share/cardconvert/logs"
	defaultBackgrounds = "~/.config/cardconvert/backgrounds"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultWorkers     = 4
	defaultFrameSplit  = `_\d+`
	defaultAnimFolder  = "animation"
)

// SampleConfig returns the embedded annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	staticOutputs := []string{
		"original", "small", "medium", "mediumj",
		"icons/small", "icons/medium", "icons/large",
	}
	animatedOutputs := append(append([]string{}, staticOutputs...), "animation")

	return Config{
		Paths: Paths{
			InputDir:       defaultInputDir,
			OutputDir:      defaultOutputDir,
			LogDir:         defaultLogDir,
			BackgroundsDir: defaultBackgrounds,
		},
		CardTypes: map[string]CardType{
			"cards": {
				FrameSplit:  defaultFrameSplit,
				AnimFolder:  defaultAnimFolder,
				Outputs:     animatedOutputs,
				UnityFolder: "Cards",
			},
			"heroes": {
				FrameSplit:  defaultFrameSplit,
				AnimFolder:  defaultAnimFolder,
				Outputs:     staticOutputs,
				UnityFolder: "Heroes",
			},
			"cardbacks": {
				FrameSplit:  defaultFrameSplit,
				AnimFolder:  defaultAnimFolder,
				Outputs:     animatedOutputs,
				Composite:   "cardback_bg.png",
				UnityFolder: "CardBacks",
			},
		},
		Locales: []string{"enUS"},
		Workers: defaultWorkers,
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
