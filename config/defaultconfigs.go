package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		FullWidthLetters:         false,
		Colors: ConfigColors{
			BoardColor:         180,
			BoardColorAlt:      179,
			MarginColor:        138,
			BlackColor:         232,
			WhiteColor:         255,
			CursorColorBG:      4,
			SelectedColorBG:    6,
			DestinationColorBG: 2,
			LastPlayedColorBG:  3,
		},
		Symbols: ConfigSymbols{
			BlackStone:  '●',
			WhiteStone:  '●',
			BoardSquare: '·',
			Destination: '+',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}
