package domain

var defaultPalette = Palette{
	Light: ColorSet{
		Background:            "0 0% 100%",
		Foreground:            "222.2 84% 5%",
		Card:                  "0 0% 100%",
		CardForeground:        "222.2 84% 5%",
		Popover:               "0 0% 100%",
		PopoverForeground:     "222.2 84% 5%",
		Primary:               "222.2 47% 11%",
		PrimaryForeground:     "210 40% 98%",
		Secondary:             "210 40% 96%",
		SecondaryForeground:   "222.2 47% 11%",
		Muted:                 "210 40% 96%",
		MutedForeground:       "215.4 16% 47%",
		Accent:                "210 40% 96%",
		AccentForeground:      "222.2 47% 11%",
		Destructive:           "0 84% 60%",
		DestructiveForeground: "210 40% 98%",
		Border:                "214.3 32% 91%",
		Input:                 "214.3 32% 91%",
		Ring:                  "222.2 84% 5%",
	},
	Dark: ColorSet{
		Background:            "222.2 84% 5%",
		Foreground:            "210 40% 98%",
		Card:                  "222.2 84% 5%",
		CardForeground:        "210 40% 98%",
		Popover:               "222.2 84% 5%",
		PopoverForeground:     "210 40% 98%",
		Primary:               "210 40% 98%",
		PrimaryForeground:     "222.2 47% 11%",
		Secondary:             "217.2 33% 18%",
		SecondaryForeground:   "210 40% 98%",
		Muted:                 "217.2 33% 18%",
		MutedForeground:       "215 20% 65%",
		Accent:                "217.2 33% 18%",
		AccentForeground:      "210 40% 98%",
		Destructive:           "0 63% 31%",
		DestructiveForeground: "210 40% 98%",
		Border:                "217.2 33% 18%",
		Input:                 "217.2 33% 18%",
		Ring:                  "212.7 27% 84%",
	},
}

// DefaultPalette returns a copy of the built-in static theme.
func DefaultPalette() *Palette {
	p := defaultPalette
	return &p
}
