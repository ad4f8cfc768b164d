package models

type AppearanceSettings struct {
	Theme      string `json:"theme"`
	Animations bool   `json:"animations"`
	Speed      string `json:"speed"`
}

// DefaultAppearance applies until settings are first saved.
var DefaultAppearance = AppearanceSettings{
	Theme:      "default",
	Animations: true,
	Speed:      "normal",
}
