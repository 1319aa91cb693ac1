package models

import "time"

// Color vision modes for the colorVisionMode setting. This field used to be a
// plain colour-blind boolean; it is enumerated on the wire now.
const (
	ColorVisionNone         = "none"
	ColorVisionProtanopia   = "protanopia"
	ColorVisionDeuteranopia = "deuteranopia"
	ColorVisionTritanopia   = "tritanopia"
	ColorVisionGrayscale    = "grayscale"
)

// SettingsDB is the per-user accessibility settings row, keyed by email.
// Absence of a row is a valid state: defaults apply.
type SettingsDB struct {
	Email string `db:"email"` // Primary key, matches users.email

	// Font
	FontSize      string `db:"font_size"`
	FontFamily    string `db:"font_family"`
	LineSpacing   string `db:"line_spacing"`
	LetterSpacing string `db:"letter_spacing"`
	DyslexiaFont  bool   `db:"dyslexia_font"`

	// Color
	DarkMode        bool   `db:"dark_mode"`
	HighContrast    bool   `db:"high_contrast"`
	ColorVisionMode string `db:"color_vision_mode"`
	Saturation      string `db:"saturation"`
	LinkHighlight   bool   `db:"link_highlight"`
	CursorSize      string `db:"cursor_size"`

	// Audio
	TextToSpeech bool    `db:"text_to_speech"`
	SpeechRate   float64 `db:"speech_rate"`
	SpeechPitch  float64 `db:"speech_pitch"`
	Volume       float64 `db:"volume"`
	Captions     bool    `db:"captions"`
	MuteSounds   bool    `db:"mute_sounds"`

	// Motion
	ReduceMotion      bool `db:"reduce_motion"`
	DisableAutoplay   bool `db:"disable_autoplay"`
	DisableAnimations bool `db:"disable_animations"`
	DisableParallax   bool `db:"disable_parallax"`

	// Cognitive load
	SimplifiedLayout   bool `db:"simplified_layout"`
	ReadingGuide       bool `db:"reading_guide"`
	FocusMode          bool `db:"focus_mode"`
	ExtendedTimeouts   bool `db:"extended_timeouts"`
	PlainLanguage      bool `db:"plain_language"`
	ReadingMask        bool `db:"reading_mask"`
	HighlightHeadings  bool `db:"highlight_headings"`
	HideImages         bool `db:"hide_images"`
	KeyboardNavigation bool `db:"keyboard_navigation"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Settings is the API representation of the preference bag. Every field is
// always populated: readers never see a partial object.
type Settings struct {
	FontSize      string `json:"fontSize"`
	FontFamily    string `json:"fontFamily"`
	LineSpacing   string `json:"lineSpacing"`
	LetterSpacing string `json:"letterSpacing"`
	DyslexiaFont  bool   `json:"dyslexiaFont"`

	DarkMode        bool   `json:"darkMode"`
	HighContrast    bool   `json:"highContrast"`
	ColorVisionMode string `json:"colorVisionMode"`
	Saturation      string `json:"saturation"`
	LinkHighlight   bool   `json:"linkHighlight"`
	CursorSize      string `json:"cursorSize"`

	TextToSpeech bool    `json:"textToSpeech"`
	SpeechRate   float64 `json:"speechRate"`
	SpeechPitch  float64 `json:"speechPitch"`
	Volume       float64 `json:"volume"`
	Captions     bool    `json:"captions"`
	MuteSounds   bool    `json:"muteSounds"`

	ReduceMotion      bool `json:"reduceMotion"`
	DisableAutoplay   bool `json:"disableAutoplay"`
	DisableAnimations bool `json:"disableAnimations"`
	DisableParallax   bool `json:"disableParallax"`

	SimplifiedLayout   bool `json:"simplifiedLayout"`
	ReadingGuide       bool `json:"readingGuide"`
	FocusMode          bool `json:"focusMode"`
	ExtendedTimeouts   bool `json:"extendedTimeouts"`
	PlainLanguage      bool `json:"plainLanguage"`
	ReadingMask        bool `json:"readingMask"`
	HighlightHeadings  bool `json:"highlightHeadings"`
	HideImages         bool `json:"hideImages"`
	KeyboardNavigation bool `json:"keyboardNavigation"`
}

// ToSettings converts a database row to its API representation.
func (s *SettingsDB) ToSettings() *Settings {
	return &Settings{
		FontSize:      s.FontSize,
		FontFamily:    s.FontFamily,
		LineSpacing:   s.LineSpacing,
		LetterSpacing: s.LetterSpacing,
		DyslexiaFont:  s.DyslexiaFont,

		DarkMode:        s.DarkMode,
		HighContrast:    s.HighContrast,
		ColorVisionMode: s.ColorVisionMode,
		Saturation:      s.Saturation,
		LinkHighlight:   s.LinkHighlight,
		CursorSize:      s.CursorSize,

		TextToSpeech: s.TextToSpeech,
		SpeechRate:   s.SpeechRate,
		SpeechPitch:  s.SpeechPitch,
		Volume:       s.Volume,
		Captions:     s.Captions,
		MuteSounds:   s.MuteSounds,

		ReduceMotion:      s.ReduceMotion,
		DisableAutoplay:   s.DisableAutoplay,
		DisableAnimations: s.DisableAnimations,
		DisableParallax:   s.DisableParallax,

		SimplifiedLayout:   s.SimplifiedLayout,
		ReadingGuide:       s.ReadingGuide,
		FocusMode:          s.FocusMode,
		ExtendedTimeouts:   s.ExtendedTimeouts,
		PlainLanguage:      s.PlainLanguage,
		ReadingMask:        s.ReadingMask,
		HighlightHeadings:  s.HighlightHeadings,
		HideImages:         s.HideImages,
		KeyboardNavigation: s.KeyboardNavigation,
	}
}

// DefaultSettings returns the fixed defaults applied whenever a field or the
// whole row is absent.
func DefaultSettings() *Settings {
	return &Settings{
		FontSize:      "medium",
		FontFamily:    "default",
		LineSpacing:   "normal",
		LetterSpacing: "normal",

		ColorVisionMode: ColorVisionNone,
		Saturation:      "normal",
		CursorSize:      "normal",

		SpeechRate:  1.0,
		SpeechPitch: 1.0,
		Volume:      1.0,
	}
}

// DefaultSettingsDB returns a database row populated with defaults for the
// given email, ready to be overlaid with a partial update and inserted.
func DefaultSettingsDB(email string) *SettingsDB {
	d := DefaultSettings()
	return &SettingsDB{
		Email: email,

		FontSize:      d.FontSize,
		FontFamily:    d.FontFamily,
		LineSpacing:   d.LineSpacing,
		LetterSpacing: d.LetterSpacing,

		ColorVisionMode: d.ColorVisionMode,
		Saturation:      d.Saturation,
		CursorSize:      d.CursorSize,

		SpeechRate:  d.SpeechRate,
		SpeechPitch: d.SpeechPitch,
		Volume:      d.Volume,
	}
}
