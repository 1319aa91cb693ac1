package services

import (
	"context"
	"fmt"

	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/models"
)

// SettingsUpdate is the wire-level settings patch. Every field is optional;
// nil means "leave unchanged". Unknown JSON keys fall out at decode time, so
// an update carrying only unrecognized keys collects zero fields and performs
// no write.
type SettingsUpdate struct {
	FontSize      *string `json:"fontSize"`
	FontFamily    *string `json:"fontFamily"`
	LineSpacing   *string `json:"lineSpacing"`
	LetterSpacing *string `json:"letterSpacing"`
	DyslexiaFont  *bool   `json:"dyslexiaFont"`

	DarkMode        *bool   `json:"darkMode"`
	HighContrast    *bool   `json:"highContrast"`
	ColorVisionMode *string `json:"colorVisionMode"`
	Saturation      *string `json:"saturation"`
	LinkHighlight   *bool   `json:"linkHighlight"`
	CursorSize      *string `json:"cursorSize"`

	TextToSpeech *bool    `json:"textToSpeech"`
	SpeechRate   *float64 `json:"speechRate"`
	SpeechPitch  *float64 `json:"speechPitch"`
	Volume       *float64 `json:"volume"`
	Captions     *bool    `json:"captions"`
	MuteSounds   *bool    `json:"muteSounds"`

	ReduceMotion      *bool `json:"reduceMotion"`
	DisableAutoplay   *bool `json:"disableAutoplay"`
	DisableAnimations *bool `json:"disableAnimations"`
	DisableParallax   *bool `json:"disableParallax"`

	SimplifiedLayout   *bool `json:"simplifiedLayout"`
	ReadingGuide       *bool `json:"readingGuide"`
	FocusMode          *bool `json:"focusMode"`
	ExtendedTimeouts   *bool `json:"extendedTimeouts"`
	PlainLanguage      *bool `json:"plainLanguage"`
	ReadingMask        *bool `json:"readingMask"`
	HighlightHeadings  *bool `json:"highlightHeadings"`
	HideImages         *bool `json:"hideImages"`
	KeyboardNavigation *bool `json:"keyboardNavigation"`
}

// collect gathers the provided fields into a column→value map and, when base
// is non-nil, overlays them onto base for a fresh insert.
func (u *SettingsUpdate) collect(base *models.SettingsDB) map[string]any {
	fields := make(map[string]any)

	setStr := func(col string, v *string, dst *string) {
		if v != nil {
			fields[col] = *v
			*dst = *v
		}
	}
	setBool := func(col string, v *bool, dst *bool) {
		if v != nil {
			fields[col] = *v
			*dst = *v
		}
	}
	setFloat := func(col string, v *float64, dst *float64) {
		if v != nil {
			fields[col] = *v
			*dst = *v
		}
	}

	dst := base
	if dst == nil {
		dst = &models.SettingsDB{}
	}

	setStr("font_size", u.FontSize, &dst.FontSize)
	setStr("font_family", u.FontFamily, &dst.FontFamily)
	setStr("line_spacing", u.LineSpacing, &dst.LineSpacing)
	setStr("letter_spacing", u.LetterSpacing, &dst.LetterSpacing)
	setBool("dyslexia_font", u.DyslexiaFont, &dst.DyslexiaFont)

	setBool("dark_mode", u.DarkMode, &dst.DarkMode)
	setBool("high_contrast", u.HighContrast, &dst.HighContrast)
	setStr("color_vision_mode", u.ColorVisionMode, &dst.ColorVisionMode)
	setStr("saturation", u.Saturation, &dst.Saturation)
	setBool("link_highlight", u.LinkHighlight, &dst.LinkHighlight)
	setStr("cursor_size", u.CursorSize, &dst.CursorSize)

	setBool("text_to_speech", u.TextToSpeech, &dst.TextToSpeech)
	setFloat("speech_rate", u.SpeechRate, &dst.SpeechRate)
	setFloat("speech_pitch", u.SpeechPitch, &dst.SpeechPitch)
	setFloat("volume", u.Volume, &dst.Volume)
	setBool("captions", u.Captions, &dst.Captions)
	setBool("mute_sounds", u.MuteSounds, &dst.MuteSounds)

	setBool("reduce_motion", u.ReduceMotion, &dst.ReduceMotion)
	setBool("disable_autoplay", u.DisableAutoplay, &dst.DisableAutoplay)
	setBool("disable_animations", u.DisableAnimations, &dst.DisableAnimations)
	setBool("disable_parallax", u.DisableParallax, &dst.DisableParallax)

	setBool("simplified_layout", u.SimplifiedLayout, &dst.SimplifiedLayout)
	setBool("reading_guide", u.ReadingGuide, &dst.ReadingGuide)
	setBool("focus_mode", u.FocusMode, &dst.FocusMode)
	setBool("extended_timeouts", u.ExtendedTimeouts, &dst.ExtendedTimeouts)
	setBool("plain_language", u.PlainLanguage, &dst.PlainLanguage)
	setBool("reading_mask", u.ReadingMask, &dst.ReadingMask)
	setBool("highlight_headings", u.HighlightHeadings, &dst.HighlightHeadings)
	setBool("hide_images", u.HideImages, &dst.HideImages)
	setBool("keyboard_navigation", u.KeyboardNavigation, &dst.KeyboardNavigation)

	return fields
}

// validate rejects values outside the declared enumerations.
func (u *SettingsUpdate) validate() error {
	if u.ColorVisionMode != nil {
		switch *u.ColorVisionMode {
		case models.ColorVisionNone, models.ColorVisionProtanopia,
			models.ColorVisionDeuteranopia, models.ColorVisionTritanopia,
			models.ColorVisionGrayscale:
		default:
			return fmt.Errorf("%w: unknown colorVisionMode %q", ErrInvalidInput, *u.ColorVisionMode)
		}
	}

	checkRange := func(name string, v *float64, min, max float64) error {
		if v != nil && (*v < min || *v > max) {
			return fmt.Errorf("%w: %s out of range", ErrInvalidInput, name)
		}
		return nil
	}
	if err := checkRange("speechRate", u.SpeechRate, 0.25, 4); err != nil {
		return err
	}
	if err := checkRange("speechPitch", u.SpeechPitch, 0.25, 4); err != nil {
		return err
	}
	if err := checkRange("volume", u.Volume, 0, 1); err != nil {
		return err
	}

	return nil
}

// SettingsReader defines read access to stored settings rows.
type SettingsReader interface {
	GetByEmail(ctx context.Context, email string) (*models.SettingsDB, error)
}

// SettingsWriter defines write access to stored settings rows.
type SettingsWriter interface {
	Insert(ctx context.Context, s *models.SettingsDB) error
	Update(ctx context.Context, email string, fields map[string]any) error
}

// SettingsService reconciles client preference updates onto the fixed column
// set and always serves a fully-populated object.
type SettingsService struct {
	reader SettingsReader
	writer SettingsWriter
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(reader SettingsReader, writer SettingsWriter) *SettingsService {
	return &SettingsService{
		reader: reader,
		writer: writer,
	}
}

// Get returns the user's settings. A user with no stored row gets the fixed,
// fully-populated defaults, never a partial or null object.
func (svc *SettingsService) Get(ctx context.Context, email string) (*models.Settings, error) {
	row, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to read settings", "email", email, "err", err)
		return nil, err
	}
	if row == nil {
		return models.DefaultSettings(), nil
	}
	return row.ToSettings(), nil
}

// Update applies a partial settings patch. An update carrying zero recognized
// fields performs no write. Without an existing row, defaults are overlaid
// with the patch and inserted; otherwise only the provided columns change.
func (svc *SettingsService) Update(ctx context.Context, email string, update *SettingsUpdate) (*models.Settings, error) {
	if err := update.validate(); err != nil {
		return nil, err
	}

	row, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to read settings", "email", email, "err", err)
		return nil, err
	}

	if row == nil {
		fresh := models.DefaultSettingsDB(email)
		fields := update.collect(fresh)
		if len(fields) == 0 {
			// Nothing recognized: no row is created.
			return models.DefaultSettings(), nil
		}
		if err := svc.writer.Insert(ctx, fresh); err != nil {
			logger.Log.Errorw("failed to insert settings", "email", email, "err", err)
			return nil, err
		}
		return fresh.ToSettings(), nil
	}

	fields := update.collect(row)
	if len(fields) == 0 {
		return row.ToSettings(), nil
	}

	if err := svc.writer.Update(ctx, email, fields); err != nil {
		logger.Log.Errorw("failed to update settings", "email", email, "err", err)
		return nil, err
	}

	return row.ToSettings(), nil
}
