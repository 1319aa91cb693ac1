package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/skobelevsky/authgate/internal/logger"
	"github.com/skobelevsky/authgate/internal/models"
)

const settingsColumns = `
	email,
	font_size, font_family, line_spacing, letter_spacing, dyslexia_font,
	dark_mode, high_contrast, color_vision_mode, saturation, link_highlight, cursor_size,
	text_to_speech, speech_rate, speech_pitch, volume, captions, mute_sounds,
	reduce_motion, disable_autoplay, disable_animations, disable_parallax,
	simplified_layout, reading_guide, focus_mode, extended_timeouts,
	plain_language, reading_mask, highlight_headings, hide_images, keyboard_navigation,
	created_at, updated_at
`

// SettingsReadRepository provides read access to the settings table.
type SettingsReadRepository struct {
	db *sqlx.DB
}

func NewSettingsReadRepository(db *sqlx.DB) *SettingsReadRepository {
	return &SettingsReadRepository{db: db}
}

// GetByEmail returns the settings row for the given email, or (nil, nil)
// when the user never stored any settings.
func (r *SettingsReadRepository) GetByEmail(ctx context.Context, email string) (*models.SettingsDB, error) {
	const query = `SELECT ` + settingsColumns + ` FROM settings WHERE email = $1`

	var settings models.SettingsDB
	err := r.db.GetContext(ctx, &settings, query, email)

	logger.Log.Infow("settings select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// SettingsWriteRepository provides write access to the settings table.
type SettingsWriteRepository struct {
	db *sqlx.DB
}

func NewSettingsWriteRepository(db *sqlx.DB) *SettingsWriteRepository {
	return &SettingsWriteRepository{db: db}
}

// Insert stores a full settings row.
func (r *SettingsWriteRepository) Insert(ctx context.Context, s *models.SettingsDB) error {
	const query = `
		INSERT INTO settings (
			email,
			font_size, font_family, line_spacing, letter_spacing, dyslexia_font,
			dark_mode, high_contrast, color_vision_mode, saturation, link_highlight, cursor_size,
			text_to_speech, speech_rate, speech_pitch, volume, captions, mute_sounds,
			reduce_motion, disable_autoplay, disable_animations, disable_parallax,
			simplified_layout, reading_guide, focus_mode, extended_timeouts,
			plain_language, reading_mask, highlight_headings, hide_images, keyboard_navigation,
			created_at, updated_at
		) VALUES (
			:email,
			:font_size, :font_family, :line_spacing, :letter_spacing, :dyslexia_font,
			:dark_mode, :high_contrast, :color_vision_mode, :saturation, :link_highlight, :cursor_size,
			:text_to_speech, :speech_rate, :speech_pitch, :volume, :captions, :mute_sounds,
			:reduce_motion, :disable_autoplay, :disable_animations, :disable_parallax,
			:simplified_layout, :reading_guide, :focus_mode, :extended_timeouts,
			:plain_language, :reading_mask, :highlight_headings, :hide_images, :keyboard_navigation,
			NOW(), NOW()
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, s)

	logger.Log.Infow("settings insert",
		"email", s.Email,
		"error", err,
	)

	return err
}

// Update applies a partial column→value update to the row keyed by email.
// An empty update map is a no-op and touches nothing.
func (r *SettingsWriteRepository) Update(ctx context.Context, email string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	// Deterministic column order keeps the generated SQL stable for logs and tests.
	columns := make([]string, 0, len(fields))
	for col := range fields {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	set := make([]string, 0, len(columns)+1)
	args := make([]any, 0, len(columns)+1)
	args = append(args, email)
	for i, col := range columns {
		set = append(set, fmt.Sprintf("%s = $%d", col, i+2))
		args = append(args, fields[col])
	}
	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE settings SET %s WHERE email = $1", strings.Join(set, ", "))

	res, err := r.db.ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("settings update",
		"query", strings.Join(strings.Fields(query), " "),
		"email", email,
		"rows", rowsAffected,
		"error", err,
	)

	return err
}

// MoveEmail re-keys a settings row after an email change so the row keeps
// following its user.
func (r *SettingsWriteRepository) MoveEmail(ctx context.Context, oldEmail, newEmail string) error {
	const query = `UPDATE settings SET email = $2, updated_at = NOW() WHERE email = $1`

	res, err := r.db.ExecContext(ctx, query, oldEmail, newEmail)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("settings move",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", rowsAffected,
		"error", err,
	)

	return err
}
