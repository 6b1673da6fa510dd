package config

import (
	"log/slog"
	"strings"
)

// normalizeDBURL converts legacy database locations to URL form. The
// desktop tool this replaces configured a bare sqlite file path, and
// SQLAlchemy-era configs carried async driver suffixes like
// sqlite+aiosqlite://. Both are rewritten to the URL form the Go
// database layer parses.
func normalizeDBURL(raw string) string {
	if plus := strings.Index(raw, "+"); plus >= 0 {
		if colon := strings.Index(raw, "://"); colon >= 0 && plus < colon {
			normalized := raw[:plus] + raw[colon:]
			slog.Warn("normalized legacy DB_URL driver suffix",
				"original", raw,
				"normalized", normalized,
			)
			return normalized
		}
	}

	if !strings.Contains(raw, "://") {
		normalized := "sqlite:///" + raw
		slog.Warn("normalized bare DB_URL file path",
			"original", raw,
			"normalized", normalized,
		)
		return normalized
	}

	return raw
}

// Normalize returns a copy of the EnvConfig with legacy values converted
// to their current equivalents. It logs warnings for each transformation
// so users know to update their .env files.
func (e EnvConfig) Normalize() EnvConfig {
	if e.DBURL != "" {
		e.DBURL = normalizeDBURL(e.DBURL)
	}
	if e.EditPasscodeHash != "" {
		e.EditPasscodeHash = strings.ToLower(strings.TrimSpace(e.EditPasscodeHash))
	}
	return e
}
