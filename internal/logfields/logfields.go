package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath     = "path"
	KeyField    = "field"
	KeyFormat   = "format"
	KeyRoute    = "route"
	KeyReloadID = "reload_id"
	KeySnapshot = "snapshot"
	KeyCount    = "count"
	KeyDuration = "duration_ms"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Field(f string) slog.Attr        { return slog.String(KeyField, f) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Route(r string) slog.Attr        { return slog.String(KeyRoute, r) }
func ReloadID(id string) slog.Attr    { return slog.String(KeyReloadID, id) }
func Snapshot(s string) slog.Attr     { return slog.String(KeySnapshot, short(s)) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDuration, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// short trims a snapshot hash to a readable prefix.
func short(s string) string {
	if len(s) > 12 {
		return s[:12]
	}
	return s
}
