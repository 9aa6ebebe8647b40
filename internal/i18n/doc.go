// Package i18n provides label lookup by message key.
//
// Catalogs for the supported languages are built in; a Localizer is bound to
// the best match for the configured language and falls back to English.
// Labels are display output only and are never mapped back to values.
package i18n
