package i18n

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"discburn/internal/mmc"
	"discburn/internal/resolver"
)

// Supported lists the built-in languages; the first entry is the fallback.
var Supported = []language.Tag{language.English, language.Swedish, language.German}

var (
	catalogOnce sync.Once
	builtin     catalog.Catalog
	catalogErr  error
	matcher     = language.NewMatcher(Supported)
)

func loadCatalog() (catalog.Catalog, error) {
	catalogOnce.Do(func() {
		builder := catalog.NewBuilder(catalog.Fallback(language.English))
		english := entries["en"]
		for _, tag := range Supported {
			base, _ := tag.Base()
			messages := entries[base.String()]
			for key, fallback := range english {
				msg, ok := messages[key]
				if !ok {
					msg = fallback
				}
				if err := builder.SetString(tag, string(key), msg); err != nil {
					catalogErr = fmt.Errorf("catalog %s %s: %w", tag, key, err)
					return
				}
			}
		}
		builtin = builder
	})
	return builtin, catalogErr
}

// Localizer renders labels for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for the best supported match of lang. Empty or
// unrecognized values select English. POSIX locale strings such as
// "sv_SE.UTF-8" are accepted.
func New(lang string) (*Localizer, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	tag := Match(lang)
	return &Localizer{tag: tag, printer: message.NewPrinter(tag, message.Catalog(cat))}, nil
}

// Match returns the supported language closest to lang.
func Match(lang string) language.Tag {
	normalized := normalizeLocale(lang)
	if normalized == "" {
		return Supported[0]
	}
	requested, err := language.Parse(normalized)
	if err != nil {
		return Supported[0]
	}
	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return Supported[0]
	}
	return Supported[index]
}

func normalizeLocale(lang string) string {
	value := strings.TrimSpace(lang)
	if idx := strings.IndexAny(value, ".@"); idx >= 0 {
		value = value[:idx]
	}
	value = strings.ReplaceAll(value, "_", "-")
	switch strings.ToLower(value) {
	case "", "c", "posix":
		return ""
	}
	return value
}

// Tag returns the language the localizer renders.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Label renders key with optional format arguments.
func (l *Localizer) Label(key Key, args ...any) string {
	return l.printer.Sprintf(string(key), args...)
}

// WriteMethodLabel returns the display label for m.
func (l *Localizer) WriteMethodLabel(m mmc.WriteMethod) string {
	return l.Label(writeMethodKey(m))
}

func writeMethodKey(m mmc.WriteMethod) Key {
	switch m {
	case mmc.WriteMethodSAO:
		return KeyMethodSAO
	case mmc.WriteMethodTAO:
		return KeyMethodTAO
	case mmc.WriteMethodTAONoPregap:
		return KeyMethodTAONoPregap
	case mmc.WriteMethodRAW96R:
		return KeyMethodRAW96R
	case mmc.WriteMethodRAW16:
		return KeyMethodRAW16
	case mmc.WriteMethodRAW96P:
		return KeyMethodRAW96P
	default:
		return KeyMethodNone
	}
}

// SpeedLabel returns the display label for an offered speed.
func (l *Localizer) SpeedLabel(s resolver.Speed) string {
	if s.Maximum() {
		return l.Label(KeyMaximum)
	}
	return l.Label(KeySpeed, mmc.FormatMultiplier(s.Multiplier), s.KBps)
}

// MediaReason describes why media is unusable.
func (l *Localizer) MediaReason(err error) string {
	switch resolver.ReasonOf(err) {
	case resolver.ReasonNoMedia:
		return l.Label(KeyMediaInsertBlank)
	case resolver.ReasonUnsupportedMedia:
		profile := "unknown"
		var mediaErr *resolver.MediaError
		if errors.As(err, &mediaErr) {
			profile = mediaErr.Profile.String()
		}
		return l.Label(KeyMediaUnsupported, profile)
	default:
		return l.Label(KeyMediaQueryFailed)
	}
}
