package site

import (
	"errors"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// hostLocaleVars are consulted in POSIX precedence order.
var hostLocaleVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// HostDefault returns the locale of the host environment, or English when
// none is set.
func HostDefault() language.Tag {
	return hostDefault(os.Getenv)
}

func hostDefault(getenv func(string) string) language.Tag {
	for _, key := range hostLocaleVars {
		v := getenv(key)
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		v = strings.ReplaceAll(strings.TrimSpace(v), "_", "-")
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if tag, err := parseTag(v); err == nil {
			return tag
		}
	}
	return language.English
}

// parseTag parses s, keeping well-formed tags whose subtags are missing from
// the registry by reducing them to their primary language.
func parseTag(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err == nil {
		return tag, nil
	}
	var ve language.ValueError
	if !errors.As(err, &ve) {
		return language.Und, err
	}
	primary, _, _ := strings.Cut(s, "-")
	return language.Parse(primary)
}

// ResolveLang returns the html lang code: Lang when set, otherwise the
// primary language of host.
func (l LocaleConfig) ResolveLang(host language.Tag) string {
	if l.Lang != "" {
		return l.Lang
	}
	base, _ := host.Base()
	return base.String()
}

// Tags returns the formatting tags in preference order. An empty LangTag
// resolves to host.
func (l LocaleConfig) Tags(host language.Tag) []language.Tag {
	var tags []language.Tag
	for _, s := range l.LangTag {
		if tag, err := parseTag(s); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return []language.Tag{host}
	}
	return tags
}

// Printer returns a message printer for the first formatting tag.
func (l LocaleConfig) Printer(host language.Tag) *message.Printer {
	return message.NewPrinter(l.Tags(host)[0])
}

// FormatNumber formats n with the digit grouping of the configured locale.
func (l LocaleConfig) FormatNumber(host language.Tag, n int) string {
	return l.Printer(host).Sprintf("%d", n)
}
