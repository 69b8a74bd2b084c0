package site

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// ConfigError reports a field of Values that failed validation.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("site: invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func invalid(field, value, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}

// Validate checks v and returns the first problem found as a *ConfigError.
func (v Values) Validate() error {
	if err := v.validateSite(); err != nil {
		return err
	}
	if err := v.validateLocale(); err != nil {
		return err
	}
	if err := v.validateLogo(); err != nil {
		return err
	}
	return v.validateSocials()
}

func (v Values) validateSite() error {
	s := v.Site
	if err := checkWebURL("site.website", s.Website); err != nil {
		return err
	}
	required := []struct {
		field string
		value string
	}{
		{"site.author", s.Author},
		{"site.desc", s.Desc},
		{"site.title", s.Title},
		{"site.ogImage", s.OGImage},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return invalid(r.field, r.value, "must not be empty")
		}
	}
	if s.PostPerPage <= 0 {
		return invalid("site.postPerPage", fmt.Sprint(s.PostPerPage), "must be positive")
	}
	if s.ScheduledPostMargin < 0 {
		return invalid("site.scheduledPostMargin", s.ScheduledPostMargin.String(), "must not be negative")
	}
	return nil
}

func (v Values) validateLocale() error {
	if v.Locale.Lang != "" {
		if err := checkTag(v.Locale.Lang); err != nil {
			return &ConfigError{Field: "locale.lang", Value: v.Locale.Lang, Reason: "not a BCP 47 tag", Err: err}
		}
	}
	for i, tag := range v.Locale.LangTag {
		if err := checkTag(tag); err != nil {
			return &ConfigError{Field: fmt.Sprintf("locale.langTag[%d]", i), Value: tag, Reason: "not a BCP 47 tag", Err: err}
		}
	}
	return nil
}

func (v Values) validateLogo() error {
	l := v.Logo
	if !l.Enable {
		return nil
	}
	if l.Width <= 0 {
		return invalid("logo.width", fmt.Sprint(l.Width), "must be positive when the logo is enabled")
	}
	if l.Height <= 0 {
		return invalid("logo.height", fmt.Sprint(l.Height), "must be positive when the logo is enabled")
	}
	return nil
}

func (v Values) validateSocials() error {
	seen := make(map[Platform]struct{}, len(v.Socials))
	for i, s := range v.Socials {
		field := fmt.Sprintf("socials[%d]", i)
		if !s.Platform.Valid() {
			return &ConfigError{Field: field + ".name", Value: s.Platform.String(), Reason: "unknown platform", Err: ErrUnknownPlatform}
		}
		if _, dup := seen[s.Platform]; dup {
			return invalid(field+".name", s.Platform.String(), "duplicate platform")
		}
		seen[s.Platform] = struct{}{}
		if err := checkSocialHref(field+".href", s.Href); err != nil {
			return err
		}
	}
	return nil
}

// checkTag accepts any syntactically valid BCP 47 tag. Well-formed tags with
// subtags missing from the registry (such as "en-EN") are allowed. POSIX
// locale names like "en_US" are rejected even though language.Parse accepts
// them, since the raw value is emitted as the document language.
func checkTag(tag string) error {
	if strings.TrimSpace(tag) == "" {
		return errors.New("empty tag")
	}
	if strings.ContainsFunc(tag, func(r rune) bool { return r != '-' && !isAlnum(r) }) {
		return errors.New("tag may only contain letters, digits and hyphens")
	}
	_, err := language.Parse(tag)
	var ve language.ValueError
	if err != nil && !errors.As(err, &ve) {
		return err
	}
	return nil
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

func checkWebURL(field, raw string) error {
	if strings.ContainsFunc(raw, unicode.IsSpace) {
		return invalid(field, raw, "must not contain whitespace")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return &ConfigError{Field: field, Value: raw, Reason: "malformed URL", Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return invalid(field, raw, "must be an absolute http or https URL")
	}
	if u.Host == "" {
		return invalid(field, raw, "missing host")
	}
	return nil
}

func checkSocialHref(field, raw string) error {
	if strings.HasPrefix(strings.ToLower(raw), "mailto:") {
		if strings.ContainsFunc(raw, unicode.IsSpace) {
			return invalid(field, raw, "must not contain whitespace")
		}
		u, err := url.Parse(raw)
		if err != nil {
			return &ConfigError{Field: field, Value: raw, Reason: "malformed URL", Err: err}
		}
		local, domain, ok := strings.Cut(u.Opaque, "@")
		if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
			return invalid(field, raw, "mailto link without a valid address")
		}
		return nil
	}
	return checkWebURL(field, raw)
}
