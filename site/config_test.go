package site

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestLinkTitles(t *testing.T) {
	cfg := Default()
	title := cfg.Site().Title
	for _, s := range cfg.Socials() {
		want := title + " on " + s.Name.String()
		if s.Name == Mail {
			want = "Send an email to " + title
		}
		if s.LinkTitle != want {
			t.Errorf("%s LinkTitle = %q, want %q", s.Name, s.LinkTitle, want)
		}
	}
}

func TestSocialNamesUnique(t *testing.T) {
	seen := make(map[Platform]bool)
	for _, s := range Default().Socials() {
		if seen[s.Name] {
			t.Errorf("duplicate social %s", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestSocialsOrderAndActive(t *testing.T) {
	cfg := Default()

	var names []Platform
	for _, s := range cfg.Socials() {
		names = append(names, s.Name)
	}
	want := []Platform{Github, Facebook, Instagram, LinkedIn, Mail, Twitter}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("Socials order = %v, want %v", names, want)
	}

	var active []Platform
	for _, s := range cfg.ActiveSocials() {
		active = append(active, s.Name)
	}
	wantActive := []Platform{Github, Facebook, Instagram, LinkedIn}
	if !reflect.DeepEqual(active, wantActive) {
		t.Errorf("ActiveSocials = %v, want %v", active, wantActive)
	}
	for _, p := range []Platform{Mail, Twitter} {
		s, ok := cfg.Social(p)
		if !ok {
			t.Fatalf("Social(%s) not found", p)
		}
		if s.Active {
			t.Errorf("%s should be inactive", p)
		}
	}
}

func TestDefaultLiterals(t *testing.T) {
	cfg := Default()
	s := cfg.Site()
	if s.PostPerPage != 3 {
		t.Errorf("PostPerPage = %d, want 3", s.PostPerPage)
	}
	if s.ScheduledPostMargin.Milliseconds() != 900000 {
		t.Errorf("ScheduledPostMargin = %d ms, want 900000", s.ScheduledPostMargin.Milliseconds())
	}
	if s.Website != "https://mranv.pages.dev/" {
		t.Errorf("Website = %q", s.Website)
	}
	if !s.LightAndDarkMode {
		t.Error("LightAndDarkMode should be true")
	}

	if got, want := cfg.Logo(), (LogoConfig{Enable: true, SVG: true, Width: 216, Height: 46}); got != want {
		t.Errorf("Logo = %+v, want %+v", got, want)
	}

	l := cfg.Locale()
	if l.Lang != "en" {
		t.Errorf("Lang = %q, want en", l.Lang)
	}
	if !reflect.DeepEqual(l.LangTag, []string{"en-EN"}) {
		t.Errorf("LangTag = %v, want [en-EN]", l.LangTag)
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default should return the same *Config")
	}
}

func TestAccessorsIdempotent(t *testing.T) {
	cfg := Default()
	if !reflect.DeepEqual(cfg.Socials(), cfg.Socials()) {
		t.Error("Socials() differs between calls")
	}
	if !reflect.DeepEqual(cfg.Locale(), cfg.Locale()) {
		t.Error("Locale() differs between calls")
	}
	if cfg.Site() != cfg.Site() {
		t.Error("Site() differs between calls")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	cfg := Default()

	socials := cfg.Socials()
	socials[0].Href = "https://example.com"
	socials[0].Active = false
	if got := cfg.Socials()[0]; got.Href != "https://github.com/mranv" || !got.Active {
		t.Errorf("mutating Socials() leaked into config: %+v", got)
	}

	l := cfg.Locale()
	l.LangTag[0] = "fr-FR"
	if got := cfg.Locale().LangTag[0]; got != "en-EN" {
		t.Errorf("mutating Locale() leaked into config: %q", got)
	}
}

func TestNewCopiesInput(t *testing.T) {
	v := DefaultValues()
	cfg, err := New(v)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	v.Locale.LangTag[0] = "de-DE"
	v.Site.Title = "Changed"
	if got := cfg.Locale().LangTag[0]; got != "en-EN" {
		t.Errorf("LangTag = %q after mutating input", got)
	}
	if got := cfg.Socials()[0].LinkTitle; strings.Contains(got, "Changed") {
		t.Errorf("LinkTitle = %q follows later title change", got)
	}
}

func TestConcurrentReaders(t *testing.T) {
	cfg := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = cfg.Socials()
				_ = cfg.ActiveSocials()
				_ = cfg.Locale()
				_ = cfg.Site().PageCount(j)
			}
		}()
	}
	wg.Wait()
}

func TestMustNewPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustNew should panic on invalid values")
		}
	}()
	v := DefaultValues()
	v.Site.PostPerPage = 0
	MustNew(v)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Values)
		field  string
	}{
		{"relative website", func(v *Values) { v.Site.Website = "/blog" }, "site.website"},
		{"ftp website", func(v *Values) { v.Site.Website = "ftp://example.com" }, "site.website"},
		{"empty author", func(v *Values) { v.Site.Author = " " }, "site.author"},
		{"empty desc", func(v *Values) { v.Site.Desc = "" }, "site.desc"},
		{"empty title", func(v *Values) { v.Site.Title = "" }, "site.title"},
		{"empty og image", func(v *Values) { v.Site.OGImage = "" }, "site.ogImage"},
		{"zero per page", func(v *Values) { v.Site.PostPerPage = 0 }, "site.postPerPage"},
		{"negative margin", func(v *Values) { v.Site.ScheduledPostMargin = -time.Second }, "site.scheduledPostMargin"},
		{"bad lang", func(v *Values) { v.Locale.Lang = "!!" }, "locale.lang"},
		{"underscore lang", func(v *Values) { v.Locale.Lang = "en_US" }, "locale.lang"},
		{"underscore lang tag", func(v *Values) { v.Locale.LangTag = []string{"en_US"} }, "locale.langTag[0]"},
		{"bad lang tag", func(v *Values) { v.Locale.LangTag = []string{"en-US", "!!"} }, "locale.langTag[1]"},
		{"empty lang tag", func(v *Values) { v.Locale.LangTag = []string{""} }, "locale.langTag[0]"},
		{"logo width", func(v *Values) { v.Logo.Width = 0 }, "logo.width"},
		{"logo height", func(v *Values) { v.Logo.Height = -1 }, "logo.height"},
		{"unknown platform", func(v *Values) { v.Socials[2].Platform = 0 }, "socials[2].name"},
		{"duplicate platform", func(v *Values) { v.Socials[5].Platform = Github }, "socials[5].name"},
		{"bad href", func(v *Values) { v.Socials[1].Href = "facebook.com/x" }, "socials[1].href"},
		{"empty mailto", func(v *Values) { v.Socials[4].Href = "mailto:" }, "socials[4].href"},
		{"mailto without local part", func(v *Values) { v.Socials[4].Href = "mailto:@" }, "socials[4].href"},
		{"mailto without domain", func(v *Values) { v.Socials[4].Href = "mailto:me@" }, "socials[4].href"},
		{"href with space", func(v *Values) { v.Socials[0].Href = "https://github.com/a b" }, "socials[0].href"},
		{"website with space", func(v *Values) { v.Site.Website = "https://mranv .pages.dev/" }, "site.website"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DefaultValues()
			tt.mutate(&v)
			_, err := New(v)
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("New error = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name the field", err)
			}
		})
	}
}

func TestValidateAcceptsOptionalValues(t *testing.T) {
	v := DefaultValues()
	v.Locale = LocaleConfig{}
	v.Logo = LogoConfig{}
	v.Socials = nil
	v.Site.ScheduledPostMargin = 0
	if _, err := New(v); err != nil {
		t.Fatalf("New failed: %v", err)
	}
}

func TestValidateAcceptsTagForms(t *testing.T) {
	for _, tag := range []string{"en", "en-EN", "EN-us", "zh-Hant-TW", "sr-Latn-RS"} {
		v := DefaultValues()
		v.Locale.Lang = tag
		v.Locale.LangTag = []string{tag}
		if _, err := New(v); err != nil {
			t.Errorf("New with tag %q failed: %v", tag, err)
		}
	}
}

func TestUnknownPlatformIsWrapped(t *testing.T) {
	v := DefaultValues()
	v.Socials[0].Platform = Platform(99)
	_, err := New(v)
	if !errors.Is(err, ErrUnknownPlatform) {
		t.Errorf("error = %v, want ErrUnknownPlatform", err)
	}
}

func TestLogoAssetPath(t *testing.T) {
	if got := (LogoConfig{SVG: true}).AssetPath(); got != "assets/logo.svg" {
		t.Errorf("AssetPath = %q", got)
	}
	if got := (LogoConfig{}).AssetPath(); got != "assets/logo.png" {
		t.Errorf("AssetPath = %q", got)
	}
}
