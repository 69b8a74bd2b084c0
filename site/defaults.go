package site

import (
	"sync"
	"time"
)

// DefaultValues returns the literal configuration of the blog.
func DefaultValues() Values {
	return Values{
		Site: SiteConfig{
			Website:             "https://mranv.pages.dev/",
			Author:              "Anubhav Gain",
			Desc:                "Anubhav Gain is an experienced DevSecOps Engineer and Cyber Security expert with expertise in Security Information and Event Management (SIEM), Linux, Information Security, Cybersecurity, Threat & Vulnerability Management, Cloud Security, Rust Programming, and Network Security. This blog documents his journey in the cyber security field.",
			Title:               "Anubhav Gain - DevSecOps Engineer & Cyber Security Expert",
			OGImage:             "assets/forrest-gump-quote.webp",
			LightAndDarkMode:    true,
			PostPerPage:         3,
			ScheduledPostMargin: 15 * time.Minute,
		},
		Locale: LocaleConfig{
			Lang:    "en",              // set empty to use the host default
			LangTag: []string{"en-EN"}, // set empty to use the host default
		},
		Logo: LogoConfig{
			Enable: true,
			SVG:    true,
			Width:  216,
			Height: 46,
		},
		Socials: []SocialLink{
			{Platform: Github, Href: "https://github.com/mranv", Active: true},
			{Platform: Facebook, Href: "https://www.facebook.com/mranv.1", Active: true},
			{Platform: Instagram, Href: "https://instagram.com/anubhavgain", Active: true},
			{Platform: LinkedIn, Href: "https://www.linkedin.com/in/anubhavgain", Active: true},
			{Platform: Mail, Href: "mailto:iamanubhavgain@gmail.com", Active: false},
			{Platform: Twitter, Href: "https://twitter.com/AnubhavGain", Active: false},
		},
	}
}

var defaultConfig = sync.OnceValue(func() *Config {
	return MustNew(DefaultValues())
})

// Default returns the process-wide configuration table built from
// DefaultValues. Every call returns the same *Config.
func Default() *Config {
	return defaultConfig()
}
