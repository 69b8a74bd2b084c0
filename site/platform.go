package site

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPlatform is returned when a platform name is not recognized.
var ErrUnknownPlatform = errors.New("site: unknown social platform")

// Platform identifies a social network. The zero value is not a valid
// platform.
type Platform int

const (
	Github Platform = iota + 1
	Facebook
	Instagram
	LinkedIn
	Mail
	Twitter
	Twitch
	YouTube
	WhatsApp
	Snapchat
	Pinterest
	TikTok
	CodePen
	Discord
	GitLab
	Reddit
	Skype
	Steam
	Telegram
	Mastodon
)

var platformNames = [...]string{
	Github:    "Github",
	Facebook:  "Facebook",
	Instagram: "Instagram",
	LinkedIn:  "LinkedIn",
	Mail:      "Mail",
	Twitter:   "Twitter",
	Twitch:    "Twitch",
	YouTube:   "YouTube",
	WhatsApp:  "WhatsApp",
	Snapchat:  "Snapchat",
	Pinterest: "Pinterest",
	TikTok:    "TikTok",
	CodePen:   "CodePen",
	Discord:   "Discord",
	GitLab:    "GitLab",
	Reddit:    "Reddit",
	Skype:     "Skype",
	Steam:     "Steam",
	Telegram:  "Telegram",
	Mastodon:  "Mastodon",
}

// Platforms returns every known platform in declaration order.
func Platforms() []Platform {
	out := make([]Platform, 0, len(platformNames)-1)
	for p := Github; p <= Mastodon; p++ {
		out = append(out, p)
	}
	return out
}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	return p >= Github && p <= Mastodon
}

func (p Platform) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Platform(%d)", int(p))
	}
	return platformNames[p]
}

// Slug is the lowercase platform name, used for icon names and CSS classes.
func (p Platform) Slug() string {
	return strings.ToLower(p.String())
}

// ParsePlatform looks up a platform by name, ignoring case.
func ParsePlatform(name string) (Platform, error) {
	name = strings.TrimSpace(name)
	for p := Github; p <= Mastodon; p++ {
		if strings.EqualFold(platformNames[p], name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlatform, int(p))
	}
	return []byte(platformNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	v, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
