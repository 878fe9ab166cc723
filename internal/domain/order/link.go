package order

import (
	"regexp"
	"strings"
)

var shortcodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`instagram\.com/p/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`instagram\.com/reel/([A-Za-z0-9_-]+)`),
}

var bareShortcode = regexp.MustCompile(`^[A-Za-z0-9_-]{10,12}$`)

// CleanLink strips stray quotes, semicolons and escape sequences that show
// up in links copied out of checkout metadata.
func CleanLink(link string) string {
	s := strings.TrimSpace(link)
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.Trim(s, `"';`)
	return s
}

// ExtractShortcode pulls the post/reel shortcode out of an instagram URL.
// A value that already looks like a bare shortcode is returned unchanged.
// Returns "" when no shortcode can be derived.
func ExtractShortcode(link string) string {
	if link == "" {
		return ""
	}
	for _, re := range shortcodePatterns {
		if m := re.FindStringSubmatch(link); m != nil {
			return m[1]
		}
	}
	if bareShortcode.MatchString(link) {
		return link
	}
	return ""
}

// CanonicalPostLink formats a post target into the exact syntax the
// provider expects. Bare-code providers receive just the shortcode; the
// rest get a normalized post URL.
func CanonicalPostLink(post, code string, bareCode bool) string {
	clean := CleanLink(post)
	shortcode := code
	if shortcode == "" {
		shortcode = ExtractShortcode(clean)
	}
	if shortcode == "" {
		return clean
	}
	if bareCode {
		return shortcode
	}
	return "https://instagram.com/p/" + shortcode
}

// ProfileLink is the canonical target for profile-level services.
func ProfileLink(username string) string {
	return "https://instagram.com/" + strings.TrimPrefix(strings.TrimSpace(username), "@")
}
