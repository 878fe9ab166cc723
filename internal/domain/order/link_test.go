//go:build unit

package order_test

import (
	"testing"

	"fulfillment-core/internal/domain/order"

	"github.com/stretchr/testify/assert"
)

func TestCleanLink(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "plain link untouched", in: "https://instagram.com/p/ABC123defGH/", expected: "https://instagram.com/p/ABC123defGH/"},
		{name: "surrounding quotes stripped", in: `"https://instagram.com/p/ABC123defGH/"`, expected: "https://instagram.com/p/ABC123defGH/"},
		{name: "trailing semicolon stripped", in: "https://instagram.com/p/ABC123defGH/;", expected: "https://instagram.com/p/ABC123defGH/"},
		{name: "escaped quotes unescaped", in: `\"https://instagram.com/p/ABC123defGH/\"`, expected: "https://instagram.com/p/ABC123defGH/"},
		{name: "whitespace trimmed", in: "  https://instagram.com/p/ABC123defGH/  ", expected: "https://instagram.com/p/ABC123defGH/"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, order.CleanLink(c.in))
		})
	}
}

func TestExtractShortcode(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "post url", in: "https://instagram.com/p/ABC123defGH/", expected: "ABC123defGH"},
		{name: "reel url", in: "https://www.instagram.com/reel/XYZ789abcDE/", expected: "XYZ789abcDE"},
		{name: "url with query string", in: "https://instagram.com/p/ABC123defGH/?igshid=1", expected: "ABC123defGH"},
		{name: "bare shortcode passes through", in: "ABC123defGH", expected: "ABC123defGH"},
		{name: "profile url has no shortcode", in: "https://instagram.com/someuser", expected: ""},
		{name: "empty", in: "", expected: ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, order.ExtractShortcode(c.in))
		})
	}
}

func TestCanonicalPostLink(t *testing.T) {
	t.Run("url providers get a normalized post url", func(t *testing.T) {
		link := order.CanonicalPostLink("https://www.instagram.com/reel/XYZ789abcDE/", "", false)
		assert.Equal(t, "https://instagram.com/p/XYZ789abcDE", link)
	})

	t.Run("bare-code providers get just the shortcode", func(t *testing.T) {
		link := order.CanonicalPostLink("https://instagram.com/p/ABC123defGH/", "", true)
		assert.Equal(t, "ABC123defGH", link)
	})

	t.Run("explicit code wins over the link", func(t *testing.T) {
		link := order.CanonicalPostLink("https://instagram.com/p/ABC123defGH/", "ZZZ999zzzQQ", false)
		assert.Equal(t, "https://instagram.com/p/ZZZ999zzzQQ", link)
	})

	t.Run("unparseable link is returned cleaned", func(t *testing.T) {
		link := order.CanonicalPostLink(`"https://example.com/whatever"`, "", false)
		assert.Equal(t, "https://example.com/whatever", link)
	})
}

func TestProfileLink(t *testing.T) {
	assert.Equal(t, "https://instagram.com/someuser", order.ProfileLink("someuser"))
	assert.Equal(t, "https://instagram.com/someuser", order.ProfileLink("@someuser"))
	assert.Equal(t, "https://instagram.com/someuser", order.ProfileLink("  someuser "))
}
