package formats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chrismichaelps/veffect-sub000/formats"
)

func TestEmail(t *testing.T) {
	assert.True(t, formats.Email("user@example.com"))
	assert.True(t, formats.Email("first.last+tag@sub.domain.org"))
	assert.False(t, formats.Email("not-an-email"))
	assert.False(t, formats.Email("@missing-local.com"))
	assert.False(t, formats.Email("user@"))
}

func TestURL(t *testing.T) {
	assert.True(t, formats.URL("https://example.com/path?q=1"))
	assert.True(t, formats.URL("ftp://files.example.com"))
	assert.False(t, formats.URL("example.com"), "relative URLs have no scheme")
	assert.False(t, formats.URL("https://"), "host is required")
}

func TestUUID(t *testing.T) {
	assert.True(t, formats.UUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.False(t, formats.UUID("123e4567e89b12d3a456426614174000"))
	assert.False(t, formats.UUID("123e4567-e89b-12d3-a456-42661417400Z"))
}

func TestDateTime(t *testing.T) {
	assert.True(t, formats.DateTime("2024-06-01T12:00:00Z"))
	assert.True(t, formats.DateTime("2024-06-01T12:00:00+09:00"))
	assert.False(t, formats.DateTime("2024-06-01"))
	assert.False(t, formats.DateTime("June 1st"))
}

func TestDuration(t *testing.T) {
	assert.True(t, formats.Duration("P3Y6M4DT12H30M5S"))
	assert.True(t, formats.Duration("PT15M"))
	assert.True(t, formats.Duration("-P1D"))
	assert.False(t, formats.Duration("P"), "a bare designator has no components")
	assert.False(t, formats.Duration("P1DT"), "a trailing T has no time components")
	assert.False(t, formats.Duration("3 days"))
}

func TestIPAndCIDR(t *testing.T) {
	assert.True(t, formats.IP("192.168.0.1"))
	assert.True(t, formats.IP("::1"))
	assert.False(t, formats.IP("999.0.0.1"))
	assert.True(t, formats.CIDR("10.0.0.0/8"))
	assert.True(t, formats.CIDR("2001:db8::/32"))
	assert.False(t, formats.CIDR("10.0.0.0"))
}

func TestBase64(t *testing.T) {
	assert.True(t, formats.Base64("aGVsbG8="))
	assert.False(t, formats.Base64("aGVsbG8"), "standard encoding requires padding")
	assert.False(t, formats.Base64("not base64!!"))
}

func TestEmoji(t *testing.T) {
	assert.True(t, formats.Emoji("👍"))
	assert.True(t, formats.Emoji("🎉🎊"))
	assert.False(t, formats.Emoji(""))
	assert.False(t, formats.Emoji("hi 👍"))
}
