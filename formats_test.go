package cogitojson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRegistryCoversRequiredNames(t *testing.T) {
	names := []string{
		"color", "hostname", "host-name", "idn-hostname", "ipv4",
		"ip-address", "ipv6", "email", "idn-email", "uri", "uri-reference",
		"uri-template", "iri", "iri-reference", "json-pointer",
		"relative-json-pointer", "date", "time", "date-time",
		"utc-millisec", "regex",
	}
	for _, name := range names {
		assert.Contains(t, Formats, name)
	}
}

func TestDraft3AliasesShareThePredicate(t *testing.T) {
	assert.True(t, Formats["host-name"]("example.com"))
	assert.False(t, Formats["host-name"]("-bad-.com"))
	assert.True(t, Formats["ip-address"]("10.0.0.1"))
	assert.False(t, Formats["ip-address"]("10.0.0.256"))
}

func TestIsHostname(t *testing.T) {
	cases := map[string]bool{
		"example.com":     true,
		"a.b.c.d":         true,
		"ex_ample.com":    false,
		"-example.com":    false,
		"example-.com":    false,
		"example..com":    false,
		"":                false,
		"trailing.dot.":   true,
	}
	for input, want := range cases {
		assert.Equal(t, want, IsHostname(input), "hostname %q", input)
	}
}

func TestIsEmail(t *testing.T) {
	cases := map[string]bool{
		"user@example.com":     true,
		"user.name@sub.domain": true,
		"no-at-sign":           false,
		"user@[127.0.0.1]":     true,
		"user@[IPv6:::1]":      true,
		"@example.com":         false,
	}
	for input, want := range cases {
		assert.Equal(t, want, IsEmail(input), "email %q", input)
	}
}

func TestIsIPv4AndIPv6(t *testing.T) {
	assert.True(t, IsIPV4("192.168.1.1"))
	assert.False(t, IsIPV4("192.168.1"))
	assert.False(t, IsIPV4("192.168.1.01"), "leading zeroes are octal")
	assert.False(t, IsIPV4("::1"))

	assert.True(t, IsIPV6("::1"))
	assert.True(t, IsIPV6("2001:db8::8a2e:370:7334"))
	assert.False(t, IsIPV6("127.0.0.1"))
	assert.False(t, IsIPV6("not-an-ip"))
}

func TestIsURIAndReference(t *testing.T) {
	assert.True(t, IsURI("https://example.com/path?q=1"))
	assert.True(t, IsURI("urn:isbn:0451450523"))
	assert.False(t, IsURI("/relative/only"))

	assert.True(t, IsURIReference("/relative/only"))
	assert.True(t, IsURIReference("https://example.com"))
	assert.False(t, IsURIReference(`\back\slash`))
}

func TestIsJSONPointer(t *testing.T) {
	assert.True(t, IsJSONPointer(""))
	assert.True(t, IsJSONPointer("/a/b~0c/~1d"))
	assert.False(t, IsJSONPointer("a/b"))
	assert.False(t, IsJSONPointer("/bad~2escape"))
	assert.False(t, IsJSONPointer("/trailing~"))

	assert.True(t, IsRelativeJSONPointer("0"))
	assert.True(t, IsRelativeJSONPointer("1/a"))
	assert.True(t, IsRelativeJSONPointer("0#"))
	assert.False(t, IsRelativeJSONPointer("#"))
	assert.False(t, IsRelativeJSONPointer(""))
}

func TestIsDateAndTime(t *testing.T) {
	assert.True(t, IsDate("2024-02-29"))
	assert.False(t, IsDate("2023-02-29"))
	assert.False(t, IsDate("2024-13-01"))

	timeCases := map[string]bool{
		"12:34:56":            true,
		"12:34:56Z":           true,
		"12:34:56z":           true,
		"12:34:56.1234567":    true,
		"12:34:56.12345678":   false, // at most seven fractional digits
		"12:34:56+05:30":      true,
		"12:34:56-23:00":      true,
		"12:34:60Z":           false,
		"24:00:00Z":           false,
		"12:34":               false,
		"12:34:56+24:00":      false,
	}
	for input, want := range timeCases {
		assert.Equal(t, want, IsTime(input), "time %q", input)
	}

	assert.True(t, IsDateTime("2024-01-02T03:04:05Z"))
	assert.True(t, IsDateTime("2024-01-02t03:04:05.123+01:00"), "separator is case-insensitive")
	assert.True(t, IsDateTime("2024-01-02T03:04:05"), "offset may be absent")
	assert.False(t, IsDateTime("2024-01-02 03:04:05Z"))
	assert.False(t, IsDateTime("2024-01-02"))
}

func TestIsColor(t *testing.T) {
	cases := map[string]bool{
		"#fff":     true,
		"#A1B2C3":  true,
		"#ffff":    false,
		"#ggg":     false,
		"red":      true,
		"RED":      true,
		"orange":   true,
		"mauve-ish": false,
		"":         false,
	}
	for input, want := range cases {
		assert.Equal(t, want, IsColor(input), "color %q", input)
	}
}

func TestIsUTCMillisec(t *testing.T) {
	assert.True(t, IsUTCMillisec("1700000000000"))
	assert.True(t, IsUTCMillisec("-1.5"))
	assert.False(t, IsUTCMillisec("soon"))
	assert.False(t, IsUTCMillisec(""))
}

func TestIsRegex(t *testing.T) {
	assert.True(t, IsRegex("^a+$"))
	assert.False(t, IsRegex("["))
}

func TestIsIDNFormats(t *testing.T) {
	assert.True(t, IsIDNHostname("bücher.example"))
	assert.True(t, IsIDNHostname("例え.jp"))
	assert.False(t, IsIDNHostname("-bücher.example"))
	assert.False(t, IsIDNHostname(""))

	assert.True(t, IsIDNEmail("user@bücher.example"))
	assert.False(t, IsIDNEmail("userbücher.example"))
	assert.False(t, IsIDNEmail("@bücher.example"))
}

func TestIsUUIDAndDuration(t *testing.T) {
	assert.True(t, IsUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.False(t, IsUUID("123e4567-e89b-12d3-a456-42661417400"))
	assert.False(t, IsUUID("not-a-uuid"))

	assert.True(t, IsDuration("P1Y2M3DT4H5M6S"))
	assert.True(t, IsDuration("P4W"))
	assert.False(t, IsDuration("P"))
	assert.False(t, IsDuration("1Y"))
}
