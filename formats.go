// Credit to https://github.com/santhosh-tekuri/jsonschema
package cogitojson

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Formats is a registry of functions, which know how to validate a
// specific format.
//
// New Formats can be registered by adding to this map. Key is format name,
// value is function that knows how to validate that format. Names absent
// from the map accept any string.
var Formats = map[string]func(string) bool{
	"date-time":             IsDateTime,
	"date":                  IsDate,
	"time":                  IsTime,
	"duration":              IsDuration,
	"hostname":              IsHostname,
	"host-name":             IsHostname, // draft 3 alias
	"idn-hostname":          IsIDNHostname,
	"email":                 IsEmail,
	"idn-email":             IsIDNEmail,
	"ip-address":            IsIPV4, // draft 3 alias
	"ipv4":                  IsIPV4,
	"ipv6":                  IsIPV6,
	"uri":                   IsURI,
	"iri":                   IsURI,
	"uri-reference":         IsURIReference,
	"iri-reference":         IsURIReference,
	"uri-template":          IsURITemplate,
	"json-pointer":          IsJSONPointer,
	"relative-json-pointer": IsRelativeJSONPointer,
	"uuid":                  IsUUID,
	"regex":                 IsRegex,
	"color":                 IsColor,
	"utc-millisec":          IsUTCMillisec,
}

// IsDateTime tells whether given string is a valid date-time
// representation: a full date, a 'T' or 't' separator, then a time.
func IsDateTime(s string) bool {
	if len(s) < 11 {
		return false
	}
	if s[10] != 'T' && s[10] != 't' {
		return false
	}
	return IsDate(s[:10]) && IsTime(s[11:])
}

// IsDate tells whether given string is a valid full-date production
// (yyyy-MM-dd).
func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsTime tells whether given string is a valid time of the shape
// HH:mm:ss, optionally followed by a fractional part of up to seven
// digits and an offset ('Z', 'z', or +/-hh:mm). The offset may be absent.
func IsTime(str string) bool {
	// hh:mm:ss
	// 01234567
	if len(str) < 8 || str[2] != ':' || str[5] != ':' {
		return false
	}
	inRange := func(str string, min, max int) bool {
		for i := 0; i < len(str); i++ {
			if str[i] < '0' || str[i] > '9' {
				return false
			}
		}
		n, err := strconv.Atoi(str)
		if err != nil {
			return false
		}
		return n >= min && n <= max
	}
	if !inRange(str[0:2], 0, 23) || !inRange(str[3:5], 0, 59) || !inRange(str[6:8], 0, 59) {
		return false
	}
	str = str[8:]

	// fractional seconds, at most seven digits
	if str != "" && str[0] == '.' {
		str = str[1:]
		var digits int
		for str != "" && str[0] >= '0' && str[0] <= '9' {
			digits++
			str = str[1:]
		}
		if digits == 0 || digits > 7 {
			return false
		}
	}

	if str == "" {
		return true // offset is optional
	}

	if str[0] == 'z' || str[0] == 'Z' {
		return len(str) == 1
	}

	// +hh:mm
	// 012345
	if len(str) != 6 || (str[0] != '+' && str[0] != '-') || str[3] != ':' {
		return false
	}
	return inRange(str[1:3], 0, 23) && inRange(str[4:6], 0, 59)
}

// IsDuration tells whether given string is a valid ISO 8601 duration as
// given in Appendix A of RFC 3339.
func IsDuration(s string) bool {
	if len(s) == 0 || s[0] != 'P' {
		return false
	}
	s = s[1:]
	parseUnits := func() (units string, ok bool) {
		for len(s) > 0 && s[0] != 'T' {
			digits := false
			for len(s) != 0 {
				if s[0] < '0' || s[0] > '9' {
					break
				}
				digits = true
				s = s[1:]
			}
			if !digits || len(s) == 0 {
				return units, false
			}
			units += s[:1]
			s = s[1:]
		}
		return units, true
	}
	units, ok := parseUnits()
	if !ok {
		return false
	}
	if units == "W" {
		return len(s) == 0
	}
	if len(units) > 0 {
		if !strings.Contains("YMD", units) {
			return false
		}
		if len(s) == 0 {
			return true
		}
	}
	if len(s) == 0 || s[0] != 'T' {
		return false
	}
	s = s[1:]
	units, ok = parseUnits()
	return ok && len(s) == 0 && len(units) > 0 && strings.Contains("HMS", units)
}

// IsHostname tells whether given string is a valid representation for an
// Internet host name, as defined by RFC 1034 section 3.1 and RFC 1123
// section 2.1. The draft 3 "host-name" name uses the same production.
func IsHostname(s string) bool {
	// entire hostname (excluding a trailing dot) is at most 253 characters
	s = strings.TrimSuffix(s, ".")
	if len(s) > 253 {
		return false
	}

	// hostnames are series of labels concatenated with dots
	for _, label := range strings.Split(s, ".") {
		// each label must be from 1 to 63 characters long
		if labelLen := len(label); labelLen < 1 || labelLen > 63 {
			return false
		}

		// must not start or end with a hyphen
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}

		// labels may contain only ASCII letters, digits and hyphens
		for _, c := range label {
			if valid := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || (c == '-'); !valid {
				return false
			}
		}
	}

	return true
}

// IsIDNHostname tells whether given string is a plausible
// internationalized host name: the hostname label structure with letters
// from any script permitted.
func IsIDNHostname(s string) bool {
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		runes := []rune(label)
		if len(runes) < 1 || len(runes) > 63 {
			return false
		}
		if runes[0] == '-' || runes[len(runes)-1] == '-' {
			return false
		}
		for _, c := range runes {
			if valid := unicode.IsLetter(c) || unicode.IsDigit(c) || c == '-'; !valid {
				return false
			}
		}
	}
	return true
}

// IsEmail tells whether given string is a valid Internet email address as
// defined by RFC 5322, section 3.4.1.
func IsEmail(s string) bool {
	// entire email address is at most 254 characters
	if len(s) > 254 {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	if at == -1 {
		return false
	}
	local := s[0:at]
	domain := s[at+1:]

	// local part may be up to 64 characters long
	if len(local) > 64 {
		return false
	}

	// a bracketed domain must be an IP address
	if len(domain) >= 2 && domain[0] == '[' && domain[len(domain)-1] == ']' {
		ip := domain[1 : len(domain)-1]
		if strings.HasPrefix(ip, "IPv6:") {
			return IsIPV6(strings.TrimPrefix(ip, "IPv6:"))
		}
		return IsIPV4(ip)
	}

	if !IsHostname(domain) {
		return false
	}

	_, err := mail.ParseAddress(s)
	return err == nil
}

// IsIDNEmail tells whether given string is a plausible internationalized
// email address: a non-empty local part and an internationalized domain.
func IsIDNEmail(s string) bool {
	at := strings.LastIndexByte(s, '@')
	if at < 1 {
		return false
	}
	domain := s[at+1:]
	if len(domain) >= 2 && domain[0] == '[' && domain[len(domain)-1] == ']' {
		ip := domain[1 : len(domain)-1]
		if strings.HasPrefix(ip, "IPv6:") {
			return IsIPV6(strings.TrimPrefix(ip, "IPv6:"))
		}
		return IsIPV4(ip)
	}
	return IsIDNHostname(domain)
}

// IsIPV4 tells whether given string is a valid representation of an IPv4
// address according to the "dotted-quad" ABNF syntax. The draft 3
// "ip-address" name uses the same production.
func IsIPV4(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, group := range groups {
		n, err := strconv.Atoi(group)
		if err != nil {
			return false
		}
		if group[0] < '0' || group[0] > '9' {
			return false // no sign prefix
		}
		if n < 0 || n > 255 {
			return false
		}
		if n != 0 && group[0] == '0' {
			return false // leading zeroes are treated as octal
		}
	}
	return true
}

// IsIPV6 tells whether given string is a valid representation of an IPv6
// address as defined in RFC 2373, section 2.2.
func IsIPV6(s string) bool {
	if !strings.Contains(s, ":") {
		return false
	}
	return net.ParseIP(s) != nil
}

// IsURI tells whether given string is valid URI, according to RFC 3986.
func IsURI(s string) bool {
	u, err := urlParse(s)
	return err == nil && u.IsAbs()
}

func urlParse(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}

	// an ipv6 hostname must be enclosed in brackets and must parse
	hostname := u.Hostname()
	if strings.IndexByte(hostname, ':') != -1 {
		if strings.IndexByte(u.Host, '[') == -1 || strings.IndexByte(u.Host, ']') == -1 {
			return nil, ErrIPv6NotEnclosed
		}
		if !IsIPV6(hostname) {
			return nil, ErrInvalidIPv6
		}
	}
	return u, nil
}

// IsURIReference tells whether given string is a valid URI Reference
// (either a URI or a relative-reference), according to RFC 3986.
func IsURIReference(s string) bool {
	_, err := urlParse(s)
	return err == nil && !strings.Contains(s, `\`)
}

// IsURITemplate tells whether given string is a valid URI Template
// according to RFC 6570.
//
// Current implementation does minimal validation.
func IsURITemplate(s string) bool {
	u, err := urlParse(s)
	if err != nil {
		return false
	}
	for _, item := range strings.Split(u.RawPath, "/") {
		depth := 0
		for _, ch := range item {
			switch ch {
			case '{':
				depth++
				if depth != 1 {
					return false
				}
			case '}':
				depth--
				if depth != 0 {
					return false
				}
			}
		}
		if depth != 0 {
			return false
		}
	}
	return true
}

// IsJSONPointer tells whether given string is a valid JSON Pointer.
//
// Note: It returns false for JSON Pointer URI fragments.
func IsJSONPointer(s string) bool {
	if s != "" && !strings.HasPrefix(s, "/") {
		return false
	}
	for _, item := range strings.Split(s, "/") {
		for i := 0; i < len(item); i++ {
			if item[i] == '~' {
				if i == len(item)-1 {
					return false
				}
				switch item[i+1] {
				case '0', '1':
					// valid
				default:
					return false
				}
			}
		}
	}
	return true
}

// IsRelativeJSONPointer tells whether given string is a valid Relative
// JSON Pointer.
func IsRelativeJSONPointer(s string) bool {
	if s == "" {
		return false
	}
	switch {
	case s[0] == '0':
		s = s[1:]
	case s[0] >= '0' && s[0] <= '9':
		for s != "" && s[0] >= '0' && s[0] <= '9' {
			s = s[1:]
		}
	default:
		return false
	}
	return s == "#" || IsJSONPointer(s)
}

// IsUUID tells whether given string is a valid uuid format as specified
// in RFC 4122.
func IsUUID(s string) bool {
	parseHex := func(n int) bool {
		for n > 0 {
			if len(s) == 0 {
				return false
			}
			hex := (s[0] >= '0' && s[0] <= '9') || (s[0] >= 'a' && s[0] <= 'f') || (s[0] >= 'A' && s[0] <= 'F')
			if !hex {
				return false
			}
			s = s[1:]
			n--
		}
		return true
	}
	groups := []int{8, 4, 4, 4, 12}
	for i, numDigits := range groups {
		if !parseHex(numDigits) {
			return false
		}
		if i == len(groups)-1 {
			break
		}
		if len(s) == 0 || s[0] != '-' {
			return false
		}
		s = s[1:]
	}
	return len(s) == 0
}

// IsRegex tells whether given string is a valid regex pattern.
func IsRegex(pattern string) bool {
	_, err := regexp.Compile(pattern)
	return err == nil
}

// colorNames are the CSS level 2 color keywords.
var colorNames = map[string]struct{}{
	"aqua": {}, "black": {}, "blue": {}, "fuchsia": {}, "gray": {},
	"green": {}, "lime": {}, "maroon": {}, "navy": {}, "olive": {},
	"orange": {}, "purple": {}, "red": {}, "silver": {}, "teal": {},
	"white": {}, "yellow": {},
}

// IsColor tells whether given string is a CSS color: a #RGB or #RRGGBB
// hex triplet, or a CSS level 2 color keyword (case-insensitive).
func IsColor(s string) bool {
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		for i := 0; i < len(hex); i++ {
			c := hex[i]
			ok := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
			if !ok {
				return false
			}
		}
		return true
	}
	_, ok := colorNames[strings.ToLower(s)]
	return ok
}

// IsUTCMillisec tells whether given string parses as a decimal number of
// milliseconds.
func IsUTCMillisec(s string) bool {
	if s == "" || strings.Trim(s, "0123456789+-.eE") != "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
