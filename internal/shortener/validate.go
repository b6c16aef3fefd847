package shortener

import (
	"net/url"
	"regexp"
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9]{6,8}$`)

// ValidCode reports whether s is a well-formed short code: 6 to 8
// characters, each an ASCII letter or digit. No reserved-word list.
func ValidCode(s string) bool {
	return codePattern.MatchString(s)
}

// ValidURL reports whether s parses as an absolute URL with an http or
// https scheme.
func ValidURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
