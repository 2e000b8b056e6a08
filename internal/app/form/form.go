// Package form holds the draft state and synchronous validation for every
// console form. Validation never touches the network: a submit handler only
// calls upstream once the error map comes back empty.
package form

import (
	"net/url"
	"regexp"
	"strings"
)

// Errors is a field-keyed message map rendered beside each offending input.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

func (e Errors) Get(field string) string {
	return e[field]
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func oneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

// validOptionalURL accepts an empty value or an absolute http(s) URL.
func validOptionalURL(s string) bool {
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// splitIDs breaks a comma or whitespace separated textarea value into
// trimmed, non-empty IDs.
func splitIDs(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\r' || r == '\t'
	})
	ids := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			ids = append(ids, f)
		}
	}
	return ids
}
