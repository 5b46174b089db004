package credential

import (
	"net/url"
	"strings"
)

// ParseCookies splits a Cookie header into name/value pairs. Names are
// trimmed, values are percent-decoded (left as-is when malformed). An empty
// header yields an empty map.
func ParseCookies(header string) map[string]string {
	cookies := make(map[string]string)
	if header == "" {
		return cookies
	}
	for _, part := range strings.Split(header, ";") {
		name, value, _ := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if decoded, err := url.PathUnescape(value); err == nil {
			value = decoded
		}
		cookies[name] = value
	}
	return cookies
}
