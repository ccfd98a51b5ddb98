// Package validate holds the pure input validators shared by all handlers.
// Every function trims and normalizes its inputs and reports failures as
// validation errors; none of them touch storage or any other state.
package validate

import (
	"math"
	"strconv"
	"strings"

	"github.com/demo-blog/api/internal/apperr"
)

// Post checks a post payload. Both fields must be non-empty after trimming.
// No length limits and no sanitization; content is stored as-is.
func Post(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return "", "", apperr.Validation("title and content are required")
	}
	return title, content, nil
}

// Signup checks a signup payload. All fields must be non-empty after
// trimming; the email is lowercased so it acts as a case-insensitive key.
func Signup(name, email, password string) (string, string, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)
	if name == "" || email == "" || password == "" {
		return "", "", "", apperr.Validation("name, email and password are required")
	}
	return name, email, password, nil
}

// Login checks a login payload, normalizing the email the same way Signup does.
func Login(email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", "", apperr.Validation("email and password are required")
	}
	return email, password, nil
}

// Sum coerces two JSON values to finite numbers. Numbers pass through;
// numeric strings are parsed; everything else fails.
func Sum(a, b any) (float64, float64, error) {
	x, err := toNumber(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := toNumber(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func toNumber(v any) (float64, error) {
	var n float64
	switch val := v.(type) {
	case float64:
		n = val
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, apperr.Validation("a and b must be numbers")
		}
		n = parsed
	default:
		return 0, apperr.Validation("a and b must be numbers")
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, apperr.Validation("a and b must be finite numbers")
	}
	return n, nil
}
