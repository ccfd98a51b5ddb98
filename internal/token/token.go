// Package token implements the opaque identity token: base64 over
// "id:email:issuedAtMillis". It is reversible without any key and carries no
// signature or expiry — demo-grade by contract, not a security boundary.
// Callers must re-check the decoded identity against storage.
package token

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Encode derives a token from a user identity. The issuance timestamp makes
// consecutive tokens distinct but carries no meaning on decode.
func Encode(id int64, email string) string {
	raw := fmt.Sprintf("%d:%s:%d", id, email, time.Now().UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Decode parses a token back into its identity claims. It never panics;
// malformed base64, missing segments, a non-integer id or an empty email
// all yield ok == false. The id ends at the first colon and the timestamp
// starts at the last one, so emails containing colons round-trip intact.
func Decode(s string) (id int64, email string, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return 0, "", false
	}

	payload := string(raw)
	first := strings.Index(payload, ":")
	last := strings.LastIndex(payload, ":")
	if first < 0 || first == last {
		return 0, "", false
	}

	id, err = strconv.ParseInt(payload[:first], 10, 64)
	if err != nil {
		return 0, "", false
	}

	email = payload[first+1 : last]
	if email == "" {
		return 0, "", false
	}

	return id, email, true
}
