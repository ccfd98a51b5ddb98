package token

import (
	"encoding/base64"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tok := Encode(42, "ada@example.com")
	if tok == "" {
		t.Fatal("Encode() returned empty token")
	}

	id, email, ok := Decode(tok)
	if !ok {
		t.Fatalf("Decode(%q) not ok", tok)
	}
	if id != 42 {
		t.Errorf("Decode() id = %d, want 42", id)
	}
	if email != "ada@example.com" {
		t.Errorf("Decode() email = %q, want %q", email, "ada@example.com")
	}
}

func TestEncodeDecodeColonEmail(t *testing.T) {
	// Quoted local parts may legally contain colons; a freshly issued
	// token for such an address must still decode.
	const email = `"a:b"@example.com`

	id, got, ok := Decode(Encode(7, email))
	if !ok {
		t.Fatalf("Decode() not ok for colon-bearing email %q", email)
	}
	if id != 7 {
		t.Errorf("Decode() id = %d, want 7", id)
	}
	if got != email {
		t.Errorf("Decode() email = %q, want %q", got, email)
	}
}

func TestDecodeMalformed(t *testing.T) {
	valid := Encode(7, "demo@example.com")

	cases := map[string]string{
		"empty":              "",
		"not base64":         "!!!not-base64!!!",
		"truncated":          valid[:8], // still base64, but the email and timestamp segments are gone
		"no separators":      base64.StdEncoding.EncodeToString([]byte("justonechunk")),
		"single separator":   base64.StdEncoding.EncodeToString([]byte("7:demo@example.com")),
		"non-integer id":     base64.StdEncoding.EncodeToString([]byte("abc:a@b.c:123")),
		"empty email":        base64.StdEncoding.EncodeToString([]byte("7::123")),
		"plain random bytes": base64.StdEncoding.EncodeToString([]byte{0x00, 0xff, 0x10}),
	}

	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			id, email, ok := Decode(tok)
			if ok {
				t.Errorf("Decode(%q) ok = true (id=%d email=%q), want false", tok, id, email)
			}
		})
	}
}

func TestTokenIsInspectable(t *testing.T) {
	// The token is deliberately unsigned: anyone can decode it. Make sure
	// the claims are recoverable without any key material.
	tok := Encode(1, "demo@example.com")
	raw, err := base64.StdEncoding.DecodeString(tok)
	if err != nil {
		t.Fatalf("token is not plain base64: %v", err)
	}
	if got := string(raw[:2]); got != "1:" {
		t.Errorf("decoded token starts with %q, want %q", got, "1:")
	}
}
