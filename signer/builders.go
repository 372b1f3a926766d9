package signer

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// BuildCanonicalHeaders builds the canonicalized header block.
// Headers accepted by rule are lower-cased, sorted by name and rendered as
// "name:value" lines joined with "\n". The result is empty when no header
// matches.
func BuildCanonicalHeaders(rule Rule, headers map[string]string) (string, error) {
	signed := make(map[string]string)
	names := make([]string, 0, len(headers))

	for k, v := range headers {
		if !rule.IsValid(k) {
			continue
		}
		lowerKey := strings.ToLower(k)
		if _, ok := signed[lowerKey]; ok {
			return "", fmt.Errorf("%w: %q", ErrDuplicateHeader, lowerKey)
		}
		signed[lowerKey] = v
		names = append(names, lowerKey)
	}
	sort.Strings(names)

	var canonicalHeaders strings.Builder
	for i, name := range names {
		if i > 0 {
			canonicalHeaders.WriteByte('\n')
		}
		canonicalHeaders.WriteString(name)
		canonicalHeaders.WriteByte(':')
		canonicalHeaders.WriteString(signed[name])
	}
	return canonicalHeaders.String(), nil
}

// BuildCanonicalQuery renders query as "name=value" pairs sorted by name and
// joined with "&". Values are not URL-encoded.
func BuildCanonicalQuery(query map[string]string) string {
	names := make([]string, 0, len(query))
	for k := range query {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(query[name])
	}
	return b.String()
}

// BuildCanonicalResource builds the canonicalized resource.
// Format: PATH[?CANONICAL_QUERY]
func BuildCanonicalResource(path string, query map[string]string) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + BuildCanonicalQuery(query)
}

// BuildStringToSign builds the string to sign.
// Format: VERB\nCONTENT-MD5\nCONTENT-TYPE\nDATE\nCANONICAL_HEADERS\nCANONICAL_RESOURCE
func BuildStringToSign(method, contentMD5, contentType, date, canonicalHeaders, canonicalResource string) string {
	return strings.Join([]string{
		method,
		contentMD5,
		contentType,
		date,
		canonicalHeaders,
		canonicalResource,
	}, "\n")
}

// ContentMD5 returns the uppercase hex MD5 digest of body.
func ContentMD5(body []byte) string {
	sum := md5.Sum(body)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// HMACSHA1 computes HMAC-SHA1 of data with the given key.
func HMACSHA1(key, data []byte) []byte {
	h := hmac.New(sha1.New, key)
	h.Write(data)
	return h.Sum(nil)
}

// BuildSignature computes the base64-encoded HMAC-SHA1 of stringToSign.
func BuildSignature(secret []byte, stringToSign string) string {
	return base64.StdEncoding.EncodeToString(HMACSHA1(secret, []byte(stringToSign)))
}

// BuildAuthorizationHeader builds the Authorization header value.
// Format: LOG ACCESS_KEY_ID:SIGNATURE
func BuildAuthorizationHeader(accessKeyID, signature string) string {
	var parts strings.Builder
	parts.Grow(len(SigningScheme) + 1 + len(accessKeyID) + 1 + len(signature))
	parts.WriteString(SigningScheme)
	parts.WriteByte(' ')
	parts.WriteString(accessKeyID)
	parts.WriteByte(':')
	parts.WriteString(signature)
	return parts.String()
}
