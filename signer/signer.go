package signer

import (
	"fmt"
	"net/http"
)

// Signer applies LOG (HMAC-SHA1) signing to requests.
// A Signer holds only immutable credentials and is safe for concurrent use.
type Signer struct {
	config Config
}

// NewSigner creates a new Signer with the given config.
func NewSigner(config Config) (*Signer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Signer{config: config}, nil
}

// AccessKeyID returns the public key identifier used in Authorization.
func (s *Signer) AccessKeyID() string {
	return s.config.AccessKeyID
}

// Sign returns the signature of req under the configured secret.
func (s *Signer) Sign(req SignableRequest) (string, error) {
	return Sign(req, s.config.AccessKeySecret)
}

// Authorization returns the full Authorization header value for req.
func (s *Signer) Authorization(req SignableRequest) (string, error) {
	signature, err := s.Sign(req)
	if err != nil {
		return "", err
	}
	return BuildAuthorizationHeader(s.config.AccessKeyID, signature), nil
}

// SignHTTP signs an assembled HTTP request.
// The request is modified in place with the Authorization header.
// Date and the x-log-* headers must be set beforehand.
func (s *Signer) SignHTTP(req *http.Request) error {
	signable, err := FromHTTPRequest(req)
	if err != nil {
		return err
	}
	auth, err := s.Authorization(signable)
	if err != nil {
		return err
	}
	req.Header.Set(AuthorizationHeader, auth)
	return nil
}

// Sign computes the LOG signature of req with secret: the base64-encoded
// HMAC-SHA1 of the string to sign.
func Sign(req SignableRequest, secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	strToSign, err := StringToSign(req)
	if err != nil {
		return "", err
	}
	return BuildSignature([]byte(secret), strToSign), nil
}

// StringToSign builds the canonical string that Sign authenticates.
func StringToSign(req SignableRequest) (string, error) {
	date, ok := lookupHeader(req.Headers, DateHeader)
	if !ok || date == "" {
		return "", ErrMissingDate
	}

	var contentMD5, contentType string
	if len(req.Body) > 0 {
		contentMD5 = ContentMD5(req.Body)
		contentType, ok = lookupHeader(req.Headers, ContentTypeHeader)
		if !ok || contentType == "" {
			return "", ErrMissingContentType
		}
	}

	canonicalHeaders, err := BuildCanonicalHeaders(SignedHeaders, req.Headers)
	if err != nil {
		return "", err
	}

	return BuildStringToSign(
		req.Method,
		contentMD5,
		contentType,
		date,
		canonicalHeaders,
		BuildCanonicalResource(req.Path, req.Query),
	), nil
}
