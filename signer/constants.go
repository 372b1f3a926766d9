package signer

// LOG signature scheme constants.

const (
	// SigningScheme prefixes the Authorization header value.
	// Format: LOG <AccessKeyID>:<Signature>
	SigningScheme = "LOG"

	// SignatureMethod is sent in the x-log-signaturemethod header.
	SignatureMethod = "hmac-sha1"

	// APIVersion is sent in the x-log-apiversion header.
	APIVersion = "0.6.0"

	// AuthorizationHeader is the HTTP header name for authorization.
	AuthorizationHeader = "Authorization"

	// DateHeader carries the request timestamp that is part of the signature.
	DateHeader = "Date"

	// ContentTypeHeader is signed only when the request has a body.
	ContentTypeHeader = "Content-Type"

	// ContentMD5Header may be sent alongside a body.
	ContentMD5Header = "Content-MD5"

	// APIVersionHeader is the header key for the API version.
	APIVersionHeader = "x-log-apiversion"

	// SignatureMethodHeader is the header key for the signature method.
	SignatureMethodHeader = "x-log-signaturemethod"

	// LogHeaderPrefix and AcsHeaderPrefix select the headers that are
	// canonicalized into the string to sign.
	LogHeaderPrefix = "x-log"
	AcsHeaderPrefix = "x-acs"
)
