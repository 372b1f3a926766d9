package signer

import "fmt"

// Config holds the credentials used for LOG signing.
type Config struct {
	// AccessKeyID is sent in clear inside the Authorization header.
	AccessKeyID string

	// AccessKeySecret is the HMAC key. It is never transmitted.
	AccessKeySecret string
}

// Validate checks that all required fields are set.
func (c Config) Validate() error {
	if c.AccessKeyID == "" {
		return fmt.Errorf("access key ID is required")
	}
	if c.AccessKeySecret == "" {
		return fmt.Errorf("access key secret is required")
	}
	return nil
}
