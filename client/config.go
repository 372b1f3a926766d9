package client

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultTimeout bounds one round trip when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Config holds the endpoint and credentials of a Client.
// It is validated once by New and never mutated afterwards.
type Config struct {
	// Endpoint is the region endpoint, e.g. "cn-hangzhou.log.aliyuncs.com".
	// Endpoints containing "intranet" are reached over plain HTTP.
	Endpoint string `koanf:"endpoint" validate:"required"`

	// AccessKeyID is sent in clear in the Authorization header.
	AccessKeyID string `koanf:"access_key_id" validate:"required"`

	// AccessKeySecret signs requests and is never transmitted.
	AccessKeySecret string `koanf:"access_key_secret" validate:"required"`

	// Project is prepended to the endpoint as a subdomain.
	Project string `koanf:"project"`

	// Timeout of one HTTP round trip; DefaultTimeout when zero.
	Timeout time.Duration `koanf:"timeout" validate:"gte=0"`
}

var validate = validator.New()

// Validate checks that all required fields are set.
// The returned error matches ErrInvalidConfig.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s must not be empty", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// BaseURL returns the scheme and host requests are sent to.
//
//	cn-hangzhou.log.aliyuncs.com + myproj          -> https://myproj.cn-hangzhou.log.aliyuncs.com
//	cn-hangzhou-intranet.log.aliyuncs.com + myproj -> http://myproj.cn-hangzhou-intranet.log.aliyuncs.com
func (c Config) BaseURL() string {
	host := strings.TrimSuffix(c.Endpoint, "/")
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")

	scheme := "https://"
	if strings.Contains(host, "intranet") {
		scheme = "http://"
	}
	if c.Project != "" {
		host = c.Project + "." + host
	}
	return scheme + host
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}
