// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	errValueEmpty      = errors.New("value must not be empty")
	errValueNotAString = errors.New("value must be a string")
	errValueBadAppName = errors.New("value must start with a letter and contain only letters, numbers, hyphens, and underscores")
)

// appNameExp matches agent app names. The name becomes a URL path segment on
// the agent server, so it has to stay a plain identifier.
var appNameExp = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

func validateAppName(val interface{}) error {
	name, ok := val.(string)
	if !ok {
		return errValueNotAString
	}
	if name == "" {
		return errValueEmpty
	}
	if !appNameExp.MatchString(name) {
		return fmt.Errorf("app name %v is invalid: %w", val, errValueBadAppName)
	}
	return nil
}

func validateBaseURL(val interface{}) error {
	raw, ok := val.(string)
	if !ok {
		return errValueNotAString
	}
	if raw == "" {
		return errValueEmpty
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("URL %v is invalid: %w", val, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %v must start with http:// or https://", val)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %v must include a host", val)
	}
	return nil
}

func validateDiscordToken(val interface{}) error {
	token, ok := val.(string)
	if !ok {
		return errValueNotAString
	}
	if strings.TrimSpace(token) == "" {
		return errValueEmpty
	}
	return nil
}

// validateSecretRef checks that ref follows the SECRET_NAME:VERSION format
// that `gcloud run deploy --set-secrets` expects for the variable env.
func validateSecretRef(env, ref string) error {
	name, version, found := strings.Cut(ref, ":")
	if !found || name == "" || version == "" {
		return &errSecretMalformed{env: env, ref: ref}
	}
	return nil
}
