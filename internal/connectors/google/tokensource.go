package google

import (
	"fmt"

	"golang.org/x/oauth2"

	"github.com/arkivio/docload/internal/core/domain"
)

// StaticTokenSource builds an oauth2.TokenSource from a pre-validated
// credential mapping (an OAuth token set, typically deserialised from
// the credential store). The connector never refreshes tokens itself;
// an expired token fails the individual API call instead.
//
// Recognised keys: "token" (the authorised-user JSON key) and
// "access_token" (the raw OAuth response key).
func StaticTokenSource(creds map[string]any) (oauth2.TokenSource, error) {
	accessToken, _ := creds["token"].(string)
	if accessToken == "" {
		accessToken, _ = creds["access_token"].(string)
	}
	if accessToken == "" {
		return nil, fmt.Errorf("%w: credential mapping has no access token", domain.ErrAuthRequired)
	}

	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}), nil
}
