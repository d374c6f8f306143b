// Package googleid validates Google-issued ID tokens presented by the mobile
// client. A token is trusted only after its signature verifies against
// Google's published keys and its audience matches this application's OAuth
// client ID.
package googleid

import (
	"context"

	"github.com/puptrack/puptrack/internal/common"
	"google.golang.org/api/idtoken"
)

// validateIDToken is a seam for testing idtoken.Validate.
var validateIDToken = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
	return idtoken.Validate(ctx, token, audience)
}

// Verifier checks Google ID tokens against a fixed audience (the app's
// registered OAuth client ID).
type Verifier struct {
	clientID string
}

func NewVerifier(clientID string) *Verifier {
	return &Verifier{clientID: clientID}
}

// Verify validates rawToken and returns the verified email claim.
//
// Every validation failure (bad signature, wrong audience, expired) collapses
// into common.ErrIdentityTokenInvalid so the reason is not distinguishable by
// clients. A valid token without an email claim yields
// common.ErrIdentityTokenIncomplete.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (string, error) {
	payload, err := validateIDToken(ctx, rawToken, v.clientID)
	if err != nil {
		if ctx.Err() != nil {
			return "", common.ErrTimeout
		}
		return "", common.ErrIdentityTokenInvalid
	}

	email, ok := payload.Claims["email"].(string)
	if !ok || email == "" {
		return "", common.ErrIdentityTokenIncomplete
	}

	return email, nil
}
