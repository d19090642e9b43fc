// Package oauth drives the Google authorization-code flow and turns
// the userinfo response into a federated profile for reconciliation.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/fit4ever/fit4ever-server/internal/model"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v3/userinfo"

// GoogleProvider exchanges authorization codes with Google and fetches
// the user's profile.
type GoogleProvider struct {
	config      *oauth2.Config
	userinfoURL string
}

// NewGoogleProvider builds the provider from the client registration.
func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userinfoURL: userinfoEndpoint,
	}
}

// AuthCodeURL returns the Google consent URL for the given state.
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// googleUserinfo is the OpenID Connect userinfo payload.
type googleUserinfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Exchange swaps the authorization code for a token and fetches the
// profile it grants access to.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (model.FederatedProfile, error) {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return model.FederatedProfile{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	client := p.config.Client(ctx, tok)
	resp, err := client.Get(p.userinfoURL)
	if err != nil {
		return model.FederatedProfile{}, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.FederatedProfile{}, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var info googleUserinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return model.FederatedProfile{}, fmt.Errorf("failed to decode userinfo: %w", err)
	}

	return model.FederatedProfile{
		Provider:      model.ProviderGoogle,
		ProviderID:    info.Sub,
		Email:         info.Email,
		Name:          info.Name,
		ImageURL:      info.Picture,
		EmailVerified: info.EmailVerified,
	}, nil
}
