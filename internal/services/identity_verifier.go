package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"

	"wanderlog/internal/config"
	"wanderlog/pkg/utils"
)

const identityServiceName = "google identity"

// IdentityClaims is what a verified Google ID token says about its holder.
type IdentityClaims struct {
	Subject    string `json:"sub"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*IdentityClaims, error)
}

// NewIdentityVerifier validates tokens locally when a client id is
// configured and asks Google's tokeninfo endpoint otherwise.
func NewIdentityVerifier(cfg *config.Config, client *http.Client, logger *zap.Logger) (IdentityVerifier, error) {
	if cfg.Identity.ClientID != "" {
		return NewIDTokenVerifier(context.Background(), cfg.Identity.ClientID, client)
	}
	return NewTokenInfoVerifier(cfg.Identity.TokenInfoURL, client, logger), nil
}

type tokenInfoVerifier struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

func NewTokenInfoVerifier(endpoint string, client *http.Client, logger *zap.Logger) IdentityVerifier {
	return &tokenInfoVerifier{endpoint: endpoint, client: client, logger: logger.Named("identity")}
}

func (v *tokenInfoVerifier) Verify(ctx context.Context, idToken string) (*IdentityClaims, error) {
	q := url.Values{}
	q.Set("id_token", idToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Error("tokeninfo request failed", zap.Error(err))
		return nil, &utils.UpstreamError{Service: identityServiceName, Err: err}
	}
	defer resp.Body.Close()

	body, err := readUpstreamBody(resp.Body)
	if err != nil {
		return nil, &utils.UpstreamError{Service: identityServiceName, StatusCode: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// tokeninfo answers 400 for expired, malformed or forged tokens
		return nil, utils.ErrInvalidIdentityToken
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &utils.UpstreamError{
			Service:    identityServiceName,
			StatusCode: resp.StatusCode,
			Details:    decodeDetails(body),
			Err:        fmt.Errorf("unexpected response status"),
		}
	}

	var claims IdentityClaims
	if err := json.Unmarshal(body, &claims); err != nil {
		return nil, &utils.UpstreamError{Service: identityServiceName, Details: string(body), Err: fmt.Errorf("decode tokeninfo: %w", err)}
	}
	return &claims, nil
}

type idTokenVerifier struct {
	validator *idtoken.Validator
	audience  string
}

func NewIDTokenVerifier(ctx context.Context, audience string, client *http.Client) (IdentityVerifier, error) {
	v, err := idtoken.NewValidator(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("create id token validator: %w", err)
	}
	return &idTokenVerifier{validator: v, audience: audience}, nil
}

func (v *idTokenVerifier) Verify(ctx context.Context, idToken string) (*IdentityClaims, error) {
	payload, err := v.validator.Validate(ctx, idToken, v.audience)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidIdentityToken, err)
	}

	return &IdentityClaims{
		Subject:    payload.Subject,
		Email:      claimString(payload.Claims, "email"),
		Name:       claimString(payload.Claims, "name"),
		GivenName:  claimString(payload.Claims, "given_name"),
		FamilyName: claimString(payload.Claims, "family_name"),
		Picture:    claimString(payload.Claims, "picture"),
	}, nil
}

func claimString(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}
