package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"airport-ops-service/pkg/logger"
)

func tokenServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")

		switch r.Form.Get("grant_type") {
		case "refresh_token":
			assert.Equal(t, "refresh-123", r.Form.Get("refresh_token"))
		case "authorization_code":
			assert.Equal(t, "code-abc", r.Form.Get("code"))
		default:
			http.Error(w, "unsupported grant", http.StatusBadRequest)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  "access-xyz",
			"refresh_token": "refresh-123",
			"token_type":    "Bearer",
			"expires_in":    3600,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGoogleOAuth(t *testing.T) {
	t.Run("Auth URL requests offline access for the Gemini scope", func(t *testing.T) {
		o := NewGoogleOAuth("client", "secret", "", "http://localhost:8090/oauth2callback", logger.NewNopLogger())

		authURL, err := url.Parse(o.GenerateAuthURL("state-1"))
		require.NoError(t, err)

		q := authURL.Query()
		assert.Equal(t, "offline", q.Get("access_type"))
		assert.Equal(t, "state-1", q.Get("state"))
		assert.Contains(t, q.Get("scope"), GenerativeLanguageScope)
		assert.Equal(t, "http://localhost:8090/oauth2callback", q.Get("redirect_uri"))
	})

	t.Run("Token source refreshes from the refresh token", func(t *testing.T) {
		srv := tokenServer(t)
		o := NewGoogleOAuth("client", "secret", "refresh-123", "", logger.NewNopLogger())
		o.config.Endpoint = oauth2.Endpoint{TokenURL: srv.URL, AuthStyle: oauth2.AuthStyleInParams}

		token, err := o.GetTokenSource(context.Background()).Token()
		require.NoError(t, err)
		assert.Equal(t, "access-xyz", token.AccessToken)
	})

	t.Run("Exchange code", func(t *testing.T) {
		srv := tokenServer(t)
		o := NewGoogleOAuth("client", "secret", "", "", logger.NewNopLogger())
		o.config.Endpoint = oauth2.Endpoint{TokenURL: srv.URL, AuthStyle: oauth2.AuthStyleInParams}

		token, err := o.ExchangeCode(context.Background(), "code-abc")
		require.NoError(t, err)
		assert.Equal(t, "refresh-123", token.RefreshToken)
	})
}
