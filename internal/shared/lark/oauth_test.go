package lark

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExchangeOAuthCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/open-apis/authen/v1/access_token" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body["code"] != "auth-code-1" || body["grant_type"] != "authorization_code" {
			t.Errorf("unexpected request body: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 0,
			"msg":  "success",
			"data": map[string]interface{}{
				"access_token": "u-token-abc",
				"expires_in":   7200,
			},
		})
	}))
	defer srv.Close()

	c := NewClient("app-id", "app-secret", srv.URL)
	tok, err := c.ExchangeOAuthCode(context.Background(), "auth-code-1")
	if err != nil {
		t.Fatalf("ExchangeOAuthCode: %v", err)
	}
	if tok.Data.AccessToken != "u-token-abc" {
		t.Errorf("access token = %q", tok.Data.AccessToken)
	}
}

func TestExchangeOAuthCodeRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"code": 20005, "msg": "invalid code"})
	}))
	defer srv.Close()

	c := NewClient("app-id", "app-secret", srv.URL)
	_, err := c.ExchangeOAuthCode(context.Background(), "bad-code")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Code != 20005 {
		t.Errorf("code = %d, want 20005", apiErr.Code)
	}
}

func TestGetOAuthUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/open-apis/authen/v1/user_info" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer u-token-abc" {
			t.Errorf("authorization = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 0,
			"msg":  "success",
			"data": map[string]interface{}{
				"name":       "张三",
				"open_id":    "ou_123",
				"avatar_url": "https://example.com/avatar.png",
			},
		})
	}))
	defer srv.Close()

	c := NewClient("app-id", "app-secret", srv.URL)
	info, err := c.GetOAuthUserInfo(context.Background(), "u-token-abc")
	if err != nil {
		t.Fatalf("GetOAuthUserInfo: %v", err)
	}
	if info.Data.OpenID != "ou_123" || info.Data.Name != "张三" {
		t.Errorf("unexpected user info: %+v", info.Data)
	}
}
