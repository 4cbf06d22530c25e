package lark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// =============================================================================
// OAuth — 用户授权码登录
// 授权码换token、用户token取用户信息。两个接口都不走tenant_access_token，
// 不复用doRequest
// =============================================================================

// ExchangeOAuthCode 用授权码换取用户access_token
func (c *Client) ExchangeOAuthCode(ctx context.Context, code string) (*OAuthTokenResponse, error) {
	reqBody, _ := json.Marshal(map[string]string{
		"grant_type": "authorization_code",
		"code":       code,
	})

	req, err := http.NewRequestWithContext(ctx, "POST",
		c.baseURL+"/open-apis/authen/v1/access_token",
		bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("创建OAuth请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求Lark OAuth失败: %w", err)
	}
	defer resp.Body.Close()

	var result OAuthTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("解析OAuth响应失败: %w", err)
	}
	if result.Code != 0 {
		return nil, &APIError{Code: result.Code, Msg: result.Msg, Path: "/open-apis/authen/v1/access_token"}
	}
	return &result, nil
}

// GetOAuthUserInfo 用用户access_token获取用户信息
func (c *Client) GetOAuthUserInfo(ctx context.Context, userAccessToken string) (*UserInfoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET",
		c.baseURL+"/open-apis/authen/v1/user_info", nil)
	if err != nil {
		return nil, fmt.Errorf("创建用户信息请求失败: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+userAccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求Lark用户信息失败: %w", err)
	}
	defer resp.Body.Close()

	var result UserInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("解析用户信息响应失败: %w", err)
	}
	if result.Code != 0 {
		return nil, &APIError{Code: result.Code, Msg: result.Msg, Path: "/open-apis/authen/v1/user_info"}
	}
	return &result, nil
}
