package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/MrSingh0729/transs-flow-final/internal/accounts/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/accounts/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/config"
	"github.com/MrSingh0729/transs-flow-final/internal/shared/lark"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials 工号或密码错误
	ErrInvalidCredentials = errors.New("invalid employee id or password")
	// ErrAccountDisabled 账号被停用
	ErrAccountDisabled = errors.New("account is disabled")
	// ErrLarkNotConfigured 应用未配置Lark凭证时请求OAuth登录
	ErrLarkNotConfigured = errors.New("lark login is not configured")
)

// AuthService 认证服务
type AuthService struct {
	employeeRepo *repository.EmployeeRepository
	rdb          *redis.Client
	cfg          *config.Config
	larkClient   *lark.Client
	logger       *zap.Logger
}

// NewAuthService 创建认证服务。larkClient为nil时OAuth登录不可用
func NewAuthService(employeeRepo *repository.EmployeeRepository, rdb *redis.Client, cfg *config.Config, larkClient *lark.Client, logger *zap.Logger) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		rdb:          rdb,
		cfg:          cfg,
		larkClient:   larkClient,
		logger:       logger,
	}
}

// TokenPair Token对
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Login 工号+密码登录
func (s *AuthService) Login(ctx context.Context, employeeID, password string) (*entity.Employee, *TokenPair, error) {
	emp, err := s.employeeRepo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !emp.IsActive {
		return nil, nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now()
	emp.LastLoginAt = &now
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		s.logger.Warn("update last login failed", zap.String("employee_id", employeeID), zap.Error(err))
	}

	tokenPair, err := s.generateTokenPair(ctx, emp)
	if err != nil {
		return nil, nil, fmt.Errorf("generate token: %w", err)
	}

	return emp, tokenPair, nil
}

// generateTokenPair 生成Token对
func (s *AuthService) generateTokenPair(ctx context.Context, emp *entity.Employee) (*TokenPair, error) {
	now := time.Now()
	jti := uuid.New().String()

	// Access Token
	accessClaims := jwt.MapClaims{
		"sub":         emp.ID,
		"uid":         emp.ID,
		"name":        emp.FullName,
		"employee_id": emp.EmployeeID,
		"role":        string(emp.Role),
		"iss":         s.cfg.JWT.Issuer,
		"iat":         now.Unix(),
		"exp":         now.Add(s.cfg.JWT.AccessTokenExpire).Unix(),
		"jti":         jti,
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	// Refresh Token
	refreshJti := uuid.New().String()
	refreshClaims := jwt.MapClaims{
		"sub":  emp.ID,
		"type": "refresh",
		"iss":  s.cfg.JWT.Issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.JWT.RefreshTokenExpire).Unix(),
		"jti":  refreshJti,
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	// 存储Refresh Token到Redis
	if s.rdb != nil {
		s.rdb.Set(ctx, "token:refresh:"+refreshJti, emp.ID, s.cfg.JWT.RefreshTokenExpire)
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.cfg.JWT.AccessTokenExpire.Seconds()),
	}, nil
}

// RefreshToken 刷新Token
func (s *AuthService) RefreshToken(ctx context.Context, refreshTokenString string) (*TokenPair, error) {
	token, err := jwt.Parse(refreshTokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	// 检查Token类型
	if claims["type"] != "refresh" {
		return nil, fmt.Errorf("invalid token type")
	}

	jti, _ := claims["jti"].(string)
	var empID string
	if s.rdb != nil {
		// 检查Redis中是否存在
		empID, err = s.rdb.Get(ctx, "token:refresh:"+jti).Result()
		if err != nil {
			return nil, fmt.Errorf("refresh token expired or invalid")
		}
	} else {
		empID, _ = claims["sub"].(string)
	}

	emp, err := s.employeeRepo.FindByID(ctx, empID)
	if err != nil {
		return nil, fmt.Errorf("employee not found")
	}

	// 删除旧的Refresh Token（轮换）
	if s.rdb != nil {
		s.rdb.Del(ctx, "token:refresh:"+jti)
	}

	return s.generateTokenPair(ctx, emp)
}

// Logout 登出，吊销refresh token
func (s *AuthService) Logout(ctx context.Context, refreshTokenString string) error {
	if s.rdb == nil || refreshTokenString == "" {
		return nil
	}

	token, err := jwt.Parse(refreshTokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if jti, ok := claims["jti"].(string); ok {
			s.rdb.Del(ctx, "token:refresh:"+jti)
		}
	}
	return nil
}

// GetCurrentUser 获取当前用户
func (s *AuthService) GetCurrentUser(ctx context.Context, empID string) (*entity.Employee, error) {
	return s.employeeRepo.FindByID(ctx, empID)
}

// =============================================================================
// Lark OAuth登录
// =============================================================================

// GetLarkLoginURL 获取Lark登录跳转URL
func (s *AuthService) GetLarkLoginURL(state string) string {
	params := url.Values{}
	params.Set("app_id", s.cfg.Lark.AppID)
	params.Set("redirect_uri", s.cfg.Lark.RedirectURI)
	params.Set("response_type", "code")
	params.Set("state", state)

	return fmt.Sprintf("%s/open-apis/authen/v1/authorize?%s", s.cfg.Lark.BaseURL, params.Encode())
}

// HandleLarkCallback 处理Lark OAuth回调
// 用code换取用户信息，按open_id关联已有员工账号；未绑定的open_id
// 不允许登录（员工账号必须由管理员先建立）
func (s *AuthService) HandleLarkCallback(ctx context.Context, code string) (*entity.Employee, *TokenPair, error) {
	if s.larkClient == nil {
		return nil, nil, ErrLarkNotConfigured
	}

	tok, err := s.larkClient.ExchangeOAuthCode(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("lark code exchange: %w", err)
	}
	userInfo, err := s.larkClient.GetOAuthUserInfo(ctx, tok.Data.AccessToken)
	if err != nil {
		return nil, nil, fmt.Errorf("lark user info: %w", err)
	}

	emp, err := s.employeeRepo.FindByLarkOpenID(ctx, userInfo.Data.OpenID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, fmt.Errorf("lark account not linked to any employee")
		}
		return nil, nil, err
	}

	if !emp.IsActive {
		return nil, nil, ErrAccountDisabled
	}

	now := time.Now()
	emp.LastLoginAt = &now
	if userInfo.Data.AvatarURL != "" {
		emp.AvatarURL = userInfo.Data.AvatarURL
	}
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		s.logger.Warn("update employee after lark login failed", zap.Error(err))
	}

	tokenPair, err := s.generateTokenPair(ctx, emp)
	if err != nil {
		return nil, nil, fmt.Errorf("generate token: %w", err)
	}

	return emp, tokenPair, nil
}
