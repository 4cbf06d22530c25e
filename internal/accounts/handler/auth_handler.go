package handler

import (
	"errors"

	"github.com/MrSingh0729/transs-flow-final/internal/accounts/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// LoginRequest 登录请求
type LoginRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// Login 工号+密码登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	emp, tokenPair, err := h.svc.Login(c.Request.Context(), req.EmployeeID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrAccountDisabled) {
			Unauthorized(c, err.Error())
			return
		}
		InternalError(c, "登录失败: "+err.Error())
		return
	}

	Success(c, gin.H{
		"employee": emp,
		"token":    tokenPair,
	})
}

// RefreshRequest 刷新Token请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh 刷新Token
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	tokenPair, err := h.svc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		Unauthorized(c, "刷新Token失败: "+err.Error())
		return
	}

	Success(c, tokenPair)
}

// Logout 登出
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = c.ShouldBindJSON(&req)

	_ = h.svc.Logout(c.Request.Context(), req.RefreshToken)
	Success(c, gin.H{"message": "logged out"})
}

// Me 当前用户信息
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	empID := GetUserID(c)
	if empID == "" {
		Unauthorized(c, "未登录")
		return
	}

	emp, err := h.svc.GetCurrentUser(c.Request.Context(), empID)
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	Success(c, emp)
}

// LarkLogin 跳转Lark OAuth登录
// GET /api/v1/auth/lark/login
func (h *AuthHandler) LarkLogin(c *gin.Context) {
	state := c.Query("state")
	c.Redirect(302, h.svc.GetLarkLoginURL(state))
}

// LarkCallback Lark OAuth回调
// GET /api/v1/auth/lark/callback
func (h *AuthHandler) LarkCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		BadRequest(c, "缺少code参数")
		return
	}

	emp, tokenPair, err := h.svc.HandleLarkCallback(c.Request.Context(), code)
	if err != nil {
		Unauthorized(c, "Lark登录失败: "+err.Error())
		return
	}

	Success(c, gin.H{
		"employee": emp,
		"token":    tokenPair,
	})
}
