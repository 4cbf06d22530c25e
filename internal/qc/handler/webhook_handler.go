package handler

import (
	"io"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/service"
	"github.com/MrSingh0729/transs-flow-final/internal/shared/lark"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler Lark事件回调处理器
// 处理URL验证和自动化流程回传的QE确认事件。除URL验证外一律
// 返回{"code":0}，避免Lark因非200重试轰炸
type WebhookHandler struct {
	faiSvc *service.FAIService
	logger *zap.Logger
}

func NewWebhookHandler(faiSvc *service.FAIService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{faiSvc: faiSvc, logger: logger}
}

// Handle Lark webhook入口
// POST /api/v1/webhooks/lark
func (h *WebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Warn("读取webhook请求体失败", zap.Error(err))
		c.JSON(200, gin.H{"code": 0})
		return
	}

	// URL验证事件需要原样返回challenge
	if lark.IsVerificationEvent(body) {
		challenge, err := lark.HandleVerification(body)
		if err != nil {
			h.logger.Warn("URL验证事件解析失败", zap.Error(err))
			c.JSON(200, gin.H{"code": 0})
			return
		}
		c.JSON(200, gin.H{"challenge": challenge})
		return
	}

	eventType := lark.GetEventType(body)
	switch eventType {
	case lark.EventTypeQEConfirm:
		h.handleQEConfirm(c, body)
	default:
		h.logger.Debug("忽略未订阅的webhook事件", zap.String("event_type", eventType))
	}

	c.JSON(200, gin.H{"code": 0})
}

func (h *WebhookHandler) handleQEConfirm(c *gin.Context, body []byte) {
	event, err := lark.HandleQEConfirmEvent(body)
	if err != nil {
		h.logger.Warn("QE确认事件解析失败", zap.Error(err))
		return
	}

	_, err = h.faiSvc.QEConfirmByCorrelation(c.Request.Context(),
		event.EmpID, event.Model, event.Date, event.QEConfirmName, event.Status)
	if err != nil {
		h.logger.Warn("QE确认事件处理失败",
			zap.String("emp_id", event.EmpID),
			zap.String("model", event.Model),
			zap.Error(err))
	}
}
