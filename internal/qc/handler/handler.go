package handler

import (
	"errors"
	"strconv"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/service"
	"github.com/gin-gonic/gin"
)

// Handlers qc处理器集合
type Handlers struct {
	WorkInfo    *WorkInfoHandler
	Checklist   *ChecklistHandler
	FAI         *FAIHandler
	DynamicForm *DynamicFormHandler
	Upload      *UploadHandler
	Export      *ExportHandler
	Webhook     *WebhookHandler
}

// Response 通用响应结构，与accounts包保持一致
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse 列表响应结构
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// Pagination 分页信息
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessMaybeSynced 本地更新成功后的响应，同步失败时消息携带警告
func SuccessMaybeSynced(c *gin.Context, data interface{}, err error) {
	if err != nil && errors.Is(err, service.ErrSyncFailed) {
		c.JSON(200, Response{
			Code:    0,
			Message: "saved, " + err.Error(),
			Data:    data,
		})
		return
	}
	Success(c, data)
}

// CreatedMaybeSynced 本地保存成功后的响应
// 远端同步失败时仍返回201，消息中携带警告，本地写入是权威记录
func CreatedMaybeSynced(c *gin.Context, data interface{}, err error) {
	if err != nil && errors.Is(err, service.ErrSyncFailed) {
		c.JSON(201, Response{
			Code:    0,
			Message: "saved, " + err.Error(),
			Data:    data,
		})
		return
	}
	Created(c, data)
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// InternalError 服务器错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// GetUserID 从上下文获取用户ID
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

// GetPagination 从请求获取分页参数
func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}

	return page, pageSize
}

// listMeta 根据总数计算分页元信息
func listMeta(page, pageSize int, total int64) *Pagination {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      int(total),
		TotalPages: totalPages,
	}
}

// checklistFilters 从查询参数提取清单通用过滤条件
func checklistFilters(c *gin.Context) map[string]interface{} {
	filters := map[string]interface{}{}
	for _, key := range []string{"emp_id", "shift", "section", "line", "model", "date", "date_from", "date_to"} {
		if v := c.Query(key); v != "" {
			filters[key] = v
		}
	}
	return filters
}
