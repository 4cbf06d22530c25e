package larksync

import (
	"errors"
	"fmt"

	"github.com/MrSingh0729/transs-flow-final/internal/shared/lark"
)

// =============================================================================
// 同步错误分类
// 同步失败永远不会中断本地保存，错误仅用于记录日志和排查
// =============================================================================

// ErrorKind 同步错误类别
type ErrorKind int

const (
	// KindAuthFailed 无法获取访问令牌
	KindAuthFailed ErrorKind = iota + 1
	// KindTransportError 网络或HTTP层失败
	KindTransportError
	// KindRemoteRejected 请求到达远端但被拒绝（业务错误码非0）
	KindRemoteRejected
	// KindCorrelationNotFound 更新时在远端表中找不到对应记录
	KindCorrelationNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuthFailed:
		return "auth_failed"
	case KindTransportError:
		return "transport_error"
	case KindRemoteRejected:
		return "remote_rejected"
	case KindCorrelationNotFound:
		return "correlation_not_found"
	default:
		return "unknown"
	}
}

// SyncError 带类别的同步错误
type SyncError struct {
	Kind ErrorKind
	Op   string // 同步操作名，如 btb_fitment / testing_fai_update
	Err  error
}

func (e *SyncError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sync %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("sync %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// classify 将底层错误归类为SyncError
func classify(op string, err error) *SyncError {
	if errors.Is(err, lark.ErrTokenUnavailable) {
		return &SyncError{Kind: KindAuthFailed, Op: op, Err: err}
	}
	var apiErr *lark.APIError
	if errors.As(err, &apiErr) {
		return &SyncError{Kind: KindRemoteRejected, Op: op, Err: err}
	}
	return &SyncError{Kind: KindTransportError, Op: op, Err: err}
}
