package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MrSingh0729/transs-flow-final/internal/accounts/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/accounts/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/shared/ident"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// EmployeeService 员工管理服务
type EmployeeService struct {
	repo   *repository.EmployeeRepository
	logger *zap.Logger
}

func NewEmployeeService(repo *repository.EmployeeRepository, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

// CreateEmployeeRequest 创建员工请求
type CreateEmployeeRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,max=20"`
	FullName    string `json:"full_name" binding:"required,max=100"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required"`
	Department  string `json:"department"`
	FactoryCode string `json:"factory_code"`
	FactoryName string `json:"factory_name"`
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
}

// UpdateEmployeeRequest 更新员工请求（指针字段表示可选）
type UpdateEmployeeRequest struct {
	FullName    *string `json:"full_name"`
	Password    *string `json:"password"`
	Role        *string `json:"role"`
	Department  *string `json:"department"`
	FactoryCode *string `json:"factory_code"`
	FactoryName *string `json:"factory_name"`
	CountryCode *string `json:"country_code"`
	CountryName *string `json:"country_name"`
	LarkOpenID  *string `json:"lark_open_id"`
	IsActive    *bool   `json:"is_active"`
}

// Create 创建员工账号
func (s *EmployeeService) Create(ctx context.Context, req *CreateEmployeeRequest) (*entity.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	emp := &entity.Employee{
		ID:           ident.New(),
		EmployeeID:   strings.TrimSpace(req.EmployeeID),
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         entity.ParseRole(req.Role),
		Department:   req.Department,
		FactoryCode:  req.FactoryCode,
		FactoryName:  req.FactoryName,
		CountryCode:  req.CountryCode,
		CountryName:  req.CountryName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		return nil, err
	}

	s.logger.Info("employee created",
		zap.String("employee_id", emp.EmployeeID),
		zap.String("role", string(emp.Role)))

	return emp, nil
}

// Update 更新员工账号
func (s *EmployeeService) Update(ctx context.Context, id string, req *UpdateEmployeeRequest) (*entity.Employee, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		emp.PasswordHash = string(hash)
	}
	if req.Role != nil {
		emp.Role = entity.ParseRole(*req.Role)
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.FactoryCode != nil {
		emp.FactoryCode = *req.FactoryCode
	}
	if req.FactoryName != nil {
		emp.FactoryName = *req.FactoryName
	}
	if req.CountryCode != nil {
		emp.CountryCode = *req.CountryCode
	}
	if req.CountryName != nil {
		emp.CountryName = *req.CountryName
	}
	if req.LarkOpenID != nil {
		emp.LarkOpenID = *req.LarkOpenID
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	emp.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

// List 员工列表
func (s *EmployeeService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Employee, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, filters)
}

// Get 按ID查询
func (s *EmployeeService) Get(ctx context.Context, id string) (*entity.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

// Delete 删除员工账号
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Count 员工总数（管理看板）
func (s *EmployeeService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// =============================================================================
// 名册导入
// HR系统导出的CSV常为GBK编码，这里自动识别并转码
// =============================================================================

// ImportResult 导入结果
type ImportResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// ImportRoster 从CSV导入员工名册
// 列顺序: employee_id, full_name, role, department, factory_code,
// factory_name, country_code, country_name, initial_password
func (s *EmployeeService) ImportRoster(ctx context.Context, r io.Reader) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	// 非UTF-8按GBK转码
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(simplifiedchinese.GBK.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("decode GBK roster: %w", err)
		}
		data = decoded
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &ImportResult{}
	line := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse roster line %d: %w", line+1, err)
		}
		line++

		// 跳过表头
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "employee_id") {
			continue
		}
		if len(record) < 2 || strings.TrimSpace(record[0]) == "" {
			result.Skipped++
			continue
		}

		req := &CreateEmployeeRequest{
			EmployeeID: strings.TrimSpace(record[0]),
			FullName:   strings.TrimSpace(record[1]),
			Password:   "changeme123",
		}
		if len(record) > 2 {
			req.Role = strings.TrimSpace(record[2])
		}
		if len(record) > 3 {
			req.Department = strings.TrimSpace(record[3])
		}
		if len(record) > 4 {
			req.FactoryCode = strings.TrimSpace(record[4])
		}
		if len(record) > 5 {
			req.FactoryName = strings.TrimSpace(record[5])
		}
		if len(record) > 6 {
			req.CountryCode = strings.TrimSpace(record[6])
		}
		if len(record) > 7 {
			req.CountryName = strings.TrimSpace(record[7])
		}
		if len(record) > 8 && strings.TrimSpace(record[8]) != "" {
			req.Password = strings.TrimSpace(record[8])
		}

		if _, err := s.Create(ctx, req); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				result.Skipped++
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("line %d (%s): %v", line, req.EmployeeID, err))
			continue
		}
		result.Created++
	}

	s.logger.Info("roster import finished",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)))

	return result, nil
}
