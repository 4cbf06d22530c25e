package repository

import (
	"context"
	"errors"

	"github.com/MrSingh0729/transs-flow-final/internal/accounts/entity"
	"gorm.io/gorm"
)

// 错误定义
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("employee id already exists")
)

// EmployeeRepository 员工仓库
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// FindAll 查询员工列表
func (r *EmployeeRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Employee, int64, error) {
	var items []entity.Employee
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Employee{})

	if role := filters["role"]; role != "" {
		query = query.Where("role = ?", role)
	}
	if dept := filters["department"]; dept != "" {
		query = query.Where("department = ?", dept)
	}
	if factory := filters["factory_code"]; factory != "" {
		query = query.Where("factory_code = ?", factory)
	}
	if q := filters["q"]; q != "" {
		query = query.Where("full_name ILIKE ? OR employee_id ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindByID 根据ID查找员工
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*entity.Employee, error) {
	var emp entity.Employee
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// FindByEmployeeID 根据工号查找员工
func (r *EmployeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*entity.Employee, error) {
	var emp entity.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// FindByLarkOpenID 根据Lark open_id查找员工
func (r *EmployeeRepository) FindByLarkOpenID(ctx context.Context, openID string) (*entity.Employee, error) {
	var emp entity.Employee
	err := r.db.WithContext(ctx).
		Where("lark_open_id = ?", openID).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// Create 创建员工。工号唯一性在此处和数据库唯一索引双重保证
func (r *EmployeeRepository) Create(ctx context.Context, emp *entity.Employee) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Employee{}).
		Where("employee_id = ?", emp.EmployeeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return r.db.WithContext(ctx).Create(emp).Error
}

// Update 更新员工
func (r *EmployeeRepository) Update(ctx context.Context, emp *entity.Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

// Delete 删除员工
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entity.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count 员工总数
func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Employee{}).Count(&total).Error
	return total, err
}
