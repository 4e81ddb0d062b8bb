package authz

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/util"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	apiPrefix     = "/api/v1"
	policyTable   = "casbin_rule"
	subjectPrefix = "admin:"
	rolePrefix    = "role:"
)

// 管理端 RBAC 模型：角色可继承，路径按 keyMatch2 匹配，"*" 代表任意方法
const adminRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

var (
	// ErrUnavailable 授权服务未初始化
	ErrUnavailable = errors.New("authz service unavailable")
	// ErrUnknownRole 非预置角色
	ErrUnknownRole = errors.New("unknown admin role")
)

// Policy 权限策略
type Policy struct {
	Object string `json:"object"`
	Action string `json:"action"`
}

// Service 管理端授权服务，策略持久化在 casbin_rule 表
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService 创建授权服务
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, errors.New("authz db is nil")
	}
	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", policyTable)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter: %w", err)
	}
	m, err := model.NewModelFromString(adminRBACModel)
	if err != nil {
		return nil, fmt.Errorf("parse authz model: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer: %w", err)
	}
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)
	enforcer.EnableAutoSave(true)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy: %w", err)
	}
	return &Service{enforcer: enforcer}, nil
}

func (s *Service) ready() error {
	if s == nil || s.enforcer == nil {
		return ErrUnavailable
	}
	return nil
}

// EnforceAdmin 判断管理员能否以 method 访问 path
func (s *Service) EnforceAdmin(adminID uint, path, method string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	if adminID == 0 {
		return false, nil
	}
	return s.enforcer.Enforce(adminSubject(adminID), NormalizeObject(path), NormalizeAction(method))
}

// GrantAdminRole 为管理员设置唯一角色，原角色被替换
func (s *Service) GrantAdminRole(adminID uint, role string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if adminID == 0 {
		return errors.New("admin id is required")
	}
	if !IsKnownRole(role) {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	subject := adminSubject(adminID)
	if _, err := s.enforcer.RemoveFilteredNamedGroupingPolicy("g", 0, subject); err != nil {
		return fmt.Errorf("clear roles of %s: %w", subject, err)
	}
	if _, err := s.enforcer.AddNamedGroupingPolicy("g", subject, roleSubject(role)); err != nil {
		return fmt.Errorf("assign role to %s: %w", subject, err)
	}
	return nil
}

// RevokeAdminRoles 移除管理员全部角色
func (s *Service) RevokeAdminRoles(adminID uint) error {
	if err := s.ready(); err != nil {
		return err
	}
	if adminID == 0 {
		return errors.New("admin id is required")
	}
	subject := adminSubject(adminID)
	if _, err := s.enforcer.RemoveFilteredNamedGroupingPolicy("g", 0, subject); err != nil {
		return fmt.Errorf("revoke roles of %s: %w", subject, err)
	}
	return nil
}

// AdminRoles 管理员直接持有的角色名（不含继承）
func (s *Service) AdminRoles(adminID uint) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	subjects, err := s.enforcer.GetRolesForUser(adminSubject(adminID))
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	roles := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		if name, ok := strings.CutPrefix(subject, rolePrefix); ok && name != "" {
			roles = append(roles, name)
		}
	}
	sort.Strings(roles)
	return roles, nil
}

func adminSubject(adminID uint) string {
	return fmt.Sprintf("%s%d", subjectPrefix, adminID)
}

func roleSubject(role string) string {
	return rolePrefix + strings.ToLower(strings.TrimSpace(role))
}

// NormalizeObject 去掉 /api/v1 前缀，保证以 / 开头
func NormalizeObject(object string) string {
	normalized := strings.TrimSpace(object)
	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}
	if normalized == apiPrefix {
		return "/"
	}
	if rest, ok := strings.CutPrefix(normalized, apiPrefix+"/"); ok {
		return "/" + rest
	}
	return normalized
}

// NormalizeAction 统一为大写 HTTP 方法
func NormalizeAction(action string) string {
	return strings.ToUpper(strings.TrimSpace(action))
}
