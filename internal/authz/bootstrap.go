package authz

import (
	"fmt"
	"strings"
)

const (
	// RoleStaff 审批通过的普通管理员
	RoleStaff = "staff"
	// RoleViewer 只读管理员
	RoleViewer = "viewer"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds 预置角色：viewer 只读，staff 管理商品、订单与运费。
// 管理员审批只对超级管理员开放，不在角色矩阵中。
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: RoleViewer,
			Policies: []Policy{
				{Object: "/admin/orders", Action: "GET"},
				{Object: "/admin/orders/:id", Action: "GET"},
				{Object: "/admin/products", Action: "GET"},
				{Object: "/admin/products/:id", Action: "GET"},
				{Object: "/admin/categories", Action: "GET"},
				{Object: "/admin/categories/:id", Action: "GET"},
				{Object: "/admin/delivery-charges", Action: "GET"},
				{Object: "/admin/delivery-charges/:id", Action: "GET"},
			},
		},
		{
			Role:     RoleStaff,
			Inherits: []string{RoleViewer},
			Policies: []Policy{
				{Object: "/admin/orders/:id/status", Action: "PATCH"},
				{Object: "/admin/products", Action: "*"},
				{Object: "/admin/products/:id", Action: "*"},
				{Object: "/admin/categories", Action: "*"},
				{Object: "/admin/categories/:id", Action: "*"},
				{Object: "/admin/delivery-charges", Action: "*"},
				{Object: "/admin/delivery-charges/:id", Action: "*"},
				{Object: "/admin/upload", Action: "POST"},
			},
		},
	}
}

// IsKnownRole 是否为预置角色
func IsKnownRole(role string) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	for _, seed := range BuiltinRoleSeeds() {
		if seed.Role == role {
			return true
		}
	}
	return false
}

// BootstrapBuiltinRoles 写入预置角色的继承关系与策略，重复执行无副作用
func (s *Service) BootstrapBuiltinRoles() error {
	if err := s.ready(); err != nil {
		return err
	}
	for _, seed := range BuiltinRoleSeeds() {
		role := roleSubject(seed.Role)
		for _, parent := range seed.Inherits {
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, roleSubject(parent)); err != nil {
				return fmt.Errorf("link %s to %s: %w", role, parent, err)
			}
		}
		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("policy %s of %s has no action", policy.Object, role)
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add policy %s %s: %w", action, policy.Object, err)
			}
		}
	}
	return nil
}
