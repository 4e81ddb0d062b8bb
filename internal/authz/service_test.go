package authz

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	return svc
}

func TestViewerIsReadOnly(t *testing.T) {
	svc := newTestService(t)
	if err := svc.GrantAdminRole(1, "Viewer"); err != nil {
		t.Fatalf("grant viewer failed: %v", err)
	}

	allow, err := svc.EnforceAdmin(1, "/api/v1/admin/products/42", "get")
	if err != nil || !allow {
		t.Fatalf("viewer should read products, allow=%v err=%v", allow, err)
	}
	allow, err = svc.EnforceAdmin(1, "/api/v1/admin/products/42", "PUT")
	if err != nil || allow {
		t.Fatalf("viewer must not edit products, allow=%v err=%v", allow, err)
	}
	allow, err = svc.EnforceAdmin(1, "/api/v1/admin/orders/9/status", "PATCH")
	if err != nil || allow {
		t.Fatalf("viewer must not change order status, allow=%v err=%v", allow, err)
	}
}

func TestGrantAdminRoleReplacesPrevious(t *testing.T) {
	svc := newTestService(t)
	if err := svc.GrantAdminRole(2, RoleViewer); err != nil {
		t.Fatalf("grant viewer failed: %v", err)
	}
	if err := svc.GrantAdminRole(2, RoleStaff); err != nil {
		t.Fatalf("grant staff failed: %v", err)
	}
	roles, err := svc.AdminRoles(2)
	if err != nil {
		t.Fatalf("load roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != RoleStaff {
		t.Fatalf("roles want [staff], got=%v", roles)
	}

	if err := svc.RevokeAdminRoles(2); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	allow, err := svc.EnforceAdmin(2, "/admin/orders", "GET")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if allow {
		t.Fatalf("expected revoked admin to be denied")
	}
}

func TestGrantAdminRoleRejectsUnknownRole(t *testing.T) {
	svc := newTestService(t)
	err := svc.GrantAdminRole(5, "owner")
	if !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("want ErrUnknownRole, got %v", err)
	}
	var nilSvc *Service
	if _, err := nilSvc.EnforceAdmin(1, "/admin/orders", "GET"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/v1/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "admin/orders", want: "/admin/orders"},
		{in: "/api/v1", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		if got := NormalizeObject(item.in); got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}

func TestStaffMatrix(t *testing.T) {
	svc := newTestService(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("second bootstrap should be idempotent: %v", err)
	}
	if err := svc.GrantAdminRole(3, RoleStaff); err != nil {
		t.Fatalf("grant staff failed: %v", err)
	}

	cases := []struct {
		obj   string
		act   string
		allow bool
	}{
		{obj: "/api/v1/admin/orders", act: "GET", allow: true},
		{obj: "/api/v1/admin/orders/7/status", act: "PATCH", allow: true},
		{obj: "/api/v1/admin/delivery-charges/3", act: "DELETE", allow: true},
		{obj: "/api/v1/admin/upload", act: "POST", allow: true},
		{obj: "/api/v1/admin/admin-requests", act: "GET", allow: false},
		{obj: "/api/v1/admin/admin-requests/4/approve", act: "POST", allow: false},
	}
	for _, item := range cases {
		allow, err := svc.EnforceAdmin(3, item.obj, item.act)
		if err != nil {
			t.Fatalf("enforce %s %s failed: %v", item.act, item.obj, err)
		}
		if allow != item.allow {
			t.Fatalf("enforce %s %s want=%v got=%v", item.act, item.obj, item.allow, allow)
		}
	}
}
