package service

import (
	"errors"
	"testing"

	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRoleGranter struct {
	granted map[uint]string
	revoked []uint
	err     error
}

func (g *stubRoleGranter) GrantAdminRole(adminID uint, role string) error {
	if g.err != nil {
		return g.err
	}
	if g.granted == nil {
		g.granted = map[uint]string{}
	}
	g.granted[adminID] = role
	return nil
}

func (g *stubRoleGranter) RevokeAdminRoles(adminID uint) error {
	g.revoked = append(g.revoked, adminID)
	return nil
}

type adminFixture struct {
	db      *gorm.DB
	auth    *AuthService
	granter *stubRoleGranter
	queue   *recordingQueue
	svc     *AdminRequestService
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	db := openServiceTestDB(t)
	cfg := config.Default()
	repo := repository.NewAdminRepository(db)
	auth := NewAuthService(cfg, repo)
	granter := &stubRoleGranter{}
	q := &recordingQueue{}
	return &adminFixture{
		db:      db,
		auth:    auth,
		granter: granter,
		queue:   q,
		svc:     NewAdminRequestService(cfg, repo, auth, granter, q, "staff"),
	}
}

func (fx *adminFixture) seedOwner(t *testing.T) *models.Admin {
	t.Helper()
	hash, err := fx.auth.HashPassword("owner-secret-1")
	require.NoError(t, err)
	owner := &models.Admin{Name: "Owner", Email: "owner@karachisofas.pk", PasswordHash: hash, Status: constants.AdminStatusApproved, IsSuper: true}
	require.NoError(t, fx.db.Create(owner).Error)
	return owner
}

func signupInput(email string) AdminSignupInput {
	return AdminSignupInput{Name: "sara ahmed", Email: email, Phone: "0321 1234567", Password: "password123"}
}

func TestAdminSignupCreatesPendingRequest(t *testing.T) {
	fx := newAdminFixture(t)
	fx.seedOwner(t)

	admin, err := fx.svc.Signup(signupInput("Sara@Example.com"))
	require.NoError(t, err)
	assert.Equal(t, constants.AdminStatusPending, admin.Status)
	assert.Equal(t, "sara@example.com", admin.Email)
	assert.Equal(t, "Sara Ahmed", admin.Name)
	require.Len(t, fx.queue.adminRequest, 1)
	assert.Equal(t, admin.ID, fx.queue.adminRequest[0].AdminID)

	_, err = fx.svc.Signup(signupInput("sara@example.com"))
	assert.ErrorIs(t, err, ErrAdminRequestPending)

	_, _, _, err = fx.auth.Login("sara@example.com", "password123")
	assert.ErrorIs(t, err, ErrAdminPendingApproval)
}

func TestAdminSignupValidation(t *testing.T) {
	fx := newAdminFixture(t)

	input := signupInput("bad-email")
	_, err := fx.svc.Signup(input)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	input = signupInput("ok@example.com")
	input.Phone = "12345"
	_, err = fx.svc.Signup(input)
	assert.ErrorIs(t, err, ErrInvalidPhone)

	input = signupInput("ok@example.com")
	input.Password = "short"
	_, err = fx.svc.Signup(input)
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestAdminApproveGrantsStaffRole(t *testing.T) {
	fx := newAdminFixture(t)
	owner := fx.seedOwner(t)
	request, err := fx.svc.Signup(signupInput("staff@example.com"))
	require.NoError(t, err)

	approved, err := fx.svc.Approve(owner.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.AdminStatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, owner.ID, *approved.ReviewedBy)
	assert.Equal(t, "staff", fx.granter.granted[request.ID])

	_, token, _, err := fx.auth.Login("staff@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = fx.svc.Approve(owner.ID, request.ID)
	assert.ErrorIs(t, err, ErrAdminRequestReviewed)
}

func TestAdminLimitBlocksSignupAndApproval(t *testing.T) {
	fx := newAdminFixture(t)
	owner := fx.seedOwner(t)
	first, err := fx.svc.Signup(signupInput("first@example.com"))
	require.NoError(t, err)
	second, err := fx.svc.Signup(signupInput("second@example.com"))
	require.NoError(t, err)

	_, err = fx.svc.Approve(owner.ID, first.ID)
	require.NoError(t, err)

	_, err = fx.svc.Approve(owner.ID, second.ID)
	assert.ErrorIs(t, err, ErrAdminLimitReached)

	_, err = fx.svc.Signup(signupInput("third@example.com"))
	assert.ErrorIs(t, err, ErrAdminLimitReached)
}

func TestAdminRejectAllowsReapply(t *testing.T) {
	fx := newAdminFixture(t)
	owner := fx.seedOwner(t)
	request, err := fx.svc.Signup(signupInput("again@example.com"))
	require.NoError(t, err)

	rejected, err := fx.svc.Reject(owner.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.AdminStatusRejected, rejected.Status)
	assert.Equal(t, []uint{request.ID}, fx.granter.revoked)

	_, _, _, err = fx.auth.Login("again@example.com", "password123")
	assert.ErrorIs(t, err, ErrAdminRejected)

	reapplied, err := fx.svc.Signup(signupInput("again@example.com"))
	require.NoError(t, err)
	assert.Equal(t, request.ID, reapplied.ID)
	assert.Equal(t, constants.AdminStatusPending, reapplied.Status)
	assert.Nil(t, reapplied.ReviewedBy)
}

func TestAdminApproveGrantFailureSurfaces(t *testing.T) {
	fx := newAdminFixture(t)
	owner := fx.seedOwner(t)
	request, err := fx.svc.Signup(signupInput("grant@example.com"))
	require.NoError(t, err)

	fx.granter.err = errors.New("casbin unavailable")
	_, err = fx.svc.Approve(owner.ID, request.ID)
	assert.ErrorIs(t, err, fx.granter.err)

	_, err = fx.svc.Approve(owner.ID, 4040)
	assert.ErrorIs(t, err, ErrAdminRequestNotFound)
}
