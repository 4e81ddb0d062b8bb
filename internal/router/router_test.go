package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/provider"
	"github.com/wahhajahmed/KarachiSofas/internal/queue"
	"github.com/wahhajahmed/KarachiSofas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ownerEmail    = "owner@karachisofas.pk"
	ownerPassword = "ownerPass1"
)

type apiEnvelope struct {
	StatusCode int                  `json:"status_code"`
	Msg        string               `json:"msg"`
	Data       json.RawMessage      `json:"data"`
	Pagination *response.Pagination `json:"pagination"`
}

type testAPI struct {
	t         *testing.T
	engine    *gin.Engine
	container *provider.Container
	db        *gorm.DB
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Cleanup(logger.Replace(zap.NewNop()))

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.MigrateAll(db))
	require.NoError(t, db.Create(&models.Category{ID: 1, Name: "Sofas", Slug: "sofas"}).Error)

	cfg := config.Default()
	cfg.Upload.Dir = t.TempDir()
	cfg.Checkout.BankDetails = config.BankDetailsConfig{
		BankName:      "Meezan Bank",
		AccountTitle:  "Karachi Sofas",
		AccountNumber: "0101-0102030405",
	}
	queueClient, err := queue.NewClient(nil)
	require.NoError(t, err)
	container, err := provider.Build(cfg, db, queueClient)
	require.NoError(t, err)

	hash, err := container.AuthService.HashPassword(ownerPassword)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{
		Name:         "Owner",
		Email:        ownerEmail,
		PasswordHash: hash,
		Status:       constants.AdminStatusApproved,
		IsSuper:      true,
	}).Error)

	return &testAPI{
		t:         t,
		engine:    SetupRouter(cfg, container),
		container: container,
		db:        db,
	}
}

func (a *testAPI) do(method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, apiEnvelope) {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())

	var env apiEnvelope
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func (a *testAPI) seedProduct(name string, price int64) *models.Product {
	a.t.Helper()
	product := &models.Product{CategoryID: 1, Name: name, Price: models.NewMoneyFromInt(price), IsActive: true}
	require.NoError(a.t, a.db.Create(product).Error)
	return product
}

func (a *testAPI) registerUser(email string, headers map[string]string) string {
	a.t.Helper()
	_, env := a.do(http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":     "Sara Ahmed",
		"email":    email,
		"phone":    "0300-1234567",
		"password": "sofaLover1",
	}, headers)
	require.Equal(a.t, response.CodeOK, env.StatusCode, env.Msg)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(a.t, data.Token)
	return data.Token
}

func (a *testAPI) adminLogin(email, password string) apiEnvelope {
	a.t.Helper()
	_, env := a.do(http.MethodPost, "/api/v1/admin/login", gin.H{"email": email, "password": password}, nil)
	return env
}

func (a *testAPI) adminToken(email, password string) string {
	a.t.Helper()
	env := a.adminLogin(email, password)
	require.Equal(a.t, response.CodeOK, env.StatusCode, env.Msg)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &data))
	return data.Token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestHealthEndpoint(t *testing.T) {
	api := newTestAPI(t)
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
	assert.Contains(t, w.Body.String(), `"database":"up"`)
	assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
}

func TestGuestPendingItemJoinsCartAfterRegister(t *testing.T) {
	api := newTestAPI(t)
	chesterfield := api.seedProduct("Chesterfield", 45000)
	ottoman := api.seedProduct("Ottoman", 8000)

	w, env := api.do(http.MethodPost, "/api/v1/guest/pending-item", gin.H{"product_id": chesterfield.ID}, nil)
	require.Equal(t, response.CodeOK, env.StatusCode, env.Msg)
	guestToken := w.Header().Get(constants.HeaderGuestToken)
	require.NotEmpty(t, guestToken)

	// 再次点击其他商品，只保留最新的意图
	_, env = api.do(http.MethodPost, "/api/v1/guest/pending-item", gin.H{"product_id": ottoman.ID},
		map[string]string{constants.HeaderGuestToken: guestToken})
	require.Equal(t, response.CodeOK, env.StatusCode, env.Msg)

	_, env = api.do(http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":     "sara ahmed",
		"email":    "sara@example.com",
		"phone":    "0300-1234567",
		"password": "sofaLover1",
	}, map[string]string{constants.HeaderGuestToken: guestToken})
	require.Equal(t, response.CodeOK, env.StatusCode, env.Msg)

	var session struct {
		Token     string `json:"token"`
		AddedItem *struct {
			ProductID uint `json:"product_id"`
		} `json:"added_item"`
		Cart struct {
			ItemCount int `json:"item_count"`
			Items     []struct {
				ProductID uint `json:"product_id"`
			} `json:"items"`
		} `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotNil(t, session.AddedItem)
	assert.Equal(t, ottoman.ID, session.AddedItem.ProductID)
	require.Len(t, session.Cart.Items, 1)
	assert.Equal(t, ottoman.ID, session.Cart.Items[0].ProductID)

	_, env = api.do(http.MethodGet, "/api/v1/cart", nil, bearer(session.Token))
	require.Equal(t, response.CodeOK, env.StatusCode)
	assert.Contains(t, string(env.Data), `"item_count":1`)

	_, env = api.do(http.MethodGet, "/api/v1/guest/pending-item", nil, map[string]string{constants.HeaderGuestToken: guestToken})
	assert.Contains(t, string(env.Data), `"pending_item":null`)
}

func TestCartEndpointsRequireLogin(t *testing.T) {
	api := newTestAPI(t)
	_, env := api.do(http.MethodGet, "/api/v1/cart", nil, nil)
	assert.Equal(t, response.CodeUnauthorized, env.StatusCode)
}

func TestCheckoutOverHTTP(t *testing.T) {
	api := newTestAPI(t)
	sofa := api.seedProduct("Sofa", 1000)
	token := api.registerUser("ali@example.com", nil)

	_, env := api.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": sofa.ID}, bearer(token))
	require.Equal(t, response.CodeOK, env.StatusCode)
	assert.Equal(t, "Added to cart.", env.Msg)
	assert.Contains(t, string(env.Data), `"added":true`)

	_, env = api.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": sofa.ID}, bearer(token))
	require.Equal(t, response.CodeOK, env.StatusCode)
	assert.Equal(t, "This item is already in your cart.", env.Msg)
	assert.Contains(t, string(env.Data), `"added":false`)

	_, env = api.do(http.MethodPost, "/api/v1/cart/items/increase", gin.H{"product_id": sofa.ID}, bearer(token))
	require.Equal(t, response.CodeOK, env.StatusCode)
	assert.Contains(t, string(env.Data), `"quantity":2`)

	_, err := api.container.DeliveryChargeService.Create(service.DeliveryChargeInput{
		Area:    "Clifton",
		Block:   "Block 2",
		Charges: models.NewMoneyFromInt(300),
	})
	require.NoError(t, err)

	_, env = api.do(http.MethodGet, "/api/v1/checkout/quote?area=Clifton&block=Block%202", nil, bearer(token))
	require.Equal(t, response.CodeOK, env.StatusCode, env.Msg)
	var quote struct {
		Subtotal         string `json:"subtotal"`
		DeliveryFee      string `json:"delivery_fee"`
		DeliveryResolved bool   `json:"delivery_resolved"`
		GrandTotal       string `json:"grand_total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quote))
	assert.Equal(t, "2000.00", quote.Subtotal)
	assert.Equal(t, "300.00", quote.DeliveryFee)
	assert.True(t, quote.DeliveryResolved)
	assert.Equal(t, "2300.00", quote.GrandTotal)

	form := gin.H{
		"name":           "Ali Khan",
		"email":          "ali@example.com",
		"phone":          "0300-1234567",
		"address":        "House 12, Street 4",
		"area":           "Clifton",
		"block":          "Block 2",
		"landmark":       "",
		"payment_method": constants.PaymentMethodBankTransfer,
	}
	_, env = api.do(http.MethodPost, "/api/v1/checkout", form, bearer(token))
	assert.Equal(t, response.CodeBadRequest, env.StatusCode)
	assert.Equal(t, "Nearest landmark is required.", env.Msg)
	assert.Contains(t, string(env.Data), `"field":"landmark"`)

	form["landmark"] = "Near Dolmen Mall"
	_, env = api.do(http.MethodPost, "/api/v1/checkout", form, bearer(token))
	require.Equal(t, response.CodeOK, env.StatusCode, env.Msg)
	var result struct {
		Orders      []models.Order `json:"orders"`
		BankDetails *struct {
			BankName string `json:"bank_name"`
		} `json:"bank_details"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.Len(t, result.Orders, 1)
	assert.Equal(t, 2, result.Orders[0].Quantity)
	require.NotNil(t, result.BankDetails)
	assert.Equal(t, "Meezan Bank", result.BankDetails.BankName)

	_, env = api.do(http.MethodGet, "/api/v1/orders", nil, bearer(token))
	require.Equal(t, response.CodeOK, env.StatusCode)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(1), env.Pagination.Total)

	_, env = api.do(http.MethodGet, "/api/v1/cart", nil, bearer(token))
	assert.Contains(t, string(env.Data), `"item_count":0`)

	_, env = api.do(http.MethodPost, "/api/v1/checkout", form, bearer(token))
	assert.Equal(t, response.CodeBadRequest, env.StatusCode)
	assert.Equal(t, "Your cart is empty.", env.Msg)
}

func TestPublicCatalogEndpoints(t *testing.T) {
	api := newTestAPI(t)
	sofa := api.seedProduct("Sofa", 1000)

	_, env := api.do(http.MethodGet, "/api/v1/public/areas/blocks?area=Clifton", nil, nil)
	require.Equal(t, response.CodeOK, env.StatusCode)
	assert.Contains(t, string(env.Data), "Block 9")

	_, env = api.do(http.MethodGet, "/api/v1/public/areas/blocks?area=Atlantis", nil, nil)
	assert.Equal(t, response.CodeBadRequest, env.StatusCode)

	_, env = api.do(http.MethodGet, "/api/v1/public/products", nil, nil)
	require.Equal(t, response.CodeOK, env.StatusCode)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(1), env.Pagination.Total)

	_, env = api.do(http.MethodGet, fmt.Sprintf("/api/v1/public/products/%d", sofa.ID), nil, nil)
	require.Equal(t, response.CodeOK, env.StatusCode)

	_, env = api.do(http.MethodGet, "/api/v1/public/products/9999", nil, nil)
	assert.Equal(t, response.CodeNotFound, env.StatusCode)

	_, env = api.do(http.MethodGet, "/api/v1/public/delivery-charges/resolve?area=Clifton&block=Block%205", nil, nil)
	require.Equal(t, response.CodeOK, env.StatusCode)
	assert.Contains(t, string(env.Data), `"found":false`)
}

func signupAdmin(t *testing.T, api *testAPI, name, email string) apiEnvelope {
	t.Helper()
	_, env := api.do(http.MethodPost, "/api/v1/admin/signup", gin.H{
		"name":     name,
		"email":    email,
		"phone":    "0321-1234567",
		"password": "staffPass1",
	}, nil)
	return env
}

func approveAdmin(t *testing.T, api *testAPI, ownerToken, email string) uint {
	t.Helper()
	var admin models.Admin
	require.NoError(t, api.db.Where("email = ?", email).First(&admin).Error)
	_, env := api.do(http.MethodPost, fmt.Sprintf("/api/v1/admin/admin-requests/%d/approve", admin.ID), nil, bearer(ownerToken))
	require.Equal(t, response.CodeOK, env.StatusCode, env.Msg)
	return admin.ID
}

func TestAdminRequestApprovalFlow(t *testing.T) {
	api := newTestAPI(t)
	ownerToken := api.adminToken(ownerEmail, ownerPassword)

	env := signupAdmin(t, api, "Usman Tariq", "usman@example.com")
	require.Equal(t, response.CodeOK, env.StatusCode, env.Msg)

	env = api.adminLogin("usman@example.com", "staffPass1")
	assert.Equal(t, response.CodeForbidden, env.StatusCode)
	assert.Equal(t, "Your admin request is still pending approval.", env.Msg)

	_, env = api.do(http.MethodGet, "/api/v1/admin/admin-requests", nil, bearer(ownerToken))
	require.Equal(t, response.CodeOK, env.StatusCode)
	var listing struct {
		Items     []struct{ Email string } `json:"items"`
		MaxAdmins int                      `json:"max_admins"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	require.Len(t, listing.Items, 1)
	assert.Equal(t, "usman@example.com", listing.Items[0].Email)
	assert.Equal(t, 2, listing.MaxAdmins)

	approveAdmin(t, api, ownerToken, "usman@example.com")
	staffToken := api.adminToken("usman@example.com", "staffPass1")

	_, env = api.do(http.MethodGet, "/api/v1/admin/orders", nil, bearer(staffToken))
	assert.Equal(t, response.CodeOK, env.StatusCode)

	_, env = api.do(http.MethodGet, "/api/v1/admin/admin-requests", nil, bearer(staffToken))
	assert.Equal(t, response.CodeForbidden, env.StatusCode)

	env = signupAdmin(t, api, "Hina Baig", "hina@example.com")
	assert.Equal(t, response.CodeForbidden, env.StatusCode)
	assert.Contains(t, env.Msg, "Maximum 2 admin accounts")
}

func TestViewerRoleCannotChangeOrderStatus(t *testing.T) {
	api := newTestAPI(t)
	ownerToken := api.adminToken(ownerEmail, ownerPassword)
	require.Equal(t, response.CodeOK, signupAdmin(t, api, "Usman Tariq", "usman@example.com").StatusCode)
	staffID := approveAdmin(t, api, ownerToken, "usman@example.com")

	_, env := api.do(http.MethodPut, fmt.Sprintf("/api/v1/admin/admins/%d/role", staffID), gin.H{"role": "viewer"}, bearer(ownerToken))
	require.Equal(t, response.CodeOK, env.StatusCode, env.Msg)

	sofa := api.seedProduct("Sofa", 1000)
	customer := &models.User{Name: "Ali Khan", Email: "ali@example.com", PasswordHash: "x", Status: constants.UserStatusActive}
	require.NoError(t, api.db.Create(customer).Error)
	order := &models.Order{
		UserID:        customer.ID,
		ProductID:     sofa.ID,
		Quantity:      1,
		UnitPrice:     models.NewMoneyFromInt(1000),
		TotalPrice:    models.NewMoneyFromInt(1000),
		PaymentMethod: constants.PaymentMethodCOD,
		Status:        constants.OrderStatusPending,
	}
	require.NoError(t, api.db.Create(order).Error)
	statusPath := fmt.Sprintf("/api/v1/admin/orders/%d/status", order.ID)

	viewerToken := api.adminToken("usman@example.com", "staffPass1")
	_, env = api.do(http.MethodGet, fmt.Sprintf("/api/v1/admin/orders/%d", order.ID), nil, bearer(viewerToken))
	assert.Equal(t, response.CodeOK, env.StatusCode)
	_, env = api.do(http.MethodPatch, statusPath, gin.H{"status": "Completed"}, bearer(viewerToken))
	assert.Equal(t, response.CodeForbidden, env.StatusCode)

	_, env = api.do(http.MethodPatch, statusPath, gin.H{"status": "Completed"}, bearer(ownerToken))
	require.Equal(t, response.CodeOK, env.StatusCode, env.Msg)
	assert.Contains(t, string(env.Data), `"status":"completed"`)

	_, env = api.do(http.MethodPatch, statusPath, gin.H{"status": "rejected"}, bearer(ownerToken))
	assert.Equal(t, response.CodeConflict, env.StatusCode)
}

func TestAdminDeliveryChargeCRUD(t *testing.T) {
	api := newTestAPI(t)
	ownerToken := api.adminToken(ownerEmail, ownerPassword)

	payload := gin.H{"area": "Clifton", "block": "Block 4", "charges": "450"}
	_, env := api.do(http.MethodPost, "/api/v1/admin/delivery-charges", payload, bearer(ownerToken))
	require.Equal(t, response.CodeOK, env.StatusCode, env.Msg)
	var created models.DeliveryCharge
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "450.00", created.Charges.String())

	_, env = api.do(http.MethodPost, "/api/v1/admin/delivery-charges", payload, bearer(ownerToken))
	assert.Equal(t, response.CodeConflict, env.StatusCode)

	payload["charges"] = "-5"
	_, env = api.do(http.MethodPut, fmt.Sprintf("/api/v1/admin/delivery-charges/%d", created.ID), payload, bearer(ownerToken))
	assert.Equal(t, response.CodeBadRequest, env.StatusCode)

	_, env = api.do(http.MethodDelete, fmt.Sprintf("/api/v1/admin/delivery-charges/%d", created.ID), nil, bearer(ownerToken))
	require.Equal(t, response.CodeOK, env.StatusCode)
	_, env = api.do(http.MethodGet, fmt.Sprintf("/api/v1/admin/delivery-charges/%d", created.ID), nil, bearer(ownerToken))
	assert.Equal(t, response.CodeNotFound, env.StatusCode)
}

func TestAdminPermissionCatalogListsAdminRoutes(t *testing.T) {
	api := newTestAPI(t)
	items := buildAdminPermissionCatalog(api.engine)
	permissions := make(map[string]string, len(items))
	for _, item := range items {
		permissions[item.Permission] = item.Module
	}
	assert.Equal(t, "orders", permissions["PATCH:/admin/orders/:id/status"])
	assert.Equal(t, "delivery-charges", permissions["GET:/admin/delivery-charges"])
	assert.NotContains(t, permissions, "POST:/admin/login")
	assert.NotContains(t, permissions, "POST:/admin/signup")
}
