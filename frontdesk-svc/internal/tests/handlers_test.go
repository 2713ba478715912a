package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "tableside/frontdesk-svc/internal/api/http"
	"tableside/frontdesk-svc/internal/domain"
	"tableside/frontdesk-svc/internal/mocks"
	"tableside/frontdesk-svc/internal/service"
	"tableside/frontdesk-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func serve(handler *httpapi.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "valid credentials", body: `{"username":"root","password":"admin"}`, wantCode: http.StatusOK},
		{name: "wrong password", body: `{"username":"root","password":"wrong"}`, wantCode: http.StatusUnauthorized},
		{name: "invalid JSON", body: `{invalid}`, wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			handler := &httpapi.Handler{}
			req := httptest.NewRequest("POST", "/api/login", bytes.NewBufferString(testCase.body))
			w := serve(handler, req)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestCreateDishHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.DishAccessor, *mocks.MenuCache)
		wantCode  int
	}{
		{
			name: "valid request",
			body: `{"dName":"宫保鸡丁","dPrice":28,"dType":"热菜"}`,
			setupMock: func(dishes *mocks.DishAccessor, cache *mocks.MenuCache) {
				dishes.On("Create", mock.Anything, mock.AnythingOfType("domain.DishFields")).
					Return(&domain.Dish{DNo: 4, DName: "宫保鸡丁", DPrice: 28, DType: "热菜"}, nil).Once()
				cache.On("Invalidate", mock.Anything).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(dishes *mocks.DishAccessor, cache *mocks.MenuCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "duplicate name",
			body: `{"dName":"宫保鸡丁","dPrice":28,"dType":"热菜"}`,
			setupMock: func(dishes *mocks.DishAccessor, cache *mocks.MenuCache) {
				dishes.On("Create", mock.Anything, mock.Anything).
					Return(nil, &storage.ConflictError{Resource: "dish", Reason: "duplicate dish name"}).Once()
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "backend unreachable",
			body: `{"dName":"宫保鸡丁","dPrice":28,"dType":"热菜"}`,
			setupMock: func(dishes *mocks.DishAccessor, cache *mocks.MenuCache) {
				dishes.On("Create", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
			},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			dishes := mocks.NewDishAccessor(t)
			sets := mocks.NewSetMealAccessor(t)
			cache := mocks.NewMenuCache(t)
			handler := &httpapi.Handler{
				Dishes:  dishes,
				Catalog: service.NewCatalogService(dishes, sets, cache),
			}
			testCase.setupMock(dishes, cache)

			req := httptest.NewRequest("POST", "/api/admin/dishes", bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")
			w := serve(handler, req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestGetOrderHandler(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		mockOrder *domain.OrderInfo
		mockError error
		wantCode  int
	}{
		{
			name:      "found",
			id:        "3",
			mockOrder: &domain.OrderInfo{OID: 3, PayStatus: domain.PayStatusUnpaid},
			wantCode:  http.StatusOK,
		},
		{
			name:      "not found",
			id:        "999",
			mockError: &storage.NotFoundError{Resource: "order", Key: 999},
			wantCode:  http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderAccessor(t)
			handler := &httpapi.Handler{Orders: orders}

			if testCase.mockError != nil {
				orders.On("FetchByID", mock.Anything, mock.Anything).Return(nil, testCase.mockError).Once()
			} else {
				orders.On("FetchByID", mock.Anything, mock.Anything).Return(testCase.mockOrder, nil).Once()
			}

			req := httptest.NewRequest("GET", "/api/admin/orders/"+testCase.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": testCase.id})
			w := serve(handler, req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestCreateTableHandler_RejectsZeroCapacity(t *testing.T) {
	handler := &httpapi.Handler{Tables: mocks.NewTableAccessor(t)}

	req := httptest.NewRequest("POST", "/api/admin/tables", bytes.NewBufferString(`{"capacity":0,"location":"靠窗"}`))
	w := serve(handler, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMenuHandler(t *testing.T) {
	dishes := mocks.NewDishAccessor(t)
	sets := mocks.NewSetMealAccessor(t)
	dishes.On("FetchAll", mock.Anything).Return([]domain.Dish{{DNo: 4}}, nil).Once()
	sets.On("FetchAll", mock.Anything).Return([]domain.SetMeal{}, nil).Once()

	handler := &httpapi.Handler{Catalog: service.NewCatalogService(dishes, sets, nil)}

	w := serve(handler, httptest.NewRequest("GET", "/api/menu", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dNo":4`)
}

func TestCartHandlers(t *testing.T) {
	dishes := mocks.NewDishAccessor(t)
	sets := mocks.NewSetMealAccessor(t)
	dishes.On("FetchAll", mock.Anything).Return([]domain.Dish{{DNo: 4, DName: "宫保鸡丁", DPrice: 28}}, nil)
	sets.On("FetchAll", mock.Anything).Return([]domain.SetMeal{}, nil)

	handler := &httpapi.Handler{
		Catalog: service.NewCatalogService(dishes, sets, nil),
		Carts:   service.NewCartStore(),
	}

	addReq := httptest.NewRequest("POST", "/api/cart/items", bytes.NewBufferString(`{"itemType":"dish","itemId":4,"quantity":2}`))
	addResp := serve(handler, addReq)
	assert.Equal(t, http.StatusOK, addResp.Code)

	cookies := addResp.Result().Cookies()
	assert.NotEmpty(t, cookies, "first cart touch issues a session cookie")

	getReq := httptest.NewRequest("GET", "/api/cart", nil)
	for _, cookie := range cookies {
		getReq.AddCookie(cookie)
	}
	getResp := serve(handler, getReq)
	assert.Equal(t, http.StatusOK, getResp.Code)
	assert.Contains(t, getResp.Body.String(), "宫保鸡丁")
}

func TestAddCartItemHandler_OffMenuItem(t *testing.T) {
	dishes := mocks.NewDishAccessor(t)
	sets := mocks.NewSetMealAccessor(t)
	dishes.On("FetchAll", mock.Anything).Return([]domain.Dish{}, nil).Once()
	sets.On("FetchAll", mock.Anything).Return([]domain.SetMeal{}, nil).Once()

	handler := &httpapi.Handler{
		Catalog: service.NewCatalogService(dishes, sets, nil),
		Carts:   service.NewCartStore(),
	}

	req := httptest.NewRequest("POST", "/api/cart/items", bytes.NewBufferString(`{"itemType":"dish","itemId":999,"quantity":1}`))
	w := serve(handler, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutHandler_EmptyCart(t *testing.T) {
	customers := mocks.NewCustomerAccessor(t)
	orders := mocks.NewOrderAccessor(t)
	carts := service.NewCartStore()

	handler := &httpapi.Handler{
		Carts:    carts,
		Checkout: service.NewCheckoutService(customers, orders, carts, nil),
	}

	req := httptest.NewRequest("POST", "/api/checkout", bytes.NewBufferString(`{"customerId":5,"tableId":3}`))
	w := serve(handler, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderQRCodeHandler(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantCode  int
		wantType  string
	}{
		{name: "order exists", wantCode: http.StatusOK, wantType: "image/png"},
		{name: "order missing", mockError: &storage.NotFoundError{Resource: "order", Key: 3}, wantCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderAccessor(t)
			qr := mocks.NewQRGenerator(t)
			handler := &httpapi.Handler{Orders: orders, QR: qr}

			if testCase.mockError != nil {
				orders.On("FetchByID", mock.Anything, 3).Return(nil, testCase.mockError).Once()
			} else {
				orders.On("FetchByID", mock.Anything, 3).Return(&domain.OrderInfo{OID: 3}, nil).Once()
				qr.On("Generate", 3).Return([]byte("png-bytes"), nil).Once()
			}

			req := httptest.NewRequest("GET", "/api/orders/3/qrcode", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "3"})
			w := serve(handler, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantType != "" {
				assert.Equal(t, testCase.wantType, w.Header().Get("Content-Type"))
			}
		})
	}
}
