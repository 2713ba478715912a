package httpapi

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"tableside/frontdesk-svc/internal/domain"
	"tableside/frontdesk-svc/internal/service"
	"tableside/frontdesk-svc/internal/storage"

	"github.com/gorilla/mux"
)

const sessionCookie = "cart_session"

type Handler struct {
	Dishes       service.DishAccessor
	SetMeals     service.SetMealAccessor
	Tables       service.TableAccessor
	Customers    service.CustomerAccessor
	Orders       service.OrderAccessor
	OrderDetails service.OrderDetailAccessor
	Catalog      *service.CatalogService
	Carts        *service.CartStore
	Checkout     *service.CheckoutService
	QR           service.QRGenerator
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/login", h.login).Methods("POST")

	r.HandleFunc("/api/admin/dishes", h.listDishes).Methods("GET")
	r.HandleFunc("/api/admin/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/admin/dishes/{id}", h.getDish).Methods("GET")
	r.HandleFunc("/api/admin/dishes/{id}", h.updateDish).Methods("PUT")
	r.HandleFunc("/api/admin/dishes/{id}", h.deleteDish).Methods("DELETE")

	r.HandleFunc("/api/admin/sets", h.listSetMeals).Methods("GET")
	r.HandleFunc("/api/admin/sets", h.createSetMeal).Methods("POST")
	r.HandleFunc("/api/admin/sets/{id}", h.getSetMeal).Methods("GET")
	r.HandleFunc("/api/admin/sets/{id}", h.updateSetMeal).Methods("PUT")
	r.HandleFunc("/api/admin/sets/{id}", h.deleteSetMeal).Methods("DELETE")

	r.HandleFunc("/api/admin/tables", h.listTables).Methods("GET")
	r.HandleFunc("/api/admin/tables", h.createTable).Methods("POST")
	r.HandleFunc("/api/admin/tables/{id}", h.getTable).Methods("GET")
	r.HandleFunc("/api/admin/tables/{id}", h.updateTable).Methods("PUT")
	r.HandleFunc("/api/admin/tables/{id}", h.deleteTable).Methods("DELETE")

	r.HandleFunc("/api/admin/customers", h.listCustomers).Methods("GET")
	r.HandleFunc("/api/admin/customers", h.createCustomer).Methods("POST")
	r.HandleFunc("/api/admin/customers/{id}", h.getCustomer).Methods("GET")
	r.HandleFunc("/api/admin/customers/{id}", h.updateCustomer).Methods("PUT")
	r.HandleFunc("/api/admin/customers/{id}", h.deleteCustomer).Methods("DELETE")

	r.HandleFunc("/api/admin/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/admin/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/admin/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/admin/orders/{id}", h.updateOrder).Methods("PUT")
	r.HandleFunc("/api/admin/orders/{id}", h.deleteOrder).Methods("DELETE")

	r.HandleFunc("/api/admin/orderDetails", h.listOrderDetails).Methods("GET")
	r.HandleFunc("/api/admin/orderDetails", h.createOrderDetail).Methods("POST")
	r.HandleFunc("/api/admin/orderDetails/{id}", h.getOrderDetail).Methods("GET")
	r.HandleFunc("/api/admin/orderDetails/{id}", h.updateOrderDetail).Methods("PUT")
	r.HandleFunc("/api/admin/orderDetails/{id}", h.deleteOrderDetail).Methods("DELETE")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{idx}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{idx}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "frontdesk-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// writeBackendError maps the accessor error taxonomy onto response codes:
// absent entities 404, uniqueness violations 409, anything else from the
// backend 502. Local state is never mutated on an error path.
func writeBackendError(w http.ResponseWriter, err error) {
	var notFound *storage.NotFoundError
	var conflict *storage.ConflictError
	switch {
	case errors.As(err, &notFound):
		http.Error(w, notFound.Error(), http.StatusNotFound)
	case errors.As(err, &conflict):
		http.Error(w, conflict.Error(), http.StatusConflict)
	default:
		log.Printf("[frontdesk] backend error: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func pathID(r *http.Request, name string) int {
	id, _ := strconv.Atoi(mux.Vars(r)[name])
	return id
}

// login is the cosmetic credential check carried over from the admin
// console. It grants nothing; there are no sessions to enforce.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if creds.Username != "root" || creds.Password != "admin" {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Dishes.FetchAll(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	dish, err := h.Dishes.FetchByID(r.Context(), pathID(r, "id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	var fields domain.DishFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish, err := h.Dishes.Create(r.Context(), fields)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	h.Catalog.InvalidateMenu(r.Context())
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	var fields domain.DishFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish, err := h.Dishes.Update(r.Context(), pathID(r, "id"), fields)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	h.Catalog.InvalidateMenu(r.Context())
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	if err := h.Dishes.Remove(r.Context(), pathID(r, "id")); err != nil {
		writeBackendError(w, err)
		return
	}
	h.Catalog.InvalidateMenu(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSetMeals(w http.ResponseWriter, r *http.Request) {
	sets, err := h.SetMeals.FetchAll(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sets)
}

func (h *Handler) getSetMeal(w http.ResponseWriter, r *http.Request) {
	set, err := h.SetMeals.FetchByID(r.Context(), pathID(r, "id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

func (h *Handler) createSetMeal(w http.ResponseWriter, r *http.Request) {
	var fields domain.SetMealFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	set, err := h.SetMeals.Create(r.Context(), fields)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	h.Catalog.InvalidateMenu(r.Context())
	writeJSON(w, http.StatusCreated, set)
}

func (h *Handler) updateSetMeal(w http.ResponseWriter, r *http.Request) {
	var fields domain.SetMealFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	set, err := h.SetMeals.Update(r.Context(), pathID(r, "id"), fields)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	h.Catalog.InvalidateMenu(r.Context())
	writeJSON(w, http.StatusOK, set)
}

func (h *Handler) deleteSetMeal(w http.ResponseWriter, r *http.Request) {
	if err := h.SetMeals.Remove(r.Context(), pathID(r, "id")); err != nil {
		writeBackendError(w, err)
		return
	}
	h.Catalog.InvalidateMenu(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.FetchAll(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.Tables.FetchByID(r.Context(), pathID(r, "id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var fields domain.TableFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if fields.Capacity < 1 {
		http.Error(w, "capacity must be at least 1", http.StatusBadRequest)
		return
	}
	table, err := h.Tables.Create(r.Context(), fields)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) updateTable(w http.ResponseWriter, r *http.Request) {
	var fields domain.TableFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if fields.Capacity < 1 {
		http.Error(w, "capacity must be at least 1", http.StatusBadRequest)
		return
	}
	table, err := h.Tables.Update(r.Context(), pathID(r, "id"), fields)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) deleteTable(w http.ResponseWriter, r *http.Request) {
	if err := h.Tables.Remove(r.Context(), pathID(r, "id")); err != nil {
		writeBackendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Customers.FetchAll(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Customers.FetchByID(r.Context(), pathID(r, "id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var fields domain.CustomerFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	customer, err := h.Customers.Create(r.Context(), fields)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var fields domain.CustomerFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	customer, err := h.Customers.Update(r.Context(), pathID(r, "id"), fields)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.Customers.Remove(r.Context(), pathID(r, "id")); err != nil {
		writeBackendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.FetchAll(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.FetchByID(r.Context(), pathID(r, "id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// orderDraftFromRequest recomputes subtotals from current catalog prices and
// validates the draft locally before anything goes over the wire.
func (h *Handler) orderDraftFromRequest(r *http.Request) (domain.OrderDraft, error) {
	var submitted domain.OrderDraft
	if err := json.NewDecoder(r.Body).Decode(&submitted); err != nil {
		return domain.OrderDraft{}, err
	}
	menu, err := h.Catalog.Menu(r.Context())
	if err != nil {
		return domain.OrderDraft{}, err
	}
	return service.FormFromDraft(submitted, menu).Draft()
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	draft, err := h.orderDraftFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.Create(r.Context(), draft)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	draft, err := h.orderDraftFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.Update(r.Context(), pathID(r, "id"), draft)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Orders.Remove(r.Context(), pathID(r, "id")); err != nil {
		writeBackendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOrderDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.OrderDetails.FetchAll(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) getOrderDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.OrderDetails.FetchByID(r.Context(), pathID(r, "id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) createOrderDetail(w http.ResponseWriter, r *http.Request) {
	var fields domain.DetailFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	detail, err := h.OrderDetails.Create(r.Context(), fields)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, detail)
}

func (h *Handler) updateOrderDetail(w http.ResponseWriter, r *http.Request) {
	var fields domain.DetailFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	detail, err := h.OrderDetails.Update(r.Context(), pathID(r, "id"), fields)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) deleteOrderDetail(w http.ResponseWriter, r *http.Request) {
	if err := h.OrderDetails.Remove(r.Context(), pathID(r, "id")); err != nil {
		writeBackendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Catalog.Menu(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	buf := make([]byte, 16)
	rand.Read(buf)
	session := hex.EncodeToString(buf)
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: session, Path: "/"})
	return session
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart := h.Carts.Get(h.session(w, r))
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		domain.ItemRef
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity < 1 {
		http.Error(w, "quantity must be at least 1", http.StatusBadRequest)
		return
	}

	menu, err := h.Catalog.Menu(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	name, price, ok := menu.Lookup(req.ItemRef)
	if !ok {
		http.Error(w, "item is not on the menu", http.StatusBadRequest)
		return
	}

	cart := h.Carts.Add(h.session(w, r), service.CartLine{
		Item:      req.ItemRef,
		Name:      name,
		UnitPrice: price,
		Quantity:  req.Quantity,
	})
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cart, err := h.Carts.UpdateQuantity(h.session(w, r), pathID(r, "idx"), req.Quantity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.Remove(h.session(w, r), pathID(r, "idx"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Carts.Clear(h.session(w, r))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Session = h.session(w, r)

	order, err := h.Checkout.Checkout(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrCustomerRequired),
			errors.Is(err, service.ErrTableRequired):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			writeBackendError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	oID := pathID(r, "id")
	if _, err := h.Orders.FetchByID(r.Context(), oID); err != nil {
		writeBackendError(w, err)
		return
	}
	qr, err := h.QR.Generate(oID)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
