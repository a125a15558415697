package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/spiceroute/biryani-order/internal/catalog"
	"github.com/spiceroute/biryani-order/internal/checkout"
	"github.com/spiceroute/biryani-order/internal/models"
	"github.com/spiceroute/biryani-order/internal/offers"
	"github.com/spiceroute/biryani-order/internal/orderlog"
	"github.com/spiceroute/biryani-order/internal/pricing"
	"github.com/spiceroute/biryani-order/pkg/logger"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	log := logger.New("error")
	orders := orderlog.New(t.TempDir(), "testOrders")
	svc := checkout.NewService(catalog.NewInMemoryMenuCatalog(), offers.NewDefaultTable(), pricing.Classic, orders)
	handler := NewCartHandler(svc, log)

	r := chi.NewRouter()
	r.Post("/api/cart", handler.CreateCart)
	r.Get("/api/slots", handler.ListSlots)
	r.Route("/api/cart/{cartId}", func(r chi.Router) {
		r.Get("/", handler.GetCart)
		r.Post("/items", handler.AddItem)
		r.Delete("/items/{itemId}", handler.RemoveOne)
		r.Put("/items/{itemId}", handler.SetQuantity)
		r.Post("/coupon", handler.ApplyCoupon)
		r.Delete("/coupon", handler.RemoveCoupon)
		r.Put("/slot", handler.SelectSlot)
		r.Put("/details", handler.SetDetails)
		r.Post("/checkout", handler.Checkout)
	})
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCart(t *testing.T, r http.Handler) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/cart", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 creating cart, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp["cartId"]
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) checkout.CartView {
	t.Helper()

	var view checkout.CartView
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("failed to decode cart view: %v", err)
	}
	return view
}

func TestCartFlow_AddAndRemoveItems(t *testing.T) {
	r := newTestRouter(t)
	cartID := createCart(t, r)
	base := "/api/cart/" + cartID

	// Add two chicken biryanis
	doJSON(t, r, http.MethodPost, base+"/items", models.AddItemRequest{ItemID: "1"})
	w := doJSON(t, r, http.MethodPost, base+"/items", models.AddItemRequest{ItemID: "1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	view := decodeView(t, w)
	if view.Quote.Subtotal != 640 {
		t.Errorf("expected subtotal 640, got %d", view.Quote.Subtotal)
	}
	if view.Quote.DeliveryFee != 0 {
		t.Errorf("expected free delivery over 300, got %d", view.Quote.DeliveryFee)
	}

	// Remove one
	w = doJSON(t, r, http.MethodDelete, base+"/items/1", nil)
	view = decodeView(t, w)
	if view.Quote.Subtotal != 320 {
		t.Errorf("expected subtotal 320, got %d", view.Quote.Subtotal)
	}
	if view.Quote.DeliveryFee != 40 {
		t.Errorf("expected fee 40 at or below threshold, got %d", view.Quote.DeliveryFee)
	}

	// Set exact quantity
	w = doJSON(t, r, http.MethodPut, base+"/items/1", models.SetQuantityRequest{Quantity: 3})
	view = decodeView(t, w)
	if view.Quote.Subtotal != 960 {
		t.Errorf("expected subtotal 960, got %d", view.Quote.Subtotal)
	}
}

func TestCartFlow_UnknownItem(t *testing.T) {
	r := newTestRouter(t)
	cartID := createCart(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/cart/"+cartID+"/items", models.AddItemRequest{ItemID: "999"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for unknown item, got %d", w.Code)
	}
}

func TestCartFlow_UnknownCart(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/cart/not-a-cart", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for unknown cart, got %d", w.Code)
	}
}

func TestCartFlow_Coupons(t *testing.T) {
	r := newTestRouter(t)
	cartID := createCart(t, r)
	base := "/api/cart/" + cartID

	t.Run("minimum order not met includes thresholds", func(t *testing.T) {
		doJSON(t, r, http.MethodPost, base+"/items", models.AddItemRequest{ItemID: "3"}) // 250

		w := doJSON(t, r, http.MethodPost, base+"/coupon", models.ApplyCouponRequest{Code: "WEEKEND20"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}

		var resp map[string]interface{}
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp["required"] != float64(300) || resp["actual"] != float64(250) {
			t.Errorf("expected required 300 actual 250, got %v", resp)
		}
	})

	t.Run("invalid code", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, base+"/coupon", models.ApplyCouponRequest{Code: "NOPE1234"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})

	t.Run("valid coupon applies", func(t *testing.T) {
		doJSON(t, r, http.MethodPost, base+"/items", models.AddItemRequest{ItemID: "3"}) // subtotal 500

		w := doJSON(t, r, http.MethodPost, base+"/coupon", models.ApplyCouponRequest{Code: "FIRST30"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}

		view := decodeView(t, w)
		if view.Quote.AppliedCoupon != "FIRST30" {
			t.Errorf("expected FIRST30 applied, got %s", view.Quote.AppliedCoupon)
		}
		if view.Quote.DiscountAmount != 150 {
			t.Errorf("expected discount 150, got %v", view.Quote.DiscountAmount)
		}
	})

	t.Run("coupon removal", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, base+"/coupon", nil)
		view := decodeView(t, w)
		if view.Quote.AppliedCoupon != "" {
			t.Errorf("expected coupon cleared, got %s", view.Quote.AppliedCoupon)
		}
	})
}

func TestCartFlow_Checkout(t *testing.T) {
	r := newTestRouter(t)
	cartID := createCart(t, r)
	base := "/api/cart/" + cartID

	doJSON(t, r, http.MethodPost, base+"/items", models.AddItemRequest{ItemID: "1"})

	t.Run("blocked before slot and details", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, base+"/checkout", nil)
		if w.Code != http.StatusConflict {
			t.Errorf("expected status 409 for incomplete order, got %d", w.Code)
		}
	})

	t.Run("rejects unknown slot", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, base+"/slot", models.SelectSlotRequest{TimeSlot: "9:00 PM"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400 for unknown slot, got %d", w.Code)
		}
	})

	t.Run("completes after slot and details", func(t *testing.T) {
		doJSON(t, r, http.MethodPut, base+"/slot", models.SelectSlotRequest{TimeSlot: "10:00 AM"})
		doJSON(t, r, http.MethodPut, base+"/details", models.CustomerDetails{Name: "Asha", Phone: "9000000001"})

		w := doJSON(t, r, http.MethodPost, base+"/checkout", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp models.CheckoutResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.OrderID == "" {
			t.Error("expected an order ID")
		}
		if !strings.HasPrefix(resp.HandoffURL, "https://wa.me/") {
			t.Errorf("unexpected handoff URL: %s", resp.HandoffURL)
		}
		if !strings.Contains(resp.Summary, "Chicken Biryani x1") {
			t.Errorf("summary missing order line:\n%s", resp.Summary)
		}
	})

	t.Run("cart is gone after checkout", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, base+"/", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404 after checkout, got %d", w.Code)
		}
	})
}

func TestListSlots(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/slots", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var slots []string
	if err := json.NewDecoder(w.Body).Decode(&slots); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(slots) != 3 {
		t.Errorf("expected 3 slots, got %d", len(slots))
	}
	if slots[0] != "10:00 AM" {
		t.Errorf("expected first slot 10:00 AM, got %s", slots[0])
	}
}

func TestCartFlow_InvalidBody(t *testing.T) {
	r := newTestRouter(t)
	cartID := createCart(t, r)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/cart/%s/items", cartID), strings.NewReader("{broken"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for malformed body, got %d", w.Code)
	}
}
