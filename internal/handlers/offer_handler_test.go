package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spiceroute/biryani-order/internal/models"
	"github.com/spiceroute/biryani-order/internal/offers"
	"github.com/spiceroute/biryani-order/pkg/logger"
)

func TestListOffers(t *testing.T) {
	handler := NewOfferHandler(offers.NewDefaultTable(), logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/api/offers", nil)
	w := httptest.NewRecorder()

	handler.ListOffers(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var got []models.Offer
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 offers, got %d", len(got))
	}

	codes := map[string]bool{}
	for _, offer := range got {
		codes[offer.Code] = true
	}
	for _, want := range []string{"FIRST30", "WEEKEND20", "FAMILY25"} {
		if !codes[want] {
			t.Errorf("expected offer %s in response", want)
		}
	}
}
