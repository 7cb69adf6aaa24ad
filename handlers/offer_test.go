package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"restaurant-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOffer(t *testing.T, r *gin.Engine, token string, fields map[string]string) models.Offer {
	t.Helper()
	w := doForm(t, r, http.MethodPost, "/api/offers", token, fields, nil)
	assertStatus(t, w, http.StatusCreated)
	var offer models.Offer
	decode(t, w, &offer)
	return offer
}

func TestCreateOffer(t *testing.T) {
	r := setupRouter(t)
	_, token := seedAdmin(t)

	offer := createOffer(t, r, token, map[string]string{
		"title":       "Weekend Special",
		"description": "20% off on all Chinese dishes",
		"isActive":    "true",
	})
	assert.Equal(t, "Weekend Special", offer.Title)
	assert.True(t, offer.IsActive)
	assert.Empty(t, offer.Image)
	assert.Nil(t, offer.EndDate)
	assert.WithinDuration(t, time.Now(), offer.StartDate, time.Minute)
}

func TestCreateOfferValidation(t *testing.T) {
	r := setupRouter(t)
	_, token := seedAdmin(t)

	w := doForm(t, r, http.MethodPost, "/api/offers", token, map[string]string{
		"title": "No description",
	}, nil)
	assertStatus(t, w, http.StatusBadRequest)
}

func TestCreateOfferWithDates(t *testing.T) {
	r := setupRouter(t)
	_, token := seedAdmin(t)

	offer := createOffer(t, r, token, map[string]string{
		"title":       "Diwali Offer",
		"description": "Festive discount",
		"isActive":    "true",
		"startDate":   "2026-11-01",
		"endDate":     "2026-11-15",
	})
	assert.Equal(t, 2026, offer.StartDate.Year())
	require.NotNil(t, offer.EndDate)
	assert.Equal(t, time.November, offer.EndDate.Month())
}

func TestListActiveOffers(t *testing.T) {
	r := setupRouter(t)
	_, token := seedAdmin(t)

	createOffer(t, r, token, map[string]string{
		"title": "Active", "description": "live", "isActive": "true",
	})
	createOffer(t, r, token, map[string]string{
		"title": "Inactive", "description": "draft",
	})

	w := doJSON(t, r, http.MethodGet, "/api/offers/active", "", nil)
	assertStatus(t, w, http.StatusOK)
	var offers []models.Offer
	decode(t, w, &offers)
	require.Len(t, offers, 1)
	assert.Equal(t, "Active", offers[0].Title)

	// Admin listing includes drafts
	w = doJSON(t, r, http.MethodGet, "/api/offers", token, nil)
	assertStatus(t, w, http.StatusOK)
	decode(t, w, &offers)
	assert.Len(t, offers, 2)
}

func TestToggleOffer(t *testing.T) {
	r := setupRouter(t)
	_, token := seedAdmin(t)

	offer := createOffer(t, r, token, map[string]string{
		"title": "Flip Me", "description": "toggle target", "isActive": "true",
	})

	w := doJSON(t, r, http.MethodPut, "/api/offers/"+itoa(offer.ID)+"/toggle", token, nil)
	assertStatus(t, w, http.StatusOK)
	var toggled models.Offer
	decode(t, w, &toggled)
	assert.False(t, toggled.IsActive)

	// The flip persisted
	w = doJSON(t, r, http.MethodGet, "/api/offers/active", "", nil)
	var offers []models.Offer
	decode(t, w, &offers)
	assert.Empty(t, offers)

	w = doJSON(t, r, http.MethodPut, "/api/offers/"+itoa(offer.ID)+"/toggle", token, nil)
	assertStatus(t, w, http.StatusOK)
	decode(t, w, &toggled)
	assert.True(t, toggled.IsActive)
}

func TestUpdateOfferPartial(t *testing.T) {
	r := setupRouter(t)
	_, token := seedAdmin(t)

	offer := createOffer(t, r, token, map[string]string{
		"title": "Original", "description": "keep me", "isActive": "true",
	})

	w := doForm(t, r, http.MethodPut, "/api/offers/"+itoa(offer.ID), token, map[string]string{
		"title": "Renamed",
	}, nil)
	assertStatus(t, w, http.StatusOK)
	var updated models.Offer
	decode(t, w, &updated)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	assert.True(t, updated.IsActive)
}

func TestOfferNotFound(t *testing.T) {
	r := setupRouter(t)
	_, token := seedAdmin(t)

	w := doJSON(t, r, http.MethodPut, "/api/offers/9999/toggle", token, nil)
	assertStatus(t, w, http.StatusNotFound)

	w = doForm(t, r, http.MethodPut, "/api/offers/9999", token, map[string]string{"title": "x"}, nil)
	assertStatus(t, w, http.StatusNotFound)

	w = doJSON(t, r, http.MethodDelete, "/api/offers/9999", token, nil)
	assertStatus(t, w, http.StatusNotFound)
}

func TestDeleteOffer(t *testing.T) {
	r := setupRouter(t)
	_, token := seedAdmin(t)

	offer := createOffer(t, r, token, map[string]string{
		"title": "Short Lived", "description": "gone soon",
	})
	w := doJSON(t, r, http.MethodDelete, "/api/offers/"+itoa(offer.ID), token, nil)
	assertStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodDelete, "/api/offers/"+itoa(offer.ID), token, nil)
	assertStatus(t, w, http.StatusNotFound)
}
