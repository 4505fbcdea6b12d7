package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodshare/domain"
	"foodshare/internal/api/presenters"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// An invalid claim request gets the generic message only; validator detail
// never reaches the response body.
func TestSelectItemValidationErrorIsGeneric(t *testing.T) {
	app := fiber.New()
	h := NewFoodHandler(nil, validator.New())
	app.Post("/select-item", h.SelectItem)

	req := httptest.NewRequest(http.MethodPost, "/select-item", strings.NewReader("itemId="))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	var payload presenters.Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Message != domain.MessageFailedBodyRequest {
		t.Errorf("got message %q, want %q", payload.Message, domain.MessageFailedBodyRequest)
	}
	if payload.Error != "" {
		t.Errorf("validation detail leaked into response: %q", payload.Error)
	}
}
