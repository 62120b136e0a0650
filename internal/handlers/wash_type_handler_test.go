package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

func TestWashTypeHandler_CRUD(t *testing.T) {
	app := newTestApp()

	rec := app.do(http.MethodPost, "/api/wash-types", map[string]any{
		"name":         "Completo",
		"price":        "30.00",
		"duration_min": 60,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	created := decode[models.WashType](t, rec)
	if !created.Active || created.Price.String() != "30" {
		t.Fatalf("unexpected wash type %+v", created)
	}

	rec = app.do(http.MethodPatch, "/api/wash-types/3", map[string]any{"active": false})
	if rec.Code != http.StatusOK || decode[models.WashType](t, rec).Active {
		t.Fatalf("update: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.do(http.MethodGet, "/api/wash-types?active=false", nil)
	if items := decode[[]models.WashType](t, rec); len(items) != 2 {
		t.Fatalf("expected 2 inactive entries, got %d", len(items))
	}

	rec = app.do(http.MethodPost, "/api/wash-types", map[string]any{"name": "Gratis", "price": -5})
	if rec.Code != http.StatusBadRequest || decode[httperr.HTTPError](t, rec).Code != "invalid_price" {
		t.Fatalf("expected invalid_price, got %d %s", rec.Code, rec.Body.String())
	}

	if rec := app.do(http.MethodDelete, "/api/wash-types/3", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", rec.Code)
	}
	rec = app.do(http.MethodDelete, "/api/wash-types/3", nil)
	if rec.Code != http.StatusNotFound || decode[httperr.HTTPError](t, rec).Code != "wash_type_not_found" {
		t.Fatalf("expected 404, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestWashTypeHandler_UploadWithoutStorage(t *testing.T) {
	app := newTestApp()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, _ := mw.CreateFormFile("image", "car.png")
	fw.Write([]byte("not really a png"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/wash-types/1/image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest || decode[httperr.HTTPError](t, rec).Code != "image_storage_disabled" {
		t.Fatalf("expected image_storage_disabled, got %d %s", rec.Code, rec.Body.String())
	}

	rec = app.do(http.MethodPost, "/api/wash-types/1/image", nil)
	if rec.Code != http.StatusBadRequest || decode[httperr.HTTPError](t, rec).Code != "missing_image" {
		t.Fatalf("expected missing_image, got %d %s", rec.Code, rec.Body.String())
	}
}
