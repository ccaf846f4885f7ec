package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lapor-jalan/internal/db"
	"lapor-jalan/internal/user"

	"github.com/gin-gonic/gin"
)

func TestUpdateUserById_PromotesCitizen(t *testing.T) {
	setupTestDB(t)
	admin := seedUser(t, "Admin", "admin@x.com", user.RoleAdmin)
	citizen := seedUser(t, "Budi", "budi@x.com", user.RoleCitizen)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(withUser(admin.ID, "admin"))
	r.PUT("/users/:id", UpdateUserByIdHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/users/"+toStrUint(citizen.ID),
		strings.NewReader(`{"role":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated user.User
	if err := db.DB.First(&updated, citizen.ID).Error; err != nil {
		t.Fatalf("couldn't fetch updated user: %v", err)
	}
	if updated.Role != user.RoleAdmin {
		t.Errorf("expected role admin after promotion, got %s", updated.Role)
	}
}

func TestUpdateUserById_InvalidRole(t *testing.T) {
	setupTestDB(t)
	admin := seedUser(t, "Admin", "admin@x.com", user.RoleAdmin)
	citizen := seedUser(t, "Budi", "budi@x.com", user.RoleCitizen)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(withUser(admin.ID, "admin"))
	r.PUT("/users/:id", UpdateUserByIdHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/users/"+toStrUint(citizen.ID),
		strings.NewReader(`{"role":"superuser"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid role, got %d", w.Code)
	}
}

func TestUpdateUserById_CitizenForbidden(t *testing.T) {
	setupTestDB(t)
	citizen := seedUser(t, "Budi", "budi@x.com", user.RoleCitizen)
	other := seedUser(t, "Siti", "siti@x.com", user.RoleCitizen)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(withUser(citizen.ID, "citizen"))
	r.PUT("/users/:id", UpdateUserByIdHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/users/"+toStrUint(other.ID),
		strings.NewReader(`{"role":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for citizen, got %d", w.Code)
	}
}

func TestListUsersHandler_Admin(t *testing.T) {
	setupTestDB(t)
	admin := seedUser(t, "Admin", "admin@x.com", user.RoleAdmin)
	seedUser(t, "Budi", "budi@x.com", user.RoleCitizen)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(withUser(admin.ID, "admin"))
	r.GET("/users", ListUsersHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/users", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "budi@x.com") {
		t.Errorf("expected listed user in response: %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "PasswordHash") || strings.Contains(w.Body.String(), "passwordHash") {
		t.Errorf("password hash must never be serialized")
	}
}
