package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"testing"

	"lapor-jalan/internal/db"
	"lapor-jalan/internal/report"
	"lapor-jalan/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&user.User{}, &report.Report{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.DB = gdb
	if err := gdb.Exec("DELETE FROM reports").Error; err != nil {
		t.Fatalf("failed to reset reports table: %v", err)
	}
	if err := gdb.Exec("DELETE FROM users").Error; err != nil {
		t.Fatalf("failed to reset users table: %v", err)
	}
	return gdb
}

func seedUser(t *testing.T, nama, email string, role user.Role) user.User {
	hash, err := user.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	u := user.User{Nama: nama, Email: email, PasswordHash: hash, Role: role}
	if err := db.DB.Create(&u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

func seedReport(t *testing.T, ownerId uint) *report.Report {
	r, err := report.Create(db.DB, ownerId, report.CreateInput{
		Title:       "Jalan berlubang",
		Description: "Lubang besar di depan pasar",
		Photo:       "abc123.jpg",
		Latitude:    -6.2,
		Longitude:   106.8,
	})
	if err != nil {
		t.Fatalf("failed to seed report: %v", err)
	}
	return r
}

// Simulate middleware that sets userId and userRole
func withUser(id uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", id)
		c.Set("userRole", role)
		c.Next()
	}
}

func toStrUint(v uint) string {
	return fmt.Sprintf("%d", v)
}

// multipartReport builds a report submission body; fields may be omitted by
// leaving them out of the map, photo by passing withPhoto=false.
func multipartReport(t *testing.T, fields map[string]string, withPhoto bool) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if withPhoto {
		fw, err := mw.CreateFormFile("photo", "jalan-rusak.jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("not-a-real-jpeg")); err != nil {
			t.Fatalf("write photo: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, mw.FormDataContentType()
}
