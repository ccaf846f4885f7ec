package api

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"lapor-jalan/internal/config"
	"lapor-jalan/internal/db"
	"lapor-jalan/internal/media"
	"lapor-jalan/internal/report"
	"lapor-jalan/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /api/reports — multipart form: title, description, latitude,
// longitude, photo(file). Owner is always the authenticated caller.
func CreateReportHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Belum login!"})
			return
		}

		title := c.PostForm("title")
		description := c.PostForm("description")
		latStr := c.PostForm("latitude")
		lngStr := c.PostForm("longitude")

		file, err := c.FormFile("photo")
		if err != nil || latStr == "" || lngStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Foto dan Lokasi wajib ada!"})
			return
		}
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Koordinat tidak valid!"})
			return
		}

		ext := filepath.Ext(file.Filename)
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Format foto harus .jpg, .jpeg, atau .png"})
			return
		}
		// Reject before the photo touches the disk
		if title == "" || description == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Judul dan deskripsi wajib diisi!"})
			return
		}
		// Server-assigned filename; client filenames never touch the disk
		filename := uuid.New().String() + ext
		if err := c.SaveUploadedFile(file, filepath.Join(cfg.Uploads.Dir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan foto"})
			return
		}

		_, err = report.Create(db.DB, userId.(uint), report.CreateInput{
			Title:       title,
			Description: description,
			Photo:       filename,
			Latitude:    lat,
			Longitude:   lng,
		})
		if err != nil {
			if errors.Is(err, report.ErrMissingFields) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Judul dan deskripsi wajib diisi!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan laporan"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Laporan berhasil dikirim!"})
	}
}

// GET /api/reports — every authenticated user sees every report.
func ListReportsHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		reports, err := report.ListAll(db.DB)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil laporan"})
			return
		}
		data := make([]gin.H, 0, len(reports))
		for _, r := range reports {
			item := gin.H{
				"id":          r.ID,
				"userId":      r.UserID,
				"title":       r.Title,
				"description": r.Description,
				"photo":       r.Photo,
				"photoUrl":    media.ResolveURL(cfg.Uploads.BaseURL, r.Photo),
				"latitude":    r.Latitude,
				"longitude":   r.Longitude,
				"status":      r.Status,
				"createdAt":   r.CreatedAt,
				"updatedAt":   r.UpdatedAt,
			}
			if r.Pelapor != nil {
				item["pelapor"] = gin.H{"nama": r.Pelapor.Nama}
			}
			data = append(data, item)
		}
		c.JSON(http.StatusOK, gin.H{"data": data})
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// PATCH /api/reports/:id/status  [admin only]
func UpdateStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("userRole")
		if role != string(user.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Akses khusus admin!"})
			return
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Laporan tidak ditemukan!"})
			return
		}
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status tidak valid!"})
			return
		}
		r, err := report.UpdateStatus(db.DB, uint(id), req.Status)
		if err != nil {
			switch {
			case errors.Is(err, report.ErrInvalidStatus):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Status tidak valid!"})
			case errors.Is(err, report.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Laporan tidak ditemukan!"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengupdate status"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Status berhasil diupdate!", "data": r})
	}
}

// DELETE /api/reports/:id  [admin only]
func DeleteReportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("userRole")
		if role != string(user.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Akses khusus admin!"})
			return
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Laporan tidak ditemukan!"})
			return
		}
		if err := report.Delete(db.DB, uint(id)); err != nil {
			if errors.Is(err, report.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Laporan tidak ditemukan!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menghapus laporan"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Laporan berhasil dihapus!"})
	}
}
