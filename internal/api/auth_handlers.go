package api

import (
	"net/http"
	"strings"
	"time"

	"lapor-jalan/internal/auth"
	"lapor-jalan/internal/config"
	"lapor-jalan/internal/db"
	"lapor-jalan/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RegisterRequest struct {
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Nama  string `json:"nama"`
}

// POST /api/auth/register
func RegisterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Request tidak valid!"})
			return
		}
		if req.Nama == "" || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Nama, email, dan password wajib diisi!"})
			return
		}
		pwHash, err := user.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal memproses password"})
			return
		}
		u := user.User{
			Nama:         req.Nama,
			Email:        req.Email,
			PasswordHash: pwHash,
			Role:         user.RoleCitizen,
		}
		if err := db.DB.Create(&u).Error; err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Email sudah terdaftar!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan user"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Registrasi berhasil!"})
	}
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Request tidak valid!"})
			return
		}
		var u user.User
		if err := db.DB.Where("email = ?", req.Email).First(&u).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Email atau password salah!"})
			return
		}
		if err := user.CheckPassword(u.PasswordHash, req.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Email atau password salah!"})
			return
		}
		ttl := time.Duration(cfg.Server.TokenTTLHours) * time.Hour
		token, err := auth.GenerateJWT(cfg.Server.JWTSecret, u.ID, u.Nama, string(u.Role), ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat token"})
			return
		}
		// A token without a session is unusable; surface the failure
		if err := auth.SetSession(rdb, u.ID, token, ttl); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan sesi"})
			return
		}
		c.JSON(http.StatusOK, LoginResponse{
			Token: token,
			Role:  string(u.Role),
			Nama:  u.Nama,
		})
	}
}

// POST /api/auth/logout
func LogoutHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Belum login!"})
			return
		}
		_ = auth.DeleteSession(rdb, userId.(uint))
		c.JSON(http.StatusOK, gin.H{"message": "Logout berhasil"})
	}
}

// GET /api/auth/me
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Belum login!"})
			return
		}
		var u user.User
		if err := db.DB.First(&u, userId.(uint)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User tidak ditemukan!"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":        u.ID,
			"nama":      u.Nama,
			"email":     u.Email,
			"role":      u.Role,
			"createdAt": u.CreatedAt,
		})
	}
}
