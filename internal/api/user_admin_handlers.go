package api

import (
	"net/http"

	"lapor-jalan/internal/auth"
	"lapor-jalan/internal/db"
	"lapor-jalan/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// GET /api/users  [admin only]
func ListUsersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("userRole")
		if role != string(user.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Akses khusus admin!"})
			return
		}
		var users []user.User
		if err := db.DB.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil user"})
			return
		}
		result := make([]gin.H, 0, len(users))
		for _, u := range users {
			result = append(result, gin.H{
				"id":        u.ID,
				"nama":      u.Nama,
				"email":     u.Email,
				"role":      u.Role,
				"createdAt": u.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, result)
	}
}

type UpdateUserRequest struct {
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

// PUT /api/users/:id  [admin only] — the out-of-band path for promoting a
// citizen to admin, and for password resets.
func UpdateUserByIdHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("userRole")
		if role != string(user.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Akses khusus admin!"})
			return
		}
		id := c.Param("id")
		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Request tidak valid!"})
			return
		}
		var u user.User
		if err := db.DB.First(&u, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User tidak ditemukan!"})
			return
		}
		if req.Password != "" {
			pwHash, err := user.HashPassword(req.Password)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal memproses password"})
				return
			}
			u.PasswordHash = pwHash
		}
		if req.Role != "" {
			if req.Role != string(user.RoleAdmin) && req.Role != string(user.RoleCitizen) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Role tidak valid!"})
				return
			}
			u.Role = user.Role(req.Role)
		}
		if err := db.DB.Save(&u).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengupdate user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User berhasil diupdate!"})
	}
}

// GET /api/users/online  [admin only]
func OnlineUserCountHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := auth.OnlineUserCount(rdb)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menghitung user online"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"online": count})
	}
}
