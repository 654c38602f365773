package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/JustJay7/appeal-case-manager/internal/database"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Register creates a user account. The password policy is enforced here at
// validation time only; storage keeps just the bcrypt hash.
func (h *Handlers) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDetails(c, http.StatusBadRequest, "Invalid input data", err)
		return
	}

	var existing database.User
	err := h.db.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error
	if err == nil {
		errorJSON(c, http.StatusConflict, "Username or email already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		errorDetails(c, http.StatusInternalServerError, "Failed to hash password", err)
		return
	}

	user := database.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         defaultString(req.Role, "user"),
		IsActive:     true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		errorDetails(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	h.logger.Info("Registered user", "username", user.Username)
	c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and issues a signed token.
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDetails(c, http.StatusBadRequest, "Invalid input data", err)
		return
	}

	var user database.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		errorJSON(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if !user.IsActive {
		errorJSON(c, http.StatusForbidden, "Account is inactive")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		errorJSON(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	now := time.Now().UTC()
	claims := authClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.SecretKey))
	if err != nil {
		errorDetails(c, http.StatusInternalServerError, "Failed to sign token", err)
		return
	}

	h.logger.Info("User logged in", "username", user.Username)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Me returns the account behind the presented token.
func (h *Handlers) Me(c *gin.Context) {
	claims, err := h.tokenClaims(c)
	if err != nil {
		errorJSON(c, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	var user database.User
	if err := h.db.Where("username = ?", claims.Username).First(&user).Error; err != nil {
		errorJSON(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

// RequireAuth rejects requests without a valid bearer token.
func (h *Handlers) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := h.tokenClaims(c); err != nil {
			errorJSON(c, http.StatusUnauthorized, "Invalid or missing token")
			c.Abort()
			return
		}
		c.Next()
	}
}

// tokenClaims parses the Authorization header when present.
func (h *Handlers) tokenClaims(c *gin.Context) (*authClaims, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, fmt.Errorf("missing bearer token")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(h.cfg.SecretKey), nil
		})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
