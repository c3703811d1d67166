package handlers

import (
	"errors"
	"net/http"
	"strings"

	"ai-act-tracker/internal/database"
	"ai-act-tracker/internal/middleware"
	"ai-act-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// maskEmail keeps the first two characters of the local part, so failed
// logins can be logged without the full address.
func maskEmail(email string) string {
	runes := []rune(email)
	atIdx := -1
	for i, r := range runes {
		if r == '@' {
			atIdx = i
			break
		}
	}
	if atIdx <= 0 {
		return "***"
	}
	prefix := string(runes[:atIdx])
	domain := string(runes[atIdx:])
	if len(prefix) <= 2 {
		return prefix + "***" + domain
	}
	return string(runes[0:2]) + "***" + domain
}

type registerRequest struct {
	Organization string `json:"organization"`
	Username     string `json:"username"`
	Password     string `json:"password"`
}

// Register creates a new organization and its first (admin) user.
func Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Organization = strings.TrimSpace(req.Organization)
	if len(req.Username) < 3 || len(req.Password) < 8 {
		respondError(c, http.StatusBadRequest, "username or password too short")
		return
	}
	if len(req.Organization) < 2 {
		respondError(c, http.StatusBadRequest, "organization name required")
		return
	}

	var count int64
	database.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		respondError(c, http.StatusConflict, "user already exists")
		return
	}
	database.DB.Model(&models.Organization{}).Where("LOWER(name) = LOWER(?)", req.Organization).Count(&count)
	if count > 0 {
		respondError(c, http.StatusConflict, "organization already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondStoreError(c, err, "failed to hash password")
		return
	}

	var user models.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		org := models.Organization{Name: req.Organization}
		if err := tx.Create(&org).Error; err != nil {
			return err
		}
		user = models.User{
			OrganizationID: org.ID,
			Username:       req.Username,
			PasswordHash:   string(hash),
			Role:           models.RoleAdmin,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		respondStoreError(c, err, "failed to save user")
		return
	}

	database.CreateAuditLog(user.OrganizationID, user.ID, "user", user.ID, "create", "registered "+user.Username)
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "organizationId": user.OrganizationID})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var user models.User
	err := database.DB.Where("username = ?", strings.TrimSpace(req.Username)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn().Str("username", maskEmail(req.Username)).Msg("login for unknown user")
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}
	if err != nil {
		respondStoreError(c, err, "failed to load user")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("username", maskEmail(user.Username)).Uint("user_id", user.ID).Msg("login with wrong password")
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionUserID, user.ID)
	sess.Set(middleware.SessionOrgID, user.OrganizationID)
	sess.Set(middleware.SessionRole, string(user.Role))
	if err := sess.Save(); err != nil {
		respondStoreError(c, err, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "role": user.Role, "organizationId": user.OrganizationID})
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Status(http.StatusNoContent)
}
