package controllers

import (
	"errors"
	"strings"
	"time"

	"dashboard-app/config"
	"dashboard-app/models"
	"dashboard-app/repositories"
	"dashboard-app/utils/logger"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthStore is the slice of the auth repository the controller uses;
// handler tests swap in a stub.
type AuthStore interface {
	FindUserByLogin(login string) (models.UserDashboard, error)
	CreateLoginLog(log *models.LoginLog) error
	CloseLoginSession(sessionID string, at time.Time) (int64, error)
	CreateDashboardUser(user *models.UserDashboard) error
}

type AuthController struct {
	Store AuthStore
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Store: repositories.NewAuthRepository(db)}
}

// getClientInfo derives ip, user agent and a rough browser/os/device
// classification for the login audit log.
func getClientInfo(ctx *fiber.Ctx) (ip, userAgent, browser, os, device string) {
	ip = ctx.IP()
	if forwarded := ctx.Get("X-Forwarded-For"); forwarded != "" {
		ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	userAgent = ctx.Get("User-Agent")
	if userAgent == "" {
		userAgent = "UNKNOWN"
	}
	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	default:
		browser = "Other"
	}

	switch {
	case strings.Contains(ua, "windows"):
		os = "Windows"
	case strings.Contains(ua, "android"):
		os = "Android"
	case strings.Contains(ua, "iphone"):
		os = "iOS"
	default:
		os = "Other"
	}

	device = "Desktop"
	if strings.Contains(ua, "mobile") {
		device = "Mobile"
	}

	return ip, userAgent, browser, os, device
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request",
		})
	}

	if input.Username == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Username and password are required",
		})
	}

	sessionID := uuid.NewString()
	ip, ua, browser, os, device := getClientInfo(ctx)
	now := time.Now()

	// default log FAILED, flipped on success
	auditLog := models.LoginLog{
		SessionID:   sessionID,
		Username:    input.Username,
		LoginAt:     &now,
		IPAddress:   ip,
		UserAgent:   ua,
		Browser:     browser,
		OS:          os,
		DeviceType:  device,
		LoginStatus: "FAILED",
		CreatedAt:   now,
	}

	user, err := c.Store.FindUserByLogin(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			reason := "USER_NOT_FOUND"
			auditLog.FailureReason = &reason
			c.writeLoginLog(&auditLog)

			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "User not found",
			})
		}
		logger.Error("login lookup failed", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error",
		})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		reason := "WRONG_PASSWORD"
		auditLog.UserID = &user.ID
		auditLog.FailureReason = &reason
		c.writeLoginLog(&auditLog)

		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid credentials",
		})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"session_id": sessionID,
		"exp":        now.Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	})

	tokenString, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		logger.Error("failed to sign token", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate token",
		})
	}

	auditLog.UserID = &user.ID
	auditLog.LoginStatus = "SUCCESS"
	auditLog.FailureReason = nil
	c.writeLoginLog(&auditLog)

	ctx.Cookie(config.GetTokenCookie(tokenString))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"user": fiber.Map{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
				"name":     user.Name,
			},
			"expiresIn": config.JWTExpiration,
		},
	})
}

// Logout closes the audit row for the token's session and clears the
// cookie. A missing or stale token still clears the cookie.
func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	tokenString := ctx.Cookies("token")

	if tokenString != "" {
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid signing method")
			}
			return []byte(config.JWTSecret), nil
		})

		if err == nil {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if sessionID, ok := claims["session_id"].(string); ok && sessionID != "" {
					closed, err := c.Store.CloseLoginSession(sessionID, time.Now())
					if err != nil {
						logger.Error("failed to close login log", zap.Error(err))
					} else if closed == 0 {
						// double logout or expired session, not fatal
						logger.Warn("no login log to close", zap.String("session_id", sessionID))
					}
				}
			}
		}
	}

	ctx.Cookie(config.GetTokenCookie(""))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logged out",
	})
}

// Me returns the verified claims of the current token.
func (c *AuthController) Me(ctx *fiber.Ctx) error {
	claims, ok := ctx.Locals("userData").(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"user":    nil,
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    claims,
	})
}

func (c *AuthController) CreateUser(ctx *fiber.Ctx) error {
	var input struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Name     string `json:"name" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request",
		})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error",
		})
	}

	user := models.UserDashboard{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Name:     input.Name,
	}

	if err := c.Store.CreateDashboardUser(&user); err != nil {
		logger.Error("failed to create dashboard user", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create user",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
	})
}

// writeLoginLog records the audit row; the login outcome never depends
// on whether the audit write succeeded.
func (c *AuthController) writeLoginLog(auditLog *models.LoginLog) {
	if err := c.Store.CreateLoginLog(auditLog); err != nil {
		logger.Error("failed to write login log", zap.Error(err))
	}
}
