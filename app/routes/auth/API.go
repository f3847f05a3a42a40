package auth

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/config"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/database"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Mess Manager",
	}, "")
}

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Mobile   string `json:"mobile"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Mobile == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Mobile and password are required"})
	}

	user, err := database.GetUserByMobile(config.GetDB(), req.Mobile)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if user.Status != models.StatusActive {
		return c.Status(403).JSON(fiber.Map{"error": "Account is inactive"})
	}

	if !CheckPasswordHash(req.Password, user.PasswordHash) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := GenerateJWT(user.ID, user.Mobile, user.Name, user.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	// Set JWT as HTTP-only cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(tokenLifetime),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user": fiber.Map{
			"id":     user.ID,
			"name":   user.Name,
			"mobile": user.Mobile,
			"role":   user.Role,
		},
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	// Clear JWT cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Logged out"})
}

func MeAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Account no longer exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"user": user})
}

// AuthMiddleware validates JWT and sets user context
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		return c.Redirect("/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/login")
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_mobile", claims.Mobile)
	c.Locals("user_name", claims.Name)
	c.Locals("user_role", claims.Role)

	return c.Next()
}

// OwnerOnly rejects requests from non-owner accounts.
func OwnerOnly(c *fiber.Ctx) error {
	role, ok := c.Locals("user_role").(models.Role)
	if ok && role == models.RoleOwner {
		return c.Next()
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
	return c.Status(403).Render("error", fiber.Map{
		"Title":        "Access Forbidden - Mess Manager",
		"ErrorCode":    "403",
		"ErrorTitle":   "Access Forbidden",
		"ErrorMessage": "You don't have permission to access this resource.",
	})
}
