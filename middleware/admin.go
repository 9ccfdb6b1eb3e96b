// middleware/admin.go
package middleware

import (
	"strings"

	"payu-draw-api/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminWallet is the one address allowed through the admin endpoints.
const AdminWallet = "0xd9C4b8436d2a235A1f7DB09E680b5928cFdA641a"

// AdminVerifier decides whether a caller-supplied wallet is an admin. Kept as
// an interface so the string comparison can later be swapped for real
// signature verification without touching the handlers.
type AdminVerifier interface {
	IsAdmin(wallet string) bool
}

// WalletVerifier matches one fixed address, case-insensitively.
type WalletVerifier struct {
	Admin string
}

func NewWalletVerifier() WalletVerifier {
	return WalletVerifier{Admin: AdminWallet}
}

func (v WalletVerifier) IsAdmin(wallet string) bool {
	if wallet == "" {
		return false
	}
	return strings.EqualFold(wallet, v.Admin)
}

// AdminOnlyMiddleware rejects requests whose X-Wallet-Address header does not
// verify as admin.
func AdminOnlyMiddleware(verifier AdminVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		wallet := c.Get("X-Wallet-Address")
		if !verifier.IsAdmin(wallet) {
			logger.Warn("admin access denied",
				zap.String("wallet", wallet),
				zap.String("path", c.Path()),
			)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}
		return c.Next()
	}
}
