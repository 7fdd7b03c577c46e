package globals

import (
	"context"
	"os"

	"github.com/joho/godotenv"
)

var JwtSecret = []byte("recipe-app-dev-secret")

func init() {
	// .env is optional; the system environment wins when both are set.
	_ = godotenv.Load()
	if s := os.Getenv("JWT_SECRET"); s != "" {
		JwtSecret = []byte(s)
	}
}

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
