package configs

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gorilla/securecookie"
)

// GenerateAndPrintJWTSecret writes a fresh JWT_SECRET line to .env.new_keys.
func GenerateAndPrintJWTSecret() error {
	key := securecookie.GenerateRandomKey(64)
	if key == nil {
		return fmt.Errorf("could not generate JWT secret")
	}
	secret := base64.URLEncoding.EncodeToString(key)

	fmt.Println("================================================")
	fmt.Printf("JWT_SECRET=%s\n", secret)
	fmt.Println("================================================")

	envFilePath := ".env.new_keys"
	file, err := os.Create(envFilePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", envFilePath, err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "JWT_SECRET=%s\n", secret); err != nil {
		return fmt.Errorf("failed to write secret to file %s: %w", envFilePath, err)
	}

	fmt.Printf("✅ Secret written to '%s'. Rotating it invalidates every issued token.\n", envFilePath)
	return nil
}
