package main

import (
	"os"

	"museum-guide/backend/internal/app"
)

// @title        Museum Guide Chat API
// @version      1.0
// @description  Chat proxy behind the Liberation War Museum virtual guide.
// @BasePath     /api
func main() {
	os.Exit(app.Run())
}
