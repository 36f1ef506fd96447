package main

import (
	"github.com/joho/godotenv"

	"cinemaseat-cli/cmd"
)

func main() {
	// local overrides for CINEMASEAT_URL and CINEMASEAT_LOG
	_ = godotenv.Load()
	cmd.Execute()
}
