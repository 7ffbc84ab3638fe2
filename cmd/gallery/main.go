package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/artshowcase/showcase/internal/cli"
)

func main() {
	// GALLERY_API_URL may come from .env
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
