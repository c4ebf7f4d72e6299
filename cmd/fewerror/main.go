// fewerror corrects people who say "less" when they mean "fewer".
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/wjt/fewerror/cmd/fewerror/cmd"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
