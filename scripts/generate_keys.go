//go:build ignore

// This script generates random API keys in the API_KEYS format.
// Run with: go run scripts/generate_keys.go client-a client-b
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

const keyBytes = 24

func generateKey() (string, error) {
	b := make([]byte, keyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func main() {
	clients := os.Args[1:]
	if len(clients) == 0 {
		clients = []string{"default"}
	}

	pairs := make([]string, 0, len(clients))
	for _, client := range clients {
		if strings.ContainsAny(client, ":,") {
			fmt.Fprintf(os.Stderr, "client id %q must not contain ':' or ','\n", client)
			os.Exit(1)
		}
		key, err := generateKey()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating key: %v\n", err)
			os.Exit(1)
		}
		pairs = append(pairs, client+":"+key)
	}

	fmt.Println("# Add to your .env file:")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("API_KEYS=%s\n", strings.Join(pairs, ","))
}
