//go:build ignore

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"Inkwell/internal/auth"
)

// Issues an HS256 identity token for local development.
// The real identity provider does this in production; this exists so curl and
// websocket clients can hit a dev server without one.
//
// Usage:
//   JWT_SECRET=dev-secret go run scripts/issue_dev_token.go -actor did:plc:alice -name Alice
//   JWT_SECRET=dev-secret go run scripts/issue_dev_token.go -actor did:plc:mod -role moderator

func main() {
	actor := flag.String("actor", "did:plc:devuser", "actor identifier (sub claim)")
	name := flag.String("name", "Dev User", "display name")
	role := flag.String("role", auth.RoleUser, "role claim (user or moderator)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if *role != auth.RoleUser && *role != auth.RoleModerator {
		log.Fatalf("Unknown role %q", *role)
	}

	token, err := auth.SignToken(*actor, *name, *role, []byte(secret), *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}
