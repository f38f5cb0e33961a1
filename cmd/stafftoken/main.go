// Command stafftoken issues a staff token scoped to one tenant, for venue
// onboarding and local testing of the staff endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"wheel-server/internal/auth/processor"
	"wheel-server/internal/config"
	"wheel-server/internal/observability"

	"github.com/google/uuid"
)

func main() {
	tenant := flag.String("tenant", "", "tenant id the token is scoped to")
	staff := flag.String("staff", "", "staff member id, stored as the token subject")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	ctx := context.Background()
	logger := observability.NewLogger()

	tenantID, err := uuid.Parse(*tenant)
	if err != nil || *staff == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	authProc := processor.New(cfg.Auth.JWTSecret, logger)
	token, err := authProc.IssueStaffToken(ctx, *staff, tenantID, *ttl)
	if err != nil {
		logger.Fatal(ctx, "failed to issue staff token", err)
	}

	fmt.Println(token)
}
