// Command recon runs the investigation pipeline over a fixed list of
// example targets and prints each report to stdout. The list can be
// replaced through RECON_TARGETS (comma-separated); there are no flags.
package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vit0-9/recon_api/pkg/recon"
)

var exampleTargets = []string{
	"github.com",
	"http://bit.ly/2m9V3Ld",
	"nonexistentdomain123xyz.org",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARN: Error loading .env file, using environment variables from system if set.")
	}

	investigator, err := recon.NewInvestigator(recon.ConfigFromEnv())
	if err != nil {
		// no resolver, no reconnaissance
		log.Fatalf("Cannot start investigator: %v", err)
	}

	targets := exampleTargets
	if v := os.Getenv("RECON_TARGETS"); v != "" {
		targets = nil
		for _, target := range strings.Split(v, ",") {
			if target = strings.TrimSpace(target); target != "" {
				targets = append(targets, target)
			}
		}
	}

	for _, target := range targets {
		report := investigator.Investigate(context.Background(), target)
		recon.Render(os.Stdout, report)
	}
}
