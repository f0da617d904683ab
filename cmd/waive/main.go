// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"syllabus-scan/internal/waivers"
)

func main() {
	var (
		waiversFile = flag.String("waivers-file", "", "Path to waiver configuration file (default: ~/.syllabus-scan/waivers.yaml)")
		action      = flag.String("action", "", "Action to perform: list, add, remove, cleanup")
		regime      = flag.String("regime", "", "Compliance regime name (for add action)")
		field       = flag.String("field", "", "Field name to waive (for add action)")
		reason      = flag.String("reason", "", "Reason for the waiver (for add action)")
		createdBy   = flag.String("created-by", "", "Who approved the waiver (for add action)")
		expires     = flag.String("expires", "", "Expiry date YYYY-MM-DD (for add action, default: 90 days)")
		id          = flag.String("id", "", "Waiver rule ID (for remove action)")
	)
	flag.Parse()

	if *action == "" {
		fmt.Println("Error: --action is required")
		fmt.Println("Usage: syllabus-waive --action <list|add|remove|cleanup> [options]")
		os.Exit(1)
	}

	manager := waivers.NewManager(*waiversFile)

	switch *action {
	case "list":
		listWaivers(manager)
	case "add":
		if *regime == "" || *field == "" {
			fmt.Println("Error: --regime and --field are required for add action")
			os.Exit(1)
		}
		addWaiver(manager, *regime, *field, *reason, *createdBy, *expires)
	case "remove":
		if *id == "" {
			fmt.Println("Error: --id is required for remove action")
			os.Exit(1)
		}
		removeWaiver(manager, *id)
	case "cleanup":
		cleanupExpired(manager)
	default:
		fmt.Printf("Error: Unknown action '%s'\n", *action)
		fmt.Println("Valid actions: list, add, remove, cleanup")
		os.Exit(1)
	}
}

func listWaivers(manager *waivers.Manager) {
	rules := manager.ListWaivers()
	if len(rules) == 0 {
		fmt.Println("No waiver rules found.")
		return
	}

	fmt.Printf("Found %d waiver rules:\n\n", len(rules))
	for _, rule := range rules {
		fmt.Printf("ID: %s\n", rule.ID)
		fmt.Printf("Regime: %s\n", rule.Regime)
		fmt.Printf("Field: %s\n", rule.Field)
		fmt.Printf("Reason: %s\n", rule.Reason)
		fmt.Printf("Enabled: %t\n", rule.Enabled)
		if rule.CreatedBy != "" {
			fmt.Printf("Created By: %s\n", rule.CreatedBy)
		}
		fmt.Printf("Created At: %s\n", rule.CreatedAt.Format("2006-01-02 15:04:05"))
		if rule.ExpiresAt != nil {
			fmt.Printf("Expires At: %s\n", rule.ExpiresAt.Format("2006-01-02 15:04:05"))
		}
		fmt.Println("---")
	}
}

func addWaiver(manager *waivers.Manager, regime, field, reason, createdBy, expires string) {
	var expiresAt *time.Time
	if expires != "" {
		parsed, err := time.Parse("2006-01-02", expires)
		if err != nil {
			fmt.Printf("Error: invalid --expires date '%s': use YYYY-MM-DD\n", expires)
			os.Exit(1)
		}
		expiresAt = &parsed
	}

	if err := manager.AddWaiver(regime, field, reason, createdBy, expiresAt); err != nil {
		fmt.Printf("Error adding waiver: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully added waiver for %s/%s\n", regime, field)
}

func removeWaiver(manager *waivers.Manager, id string) {
	if err := manager.RemoveWaiver(id); err != nil {
		fmt.Printf("Error removing waiver: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully removed waiver rule: %s\n", id)
}

func cleanupExpired(manager *waivers.Manager) {
	removed := manager.CleanupExpired()
	fmt.Printf("Cleaned up %d expired waiver rules\n", removed)
}
