package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/bme-wacoisd/google-classroom/core/classroom"
	"github.com/bme-wacoisd/google-classroom/core/config"
	"github.com/bme-wacoisd/google-classroom/core/roster"
)

func main() {
	names := os.Args[1:]

	if len(names) == 0 {
		// No names given: pull the live course list and check all of it
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatal(err)
		}

		client, err := classroom.NewClient(cfg.Classroom)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("Loading course list...")
		courseList, err := client.ListCourses(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Loaded %d courses\n", len(courseList))

		for _, course := range courseList {
			names = append(names, course.Name)
		}
	}

	fmt.Println("\n=== Period extraction per course name ===")

	claimed := map[string][]string{}
	unclaimed := 0
	for _, name := range names {
		raw, ok := roster.ExtractPeriod(name)
		if !ok {
			unclaimed++
			fmt.Printf("Course: %q\n  ⚠️  No pattern matched - this course can never claim a period\n", name)
			continue
		}

		period := roster.NormalizePeriod(raw)
		fmt.Printf("Course: %q\n  -> Extracted: %q, normalized: %q\n", name, raw, period)
		claimed[period] = append(claimed[period], name)
	}

	fmt.Println("\n=== Collisions ===")
	collisions := 0
	for period, claimants := range claimed {
		if len(claimants) < 2 {
			continue
		}
		collisions++
		fmt.Printf("Period %q is claimed by %d courses:\n", period, len(claimants))
		for i, name := range claimants {
			if i == 0 {
				fmt.Printf("  ✅ %q (first in list order, the audit aligns this one)\n", name)
			} else {
				fmt.Printf("  ⚠️  %q (shadowed)\n", name)
			}
		}
	}
	if collisions == 0 {
		fmt.Println("None - every period has at most one claimant")
	}

	fmt.Printf("\nTotal: %d names, %d without a period, %d collisions\n", len(names), unclaimed, collisions)
}
