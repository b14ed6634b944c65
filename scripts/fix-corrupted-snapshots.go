package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/superstar-draft/internal/redis"
	rostersnapshot "github.com/KirkDiggler/superstar-draft/internal/repositories/roster_snapshot"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redis.NewClient(redisURL, nil)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted roster snapshots...")

	result, err := rostersnapshot.ScanRedis(ctx, client)
	if err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d snapshots, found %d corrupted entries\n", result.Checked, len(result.Problems))
	if len(result.Problems) == 0 {
		fmt.Println("No corrupted snapshots found!")
		return
	}

	fmt.Println("\nCorrupted snapshots:")
	for _, p := range result.Problems {
		fmt.Printf("  - %s (%s)\n", p.Key, p.Reason)
	}

	fmt.Print("\nDo you want to DELETE these snapshots? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}
	for _, p := range result.Problems {
		if err := client.Del(ctx, p.Key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", p.Key, err)
		} else {
			fmt.Printf("Deleted %s\n", p.Key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
