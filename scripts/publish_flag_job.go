//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type FlagRefreshEvent struct {
	JobID     uuid.UUID `json:"job_id"`
	EntityID  int64     `json:"entity_id"`
	SourceURL string    `json:"source_url"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	entityID := flag.Int64("entity", 2, "Entity id whose flag to refresh")
	sourceURL := flag.String("url", "https://flagcdn.com/fr.svg", "Upstream flag image URL")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := FlagRefreshEvent{
		JobID:     uuid.New(),
		EntityID:  *entityID,
		SourceURL: *sourceURL,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:flag:refresh",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published successfully!\n")
	fmt.Printf("   Stream: stream:flag:refresh\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Job ID: %s\n", event.JobID)
	fmt.Printf("   Entity ID: %d\n", event.EntityID)
	fmt.Printf("   Source URL: %s\n", event.SourceURL)

	fmt.Printf("\nWaiting for response in stream:flag:done...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for response")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{"stream:flag:done", "0"},
				Count:   10,
				Block:   0,
			}).Result()

			if err != nil && err != redis.Nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var response map[string]interface{}
					if err := json.Unmarshal([]byte(dataStr), &response); err != nil {
						continue
					}

					if jobID, ok := response["job_id"].(string); ok {
						if jobID == event.JobID.String() {
							fmt.Printf("\nResponse received!\n")
							prettyJSON, _ := json.MarshalIndent(response, "", "  ")
							fmt.Printf("%s\n", prettyJSON)
							return
						}
					}
				}
			}
		}
	}
}
