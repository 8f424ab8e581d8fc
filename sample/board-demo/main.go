package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mcalvora/leadflow/internal/entity"
	"github.com/mcalvora/leadflow/internal/pipeline"
)

// Manual probe for the pipeline board against a running API.
// Start the API first, then: go run ./sample/board-demo
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  no .env file found, using system environment")
	}

	baseURL := os.Getenv("LEADFLOW_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := pipeline.NewClient(baseURL)

	fmt.Printf("🔄 Fetching leads from %s...\n", baseURL)
	leads, err := client.FetchLeads(context.Background())
	if err != nil {
		log.Fatalf("could not fetch leads: %v", err)
	}
	if len(leads) == 0 {
		log.Fatal("no leads on the server, create one first (POST /api/leads)")
	}

	board := pipeline.NewBoard(client, func(leadID, message string) {
		fmt.Printf("⚠️  %s: %s\n", leadID, message)
	})
	board.Load(leads)
	printColumns(board)

	target := entity.StatusContacted
	if leads[0].Status == entity.StatusContacted {
		target = entity.StatusQualified
	}

	fmt.Printf("🔄 Dragging %q to %s...\n", leads[0].Name, target)
	if err := board.Move(leads[0].ID, target); err != nil {
		log.Fatalf("move rejected: %v", err)
	}
	board.Wait()

	fmt.Println("Board after the move:")
	printColumns(board)
}

func printColumns(board *pipeline.Board) {
	cols := board.Columns()
	for _, status := range entity.Statuses {
		fmt.Printf("   %-10s %d lead(s)\n", status, len(cols[status]))
	}
}
