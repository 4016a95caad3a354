// Command terminal is the in-store approval console. It watches the store's
// pending issuance queue and lets the operator approve or reject requests
// from stdin.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"stamppass/internal/client"
	"stamppass/internal/pkg/clock"
	"stamppass/internal/pkg/countdown"
)

func main() {
	var (
		baseURL  = flag.String("api", "http://localhost:8888", "API base URL")
		token    = flag.String("token", os.Getenv("TERMINAL_TOKEN"), "staff access token")
		storeArg = flag.String("store", "", "store ID (UUID)")
		interval = flag.Duration("interval", 2*time.Second, "queue poll interval")
	)
	flag.Parse()

	storeID, err := uuid.Parse(*storeArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid -store:", err)
		os.Exit(2)
	}
	if *token == "" {
		fmt.Fprintln(os.Stderr, "missing -token (or TERMINAL_TOKEN)")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	api := client.NewAPI(*baseURL, *token, nil)
	queue := client.NewApprovalQueue(api, client.NewCache(), clock.NewRealClock(), storeID, *interval)

	if err := queue.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load pending queue:", err)
		os.Exit(1)
	}
	defer queue.Stop()

	fmt.Printf("watching store %s (poll every %s)\n", storeID, *interval)
	fmt.Println("commands: list | approve <n> | reject <n> | quit")
	render(queue.Items())

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nshutting down")
			return
		case <-ticker.C:
			render(queue.Items())
		case line, ok := <-lines:
			if !ok {
				return
			}
			if quit := handleCommand(ctx, queue, line); quit {
				return
			}
		}
	}
}

func handleCommand(ctx context.Context, queue *client.ApprovalQueue, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "q":
		return true
	case "list", "l":
		render(queue.Items())
	case "approve", "a", "reject", "r":
		if len(fields) != 2 {
			fmt.Println("usage: approve <n> | reject <n>")
			return false
		}
		item := itemByIndex(queue.Items(), fields[1])
		if item == nil {
			fmt.Println("no such item; run list")
			return false
		}

		var err error
		if fields[0] == "approve" || fields[0] == "a" {
			var resolved *client.IssuanceRequest
			resolved, err = queue.Approve(ctx, item.ID)
			if err == nil && resolved.RewardsIssued > 0 {
				fmt.Printf("approved %s — card completed, reward issued\n", item.CustomerEmail)
			} else if err == nil {
				fmt.Printf("approved %s (%d/%d)\n", item.CustomerEmail, resolved.CurrentStampCount, item.GoalCount)
			}
		} else {
			_, err = queue.Reject(ctx, item.ID)
			if err == nil {
				fmt.Printf("rejected %s\n", item.CustomerEmail)
			}
		}
		if err != nil {
			// The item stays in the queue until a mutation succeeds or
			// a later poll confirms it resolved elsewhere.
			fmt.Println("failed:", err)
		}
		render(queue.Items())
	default:
		fmt.Println("commands: list | approve <n> | reject <n> | quit")
	}
	return false
}

func itemByIndex(items []*client.PendingIssuance, arg string) *client.PendingIssuance {
	var n int
	if _, err := fmt.Sscanf(arg, "%d", &n); err != nil {
		return nil
	}
	if n < 1 || n > len(items) {
		return nil
	}
	return items[n-1]
}

func render(items []*client.PendingIssuance) {
	if len(items) == 0 {
		fmt.Println("-- no pending requests --")
		return
	}
	fmt.Println("-- pending requests --")
	for i, item := range items {
		fmt.Printf("%2d. %-30s %d/%d stamps  expires in %s\n",
			i+1, item.CustomerEmail, item.CurrentStampCount, item.GoalCount,
			countdown.Format(int(item.RemainingSeconds)))
	}
}
