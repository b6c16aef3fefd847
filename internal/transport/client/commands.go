package client

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Commands provides command-line operations for the client
type Commands struct {
	client  *Client
	baseURL string
}

// NewCommands creates a new Commands instance
func NewCommands(client *Client, baseURL string) *Commands {
	return &Commands{
		client:  client,
		baseURL: baseURL,
	}
}

// Create creates a short link and displays the result
func (c *Commands) Create(ctx context.Context, url, code string) error {
	link, err := c.client.CreateLink(ctx, url, code)
	if err != nil {
		return err
	}

	fmt.Printf("Short link created:\n")
	fmt.Printf("Code: %s\n", link.Code)
	fmt.Printf("Short URL: %s/%s\n", c.baseURL, link.Code)
	fmt.Printf("Target URL: %s\n", link.URL)
	fmt.Printf("Created At: %s\n", link.CreatedAt.Format(time.RFC3339))

	return nil
}

// Get retrieves and displays a link's stats
func (c *Commands) Get(ctx context.Context, code string) error {
	link, err := c.client.GetLink(ctx, code)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Printf("Code '%s' not found\n", code)
			return nil
		}
		return err
	}

	fmt.Printf("Link stats:\n")
	fmt.Printf("Code: %s\n", link.Code)
	fmt.Printf("Target URL: %s\n", link.URL)
	fmt.Printf("Clicks: %d\n", link.Clicks)
	if link.LastClickedAt != nil {
		fmt.Printf("Last Clicked: %s\n", link.LastClickedAt.Format(time.RFC3339))
	} else {
		fmt.Printf("Last Clicked: Never\n")
	}
	fmt.Printf("Created At: %s\n", link.CreatedAt.Format(time.RFC3339))

	return nil
}

// Delete removes a short link
func (c *Commands) Delete(ctx context.Context, code string) error {
	err := c.client.DeleteLink(ctx, code)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Printf("Code '%s' not found\n", code)
			return nil
		}
		return err
	}

	fmt.Printf("Short link '%s' deleted successfully\n", code)
	return nil
}

// List displays all links in a table format
func (c *Commands) List(ctx context.Context) error {
	links, err := c.client.ListLinks(ctx)
	if err != nil {
		return err
	}

	if len(links) == 0 {
		fmt.Println("No links found")
		return nil
	}

	fmt.Printf("%-10s %-50s %-8s %-20s %s\n", "Code", "Target URL", "Clicks", "Last Clicked", "Created At")
	fmt.Println(strings.Repeat("-", 110))

	for _, link := range links {
		lastClicked := "Never"
		if link.LastClickedAt != nil {
			lastClicked = link.LastClickedAt.Format("2006-01-02 15:04:05")
		}

		targetURL := link.URL
		if len(targetURL) > 50 {
			targetURL = targetURL[:47] + "..."
		}

		fmt.Printf("%-10s %-50s %-8d %-20s %s\n",
			link.Code,
			targetURL,
			link.Clicks,
			lastClicked,
			link.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}

	return nil
}
