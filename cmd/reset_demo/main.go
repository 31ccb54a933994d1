package main

import (
	"fmt"
	"os"
	"strings"

	"bookstore-management/bookstore"
)

func main() {
	// Clean up any existing ledger files
	fmt.Println("Removing existing ledger files...")
	dbFiles := []string{"bookstore.db", "bookstore.db-shm", "bookstore.db-wal"}
	for _, file := range dbFiles {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			fmt.Printf("Warning: could not remove %s: %v\n", file, err)
		}
	}

	// Reopening seeds the demo members, books, and sample sales.
	store, err := bookstore.Open("bookstore.db")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	members, err := store.ListMembers()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving members: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\nSeeded members:")
	fmt.Printf("%-6s %-20s %-15s %s\n", "ID", "Name", "Phone", "Email")
	fmt.Println(strings.Repeat("-", 65))
	for _, m := range members {
		fmt.Printf("%-6s %-20s %-15s %s\n", m.ID, m.Name, m.Phone, m.Email)
	}

	books, err := store.ListBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving books: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\nSeeded books:")
	fmt.Printf("%-6s %-30s %8s %8s\n", "ID", "Title", "Price", "Stock")
	fmt.Println(strings.Repeat("-", 56))
	for _, b := range books {
		fmt.Printf("%-6s %-30s %8s %8d\n", b.ID, b.Title, bookstore.FormatAmount(b.Price), b.Stock)
	}

	fmt.Println("\nDemo data ready.")
}
