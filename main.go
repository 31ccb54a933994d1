package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"bookstore-management/bookstore"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultDBFile = "bookstore.db"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand wires the interactive menu as the default action. The
// program takes no flags; running it drops straight into the menu.
func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "bookstore",
		Short:         "Terminal point-of-sale ledger for a small bookstore",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := bookstore.Open(dbPath())
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer store.Close()

			fmt.Println("Welcome to the bookstore sales ledger!")
			runMenu(store, os.Stdin, os.Stdout)
			return nil
		},
	}
}

// dbPath resolves the ledger location: BOOKSTORE_DB (optionally via a .env
// file) or the fixed default in the working directory.
func dbPath() string {
	// Missing .env files are acceptable; configuration may come from the
	// environment directly.
	_ = godotenv.Load()
	if path := os.Getenv("BOOKSTORE_DB"); path != "" {
		return path
	}
	return defaultDBFile
}

// runMenu is the blocking read-eval-print loop. Choice "5" or the literal
// text "enter" (case-insensitive) exits.
func runMenu(store *bookstore.Store, in io.Reader, out io.Writer) {
	sc := bufio.NewScanner(in)

	for {
		printMenu(out)
		fmt.Fprint(out, "Choose an option: ")
		if !sc.Scan() {
			return
		}
		choice := strings.TrimSpace(sc.Text())

		switch {
		case choice == "5" || strings.EqualFold(choice, "enter"):
			fmt.Fprintln(out, "Thanks for using the bookstore ledger!")
			return
		case choice == "1":
			handleAddSale(sc, store, out)
		case choice == "2":
			if err := store.WriteReport(out); err != nil {
				fmt.Fprintf(out, "Error printing report: %v\n", err)
			}
		case choice == "3":
			handleUpdateSale(sc, store, out)
		case choice == "4":
			handleDeleteSale(sc, store, out)
		default:
			fmt.Fprintln(out, "Please choose a valid option (1-5).")
		}
	}
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "*************** Menu ***************")
	fmt.Fprintln(out, "1. Record a sale")
	fmt.Fprintln(out, "2. Print sales report")
	fmt.Fprintln(out, "3. Update a sale's discount")
	fmt.Fprintln(out, "4. Delete a sale")
	fmt.Fprintln(out, "5. Exit")
	fmt.Fprintln(out, "************************************")
}

func handleAddSale(sc *bufio.Scanner, store *bookstore.Store, out io.Writer) {
	var date string
	for {
		fmt.Fprint(out, "Sale date (YYYY-MM-DD): ")
		if !sc.Scan() {
			return
		}
		date = strings.TrimSpace(sc.Text())
		if bookstore.ValidDate(date) {
			break
		}
		fmt.Fprintln(out, "Invalid date format, expected YYYY-MM-DD.")
	}

	fmt.Fprint(out, "Member ID: ")
	if !sc.Scan() {
		return
	}
	memberID := strings.TrimSpace(sc.Text())

	fmt.Fprint(out, "Book ID: ")
	if !sc.Scan() {
		return
	}
	bookID := strings.TrimSpace(sc.Text())

	qty, ok := promptInt(sc, out, "Quantity: ",
		func(n int64) bool { return n > 0 }, "Quantity must be a positive integer.")
	if !ok {
		return
	}
	discount, ok := promptInt(sc, out, "Discount amount: ",
		func(n int64) bool { return n >= 0 }, "Discount must be a non-negative integer.")
	if !ok {
		return
	}

	total, err := store.RecordSale(date, memberID, bookID, qty, discount)
	if err != nil {
		fmt.Fprintf(out, "=> Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "=> Sale recorded! (total: %s)\n", bookstore.FormatAmount(total))
}

func handleUpdateSale(sc *bufio.Scanner, store *bookstore.Store, out io.Writer) {
	saleID, ok := pickSale(sc, store, out, "update")
	if !ok {
		return
	}

	discount, ok := promptInt(sc, out, "New discount amount: ",
		func(n int64) bool { return n >= 0 }, "Discount must be a non-negative integer.")
	if !ok {
		return
	}

	total, err := store.UpdateDiscount(saleID, discount)
	if err != nil {
		fmt.Fprintf(out, "=> Error updating sale: %v\n", err)
		return
	}
	fmt.Fprintf(out, "=> Sale %d updated! (total: %s)\n", saleID, bookstore.FormatAmount(total))
}

func handleDeleteSale(sc *bufio.Scanner, store *bookstore.Store, out io.Writer) {
	saleID, ok := pickSale(sc, store, out, "delete")
	if !ok {
		return
	}

	if err := store.DeleteSale(saleID); err != nil {
		fmt.Fprintf(out, "=> Error deleting sale: %v\n", err)
		return
	}
	fmt.Fprintf(out, "=> Sale %d deleted\n", saleID)
}

// pickSale shows the numbered list of existing sales, then reads either a
// valid sale id or empty input to cancel, re-prompting on anything else.
func pickSale(sc *bufio.Scanner, store *bookstore.Store, out io.Writer, verb string) (int64, bool) {
	summaries, err := store.SaleSummaries()
	if err != nil {
		fmt.Fprintf(out, "Error listing sales: %v\n", err)
		return 0, false
	}
	if len(summaries) == 0 {
		fmt.Fprintf(out, "No sales available to %s.\n", verb)
		return 0, false
	}

	fmt.Fprintln(out, "\n======== Sales ========")
	for _, sum := range summaries {
		fmt.Fprintf(out, "%d. %s - %s - %s\n", sum.ID, sum.Date, sum.Member, sum.Title)
	}
	fmt.Fprintln(out, "=======================")

	for {
		fmt.Fprintf(out, "Sale ID to %s (number, or Enter to cancel): ", verb)
		if !sc.Scan() {
			return 0, false
		}
		input := strings.TrimSpace(sc.Text())
		if input == "" {
			fmt.Fprintln(out, "Cancelled.")
			return 0, false
		}

		id, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			fmt.Fprintln(out, "Please enter a number or press Enter to cancel.")
			continue
		}
		exists, err := store.SaleExists(id)
		if err != nil {
			fmt.Fprintf(out, "Error looking up sale: %v\n", err)
			return 0, false
		}
		if !exists {
			fmt.Fprintln(out, "That sale id does not exist, try again.")
			continue
		}
		return id, true
	}
}

// promptInt re-prompts until the input parses as an integer accepted by valid.
func promptInt(sc *bufio.Scanner, out io.Writer, prompt string, valid func(int64) bool, complaint string) (int64, bool) {
	for {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			return 0, false
		}
		n, err := strconv.ParseInt(strings.TrimSpace(sc.Text()), 10, 64)
		if err != nil || !valid(n) {
			fmt.Fprintln(out, complaint)
			continue
		}
		return n, true
	}
}
