package bookstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store owns the single SQLite connection behind the sales ledger.
//
// Known ledger asymmetry: deleting a sale does not credit stock back to the
// book. Stock only ever decreases, through RecordSale.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the ledger database at path, applies pragmas and
// the schema, and seeds demo rows on first run (empty member table).
func Open(path string) (*Store, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY on the interactive path.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.seedIfEmpty(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error { return s.db.Close() }

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("apply %q: %w", pragma, err)
		}
	}
	return nil
}

// applySchema creates the three ledger tables. Idempotent.
func applySchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS member (
            mid TEXT PRIMARY KEY,
            mname TEXT NOT NULL,
            mphone TEXT NOT NULL,
            memail TEXT
        );`,
		`CREATE TABLE IF NOT EXISTS book (
            bid TEXT PRIMARY KEY,
            btitle TEXT NOT NULL,
            bprice INTEGER NOT NULL,
            bstock INTEGER NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS sale (
            sid INTEGER PRIMARY KEY AUTOINCREMENT,
            sdate TEXT NOT NULL,
            mid TEXT NOT NULL,
            bid TEXT NOT NULL,
            sqty INTEGER NOT NULL,
            sdiscount INTEGER NOT NULL,
            stotal INTEGER NOT NULL
        );`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// seedIfEmpty inserts the demo members, books, and sample sales the first
// time the database is created. The sample sales carry today's date and do
// not decrement the seeded stock.
func (s *Store) seedIfEmpty() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM member`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	members := []Member{
		{ID: "M001", Name: "Alice", Phone: "0912-345678", Email: "alice@example.com"},
		{ID: "M002", Name: "Bob", Phone: "0923-456789", Email: "bob@example.com"},
		{ID: "M003", Name: "Cathy", Phone: "0934-567890", Email: "cathy@example.com"},
	}
	for _, m := range members {
		if _, err := tx.Exec(`INSERT INTO member(mid,mname,mphone,memail) VALUES(?,?,?,?)`,
			m.ID, m.Name, m.Phone, m.Email); err != nil {
			return fmt.Errorf("seed member %s: %w", m.ID, err)
		}
	}

	books := []Book{
		{ID: "B001", Title: "Python Programming", Price: 600, Stock: 50},
		{ID: "B002", Title: "Data Science Basics", Price: 800, Stock: 30},
		{ID: "B003", Title: "Machine Learning Guide", Price: 1200, Stock: 20},
	}
	for _, b := range books {
		if _, err := tx.Exec(`INSERT INTO book(bid,btitle,bprice,bstock) VALUES(?,?,?,?)`,
			b.ID, b.Title, b.Price, b.Stock); err != nil {
			return fmt.Errorf("seed book %s: %w", b.ID, err)
		}
	}

	today := time.Now().Format("2006-01-02")
	sales := []Sale{
		{Date: today, MemberID: "M001", BookID: "B001", Qty: 2, Discount: 100, Total: 1100},
		{Date: today, MemberID: "M002", BookID: "B002", Qty: 1, Discount: 50, Total: 750},
		{Date: today, MemberID: "M001", BookID: "B003", Qty: 3, Discount: 200, Total: 3400},
		{Date: today, MemberID: "M003", BookID: "B001", Qty: 1, Discount: 0, Total: 600},
	}
	for _, sale := range sales {
		if _, err := tx.Exec(`INSERT INTO sale(sdate,mid,bid,sqty,sdiscount,stotal) VALUES(?,?,?,?,?,?)`,
			sale.Date, sale.MemberID, sale.BookID, sale.Qty, sale.Discount, sale.Total); err != nil {
			return fmt.Errorf("seed sale: %w", err)
		}
	}

	return tx.Commit()
}
