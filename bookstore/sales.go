package bookstore

import (
	"database/sql"
	"errors"
	"fmt"
)

// RecordSale validates and inserts one sale, decrementing the book's stock in
// the same transaction. It returns the computed total
// (unit price × quantity − discount). A discount above the subtotal is
// allowed and yields a negative total.
func (s *Store) RecordSale(date, memberID, bookID string, qty, discount int64) (int64, error) {
	if !ValidDate(date) {
		return 0, fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM member WHERE mid=?)`, memberID).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("invalid member id %s", memberID)
	}

	var price, stock int64
	err = tx.QueryRow(`SELECT bprice, bstock FROM book WHERE bid=?`, bookID).Scan(&price, &stock)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("invalid book id %s", bookID)
	}
	if err != nil {
		return 0, err
	}
	if qty > stock {
		return 0, fmt.Errorf("insufficient stock (current stock: %d)", stock)
	}

	total := price*qty - discount

	if _, err := tx.Exec(`INSERT INTO sale(sdate,mid,bid,sqty,sdiscount,stotal) VALUES(?,?,?,?,?,?)`,
		date, memberID, bookID, qty, discount, total); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(`UPDATE book SET bstock = bstock - ? WHERE bid=?`, qty, bookID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return total, nil
}

// UpdateDiscount replaces a sale's discount and recomputes its total from the
// sale's original quantity and the book's current price. Returns the new
// total.
func (s *Store) UpdateDiscount(saleID, discount int64) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var price, qty int64
	err = tx.QueryRow(`
        SELECT b.bprice, s.sqty
        FROM sale s
        JOIN book b ON s.bid = b.bid
        WHERE s.sid = ?`, saleID).Scan(&price, &qty)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("sale %d not found", saleID)
	}
	if err != nil {
		return 0, err
	}

	total := price*qty - discount
	if _, err := tx.Exec(`UPDATE sale SET sdiscount=?, stotal=? WHERE sid=?`,
		discount, total, saleID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return total, nil
}

// DeleteSale removes the sale row by id. Deleting a sale does not restore the
// book's stock.
func (s *Store) DeleteSale(saleID int64) error {
	result, err := s.db.Exec(`DELETE FROM sale WHERE sid=?`, saleID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("sale %d not found", saleID)
	}
	return nil
}

// SaleRows returns every sale joined with its member name and book title,
// ordered by ascending sale id.
func (s *Store) SaleRows() ([]SaleRow, error) {
	rows, err := s.db.Query(`
        SELECT s.sid, s.sdate, m.mname, b.btitle, b.bprice, s.sqty, s.sdiscount, s.stotal
        FROM sale s
        JOIN member m ON s.mid = m.mid
        JOIN book b ON s.bid = b.bid
        ORDER BY s.sid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []SaleRow
	for rows.Next() {
		var r SaleRow
		if err := rows.Scan(&r.ID, &r.Date, &r.Member, &r.Title, &r.Price, &r.Qty, &r.Discount, &r.Total); err != nil {
			return nil, err
		}
		sales = append(sales, r)
	}
	return sales, rows.Err()
}

// SaleSummaries returns the short pick-list rows for the update/delete flows,
// ordered by ascending sale id.
func (s *Store) SaleSummaries() ([]SaleSummary, error) {
	rows, err := s.db.Query(`
        SELECT s.sid, s.sdate, m.mname, b.btitle
        FROM sale s
        JOIN member m ON s.mid = m.mid
        JOIN book b ON s.bid = b.bid
        ORDER BY s.sid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sums []SaleSummary
	for rows.Next() {
		var sum SaleSummary
		if err := rows.Scan(&sum.ID, &sum.Date, &sum.Member, &sum.Title); err != nil {
			return nil, err
		}
		sums = append(sums, sum)
	}
	return sums, rows.Err()
}

// SaleExists reports whether a sale row with the given id exists.
func (s *Store) SaleExists(saleID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM sale WHERE sid=?)`, saleID).Scan(&exists)
	return exists, err
}

// GetMember fetches a single member.
func (s *Store) GetMember(id string) (*Member, error) {
	var m Member
	err := s.db.QueryRow(`SELECT mid,mname,mphone,COALESCE(memail,'') FROM member WHERE mid=?`, id).
		Scan(&m.ID, &m.Name, &m.Phone, &m.Email)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetBook fetches a single book.
func (s *Store) GetBook(id string) (*Book, error) {
	var b Book
	err := s.db.QueryRow(`SELECT bid,btitle,bprice,bstock FROM book WHERE bid=?`, id).
		Scan(&b.ID, &b.Title, &b.Price, &b.Stock)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListMembers returns all members ordered by id.
func (s *Store) ListMembers() ([]*Member, error) {
	rows, err := s.db.Query(`SELECT mid,mname,mphone,COALESCE(memail,'') FROM member ORDER BY mid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Email); err != nil {
			return nil, err
		}
		members = append(members, &m)
	}
	return members, rows.Err()
}

// ListBooks returns all books ordered by id.
func (s *Store) ListBooks() ([]*Book, error) {
	rows, err := s.db.Query(`SELECT bid,btitle,bprice,bstock FROM book ORDER BY bid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Price, &b.Stock); err != nil {
			return nil, err
		}
		books = append(books, &b)
	}
	return books, rows.Err()
}
