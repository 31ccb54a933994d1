package bookstore

// Member is a registered store member. Member rows are seeded on first run
// and never created or edited by this program.
type Member struct {
	ID    string
	Name  string
	Phone string
	Email string
}

// Book tracks a title's unit price and remaining stock. Prices are integer
// currency units; stock only decreases, via recorded sales.
type Book struct {
	ID    string
	Title string
	Price int64
	Stock int64
}

// Sale is one ledger row. Total is always recomputed from the book's price at
// write time, never entered directly.
type Sale struct {
	ID       int64
	Date     string
	MemberID string
	BookID   string
	Qty      int64
	Discount int64
	Total    int64
}

// SaleRow is a sale joined with its member name and book title for the report.
type SaleRow struct {
	ID       int64
	Date     string
	Member   string
	Title    string
	Price    int64
	Qty      int64
	Discount int64
	Total    int64
}

// SaleSummary is the short form shown in the update/delete pick lists.
type SaleSummary struct {
	ID     int64
	Date   string
	Member string
	Title  string
}
