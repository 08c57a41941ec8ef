package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// WithTx runs fn inside one transaction. Calls made through the tx argument
	// join that transaction; nested WithTx calls reuse it.
	WithTx(ctx context.Context, fn TxFunc) error

	SearchBooks(ctx context.Context, query string, page, size int) (model.ListBooks, error)
	LockBook(ctx context.Context, isbn string) error
	IsCheckedOut(ctx context.Context, isbn string) (bool, error)

	LockBorrower(ctx context.Context, cardID string) error
	GetBorrower(ctx context.Context, cardID string) (model.Borrower, error)
	SSNExists(ctx context.Context, ssn string) (bool, error)
	CreateBorrower(ctx context.Context, req model.CreateBorrowerRequest) (string, error)

	CountOpenLoans(ctx context.Context, cardID string) (int, error)
	CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	LockLoan(ctx context.Context, loanID int64) (model.Loan, error)
	CloseLoan(ctx context.Context, loanID int64, dateIn time.Time) (model.Loan, error)
	ListOpenLoans(ctx context.Context, filter model.LoanFilter) ([]model.OpenLoan, error)

	UnpaidFines(ctx context.Context, cardID string) (model.UnpaidFines, error)
	// OverdueLoans locks out other sweeps for the rest of the transaction; call it inside WithTx.
	OverdueLoans(ctx context.Context, today time.Time) ([]model.OverdueLoan, error)
	InsertFine(ctx context.Context, loanID int64, amount decimal.Decimal) error
	UpdateFineAmount(ctx context.Context, loanID int64, amount decimal.Decimal) error
	FinesSummary(ctx context.Context, filter model.FineFilter) ([]model.FineSummary, error)
	PayFines(ctx context.Context, cardID string) (int64, error)
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	db   querier
	pool *pgxpool.Pool
	log  *zap.Logger
	inTx bool
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:   db,
		pool: db,
		log:  log.Named("repo"),
	}, nil
}

const (
	booksTableName       = `books`
	authorsTableName     = `authors`
	bookAuthorsTableName = `book_authors`
	borrowersTableName   = `borrowers`
	loansTableName       = `book_loans`
	finesTableName       = `fines`
)

const (
	openLoanIsbnIndex  = "book_loans_open_isbn_uidx"
	borrowerSSNKey     = "borrowers_ssn_key"
	loanIsbnForeignKey = "book_loans_isbn_fkey"
	loanCardForeignKey = "book_loans_card_id_fkey"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func bookFilter(query string) sq.Sqlizer {
	pattern := contains(query)
	return sq.Or{
		sq.ILike{"b.isbn": pattern},
		sq.ILike{"b.title": pattern},
		sq.Expr(fmt.Sprintf(`exists (select 1 from %s ba2 join %s a2 on a2.author_id = ba2.author_id
			where ba2.isbn = b.isbn and a2.name ilike ?)`, bookAuthorsTableName, authorsTableName), pattern),
	}
}

func (r *repository) SearchBooks(ctx context.Context, query string, page, size int) (model.ListBooks, error) {
	q := qb.Select(
		"b.isbn",
		"b.title",
		"coalesce(string_agg(distinct a.name, ', ' order by a.name), '') as authors",
		fmt.Sprintf("exists (select 1 from %s bl where bl.isbn = b.isbn and bl.date_in is null) as checked_out", loansTableName),
		fmt.Sprintf("(select bl.card_id from %s bl where bl.isbn = b.isbn and bl.date_in is null limit 1) as borrower_id", loansTableName),
	).
		From(booksTableName + " b").
		LeftJoin(fmt.Sprintf("%s ba on ba.isbn = b.isbn", bookAuthorsTableName)).
		LeftJoin(fmt.Sprintf("%s a on a.author_id = ba.author_id", authorsTableName)).
		Where(bookFilter(query)).
		GroupBy("b.isbn", "b.title").
		OrderBy("b.title", "b.isbn")

	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("SearchBooks", zap.String("query", sqlStr), zap.Any("args", args))

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return model.ListBooks{}, errors.Wrap(err, "search books")
	}
	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return model.ListBooks{}, errors.Wrap(err, "collect books")
	}

	total := len(books)
	if page != 0 && size != 0 {
		countSQL, countArgs, err := qb.Select("count(*)").
			From(booksTableName + " b").
			Where(bookFilter(query)).
			ToSql()
		if err != nil {
			return model.ListBooks{}, err
		}
		if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			return model.ListBooks{}, errors.Wrap(err, "count books")
		}
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: books,
	}, nil
}

func (r *repository) LockBook(ctx context.Context, isbn string) error {
	var got string
	err := r.db.QueryRow(ctx, `select isbn from books where isbn = $1 for update`, isbn).Scan(&got)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NotFound(errs.EntityBook)
		}
		return errors.Wrap(err, "lock book")
	}
	return nil
}

func (r *repository) IsCheckedOut(ctx context.Context, isbn string) (bool, error) {
	var out bool
	err := r.db.QueryRow(ctx,
		`select exists (select 1 from book_loans where isbn = $1 and date_in is null)`, isbn).Scan(&out)
	if err != nil {
		return false, errors.Wrap(err, "is checked out")
	}
	return out, nil
}

func (r *repository) LockBorrower(ctx context.Context, cardID string) error {
	var got string
	err := r.db.QueryRow(ctx, `select card_id from borrowers where card_id = $1 for update`, cardID).Scan(&got)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NotFound(errs.EntityBorrower)
		}
		return errors.Wrap(err, "lock borrower")
	}
	return nil
}

func (r *repository) GetBorrower(ctx context.Context, cardID string) (model.Borrower, error) {
	query, args, err := qb.Select("card_id", "ssn", "name", "address", "phone").
		From(borrowersTableName).
		Where(sq.Eq{"card_id": cardID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Borrower{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Borrower{}, errors.Wrap(err, "get borrower")
	}
	borrower, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Borrower])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Borrower{}, errs.NotFound(errs.EntityBorrower)
		}
		return model.Borrower{}, errors.Wrap(err, "collect borrower")
	}
	return borrower, nil
}

func (r *repository) SSNExists(ctx context.Context, ssn string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `select exists (select 1 from borrowers where ssn = $1)`, ssn).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "ssn exists")
	}
	return exists, nil
}

func (r *repository) CreateBorrower(ctx context.Context, req model.CreateBorrowerRequest) (string, error) {
	const q = `
insert into borrowers (card_id, ssn, name, address, phone)
values ('ID' || lpad(nextval('borrower_card_seq')::text, 6, '0'), @ssn, @name, @address, @phone)
returning card_id`

	var cardID string
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"ssn":     req.SSN,
		"name":    req.Name,
		"address": req.Address,
		"phone":   req.Phone,
	}).Scan(&cardID)
	if err != nil {
		if constraintViolated(err, pgerrcode.UniqueViolation, borrowerSSNKey) {
			return "", errs.Conflict(errs.ReasonDuplicateSSN)
		}
		return "", errors.Wrap(err, "create borrower")
	}
	return cardID, nil
}

func (r *repository) CountOpenLoans(ctx context.Context, cardID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`select count(*) from book_loans where card_id = $1 and date_in is null`, cardID).Scan(&n)
	if err != nil {
		return 0, errors.Wrap(err, "count open loans")
	}
	return n, nil
}

const loanColumns = "loan_id, isbn, card_id, date_out, due_date, date_in"

func (r *repository) CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	q := `
insert into book_loans (isbn, card_id, date_out, due_date)
values (@isbn, @card_id, @date_out, @due_date)
returning ` + loanColumns

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"isbn":     loan.ISBN,
		"card_id":  loan.CardID,
		"date_out": loan.DateOut,
		"due_date": loan.DueDate,
	})
	if err != nil {
		return model.Loan{}, errors.Wrap(err, "create loan")
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Loan])
	if err != nil {
		switch {
		case constraintViolated(err, pgerrcode.UniqueViolation, openLoanIsbnIndex):
			return model.Loan{}, errs.Conflict(errs.ReasonAlreadyCheckedOut)
		case constraintViolated(err, pgerrcode.ForeignKeyViolation, loanIsbnForeignKey):
			return model.Loan{}, errs.NotFound(errs.EntityBook)
		case constraintViolated(err, pgerrcode.ForeignKeyViolation, loanCardForeignKey):
			return model.Loan{}, errs.NotFound(errs.EntityBorrower)
		}
		return model.Loan{}, errors.Wrap(err, "collect loan")
	}
	return created, nil
}

func (r *repository) LockLoan(ctx context.Context, loanID int64) (model.Loan, error) {
	rows, err := r.db.Query(ctx,
		`select `+loanColumns+` from book_loans where loan_id = $1 for update`, loanID)
	if err != nil {
		return model.Loan{}, errors.Wrap(err, "lock loan")
	}
	loan, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Loan])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, errs.NotFound(errs.EntityLoan)
		}
		return model.Loan{}, errors.Wrap(err, "collect loan")
	}
	return loan, nil
}

func (r *repository) CloseLoan(ctx context.Context, loanID int64, dateIn time.Time) (model.Loan, error) {
	rows, err := r.db.Query(ctx, `
update book_loans set date_in = $2
where loan_id = $1 and date_in is null
returning `+loanColumns, loanID, dateIn)
	if err != nil {
		return model.Loan{}, errors.Wrap(err, "close loan")
	}
	loan, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Loan])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, errs.Conflict(errs.ReasonAlreadyClosed)
		}
		return model.Loan{}, errors.Wrap(err, "collect loan")
	}
	return loan, nil
}

func (r *repository) ListOpenLoans(ctx context.Context, filter model.LoanFilter) ([]model.OpenLoan, error) {
	q := qb.Select(
		"bl.loan_id", "bl.isbn", "b.title", "bl.card_id", "br.name as borrower_name", "bl.date_out", "bl.due_date",
	).
		From(loansTableName + " bl").
		Join(fmt.Sprintf("%s b on b.isbn = bl.isbn", booksTableName)).
		Join(fmt.Sprintf("%s br on br.card_id = bl.card_id", borrowersTableName)).
		Where("bl.date_in is null").
		OrderBy("bl.due_date", "bl.loan_id")

	if filter.ISBN != "" {
		q = q.Where(sq.Eq{"bl.isbn": filter.ISBN})
	}
	if filter.CardID != "" {
		q = q.Where(sq.Eq{"bl.card_id": filter.CardID})
	}
	if filter.Name != "" {
		q = q.Where(sq.ILike{"br.name": contains(filter.Name)})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListOpenLoans", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list open loans")
	}
	loans, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.OpenLoan])
	if err != nil {
		return nil, errors.Wrap(err, "collect open loans")
	}
	return loans, nil
}

func (r *repository) UnpaidFines(ctx context.Context, cardID string) (model.UnpaidFines, error) {
	rows, err := r.db.Query(ctx, `
select count(*) as cnt, coalesce(sum(f.fine_amt), 0) as total
from fines f
join book_loans bl on bl.loan_id = f.loan_id
where bl.card_id = $1 and not f.paid`, cardID)
	if err != nil {
		return model.UnpaidFines{}, errors.Wrap(err, "unpaid fines")
	}
	unpaid, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UnpaidFines])
	if err != nil {
		return model.UnpaidFines{}, errors.Wrap(err, "collect unpaid fines")
	}
	return unpaid, nil
}

// finesSweepLock is the advisory lock key held by a fines sweep until its transaction ends.
const finesSweepLock int64 = 0x66696e6573

func (r *repository) OverdueLoans(ctx context.Context, today time.Time) ([]model.OverdueLoan, error) {
	// a waiting sweep must read the fines the holder committed, not a snapshot taken before them
	if _, err := r.db.Exec(ctx, `select pg_advisory_xact_lock($1)`, finesSweepLock); err != nil {
		return nil, errors.Wrap(err, "lock fines sweep")
	}
	rows, err := r.db.Query(ctx, `
select bl.loan_id, bl.due_date, bl.date_in, f.fine_amt, f.paid
from book_loans bl
left join fines f on f.loan_id = bl.loan_id
where bl.due_date < $1
  and (bl.date_in is null or bl.date_in > bl.due_date)
order by bl.loan_id
for update of bl`, today)
	if err != nil {
		return nil, errors.Wrap(err, "overdue loans")
	}
	loans, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.OverdueLoan])
	if err != nil {
		return nil, errors.Wrap(err, "collect overdue loans")
	}
	return loans, nil
}

func (r *repository) InsertFine(ctx context.Context, loanID int64, amount decimal.Decimal) error {
	_, err := r.db.Exec(ctx,
		`insert into fines (loan_id, fine_amt, paid) values ($1, $2, false)`, loanID, amount)
	return errors.Wrap(err, "insert fine")
}

func (r *repository) UpdateFineAmount(ctx context.Context, loanID int64, amount decimal.Decimal) error {
	_, err := r.db.Exec(ctx,
		`update fines set fine_amt = $2 where loan_id = $1 and not paid`, loanID, amount)
	return errors.Wrap(err, "update fine")
}

func (r *repository) FinesSummary(ctx context.Context, filter model.FineFilter) ([]model.FineSummary, error) {
	q := qb.Select("bl.card_id", "br.name as borrower_name", "sum(f.fine_amt) as total_fine").
		From(finesTableName + " f").
		Join(fmt.Sprintf("%s bl on bl.loan_id = f.loan_id", loansTableName)).
		Join(fmt.Sprintf("%s br on br.card_id = bl.card_id", borrowersTableName)).
		GroupBy("bl.card_id", "br.name").
		OrderBy("br.name", "bl.card_id")

	if filter.UnpaidOnly {
		q = q.Where(sq.Eq{"f.paid": false})
	}
	if filter.CardID != "" {
		q = q.Where(sq.Eq{"bl.card_id": filter.CardID})
	}
	if filter.Name != "" {
		q = q.Where(sq.ILike{"br.name": contains(filter.Name)})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("FinesSummary", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "fines summary")
	}
	summary, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.FineSummary])
	if err != nil {
		return nil, errors.Wrap(err, "collect fines summary")
	}
	return summary, nil
}

func (r *repository) PayFines(ctx context.Context, cardID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
update fines f set paid = true
from book_loans bl
where f.loan_id = bl.loan_id
  and bl.card_id = $1
  and not f.paid
  and bl.date_in is not null`, cardID)
	if err != nil {
		return 0, errors.Wrap(err, "pay fines")
	}
	return tag.RowsAffected(), nil
}

func constraintViolated(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == code && pgErr.ConstraintName == constraint
}
