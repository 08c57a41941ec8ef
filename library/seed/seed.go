package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type kind uint8

const (
	text kind = iota
	integer
)

type column struct {
	name   string
	header string
	kind   kind
}

// Table maps one csv file onto one table.
type Table struct {
	Name    string
	File    string
	columns []column
	// after runs in the same transaction once rows were copied.
	after string
}

func (t Table) columnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
	}
	return names
}

// Tables in load order; book_authors references both books and authors.
var Tables = []Table{
	{
		Name: "books",
		File: "book.csv",
		columns: []column{
			{name: "isbn", header: "Isbn"},
			{name: "title", header: "Title"},
		},
	},
	{
		Name: "authors",
		File: "authors.csv",
		columns: []column{
			{name: "author_id", header: "Author_id", kind: integer},
			{name: "name", header: "Name"},
		},
		after: `select setval(pg_get_serial_sequence('authors', 'author_id'), coalesce(max(author_id), 0) + 1, false) from authors`,
	},
	{
		Name: "borrowers",
		File: "borrower.csv",
		columns: []column{
			{name: "card_id", header: "Card_id"},
			{name: "ssn", header: "Ssn"},
			{name: "name", header: "Bname"},
			{name: "address", header: "Address"},
			{name: "phone", header: "Phone"},
		},
		after: `select setval('borrower_card_seq', coalesce(max(substring(card_id from 3)::bigint), 0) + 1, false)
from borrowers where card_id ~ '^ID[0-9]+$'`,
	},
	{
		Name: "book_authors",
		File: "book_authors.csv",
		columns: []column{
			{name: "author_id", header: "Author_id", kind: integer},
			{name: "isbn", header: "Isbn"},
		},
	},
}

// ReadRows parses a csv with a header line into rows ordered like the table columns.
// Headers are matched case-insensitively and may appear in any order.
func ReadRows(r io.Reader, t Table) ([][]any, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "%s: read header", t.File)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	positions := make([]int, len(t.columns))
	for i, c := range t.columns {
		pos, ok := index[strings.ToLower(c.header)]
		if !ok {
			return nil, errors.Errorf("%s: missing column %q", t.File, c.header)
		}
		positions[i] = pos
	}

	var rows [][]any
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s: line %d", t.File, line)
		}
		row := make([]any, len(t.columns))
		for i, c := range t.columns {
			raw := strings.TrimSpace(record[positions[i]])
			switch c.kind {
			case integer:
				n, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return nil, errors.Errorf("%s: line %d: %s is not a number: %q", t.File, line, c.header, raw)
				}
				row[i] = n
			default:
				row[i] = raw
			}
		}
		rows = append(rows, row)
	}
}

type Report map[string]int64

// Load copies every csv found in dir into its table, skipping tables that already have rows.
// Everything runs in one transaction.
func Load(ctx context.Context, pool *pgxpool.Pool, dir string, log *zap.Logger) (Report, error) {
	report := make(Report, len(Tables))
	err := pgx.BeginTxFunc(ctx, pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		for _, t := range Tables {
			n, err := loadTable(ctx, tx, dir, t, log)
			if err != nil {
				return err
			}
			report[t.Name] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func loadTable(ctx context.Context, tx pgx.Tx, dir string, t Table, log *zap.Logger) (int64, error) {
	var hasRows bool
	q := fmt.Sprintf("select exists (select 1 from %s)", pgx.Identifier{t.Name}.Sanitize())
	if err := tx.QueryRow(ctx, q).Scan(&hasRows); err != nil {
		return 0, errors.Wrapf(err, "%s: check rows", t.Name)
	}
	if hasRows {
		log.Info("table already has data, skipping", zap.String("table", t.Name))
		return 0, nil
	}

	path := filepath.Join(dir, t.File)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("csv not found, skipping", zap.String("path", path))
			return 0, nil
		}
		return 0, errors.Wrap(err, "open csv")
	}
	defer f.Close()

	rows, err := ReadRows(f, t)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{t.Name}, t.columnNames(), pgx.CopyFromRows(rows))
	if err != nil {
		return 0, errors.Wrapf(err, "%s: copy", t.Name)
	}
	if t.after != "" {
		if _, err := tx.Exec(ctx, t.after); err != nil {
			return 0, errors.Wrapf(err, "%s: after copy", t.Name)
		}
	}
	log.Info("imported", zap.String("table", t.Name), zap.Int64("rows", n))
	return n, nil
}
