// README: Creates the schema and seeds the initial catalog. Safe to run
// repeatedly; an already-populated catalog is left alone.
package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"bookbot/internal/config"
	"bookbot/internal/infra"
)

const schema = `
CREATE TABLE IF NOT EXISTS books (
	id       BIGSERIAL PRIMARY KEY,
	title    TEXT NOT NULL,
	author   TEXT NOT NULL DEFAULT '',
	price    BIGINT NOT NULL DEFAULT 0,
	stock    INT NOT NULL DEFAULT 0,
	category TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS orders (
	id            BIGSERIAL PRIMARY KEY,
	customer_name TEXT NOT NULL,
	phone         TEXT NOT NULL,
	address       TEXT NOT NULL,
	book_id       BIGINT NOT NULL REFERENCES books(id),
	quantity      INT NOT NULL,
	status        TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS orders_customer_name_idx ON orders (lower(customer_name));

CREATE TABLE IF NOT EXISTS llm_usage (
	key             TEXT PRIMARY KEY,
	calls_remaining INT NOT NULL,
	last_reset_day  TEXT NOT NULL
);
`

type seedBook struct {
	title    string
	author   string
	price    int64
	stock    int
	category string
}

var seedBooks = []seedBook{
	{"Truyện Kiều", "Nguyễn Du", 45000, 20, "Văn học cổ điển"},
	{"Dế Mèn Phiêu Lưu Ký", "Tô Hoài", 38000, 15, "Thiếu nhi"},
	{"Harry Potter và Hòn đá Phù thủy", "J.K. Rowling", 95000, 10, "Fantasy"},
	{"Đắc Nhân Tâm", "Dale Carnegie", 80000, 25, "Kỹ năng sống"},
	{"Lập Trình Python Cơ Bản", "Nguyễn Văn A", 120000, 8, "Công nghệ thông tin"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	db, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := run(ctx, db); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return err
	}

	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Println("catalog already populated, skipping seed")
		return nil
	}

	for _, b := range seedBooks {
		if _, err := db.Exec(ctx, `
			INSERT INTO books (title, author, price, stock, category)
			VALUES ($1, $2, $3, $4, $5)`,
			b.title, b.author, b.price, b.stock, b.category,
		); err != nil {
			return err
		}
	}
	log.Printf("seeded %d books", len(seedBooks))
	return nil
}
