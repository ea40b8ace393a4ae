// README: End-to-end chat test against a running API and Postgres.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestChatOrderEndToEnd walks a full two-turn order conversation through
// POST /api/chat and verifies the order row and the stock decrement in
// Postgres. Requires a running API and database; skipped otherwise.
func TestChatOrderEndToEnd(t *testing.T) {
	loadDotEnv(t)

	dsn := strings.TrimSpace(os.Getenv("BOOKBOT_TEST_DSN"))
	if dsn == "" {
		t.Skip("BOOKBOT_TEST_DSN not set; skipping end-to-end test")
	}
	baseURL := strings.TrimRight(envOrDefault("BOOKBOT_API_BASE_URL", "http://localhost:8080"), "/")

	client := &http.Client{Timeout: 30 * time.Second}
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	db := mustConnectDB(t, ctx, dsn)
	t.Cleanup(func() { db.Close() })
	waitForAPIReady(t, client, baseURL)

	// Seed a dedicated book so the test never races other catalog data.
	title := fmt.Sprintf("Kiểm Thử Tích Hợp %d", time.Now().UnixNano()%100000)
	var bookID int64
	if err := db.QueryRow(ctx, `
		INSERT INTO books (title, author, price, stock, category)
		VALUES ($1, 'Tác Giả Thử', 10000, 5, 'Kiểm thử')
		RETURNING id`, title,
	).Scan(&bookID); err != nil {
		t.Fatalf("seed book: %v", err)
	}
	t.Cleanup(func() {
		_, _ = db.Exec(context.Background(), "DELETE FROM orders WHERE book_id = $1", bookID)
		_, _ = db.Exec(context.Background(), "DELETE FROM books WHERE id = $1", bookID)
	})

	session := fmt.Sprintf("it-%d", time.Now().UnixNano())

	reply := postChat(t, client, baseURL, session, "1")
	if !strings.Contains(reply, "Bạn đã chọn đặt sách") {
		t.Fatalf("expected order intro, got %q", reply)
	}

	reply = postChat(t, client, baseURL, session,
		fmt.Sprintf("Tôi muốn mua 2 cuốn %s giao cho Nam tại Hà Nội, SĐT 0123456789", title))
	if !strings.Contains(reply, "Đơn hàng của bạn đã được xác nhận") {
		t.Fatalf("expected confirmation, got %q", reply)
	}

	m := regexp.MustCompile(`Mã đơn hàng: (\d+)`).FindStringSubmatch(reply)
	if m == nil {
		t.Fatalf("confirmation missing order id: %q", reply)
	}
	orderID, _ := strconv.ParseInt(m[1], 10, 64)

	var (
		customer string
		quantity int
		status   string
	)
	if err := db.QueryRow(ctx, `
		SELECT customer_name, quantity, status FROM orders WHERE id = $1`, orderID,
	).Scan(&customer, &quantity, &status); err != nil {
		t.Fatalf("read order %d: %v", orderID, err)
	}
	if customer != "Nam" || quantity != 2 || status != "Đang xử lý" {
		t.Fatalf("unexpected order row: %s/%d/%s", customer, quantity, status)
	}

	var stock int
	if err := db.QueryRow(ctx, "SELECT stock FROM books WHERE id = $1", bookID).Scan(&stock); err != nil {
		t.Fatalf("read stock: %v", err)
	}
	if stock != 3 {
		t.Fatalf("expected stock 3 after ordering 2 of 5, got %d", stock)
	}
}

func postChat(t *testing.T, client *http.Client, baseURL, session, message string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"session_id": session, "message": message})
	resp, err := client.Post(baseURL+"/api/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/chat: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /api/chat: status %d", resp.StatusCode)
	}

	var out struct {
		Reply string `json:"reply"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode chat response: %v", err)
	}
	return out.Reply
}

func mustConnectDB(t *testing.T, ctx context.Context, dsn string) *pgxpool.Pool {
	t.Helper()

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	db, err := pgxpool.New(connectCtx, dsn)
	if err != nil {
		t.Fatalf("connect %s: %v", redactedDSN(dsn), err)
	}
	if err := db.Ping(connectCtx); err != nil {
		db.Close()
		t.Fatalf("ping %s: %v", redactedDSN(dsn), err)
	}
	return db
}

func redactedDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	scheme := strings.Index(dsn, "://")
	if at == -1 || scheme == -1 || at <= scheme+3 {
		return dsn
	}
	return dsn[:scheme+3] + "***:***" + dsn[at:]
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Skipf("api not ready: GET %s/health did not return 200 in time", baseURL)
}

func loadDotEnv(t *testing.T) {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		return
	}
	path := ""
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	if path == "" {
		return
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		k := strings.TrimSpace(parts[0])
		v := strings.TrimSpace(parts[1])
		if k == "" {
			continue
		}
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		_ = os.Setenv(k, v)
	}
}
