package browser_test

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	web "menucard/internal/adapters/http"
	"menucard/internal/adapters/http/middleware"
	productStore "menucard/internal/adapters/storage/product"
	suggestionStore "menucard/internal/adapters/storage/suggestion"
	userStore "menucard/internal/adapters/storage/user"
)

// seedProducts is the catalog every browser test starts from.
const seedProducts = `[
  {
    "id": "classic",
    "title": "The Classic",
    "family": "burger",
    "featured": true,
    "suggest": true,
    "image": "classic.jpg"
  },
  {
    "id": "fries",
    "title": "Crispy Fries",
    "family": "side",
    "featured": false,
    "suggest": true,
    "image": "fries.jpg"
  },
  {
    "id": "cola",
    "title": "Cola",
    "family": "drink",
    "featured": false,
    "suggest": false,
    "image": "cola.jpg"
  }
]
`

const seedSuggestions = `[
  {
    "id": "11111111-1111-4111-8111-111111111111",
    "productId": "classic",
    "comment": "Needs a smoked cheddar option"
  }
]
`

const seedUsers = `[
  {
    "username": "admin",
    "password": "changeme",
    "role": "admin"
  }
]
`

// testApp holds the running test server and Playwright handles.
type testApp struct {
	BaseURL string
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
	Stores  *web.Stores
	DataDir string
}

// newTestApp creates a fully wired app backed by a temp data directory and
// starts an HTTP server.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	// Seed the JSON collections in a temp directory
	dataDir := t.TempDir()
	seeds := map[string]string{
		"products.json":    seedProducts,
		"suggestions.json": seedSuggestions,
		"users.json":       seedUsers,
	}
	for name, content := range seeds {
		if err := os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to seed %s: %v", name, err)
		}
	}

	stores := &web.Stores{
		ProductStore:    productStore.NewJSONStore(filepath.Join(dataDir, "products.json")),
		SuggestionStore: suggestionStore.NewJSONStore(filepath.Join(dataDir, "suggestions.json")),
		UserStore:       userStore.NewJSONStore(filepath.Join(dataDir, "users.json")),
	}

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Change to project root so relative template/static paths work
	projectRoot := findProjectRoot(t)
	origDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("failed to chdir to project root: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })

	// Add test port to CSRF trusted origins before creating mux
	middleware.ExtraTrustedOrigins = append(middleware.ExtraTrustedOrigins,
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	)

	// Page loads fetch several assets at once. Keep the limiter out of the way.
	web.RateLimitPerSecond = 1000

	// Start HTTP server
	mux := web.NewMux("static", stores)
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/login")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	// Start Playwright
	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		Server:  srv,
		PW:      pw,
		Browser: browser,
		Stores:  stores,
		DataDir: dataDir,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login navigates to the login page and signs in as the seeded admin.
func (a *testApp) login(t *testing.T, page playwright.Page) {
	t.Helper()
	_, err := page.Goto(a.BaseURL + "/login")
	if err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=username]").Fill("admin"); err != nil {
		t.Fatalf("failed to fill username: %v", err)
	}
	if err := page.Locator("input[name=password]").Fill("changeme"); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click sign in: %v", err)
	}
	// Wait for redirect to the catalog
	if err := page.WaitForURL(a.BaseURL+"/html/product", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not redirect to the catalog: %v", err)
	}
}

// findProjectRoot walks up from the working directory to find the project root (contains go.mod).
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find project root (go.mod) from working directory")
		}
		dir = parent
	}
}
