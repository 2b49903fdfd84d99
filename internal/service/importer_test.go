package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jjenkins/clients/internal/model"
	"github.com/jjenkins/clients/internal/store"
	"github.com/jjenkins/clients/internal/store/seed"
)

func newTestImporter(t *testing.T) (*Importer, *store.ClientStore) {
	t.Helper()
	ctx := context.Background()

	db, err := store.NewDB(ctx, store.SQLite, ":memory:")
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	clientStore := store.NewClientStore(db, store.SQLite)
	client := NewFeedClient(WithInitialBackoff(time.Millisecond))
	return NewImporter(client, NewParser(), clientStore), clientStore
}

func TestImportSeed(t *testing.T) {
	importer, clientStore := newTestImporter(t)
	ctx := context.Background()

	stats, err := importer.Import(ctx, seed.Clients)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if stats.Total != 20 || stats.Imported != 20 || stats.Failed != 0 {
		t.Errorf("stats = %+v", stats)
	}

	got, err := clientStore.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := seedRecords(t)
	if len(got) != len(want) {
		t.Fatalf("stored %d clients, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Status != want[i].Status || !got[i].CreatedAt.Equal(want[i].CreatedAt) {
			t.Errorf("client %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	// a second import finds nothing to change
	stats, err = importer.Import(ctx, seed.Clients)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Unchanged != 20 || stats.Imported != 0 || stats.Changed != 0 {
		t.Errorf("re-import stats = %+v", stats)
	}
}

func TestImportChanged(t *testing.T) {
	importer, clientStore := newTestImporter(t)
	ctx := context.Background()

	first := `[{"id": 1, "name": "Amy", "type": "Individual", "email": "amy@x.com", "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z"}]`
	if _, err := importer.Import(ctx, []byte(first)); err != nil {
		t.Fatal(err)
	}

	second := strings.Replace(first, `"Amy"`, `"Amy Pond"`, 1)
	second = strings.Replace(second, `"email"`, `"status": "Pending", "email"`, 1)
	stats, err := importer.Import(ctx, []byte(second))
	if err != nil {
		t.Fatal(err)
	}
	if stats.Changed != 1 {
		t.Errorf("stats = %+v, want 1 changed", stats)
	}

	c, err := clientStore.GetByID(ctx, 1)
	if err != nil || c == nil {
		t.Fatalf("GetByID() = %v, %v", c, err)
	}
	if c.Name != "Amy Pond" || c.Status != model.StatusPending {
		t.Errorf("client = %+v", c)
	}
}

func TestImportFile(t *testing.T) {
	importer, clientStore := newTestImporter(t)

	path := filepath.Join(t.TempDir(), "clients.json")
	if err := os.WriteFile(path, seed.Clients, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := importer.ImportFile(context.Background(), path); err != nil {
		t.Fatalf("ImportFile() error = %v", err)
	}

	n, err := clientStore.CountClients(context.Background())
	if err != nil || n != 20 {
		t.Errorf("CountClients() = %d, %v", n, err)
	}
}

func TestImportURL(t *testing.T) {
	importer, clientStore := newTestImporter(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(seed.Clients)
	}))
	defer srv.Close()

	if _, err := importer.ImportURL(context.Background(), srv.URL); err != nil {
		t.Fatalf("ImportURL() error = %v", err)
	}

	n, err := clientStore.CountClients(context.Background())
	if err != nil || n != 20 {
		t.Errorf("CountClients() = %d, %v", n, err)
	}
}

func TestImportInvalidDocument(t *testing.T) {
	importer, _ := newTestImporter(t)

	if _, err := importer.Import(context.Background(), []byte(`[{"id": 1, "type": "Robot"}]`)); err == nil {
		t.Error("expected error")
	}
}
