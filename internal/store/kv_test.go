package store

import (
	"testing"

	"github.com/dhkim-dev/cinewish/internal/shared"
)

func newTestSQLiteKV(t *testing.T) *SQLiteKV {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return NewSQLiteKV(db)
}

func TestKVBackends(t *testing.T) {
	backends := map[string]func(t *testing.T) KV{
		"SQLite": func(t *testing.T) KV { return newTestSQLiteKV(t) },
		"Memory": func(t *testing.T) KV { return NewMemoryKV() },
	}

	for name, newKV := range backends {
		t.Run(name, func(t *testing.T) {
			t.Run("Get Missing Key", func(t *testing.T) {
				kv := newKV(t)
				if _, ok := kv.Get("nope"); ok {
					t.Error("expected missing key to report absent")
				}
			})

			t.Run("Set And Get", func(t *testing.T) {
				kv := newKV(t)
				if err := kv.Set("slot", []byte(`{"a":1}`)); err != nil {
					t.Fatalf("set failed: %v", err)
				}

				value, ok := kv.Get("slot")
				if !ok {
					t.Fatal("expected value to be present")
				}
				if string(value) != `{"a":1}` {
					t.Errorf("unexpected value: %s", value)
				}
			})

			t.Run("Set Overwrites", func(t *testing.T) {
				kv := newKV(t)
				kv.Set("slot", []byte("one"))
				kv.Set("slot", []byte("two"))

				value, _ := kv.Get("slot")
				if string(value) != "two" {
					t.Errorf("expected overwrite, got %s", value)
				}
			})

			t.Run("Remove", func(t *testing.T) {
				kv := newKV(t)
				kv.Set("slot", []byte("x"))
				if err := kv.Remove("slot"); err != nil {
					t.Fatalf("remove failed: %v", err)
				}
				if _, ok := kv.Get("slot"); ok {
					t.Error("expected removed key to report absent")
				}
			})

			t.Run("Remove Missing Key", func(t *testing.T) {
				kv := newKV(t)
				if err := kv.Remove("never-set"); err != nil {
					t.Errorf("removing a missing key should not error: %v", err)
				}
			})
		})
	}
}

func TestJSONEnvelope(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		kv := NewMemoryKV()
		if err := setJSON(kv, "slot", []string{"a", "b"}); err != nil {
			t.Fatalf("setJSON failed: %v", err)
		}

		var out []string
		if !getJSON(kv, "slot", &out) {
			t.Fatal("expected value to decode")
		}
		if len(out) != 2 || out[0] != "a" {
			t.Errorf("unexpected value: %v", out)
		}
	})

	t.Run("Corrupt Data Treated As Absent", func(t *testing.T) {
		kv := NewMemoryKV()
		kv.Set("slot", []byte("{not json"))

		var out []string
		if getJSON(kv, "slot", &out) {
			t.Error("corrupt data should report absent")
		}
		if out != nil {
			t.Errorf("output should be untouched, got %v", out)
		}
	})

	t.Run("Unknown Version Treated As Absent", func(t *testing.T) {
		kv := NewMemoryKV()
		kv.Set("slot", []byte(`{"version":99,"data":["a"]}`))

		var out []string
		if getJSON(kv, "slot", &out) {
			t.Error("unknown schema version should report absent")
		}
	})

	t.Run("Missing Key Treated As Absent", func(t *testing.T) {
		kv := NewMemoryKV()
		var out []string
		if getJSON(kv, "slot", &out) {
			t.Error("missing key should report absent")
		}
	})
}
