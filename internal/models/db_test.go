package models

import "testing"

func TestSQLiteDSNAddsBusyTimeout(t *testing.T) {
	cases := map[string]string{
		"ks.db":                         "ks.db?_pragma=busy_timeout(5000)",
		"file:ks?mode=memory":           "file:ks?mode=memory&_pragma=busy_timeout(5000)",
		"ks.db?_pragma=busy_timeout(1)": "ks.db?_pragma=busy_timeout(1)",
		"":                              "",
	}
	for in, want := range cases {
		if got := sqliteDSN(in); got != want {
			t.Fatalf("sqliteDSN(%q) want %q got %q", in, want, got)
		}
	}
}

func TestOpenDBMigratesSchema(t *testing.T) {
	db, err := OpenDB("sqlite", "file:models_open_db?mode=memory&cache=shared", DBPoolConfig{MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("open db failed: %v", err)
	}
	if err := MigrateAll(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	for _, model := range []interface{}{&Order{}, &DeliveryCharge{}, &PendingCartIntent{}} {
		if !db.Migrator().HasTable(model) {
			t.Fatalf("table for %T missing", model)
		}
	}
	if _, err := OpenDB("mysql", "x", DBPoolConfig{}); err == nil {
		t.Fatalf("unsupported driver should fail")
	}
}
