package usecase

import (
	"testing"
)

func TestExportCSV(t *testing.T) {
	cols := []Column{
		{Key: "id", Label: "ID"},
		{Key: "name", Label: "Nombre"},
	}

	t.Run("exact output", func(t *testing.T) {
		rows := []map[string]interface{}{
			{"id": 1, "name": "Juan"},
			{"id": 2, "name": "Ana"},
		}

		data, err := exportCSV(rows, cols)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "ID,Nombre\n1,Juan\n2,Ana\n"
		if string(data) != want {
			t.Errorf("got %q, want %q", string(data), want)
		}
	})

	t.Run("header with no rows", func(t *testing.T) {
		data, err := exportCSV(nil, cols)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "ID,Nombre\n" {
			t.Errorf("got %q, want header only", string(data))
		}
	})

	t.Run("missing keys become empty cells", func(t *testing.T) {
		rows := []map[string]interface{}{{"id": 3}}

		data, err := exportCSV(rows, cols)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "ID,Nombre\n3,\n" {
			t.Errorf("got %q", string(data))
		}
	})

	t.Run("values with commas are quoted", func(t *testing.T) {
		rows := []map[string]interface{}{{"id": 4, "name": "Pérez, Juan"}}

		data, err := exportCSV(rows, cols)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "ID,Nombre\n4,\"Pérez, Juan\"\n" {
			t.Errorf("got %q", string(data))
		}
	})
}
