package charts

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBuildSpecs(t *testing.T) {
	pie := BuildPieSpec("Users by gender", []string{"male", "female"}, []int64{3, 4})
	if pie.Type != TypePie {
		t.Errorf("type = %s, want pie", pie.Type)
	}
	if len(pie.Datasets) != 1 || len(pie.Datasets[0].Values) != 2 {
		t.Errorf("unexpected datasets %+v", pie.Datasets)
	}
	if len(pie.Colors) != len(Palette) {
		t.Errorf("palette not applied")
	}

	bar := BuildBarSpec("Top channels", "", "Subscriptions", []string{"A"}, []Dataset{{Label: "Subscriptions", Values: []int64{9}}})
	if bar.Type != TypeBar || bar.YLabel != "Subscriptions" {
		t.Errorf("unexpected bar spec %+v", bar)
	}
}

func TestRender(t *testing.T) {
	t.Run("posts spec and returns image bytes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chart" || r.Method != http.MethodPost {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			body, _ := io.ReadAll(r.Body)
			var payload map[string]interface{}
			if err := json.Unmarshal(body, &payload); err != nil {
				t.Errorf("invalid payload: %v", err)
			}
			if payload["format"] != "png" {
				t.Errorf("format = %v, want png", payload["format"])
			}
			w.Write([]byte("fake-png"))
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL})
		img, err := c.Render(context.Background(), BuildPieSpec("t", []string{"a"}, []int64{1}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(img) != "fake-png" {
			t.Errorf("image = %q", img)
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL})
		if _, err := c.Render(context.Background(), Spec{}); err == nil {
			t.Error("expected error for status 400")
		}
	})
}
