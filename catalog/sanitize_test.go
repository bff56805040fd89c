package catalog

import (
	"errors"
	"testing"

	"github.com/aluiziolira/go-catalog-widget/models"
)

func TestSanitizeRequiresName(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected []models.Product
	}{
		{
			name:     "record without name dropped",
			payload:  `[{"image":"http://x/i.jpg","price":"9.99"}]`,
			expected: []models.Product{},
		},
		{
			name:     "whitespace-only name dropped",
			payload:  `[{"name":"   ","price":"9.99"}]`,
			expected: []models.Product{},
		},
		{
			name:    "fields pass through unchanged",
			payload: `[{"name":"  Mug  ","image":" http://x/i.jpg ","price":"","description":"a mug","link":"","category":"kitchen"}]`,
			expected: []models.Product{
				{Name: "  Mug  ", Image: " http://x/i.jpg ", Price: "", Description: "a mug", Category: "kitchen"},
			},
		},
		{
			name:    "missing image and price accepted",
			payload: `[{"name":"Pen"}]`,
			expected: []models.Product{
				{Name: "Pen"},
			},
		},
		{
			name:    "prix alias maps to price",
			payload: `[{"name":"Tasse","prix":"12"}]`,
			expected: []models.Product{
				{Name: "Tasse", Price: "12"},
			},
		},
		{
			name:    "price wins over prix when both set",
			payload: `[{"name":"Tasse","price":"10","prix":"12"}]`,
			expected: []models.Product{
				{Name: "Tasse", Price: "10"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := Sanitize([]byte(tt.payload))
			if err != nil {
				t.Fatalf("Sanitize() error = %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("kept %d products, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("product[%d] = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSanitizeUndecodablePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: `{{{`},
		{name: "truncated array", payload: `[{"name":`},
		{name: "empty body", payload: ``},
		{name: "html error page", payload: `<html>503</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := Sanitize([]byte(tt.payload))
			var malformed *ErrMalformed
			if !errors.As(err, &malformed) {
				t.Fatalf("Sanitize() error = %v, want ErrMalformed", err)
			}
			if len(got) != 0 {
				t.Fatalf("kept %d products, want 0", len(got))
			}
		})
	}
}

func TestSanitizeNonArrayPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "object instead of array", payload: `{"name":"Mug"}`},
		{name: "string", payload: `"products"`},
		{name: "number", payload: `42`},
		{name: "null", payload: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats, err := Sanitize([]byte(tt.payload))
			if err != nil {
				t.Fatalf("wrong-shaped documents recover silently, got %v", err)
			}
			if got == nil {
				t.Fatalf("expected empty slice, got nil")
			}
			if len(got) != 0 {
				t.Fatalf("kept %d products, want 0", len(got))
			}
			if stats.Kept != 0 {
				t.Fatalf("stats.Kept = %d, want 0", stats.Kept)
			}
		})
	}
}

func TestSanitizeDropsNonRecordElementsIndividually(t *testing.T) {
	payload := `[{"name":"Mug"}, 42, "junk", {"name":"Pen"}]`

	got, stats, err := Sanitize([]byte(payload))
	if err != nil {
		t.Fatalf("Sanitize() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("kept %d products, want 2", len(got))
	}
	if got[0].Name != "Mug" || got[1].Name != "Pen" {
		t.Fatalf("kept %q and %q, want Mug and Pen", got[0].Name, got[1].Name)
	}
	if stats.Raw != 4 || stats.Dropped != 2 {
		t.Fatalf("stats = %+v, want raw 4 dropped 2", stats)
	}
	if stats.Reasons[DropNotRecord] != 2 {
		t.Fatalf("not_record drops = %d, want 2", stats.Reasons[DropNotRecord])
	}
}

func TestSanitizeKeepsDuplicateNames(t *testing.T) {
	payload := `[{"name":"Mug"},{"name":"Mug"}]`

	got, _, _ := Sanitize([]byte(payload))
	if len(got) != 2 {
		t.Fatalf("kept %d products, want 2 (no dedup by identity)", len(got))
	}
}
