// Package catalog implements the pure product pipeline: sanitizing raw feed
// records, free-text querying, pagination, and outbound link resolution.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aluiziolira/go-catalog-widget/models"
)

// ErrMalformed indicates a feed payload that is not decodable JSON at all.
// A syntactically valid document of the wrong shape is not malformed; it
// just yields nothing.
type ErrMalformed struct {
	Err error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed feed payload: %v", e.Err)
}

func (e *ErrMalformed) Unwrap() error {
	return e.Err
}

// Drop reasons reported in Stats.Reasons.
const (
	DropNotRecord   = "not_record"
	DropMissingName = "missing_name"
)

// Stats summarises one sanitization pass.
type Stats struct {
	Raw     int
	Kept    int
	Dropped int
	Reasons map[string]int
}

// rawRecord tolerates the feed's field drift: some drafts of the feed used
// the French "prix" instead of "price".
type rawRecord struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	Prix        string `json:"prix"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Category    string `json:"category"`
}

// Sanitize decodes an untrusted feed payload into canonical products.
//
// Undecodable input returns ErrMalformed. A valid JSON document that is not
// an array yields an empty slice without error. Array elements that are not
// records are dropped individually; the rest of the batch survives. A record
// is kept only if its name is non-empty after trimming. Kept fields pass
// through unmodified; defaulting is the renderer's job.
func Sanitize(data []byte) ([]models.Product, Stats, error) {
	stats := Stats{Reasons: make(map[string]int)}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, stats, &ErrMalformed{Err: err}
		}
		return []models.Product{}, stats, nil
	}

	stats.Raw = len(elements)
	products := make([]models.Product, 0, len(elements))
	for _, element := range elements {
		var record rawRecord
		if err := json.Unmarshal(element, &record); err != nil {
			stats.Dropped++
			stats.Reasons[DropNotRecord]++
			continue
		}
		if strings.TrimSpace(record.Name) == "" {
			stats.Dropped++
			stats.Reasons[DropMissingName]++
			continue
		}

		price := record.Price
		if price == "" {
			price = record.Prix
		}
		products = append(products, models.Product{
			Name:        record.Name,
			Image:       record.Image,
			Price:       price,
			Description: record.Description,
			Link:        record.Link,
			Category:    record.Category,
		})
	}

	stats.Kept = len(products)
	return products, stats, nil
}
