package product

import "errors"

// Max length constants for catalog fields.
const (
	MaxTitleLength = 120
)

// Domain errors
var (
	ErrEmptyID      = errors.New("product id cannot be empty")
	ErrEmptyTitle   = errors.New("product title cannot be empty")
	ErrTitleTooLong = errors.New("product title cannot exceed 120 characters")
	ErrEmptyFamily  = errors.New("product family cannot be empty")
)

// Product represents one catalog entry. Products are read-only from this
// application's perspective: the catalog file is operator-managed and no
// handler mutates it.
type Product struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Family   string `json:"family"`   // category tag, e.g. burger, side, drink
	Featured bool   `json:"featured"` // shown in the featured strip
	Suggest  bool   `json:"suggest"`  // open to visitor suggestions
	Image    string `json:"image"`    // filename under the static image dir
}

// Validate checks if the Product has valid data.
// PRE: Product struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Product) Validate() error {
	if p.ID == "" {
		return ErrEmptyID
	}
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if len(p.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if p.Family == "" {
		return ErrEmptyFamily
	}
	return nil
}
