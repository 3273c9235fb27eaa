package model

// Product represents a single catalog item. Prices are stored in VND
// (smallest currency unit, no decimals).
type Product struct {
	ID            int64   `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	Price         int64   `json:"price" db:"price"`
	Description   *string `json:"description,omitempty" db:"description"`
	Specification *string `json:"specification,omitempty" db:"specification"`
	Image         *string `json:"image,omitempty" db:"image"`
	Sale          *string `json:"sale,omitempty" db:"sale"`
	Brand         *string `json:"brand,omitempty" db:"brand"`
}
