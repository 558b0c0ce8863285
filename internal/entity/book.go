package entity

// Book is a single catalog record. Prices are minor-unit-free tugrik
// amounts (9500 means 9500₮), ratings run 0-5.
type Book struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	ISBN        string   `json:"isbn"`
	PublishDate string   `json:"publish_date"`
	Publisher   string   `json:"publisher"`
	Language    string   `json:"language"`
	Pages       *int     `json:"pages"`
	Format      string   `json:"format"`
	Description string   `json:"description"`
	CoverImage  string   `json:"cover_image"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	InStock     bool     `json:"in_stock"`
	Review      *float64 `json:"review,omitempty"` // legacy score some records carry; preferred over Rating when set
}
