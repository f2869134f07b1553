package domain

// Category is a selectable remembrance phrase or charity type. Catalogs are
// static reference data; entries refer to them by ID only.
type Category struct {
	ID          int    `json:"id" yaml:"id"`
	NameAr      string `json:"nameAr" yaml:"nameAr"`
	NameEn      string `json:"nameEn" yaml:"nameEn"`
	NameEs      string `json:"nameEs,omitempty" yaml:"nameEs"`
	Color       string `json:"color" yaml:"color"`
	Description string `json:"description,omitempty" yaml:"description"`
}
