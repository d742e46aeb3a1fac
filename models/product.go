package models

// Product is a catalog row in the productos table. Wire field names follow
// the storefront's Spanish API contract.
type Product struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre    string  `gorm:"type:varchar(255);not null" json:"nombre"`
	Categoria string  `gorm:"type:varchar(128);not null;index" json:"categoria"`
	Precio    float64 `gorm:"not null" json:"precio"`
	Stock     int     `gorm:"not null" json:"stock"`
	Imagen    string  `gorm:"type:varchar(1024)" json:"imagen,omitempty"`
}

func (Product) TableName() string { return "productos" }

// CreateProductRequest is the POST /api/productos payload. Precio and Stock
// are pointers so that an explicit zero passes the required check.
type CreateProductRequest struct {
	Nombre    string   `json:"nombre" validate:"required"`
	Categoria string   `json:"categoria" validate:"required"`
	Precio    *float64 `json:"precio" validate:"required,gte=0"`
	Stock     *int     `json:"stock" validate:"required,gte=0"`
	Imagen    string   `json:"imagen"`
}

// UpdateProductRequest is the PUT /api/productos?id= payload. Every field is
// optional; only the fields present in the body are written.
type UpdateProductRequest struct {
	Nombre    *string  `json:"nombre" validate:"omitempty,min=1"`
	Categoria *string  `json:"categoria" validate:"omitempty,min=1"`
	Precio    *float64 `json:"precio" validate:"omitempty,gte=0"`
	Stock     *int     `json:"stock" validate:"omitempty,gte=0"`
	Imagen    *string  `json:"imagen"`
}
