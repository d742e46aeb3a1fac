package database

import (
	"github.com/NeryGM09/libreria-luismi/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// initialCatalog is the catalog the shop opens with. Seeded only when the
// productos table is empty, so it never overwrites admin edits.
var initialCatalog = []models.Product{
	{Nombre: "El Principito", Categoria: "Libros", Precio: 250, Stock: 10, Imagen: "https://via.placeholder.com/300x400?text=El+Principito"},
	{Nombre: "Cien años de soledad", Categoria: "Libros", Precio: 300, Stock: 8, Imagen: "https://via.placeholder.com/300x400?text=Cien+Años+de+Soledad"},
	{Nombre: "Don Quijote", Categoria: "Libros", Precio: 280, Stock: 5, Imagen: "https://via.placeholder.com/300x400?text=Don+Quijote"},
	{Nombre: "Pluma azul", Categoria: "Plumas", Precio: 50, Stock: 20, Imagen: "https://via.placeholder.com/300x200?text=Pluma+Azul"},
	{Nombre: "Pluma negra", Categoria: "Plumas", Precio: 50, Stock: 15, Imagen: "https://via.placeholder.com/300x200?text=Pluma+Negra"},
	{Nombre: "Cuaderno universitario", Categoria: "Papeles", Precio: 120, Stock: 25, Imagen: "https://via.placeholder.com/300x200?text=Cuaderno+Universitario"},
	{Nombre: "Papel bond", Categoria: "Papeles", Precio: 80, Stock: 30, Imagen: "https://via.placeholder.com/300x200?text=Papel+Bond"},
	{Nombre: "Bloc de notas", Categoria: "Papeles", Precio: 60, Stock: 40, Imagen: "https://via.placeholder.com/300x200?text=Bloc+de+Notas"},
	{Nombre: "Mochila escolar", Categoria: "Mochilas", Precio: 850, Stock: 5, Imagen: "https://via.placeholder.com/300x300?text=Mochila+Escolar"},
	{Nombre: "Mochila ejecutiva", Categoria: "Mochilas", Precio: 1200, Stock: 3, Imagen: "https://via.placeholder.com/300x300?text=Mochila+Ejecutiva"},
}

// SeedProducts inserts the initial catalog on first boot.
func SeedProducts(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&initialCatalog).Error; err != nil {
		return err
	}
	logger.Info("Seeded initial catalog", zap.Int("products", len(initialCatalog)))
	return nil
}
