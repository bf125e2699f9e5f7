package dto

import "github.com/shopspring/decimal"

// ProductoRequest alta/edición de producto. El formulario reenvía el estado
// completo, por eso create y update comparten el cuerpo.
type ProductoRequest struct {
	Nombre           string          `json:"nombre"`
	CodigoBarras     string          `json:"codigo_barras"`
	Num              string          `json:"num"`
	Color            string          `json:"color"`
	Bateria          string          `json:"bateria"`
	Condicion        string          `json:"condicion"`
	Categoria        string          `json:"categoria"`
	Stock            int             `json:"stock"`
	Precio           decimal.Decimal `json:"precio"`
	PrecioCosto      decimal.Decimal `json:"precio_costo"`
	PrecioRevendedor decimal.Decimal `json:"precio_revendedor"`
	FotoURL          *string         `json:"foto_url"`
}

// ProductoResponse producto tal como lo consumen los listados.
type ProductoResponse struct {
	ID               int64           `json:"id"`
	Nombre           string          `json:"nombre"`
	CodigoBarras     string          `json:"codigo_barras"`
	Num              string          `json:"num"`
	Color            string          `json:"color"`
	Bateria          string          `json:"bateria"`
	Condicion        string          `json:"condicion"`
	Categoria        string          `json:"categoria"`
	Stock            int             `json:"stock"`
	Precio           decimal.Decimal `json:"precio"`
	PrecioCosto      decimal.Decimal `json:"precio_costo"`
	PrecioRevendedor decimal.Decimal `json:"precio_revendedor"`
	FotoURL          *string         `json:"foto_url"`
}

// ProductoListResponse listado paginado de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// PorAgotarseResponse productos con stock crítico, paginado de a 20.
type PorAgotarseResponse struct {
	Productos []ProductoResponse `json:"productos"`
	Total     int                `json:"total"`
}

// CategoriaRequest alta de categoría.
type CategoriaRequest struct {
	Nombre string `json:"nombre"`
}

// UploadResponse URL pública de una imagen subida.
type UploadResponse struct {
	URL string `json:"url"`
}
