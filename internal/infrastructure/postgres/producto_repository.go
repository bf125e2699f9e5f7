package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/franmdz/celupos/internal/domain"
	"github.com/franmdz/celupos/internal/domain/entity"
	"github.com/franmdz/celupos/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// columnas de productos en el orden en que se escanean.
const productoCols = `id, nombre, codigo_barras, num, color, bateria, condicion, categoria,
	stock, precio, precio_costo, precio_revendedor, foto_url, created_at, updated_at`

// normaliza una columna en SQL igual que sinAcentos en Go: minúsculas y sin tildes.
const sqlSinAcentos = `translate(lower(%s), 'áéíóúüñ', 'aeiouun')`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un producto nuevo y completa su ID.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, codigo_barras, num, color, bateria, condicion, categoria,
			stock, precio, precio_costo, precio_revendedor, foto_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Nombre, p.CodigoBarras, p.Num, p.Color, p.Bateria, p.Condicion, p.Categoria,
		p.Stock, p.Precio, p.PrecioCosto, p.PrecioRevendedor, p.FotoURL, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE id = $1`
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// Update reemplaza todos los campos editables del producto.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, codigo_barras = $3, num = $4, color = $5, bateria = $6,
			condicion = $7, categoria = $8, stock = $9, precio = $10, precio_costo = $11,
			precio_revendedor = $12, foto_url = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.CodigoBarras, p.Num, p.Color, p.Bateria, p.Condicion, p.Categoria,
		p.Stock, p.Precio, p.PrecioCosto, p.PrecioRevendedor, p.FotoURL, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// List busca por nombre o código de barras (sin distinguir mayúsculas ni
// acentos) con paginación. Devuelve la página y el total de coincidencias.
func (r *ProductoRepo) List(busqueda string, limit, offset int) ([]*entity.Producto, int, error) {
	filtro := fmt.Sprintf(
		`(%s LIKE '%%' || $1 || '%%' OR lower(codigo_barras) LIKE '%%' || $1 || '%%')`,
		fmt.Sprintf(sqlSinAcentos, "nombre"),
	)
	termino := sinAcentos(busqueda)

	var total int
	countQuery := `SELECT count(*) FROM productos WHERE ` + filtro
	if err := r.q.QueryRow(context.Background(), countQuery, termino).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count productos: %w", err)
	}

	query := `SELECT ` + productoCols + ` FROM productos WHERE ` + filtro + `
		ORDER BY nombre ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, termino, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	list, err := collectProductos(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListPorAgotarse productos con stock <= UmbralStockCritico, los más bajos primero.
func (r *ProductoRepo) ListPorAgotarse(limit, offset int) ([]*entity.Producto, int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM productos WHERE stock <= $1`, entity.UmbralStockCritico,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count por agotarse: %w", err)
	}

	query := `SELECT ` + productoCols + ` FROM productos WHERE stock <= $1
		ORDER BY stock ASC, nombre ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, entity.UmbralStockCritico, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list por agotarse: %w", err)
	}
	defer rows.Close()
	list, err := collectProductos(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListTienda catálogo público: solo productos con stock, filtro opcional por categoría.
func (r *ProductoRepo) ListTienda(categoria string) ([]*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE stock > 0`
	args := []any{}
	if categoria != "" {
		query += ` AND categoria = $1`
		args = append(args, categoria)
	}
	query += ` ORDER BY nombre ASC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tienda: %w", err)
	}
	defer rows.Close()
	return collectProductos(rows)
}

// ListAll catálogo completo (exportación de stock).
func (r *ProductoRepo) ListAll() ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productoCols+` FROM productos ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("list all productos: %w", err)
	}
	defer rows.Close()
	return collectProductos(rows)
}

// DescontarStock descuenta cantidad de forma atómica. El WHERE stock >= cantidad
// evita stock negativo aun con ventas concurrentes.
func (r *ProductoRepo) DescontarStock(id int64, cantidad int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = stock - $2, updated_at = now() WHERE id = $1 AND stock >= $2`,
		id, cantidad,
	)
	if err != nil {
		return fmt.Errorf("descontar stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		existe, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if existe == nil {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

// ReponerStock devuelve cantidad al stock (anulación de venta).
func (r *ProductoRepo) ReponerStock(id int64, cantidad int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = stock + $2, updated_at = now() WHERE id = $1`,
		id, cantidad,
	)
	if err != nil {
		return fmt.Errorf("reponer stock: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Nombre, &p.CodigoBarras, &p.Num, &p.Color, &p.Bateria, &p.Condicion,
		&p.Categoria, &p.Stock, &p.Precio, &p.PrecioCosto, &p.PrecioRevendedor, &p.FotoURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProductos(rows pgx.Rows) ([]*entity.Producto, error) {
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
