package views

// Pagina estado de paginación de un listado (la primera página es 1).
type Pagina struct {
	Actual int
	Limit  int
	Total  int
}

// NewPagina construye el estado inicial con valores saneados.
func NewPagina(limit int) Pagina {
	if limit <= 0 {
		limit = 20
	}
	return Pagina{Actual: 1, Limit: limit}
}

// TotalPaginas deriva la cantidad de páginas del total informado por el
// servidor. Con total cero hay igual una página, vacía.
func (p Pagina) TotalPaginas() int {
	if p.Total <= 0 || p.Limit <= 0 {
		return 1
	}
	n := p.Total / p.Limit
	if p.Total%p.Limit != 0 {
		n++
	}
	return n
}

// HaySiguiente indica si el control "siguiente" debe estar habilitado.
func (p Pagina) HaySiguiente() bool {
	return p.Actual < p.TotalPaginas()
}

// HayAnterior indica si el control "anterior" debe estar habilitado.
func (p Pagina) HayAnterior() bool {
	return p.Actual > 1
}

// Siguiente avanza una página sin pasarse de la última.
func (p Pagina) Siguiente() Pagina {
	if p.HaySiguiente() {
		p.Actual++
	}
	return p
}

// Anterior retrocede una página sin pasar de la primera.
func (p Pagina) Anterior() Pagina {
	if p.HayAnterior() {
		p.Actual--
	}
	return p
}
