package dto

// PageRequest paginación para listados (query params page y pageSize).
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// DefaultPage aplica valores por defecto si Page/PageSize son cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
}

// Offset devuelve el desplazamiento correspondiente a la página actual.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PaginationResponse metadatos de página en respuestas de listado.
type PaginationResponse struct {
	Page      int `json:"page"`
	PageCount int `json:"pageCount"`
	PageSize  int `json:"pageSize"`
	Count     int `json:"count"`
}
