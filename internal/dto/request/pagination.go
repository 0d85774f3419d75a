package request

type PaginatedRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// Limit defaults to 10 but is otherwise honored as supplied, however large.
func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return 10
	}
	return p.PerPage
}
