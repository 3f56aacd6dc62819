package handlers

// DefaultPageSize is the fixed row count of the dashboard tables.
const DefaultPageSize = 5

type Pagination struct {
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
	PrevPage   int
	NextPage   int
	HasPrev    bool
	HasNext    bool
}

// paginate clamps page into [1, totalPages] and derives the prev/next links.
// An empty table still has one (empty) page.
func paginate(page, pageSize int, total int64) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	p := Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		PrevPage:   page - 1,
		NextPage:   page + 1,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if p.PrevPage < 1 {
		p.PrevPage = 1
	}
	if p.NextPage > totalPages {
		p.NextPage = totalPages
	}
	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
