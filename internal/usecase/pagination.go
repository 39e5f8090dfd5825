package usecase

// PageRequest is a zero-based page plus a positive size. An out-of-range
// page is not an error; it yields an empty page with correct totals.
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Valid() bool {
	return p.Page >= 0 && p.Size > 0
}

type PageInfo struct {
	Page  int
	Size  int
	Total int64
}

func (p PageInfo) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

func (p PageInfo) First() bool {
	return p.Page == 0
}

func (p PageInfo) Last() bool {
	tp := p.TotalPages()
	return tp == 0 || p.Page >= tp-1
}
