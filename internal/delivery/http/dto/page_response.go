package dto

import "hr-registry/internal/usecase"

type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

func NewPageResponse[T any](content []T, info usecase.PageInfo) PageResponse[T] {
	if content == nil {
		content = make([]T, 0)
	}
	return PageResponse[T]{
		Content:       content,
		PageNumber:    info.Page,
		PageSize:      info.Size,
		TotalElements: info.Total,
		TotalPages:    info.TotalPages(),
		First:         info.First(),
		Last:          info.Last(),
	}
}
