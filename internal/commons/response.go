package commons

import "math"

type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func NewPagination(total int64, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}

type Response[T any] struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message,omitempty"`
	Data       *T           `json:"data,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
}

func SuccessResponse[T any](data T) Response[T] {
	return Response[T]{
		Success: true,
		Data:    &data,
	}
}

func PagedResponse[T any](data T, pagination Pagination) Response[T] {
	return Response[T]{
		Success:    true,
		Data:       &data,
		Pagination: &pagination,
	}
}

func ValidationErrorResponse[T any](errors []FieldError) Response[T] {
	return Response[T]{
		Success: false,
		Errors:  errors,
	}
}

func ErrorResponse[T any](message string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
	}
}

func MessageResponse(message string) Response[struct{}] {
	return Response[struct{}]{
		Success: true,
		Message: message,
	}
}
