package handlers

import (
	"strconv"
)

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func pagesFromTotal(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	p := int((total + int64(pageSize) - 1) / int64(pageSize))
	if p < 1 {
		p = 1
	}
	return p
}
