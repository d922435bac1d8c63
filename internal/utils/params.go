package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryID reads a positive integer identifier from the query string.
// Absent, zero and non-numeric values all report false.
func QueryID(c *gin.Context, name string) (uint64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// OptionalQueryID is QueryID for parameters that may be omitted.
func OptionalQueryID(c *gin.Context, name string) *uint64 {
	id, ok := QueryID(c, name)
	if !ok {
		return nil
	}
	return &id
}
