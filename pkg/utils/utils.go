package utils

import (
	"math"
	"strconv"
)

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// Plural возвращает "<count> <word>" с окончанием -s, если count > 1
func Plural(count int, word string) string {
	if count > 1 {
		word += "s"
	}
	return strconv.Itoa(count) + " " + word
}
