package db

import (
	"strings"

	"github.com/google/uuid"
)

type Pessoa struct {
	Id         uuid.UUID `json:"id"`
	Apelido    string    `json:"apelido"`
	Nome       string    `json:"nome"`
	Nascimento string    `json:"nascimento"`
	Stack      []string  `json:"stack"`
}

// EncodeStack joins the stack into the single text value persisted in the
// stack column, preserving order. Elements are length-checked upstream and
// never contain the delimiter.
func EncodeStack(stack []string) string {
	return strings.Join(stack, ",")
}

// DecodeStack is the inverse of EncodeStack. An empty column value decodes
// to an empty list, not to a list holding one empty string.
func DecodeStack(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
