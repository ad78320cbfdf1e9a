package handler

import (
	"strconv"
	"strings"

	"rinha/db"
)

const (
	minValidYear = 1800
	maxValidYear = 9999
)

func isLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// IsDateValid reports whether s is a real calendar date in YYYY-MM-DD form.
// Any malformed segment makes the whole date invalid; the function never
// errors or panics.
func IsDateValid(s string) bool {
	if len(s) != 10 {
		return false
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return false
	}

	var numbers [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return false
		}
		numbers[i] = n
	}

	year, month, day := numbers[0], numbers[1], numbers[2]

	if year < minValidYear || year > maxValidYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}

	if month == 2 {
		if isLeap(year) {
			return day <= 29
		}
		return day <= 28
	}

	if month == 4 || month == 6 || month == 9 || month == 11 {
		return day <= 30
	}

	return true
}

// ValidationError is a rejection of the request content; it maps to a 422
// with its message as the response body.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalid(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

// createRequest keeps stack untyped so that non-string elements are a
// specific rejection instead of a decode failure.
type createRequest struct {
	Apelido    string `json:"apelido"`
	Nome       string `json:"nome"`
	Nascimento string `json:"nascimento"`
	Stack      []any  `json:"stack"`
}

// ParsePessoa validates a creation body. Checks run in a fixed order and
// stop at the first failure, so each bad request gets one deterministic
// message. A body that does not decode at all is not a validation rejection;
// it returns the decode error unchanged.
func ParsePessoa(body []byte) (*db.Pessoa, error) {
	var request createRequest

	if err := json.Unmarshal(body, &request); err != nil {
		return nil, err
	}

	if request.Apelido == "" {
		return nil, invalid("The 'apelido' parameter should not be empty")
	}
	if request.Nome == "" {
		return nil, invalid("The 'nome' parameter should not be empty")
	}
	if request.Nascimento == "" {
		return nil, invalid("The 'nascimento' parameter should not be empty")
	}
	if len(request.Stack) == 0 {
		return nil, invalid("The 'stack' parameter should not be empty")
	}

	if len(request.Apelido) > 32 {
		return nil, invalid("The 'apelido' parameter length should be less than 32 characters")
	}
	if len(request.Nome) > 100 {
		return nil, invalid("The 'nome' parameter length should be less than 100 characters")
	}

	if !IsDateValid(request.Nascimento) {
		return nil, invalid("The 'nascimento' parameter is not a valid date of format 'YYYY-MM-DD'")
	}

	stack := make([]string, 0, len(request.Stack))
	for _, element := range request.Stack {
		s, ok := element.(string)
		if !ok {
			return nil, invalid("The 'stack' parameter should have only strings")
		}
		if len(s) > 32 {
			return nil, invalid("The 'stack' parameter should have items with 32 characters or less")
		}
		stack = append(stack, s)
	}

	return &db.Pessoa{
		Apelido:    request.Apelido,
		Nome:       request.Nome,
		Nascimento: request.Nascimento,
		Stack:      stack,
	}, nil
}
