package base32

import (
	"errors"
	"fmt"
)

// ErrorType classifies a DecodeError.
type ErrorType int

const (
	InvalidCharacter ErrorType = iota
	InvalidUTF8
)

var (
	ErrInvalidCharacter = errors.New("invalid base32 character")
	ErrInvalidUTF8      = errors.New("invalid utf-8 in decoded data")
)

// DecodeError is returned by Decode. Char is set for InvalidCharacter.
type DecodeError struct {
	Type ErrorType
	Char rune
}

func (e *DecodeError) Error() string {
	switch e.Type {
	case InvalidCharacter:
		return fmt.Sprintf("%s: %c", ErrInvalidCharacter, e.Char)
	case InvalidUTF8:
		return ErrInvalidUTF8.Error()
	default:
		return fmt.Sprintf("unknown decode error: %d", e.Type)
	}
}

// Is lets errors.Is match DecodeError against ErrInvalidCharacter and ErrInvalidUTF8.
func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrInvalidCharacter:
		return e.Type == InvalidCharacter
	case ErrInvalidUTF8:
		return e.Type == InvalidUTF8
	}
	return false
}

func newInvalidCharacterError(c rune) *DecodeError {
	return &DecodeError{
		Type: InvalidCharacter,
		Char: c,
	}
}

func newInvalidUTF8Error() *DecodeError {
	return &DecodeError{
		Type: InvalidUTF8,
	}
}
