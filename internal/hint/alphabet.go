package hint

import (
	"errors"
	"fmt"
	"unicode"
)

// Alphabet validation errors.
var (
	ErrAlphabetTooShort  = errors.New("hint alphabet needs at least two characters")
	ErrAlphabetDuplicate = errors.New("hint alphabet contains duplicate characters")
	ErrAlphabetUnusable  = errors.New("hint alphabet contains non-printable characters")
)

// DefaultAlphabet is the home-row character set used when no alphabet
// is configured.
const DefaultAlphabet = "asdfghjkl"

// Alphabet is an ordered character set used to synthesize hint codes.
// Order matters: earlier characters are considered more reachable and
// are assigned to higher-priority targets.
type Alphabet struct {
	chars []rune
}

// NewAlphabet builds an alphabet from the given character string.
func NewAlphabet(chars string) (Alphabet, error) {
	runes := []rune(chars)
	if len(runes) < 2 {
		return Alphabet{}, ErrAlphabetTooShort
	}
	seen := make(map[rune]bool, len(runes))
	for _, r := range runes {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrAlphabetUnusable, r)
		}
		if seen[r] {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrAlphabetDuplicate, r)
		}
		seen[r] = true
	}
	return Alphabet{chars: runes}, nil
}

// MustAlphabet builds an alphabet and panics on invalid input.
// Intended for constants and tests.
func MustAlphabet(chars string) Alphabet {
	a, err := NewAlphabet(chars)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of characters in the alphabet.
func (a Alphabet) Len() int {
	return len(a.chars)
}

// At returns the character at the given position.
func (a Alphabet) At(i int) rune {
	return a.chars[i]
}

// Contains reports whether the alphabet includes the character.
func (a Alphabet) Contains(r rune) bool {
	for _, c := range a.chars {
		if c == r {
			return true
		}
	}
	return false
}

// String returns the alphabet's characters in order.
func (a Alphabet) String() string {
	return string(a.chars)
}

// CodeLength returns the uniform code length needed to encode n
// candidates: the smallest L with len(alphabet)^L >= n. Zero
// candidates need no codes.
func (a Alphabet) CodeLength(n int) int {
	if n <= 0 {
		return 0
	}
	length := 1
	capacity := len(a.chars)
	for capacity < n {
		capacity *= len(a.chars)
		length++
	}
	return length
}

// Capacity returns the number of distinct codes of at most maxLength
// characters, saturating at maxInt to avoid overflow on generous
// limits.
func (a Alphabet) Capacity(maxLength int) int {
	if maxLength <= 0 {
		return 0
	}
	capacity := 1
	for i := 0; i < maxLength; i++ {
		if capacity > maxCapacity/len(a.chars) {
			return maxCapacity
		}
		capacity *= len(a.chars)
	}
	return capacity
}

// maxCapacity caps Capacity to keep the arithmetic overflow-free.
const maxCapacity = int(^uint(0) >> 2)
