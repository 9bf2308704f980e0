package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordBank(t *testing.T) {
	assert.GreaterOrEqual(t, len(wordBank), 400)

	seen := make(map[string]bool, len(wordBank))
	for _, word := range wordBank {
		assert.NotEmpty(t, word)
		assert.False(t, seen[word], "duplicate word %q", word)
		seen[word] = true

		for _, c := range word {
			if c < 'A' || c > 'Z' {
				t.Fatalf("word %q is not uppercase letters-only", word)
			}
		}
	}
}

func TestRandomWords(t *testing.T) {
	words := randomWords(boardSize)
	assert.Len(t, words, boardSize)

	inBank := make(map[string]bool, len(wordBank))
	for _, w := range wordBank {
		inBank[w] = true
	}

	seen := make(map[string]bool, len(words))
	for _, w := range words {
		assert.False(t, seen[w], "draw repeated %q", w)
		seen[w] = true
		assert.True(t, inBank[w], "%q is not in the bank", w)
	}
}

func TestRandomWordsDifferBetweenDraws(t *testing.T) {
	first := randomWords(boardSize)
	second := randomWords(boardSize)

	same := true
	for i := range first {
		if first[i] != second[i] {
			same = false
			break
		}
	}
	assert.False(t, same, "two independent draws should differ")
}

func TestRandomWordsClampsToBankSize(t *testing.T) {
	words := randomWords(len(wordBank) + 100)
	assert.Len(t, words, len(wordBank))
}
