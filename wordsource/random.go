package wordsource

import "math/rand"

// RandomWords creates n words of the given length, made of uppercase letters
// A to Z. Callers control reproducibility by seeding r.
func RandomWords(r *rand.Rand, n, length int) []string {
	if n <= 0 || length <= 0 {
		return nil
	}
	words := make([]string, n)
	buf := make([]byte, length)
	for i := range words {
		for j := range buf {
			buf[j] = byte('A' + r.Intn(26))
		}
		words[i] = string(buf)
	}
	return words
}
