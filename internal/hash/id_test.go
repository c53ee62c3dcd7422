package hash

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestID_Deterministic(t *testing.T) {
	assert.Equal(t, ID("home_books"), ID("home_books"))
	assert.NotEqual(t, ID("home_books"), ID("home_book"))
}

func TestSchema_Deterministic(t *testing.T) {
	names := []string{"home_books", "parent_reads", "child_age"}
	assert.Equal(t, Schema(names), Schema(names))
}

func TestSchema_OrderSensitive(t *testing.T) {
	a := Schema([]string{"home_books", "child_age"})
	b := Schema([]string{"child_age", "home_books"})
	assert.NotEqual(t, a, b)
}

// Length prefixing keeps name boundaries in the digest: regrouping the
// same bytes across names must change the fingerprint.
func TestSchema_NameBoundaries(t *testing.T) {
	a := Schema([]string{"ab", "c"})
	b := Schema([]string{"a", "bc"})
	assert.NotEqual(t, a, b)

	assert.NotEqual(t, Schema([]string{"abc"}), a)
	assert.NotEqual(t, Schema([]string{"abc"}), b)
}

func TestSchema_Empty(t *testing.T) {
	// An empty schema still has a stable fingerprint.
	assert.Equal(t, Schema(nil), Schema([]string{}))
	assert.NotEqual(t, Schema(nil), Schema([]string{""}))
}

func randNames(n int) []string {
	const letters = "abcdefghijklmnopqrstuvwxyz_"
	seededRand := rand.New(rand.NewSource(42))

	names := make([]string, n)
	for i := range names {
		b := make([]byte, 8+seededRand.Intn(12))
		for j := range b {
			b[j] = letters[seededRand.Intn(len(letters))]
		}
		names[i] = string(b)
	}

	return names
}

func BenchmarkSchema(b *testing.B) {
	names := randNames(40)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Schema(names)
	}
}
