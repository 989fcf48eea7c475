package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		in, out int
	}{
		{5, 5},
		{9, 9},
		{10, 1},
		{25, 7},
		{29, 11}, // 2+9=11, master, stays
		{38, 11},
		{39, 3}, // 3+9=12, 1+2=3
		{44, 8},
		{11, 11},
		{22, 22},
		{33, 33},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, Reduce(tt.in), "Reduce(%d)", tt.in)
	}
}

func TestLifePath(t *testing.T) {
	// 1+9+9+0+0+5+1+0 = 25, 2+5 = 7
	assert.Equal(t, 7, LifePath("1990-05-10"))

	// 1+9+9+2+0+9+0+8 = 38, 3+8 = 11, master
	assert.Equal(t, 11, LifePath("1992-09-08"))
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"José-María", "JOSEMARIA"},
		{"Jose Maria", "JOSE MARIA"},
		{"O'Connor", "OCONNOR"},
		{"Ana", "ANA"},
		{"Müller", "MULLER"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, NormalizeName(tt.in))
	}
}

func TestProfileIgnoresAccentsAndPunctuation(t *testing.T) {
	accented := Profile("José-María", "2000-01-01")
	plain := Profile("Jose Maria", "2000-01-01")

	assert.Equal(t, plain, accented)
}

func TestProfile(t *testing.T) {
	// Ana: A=1, N=5, A=1; vowels A, A
	profile := Profile("Ana", "1990-05-10")

	assert.Equal(t, 7, profile.LifePath)
	assert.Equal(t, 2, profile.SoulUrge)
	assert.Equal(t, 7, profile.Expression)
}

func TestYCountsAsVowel(t *testing.T) {
	// Y=7 twice: soul urge 14 -> 5
	profile := Profile("Yy", "2000-01-01")

	assert.Equal(t, 5, profile.SoulUrge)
	assert.Equal(t, 5, profile.Expression)
}
