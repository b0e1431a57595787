package telegram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tglogin/internal/auth/telegram"
)

func TestCanonicalize_SortsByKey(t *testing.T) {
	got := telegram.Canonicalize(map[string]string{
		"id":         "42",
		"first_name": "Ada",
		"auth_date":  "1000",
	})

	assert.Equal(t, "auth_date=1000\nfirst_name=Ada\nid=42", got)
}

func TestCanonicalize_Empty(t *testing.T) {
	assert.Equal(t, "", telegram.Canonicalize(map[string]string{}))
	assert.Equal(t, "", telegram.Canonicalize(nil))
}

func TestCanonicalize_SingleField(t *testing.T) {
	assert.Equal(t, "id=1", telegram.Canonicalize(map[string]string{"id": "1"}))
}

func TestCanonicalize_ByteOrderNotLocale(t *testing.T) {
	// Uppercase sorts before lowercase, underscore (0x5f) between them.
	got := telegram.Canonicalize(map[string]string{
		"b":   "1",
		"B":   "2",
		"_":   "3",
		"a_b": "4",
		"ab":  "5",
	})

	assert.Equal(t, "B=2\n_=3\na_b=4\nab=5\nb=1", got)
}

func TestCanonicalize_ValuesAreOpaque(t *testing.T) {
	got := telegram.Canonicalize(map[string]string{
		"first_name": "  Ada ",
		"last_name":  "Love=lace",
		"username":   "",
	})

	assert.Equal(t, "first_name=  Ada \nlast_name=Love=lace\nusername=", got)
}

func TestCanonicalize_DeterministicAndOrderIndependent(t *testing.T) {
	keys := []string{"id", "first_name", "last_name", "username", "photo_url", "auth_date"}
	first := map[string]string{}
	for i, k := range keys {
		first[k] = k + "-value-" + string(rune('a'+i))
	}
	second := map[string]string{}
	for i := len(keys) - 1; i >= 0; i-- {
		second[keys[i]] = first[keys[i]]
	}

	want := telegram.Canonicalize(first)
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, telegram.Canonicalize(first))
		assert.Equal(t, want, telegram.Canonicalize(second))
	}
}
