package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("lowercases", func(t *testing.T) {
		assert.Equal(t, "atelier noir", Normalize("Atelier NOIR"))
	})

	t.Run("strips accents", func(t *testing.T) {
		assert.Equal(t, "ebene", Normalize("Ébène"))
		assert.Equal(t, "cote d'ivoire", Normalize("CÔTE d'Ivoire"))
		assert.Equal(t, "turkiye", Normalize("Türkiye"))
	})

	t.Run("accented and plain forms collide", func(t *testing.T) {
		assert.Equal(t, Normalize("ebene"), Normalize("Ébène"))
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{"Ébène", "ATELIER Écru", "plain", "CÔTE d'Ivoire"}
		for _, in := range inputs {
			once := Normalize(in)
			assert.Equal(t, once, Normalize(once))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
	})
}
