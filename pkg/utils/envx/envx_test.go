package envx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Setenv("SPARX_TEST_VALUE", "co")
	t.Setenv("SPARX_TEST_EMPTY", "")

	assert.Equal(t, "co", Get("SPARX_TEST_VALUE", "cs"))
	assert.Equal(t, "cs", Get("SPARX_TEST_EMPTY", "cs"))
	assert.Equal(t, "cs", Get("SPARX_TEST_MISSING", "cs"))
}

func TestGetFloat(t *testing.T) {
	t.Setenv("SPARX_TEST_TEMP", "35.5")
	t.Setenv("SPARX_TEST_BAD", "warm")

	assert.Equal(t, 35.5, GetFloat("SPARX_TEST_TEMP", 20))
	assert.Equal(t, 20.0, GetFloat("SPARX_TEST_BAD", 20))
	assert.Equal(t, 20.0, GetFloat("SPARX_TEST_MISSING", 20))
}

func TestGetList(t *testing.T) {
	t.Setenv("SPARX_TEST_LIST", " co, hco+ ,,cs ")

	assert.Equal(t, []string{"co", "hco+", "cs"}, GetList("SPARX_TEST_LIST", nil))
	assert.Equal(t, []string{"*"}, GetList("SPARX_TEST_MISSING", []string{"*"}))
}
