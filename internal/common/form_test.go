package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormInt(t *testing.T) {
	assert.Equal(t, 2, FormInt("2", 1))
	assert.Equal(t, 2, FormInt(" 2 ", 1))
	assert.Equal(t, 1, FormInt("", 1))
	assert.Equal(t, 1, FormInt("dua", 1))
	assert.Equal(t, -3, FormInt("-3", 1))
}

func TestFormFloat(t *testing.T) {
	assert.Equal(t, 500000.0, FormFloat("500000", 0))
	assert.Equal(t, 0.5, FormFloat("0.5", 0))
	assert.Equal(t, 0.0, FormFloat("", 0))
	assert.Equal(t, 0.0, FormFloat("gratis", 0))
}

func TestStringOrNil(t *testing.T) {
	assert.Nil(t, StringOrNil(""))
	assert.Nil(t, StringOrNil("   "))

	p := StringOrNil("0812345678")
	assert.NotNil(t, p)
	assert.Equal(t, "0812345678", *p)
}

func TestSafeString(t *testing.T) {
	assert.Equal(t, "", SafeString(nil))
	s := "halo"
	assert.Equal(t, "halo", SafeString(&s))
}
