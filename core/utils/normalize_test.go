package utils_test

import (
	"testing"

	"company-registry/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUF(t *testing.T) {
	assert.Equal(t, "RS", utils.NormalizeUF(" rs "))
	assert.Equal(t, "SP", utils.NormalizeUF("SP"))
	assert.Equal(t, "", utils.NormalizeUF("RSX"))
	assert.Equal(t, "", utils.NormalizeUF("1A"))
	assert.Equal(t, "", utils.NormalizeUF(""))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"02", "04"}, utils.SplitList([]string{"02,04"}))
	assert.Equal(t, []string{"02", "04"}, utils.SplitList([]string{"02", "04"}))
	assert.Equal(t, []string{"a", "b", "c"}, utils.SplitList([]string{" a , b ", "c"}))
	assert.Nil(t, utils.SplitList([]string{"", " , "}))
	assert.Nil(t, utils.SplitList(nil))
}
