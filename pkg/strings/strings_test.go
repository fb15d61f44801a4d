package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesToString(t *testing.T) {
	assert.Equal(t, "", BytesToString(nil))
	assert.Equal(t, "", BytesToString([]byte{}))
	assert.Equal(t, "hello", BytesToString([]byte("hello")))
}

func TestStringToBytes(t *testing.T) {
	assert.Nil(t, StringToBytes(""))
	assert.Equal(t, []byte("hello"), StringToBytes("hello"))
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "null", "<null>", "日本語"} {
		assert.Equal(t, s, BytesToString(StringToBytes(s)))
	}
}
