package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAESCipher(t *testing.T) {
	t.Run("rejects an empty secret", func(t *testing.T) {
		_, err := NewAESCipher("")
		assert.Error(t, err)
	})

	t.Run("accepts any non-empty secret", func(t *testing.T) {
		c, err := NewAESCipher("short")
		require.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestEncryptDecrypt(t *testing.T) {
	c, err := NewAESCipher("engine-secret")
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		ciphertext, err := c.Encrypt("p@ssw0rd")
		require.NoError(t, err)
		assert.NotEqual(t, "p@ssw0rd", ciphertext)

		plaintext, err := c.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, "p@ssw0rd", plaintext)
	})

	t.Run("fresh nonce per encryption", func(t *testing.T) {
		first, err := c.Encrypt("p@ssw0rd")
		require.NoError(t, err)
		second, err := c.Encrypt("p@ssw0rd")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("wrong key fails to decrypt", func(t *testing.T) {
		other, err := NewAESCipher("different-secret")
		require.NoError(t, err)

		ciphertext, err := c.Encrypt("p@ssw0rd")
		require.NoError(t, err)

		_, err = other.Decrypt(ciphertext)
		assert.Error(t, err)
	})

	t.Run("tampered ciphertext fails", func(t *testing.T) {
		ciphertext, err := c.Encrypt("p@ssw0rd")
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(ciphertext)
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0x01

		_, err = c.Decrypt(base64.StdEncoding.EncodeToString(raw))
		assert.Error(t, err)
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := c.Decrypt("not base64 at all!!!")
		assert.Error(t, err)

		_, err = c.Decrypt(base64.StdEncoding.EncodeToString([]byte("tiny")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too short")
	})
}
