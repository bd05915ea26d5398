package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hmacHex(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestNewVerifier(t *testing.T) {
	assert := assert.New(t)

	v, err := NewVerifier("")
	assert.ErrorIs(err, ErrInvalidConfiguration, "Should fail for an empty secret")
	assert.Nil(v)

	v, err = NewVerifier("test_secret")
	assert.NoError(err)
	assert.Equal([]byte("test_secret"), v.secret)
}

func TestSign(t *testing.T) {
	v, err := NewVerifier("testsecret")
	require.NoError(t, err)

	assert.Equal(t, "f940fd6cb83a0567daa8d294f0f93ac29abfb5d9e9a25507bb6e88578dea344a", v.Sign([]byte("test body")))
}

func TestVerify(t *testing.T) {
	secrets := []string{"test_secret", "test_secret_123", "s", "a much longer secret with spaces and ünïcödé"}
	payloads := [][]byte{
		[]byte(`{"test": "data"}`),
		[]byte(`{"action":"published","story_id":123}`),
		{},
		{0x00, 0xff, 0x10, 0x80},
	}

	for _, secret := range secrets {
		v, err := NewVerifier(secret)
		require.NoError(t, err)

		for _, payload := range payloads {
			assert := assert.New(t)

			signature := hmacHex(secret, payload)
			assert.True(v.Verify(payload, signature), "Signature computed with the same secret should be valid")
			assert.NoError(v.Check(payload, signature))

			assert.False(v.Verify(payload, ""), "Empty signature should never be valid")
			assert.ErrorIs(v.Check(payload, ""), ErrMissingSignature)

			assert.False(v.Verify(payload, hmacHex(secret+"x", payload)), "Signature of another secret should be invalid")
			assert.ErrorIs(v.Check(payload, "invalid"), ErrSignatureMismatch)
		}
	}
}

func TestVerifySignatureFormat(t *testing.T) {
	assert := assert.New(t)

	v, err := NewVerifier("test_secret")
	require.NoError(t, err)

	payload := []byte(`{"test": "data"}`)
	signature := hmacHex("test_secret", payload)

	assert.False(v.Verify(payload, "sha256="+signature), "Prefixed signatures are not sent by storyblok")
	assert.False(v.Verify(payload, signature[:len(signature)-1]), "Truncated signature should be invalid")
	assert.False(v.Verify(payload, signature+"0"), "Extended signature should be invalid")

	upper := []byte(signature)
	for i, c := range upper {
		if c >= 'a' && c <= 'f' {
			upper[i] = c - 'a' + 'A'
		}
	}
	assert.False(v.Verify(payload, string(upper)), "Only lowercase hex is accepted")
}

func TestVerifyModifiedPayload(t *testing.T) {
	v, err := NewVerifier("test_secret_123")
	require.NoError(t, err)

	payload := []byte(`{"action":"published","story_id":123}`)
	signature := v.Sign(payload)
	require.True(t, v.Verify(payload, signature))

	for i := range payload {
		modified := make([]byte, len(payload))
		copy(modified, payload)
		modified[i] ^= 0x01

		assert.False(t, v.Verify(modified, signature), "Changing byte %d should invalidate the signature", i)
	}
}

func TestParseEvent(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert := assert.New(t)

		event, err := ParseEvent([]byte(`{"text":"The user test@example.com published the Story Home","action":"published","space_id":42,"story_id":123,"full_slug":"home"}`))
		assert.NoError(err)
		assert.Equal(Event{
			Text:     "The user test@example.com published the Story Home",
			Action:   "published",
			SpaceID:  42,
			StoryID:  123,
			FullSlug: "home",
		}, event)
		assert.Equal("published", event.Type())
	})
	t.Run("NoAction", func(t *testing.T) {
		event, err := ParseEvent([]byte(`{"story_id":123}`))
		assert.NoError(t, err)
		assert.Equal(t, "unknown", event.Type())
	})
	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseEvent([]byte(`not json`))
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})
}
