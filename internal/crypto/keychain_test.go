package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/MKhiriev/go-patient-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIterations = 1000

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestKeyChain() KeyChain {
	return NewKeyChain(WithIterations(testIterations))
}

func TestNewKeyChain_DefaultIterations(t *testing.T) {
	kc := NewKeyChain().(*keyChain)
	assert.Equal(t, 600_000, kc.iterations)

	kc = NewKeyChain(WithIterations(0)).(*keyChain)
	assert.Equal(t, DefaultIterations, kc.iterations, "non-positive override is ignored")
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	kc := newTestKeyChain()

	s1, err := kc.GenerateSalt()
	require.NoError(t, err)
	s2, err := kc.GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.Len(t, s2, SaltSize)
	assert.False(t, bytes.Equal(s1, s2), "expected salts to differ")
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	kc := newTestKeyChain()
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1, err := kc.DeriveKey("correct horse battery staple", salt)
	require.NoError(t, err)
	k2, err := kc.DeriveKey("correct horse battery staple", salt)
	require.NoError(t, err)

	assert.Len(t, k1.material, KeySize)
	assert.Equal(t, k1.material, k2.material)
}

func TestDeriveKey_DifferentInputsProduceDifferentKeys(t *testing.T) {
	kc := newTestKeyChain()
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	base, err := kc.DeriveKey("password-one", salt1)
	require.NoError(t, err)
	otherSalt, err := kc.DeriveKey("password-one", salt2)
	require.NoError(t, err)
	otherPassword, err := kc.DeriveKey("password-two", salt1)
	require.NoError(t, err)

	assert.NotEqual(t, base.material, otherSalt.material)
	assert.NotEqual(t, base.material, otherPassword.material)
}

func TestDeriveKey_EmptySalt(t *testing.T) {
	_, err := newTestKeyChain().DeriveKey("password", nil)
	assert.Error(t, err)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	kc := newTestKeyChain()
	key, err := kc.DeriveKey("password", bytes.Repeat([]byte{0x11}, SaltSize))
	require.NoError(t, err)

	in := sample{Name: "water", Count: 1500}
	env, err := kc.Encrypt(in, key)
	require.NoError(t, err)
	assert.Len(t, env.IV, IVSize)

	var out sample
	require.NoError(t, kc.Decrypt(env, key, &out))
	assert.Equal(t, in, out)
}

func TestEncrypt_VerificationMarker(t *testing.T) {
	kc := newTestKeyChain()
	key, err := kc.DeriveKey("password", bytes.Repeat([]byte{0x12}, SaltSize))
	require.NoError(t, err)

	env, err := kc.Encrypt("verification", key)
	require.NoError(t, err)

	var marker string
	require.NoError(t, kc.Decrypt(env, key, &marker))
	assert.Equal(t, "verification", marker)
}

func TestEncrypt_FreshIVEachCall(t *testing.T) {
	kc := newTestKeyChain()
	key, err := kc.DeriveKey("password", bytes.Repeat([]byte{0x22}, SaltSize))
	require.NoError(t, err)

	e1, err := kc.Encrypt("same", key)
	require.NoError(t, err)
	e2, err := kc.Encrypt("same", key)
	require.NoError(t, err)

	assert.NotEqual(t, []byte(e1.IV), []byte(e2.IV))
	assert.NotEqual(t, []byte(e1.EncryptedData), []byte(e2.EncryptedData))
}

func TestDecrypt_WrongKey(t *testing.T) {
	kc := newTestKeyChain()
	salt := bytes.Repeat([]byte{0x33}, SaltSize)
	right, err := kc.DeriveKey("right password", salt)
	require.NoError(t, err)
	wrong, err := kc.DeriveKey("wrong password", salt)
	require.NoError(t, err)

	env, err := kc.Encrypt(sample{Name: "x"}, right)
	require.NoError(t, err)

	var out sample
	assert.ErrorIs(t, kc.Decrypt(env, wrong, &out), ErrAuthentication)
}

func TestDecrypt_Tampering(t *testing.T) {
	kc := newTestKeyChain()
	key, err := kc.DeriveKey("password", bytes.Repeat([]byte{0x44}, SaltSize))
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(env *models.Envelope)
	}{
		{
			name:   "flipped ciphertext byte",
			mutate: func(env *models.Envelope) { env.EncryptedData[0] ^= 0xFF },
		},
		{
			name:   "flipped tag byte",
			mutate: func(env *models.Envelope) { env.EncryptedData[len(env.EncryptedData)-1] ^= 0x01 },
		},
		{
			name:   "flipped iv byte",
			mutate: func(env *models.Envelope) { env.IV[0] ^= 0x01 },
		},
		{
			name:   "short iv",
			mutate: func(env *models.Envelope) { env.IV = env.IV[:8] },
		},
		{
			name:   "truncated ciphertext",
			mutate: func(env *models.Envelope) { env.EncryptedData = env.EncryptedData[:4] },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := kc.Encrypt(sample{Name: "secret", Count: 7}, key)
			require.NoError(t, err)

			tt.mutate(&env)

			var out sample
			assert.ErrorIs(t, kc.Decrypt(env, key, &out), ErrAuthentication)
		})
	}
}

func TestDecrypt_MalformedPlaintext(t *testing.T) {
	kc := newTestKeyChain()
	key, err := kc.DeriveKey("password", bytes.Repeat([]byte{0x55}, SaltSize))
	require.NoError(t, err)

	env, err := kc.Encrypt("a string, not an object", key)
	require.NoError(t, err)

	var out sample
	assert.ErrorIs(t, kc.Decrypt(env, key, &out), ErrMalformedPlaintext)
}

func TestKey_Destroy(t *testing.T) {
	kc := newTestKeyChain()
	key, err := kc.DeriveKey("password", bytes.Repeat([]byte{0x66}, SaltSize))
	require.NoError(t, err)

	env, err := kc.Encrypt("data", key)
	require.NoError(t, err)

	material := key.material
	key.Destroy()

	assert.True(t, key.Destroyed())
	assert.Equal(t, make([]byte, KeySize), material, "key bytes must be zeroed")

	_, err = kc.Encrypt("data", key)
	assert.ErrorIs(t, err, ErrInvalidKey)

	var out string
	assert.ErrorIs(t, kc.Decrypt(env, key, &out), ErrInvalidKey)

	// idempotent, nil-safe
	key.Destroy()
	var nilKey *Key
	nilKey.Destroy()
	assert.True(t, nilKey.Destroyed())
}

func TestGenerateRecoveryKey(t *testing.T) {
	kc := newTestKeyChain()

	r1, err := kc.GenerateRecoveryKey()
	require.NoError(t, err)
	r2, err := kc.GenerateRecoveryKey()
	require.NoError(t, err)

	assert.Len(t, r1, 64)
	assert.NotEqual(t, r1, r2)

	raw, err := hex.DecodeString(r1)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestGenerateToken(t *testing.T) {
	kc := newTestKeyChain()

	t1, err := kc.GenerateToken()
	require.NoError(t, err)
	t2, err := kc.GenerateToken()
	require.NoError(t, err)

	assert.Len(t, t1, 32)
	assert.NotEqual(t, t1, t2)
}

func TestKeyFromRecoveryKey(t *testing.T) {
	kc := newTestKeyChain()

	recovery, err := kc.GenerateRecoveryKey()
	require.NoError(t, err)

	k1, err := kc.KeyFromRecoveryKey(recovery)
	require.NoError(t, err)
	k2, err := kc.KeyFromRecoveryKey(recovery)
	require.NoError(t, err)

	env, err := kc.Encrypt(sample{Name: "backup"}, k1)
	require.NoError(t, err)

	var out sample
	require.NoError(t, kc.Decrypt(env, k2, &out))
	assert.Equal(t, "backup", out.Name)
}

func TestKeyFromRecoveryKey_Invalid(t *testing.T) {
	kc := newTestKeyChain()

	for _, in := range []string{"", "abcd", string(bytes.Repeat([]byte("zz"), 32))} {
		_, err := kc.KeyFromRecoveryKey(in)
		assert.ErrorIs(t, err, ErrInvalidRecoveryKey, "input %q", in)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, assert.AnError }

func TestRandomFailure(t *testing.T) {
	kc := NewKeyChain(WithIterations(testIterations), WithRandom(failingReader{}))

	_, err := kc.GenerateSalt()
	assert.ErrorIs(t, err, assert.AnError)

	_, err = kc.GenerateRecoveryKey()
	assert.ErrorIs(t, err, assert.AnError)
}
