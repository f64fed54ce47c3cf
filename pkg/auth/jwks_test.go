package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwkFor(kid string, pub *rsa.PublicKey) JSONWebKey {
	return JSONWebKey{
		Kid: kid,
		Kty: "RSA",
		Alg: "RS256",
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
	}
}

func TestProvider_KeyFunc(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(w).Encode(JWKS{Keys: []JSONWebKey{
			jwkFor("k1", &key.PublicKey),
			{Kid: "ec", Kty: "EC"},
		}})
	}))
	defer srv.Close()

	p := NewProviderWithClient(srv.URL, srv.Client())

	t.Run("Valid token verifies", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{"sub": "1"})
		tok.Header["kid"] = "k1"
		signed, err := tok.SignedString(key)
		require.NoError(t, err)

		parsed, err := jwt.Parse(signed, p.KeyFunc)
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
	})

	t.Run("Cached key is not refetched", func(t *testing.T) {
		before := hits.Load()
		_, err := p.Key("k1")
		require.NoError(t, err)
		assert.Equal(t, before, hits.Load())
	})

	t.Run("Non-RSA keys are skipped", func(t *testing.T) {
		_, err := p.Key("ec")
		assert.ErrorIs(t, err, ErrUnknownKey)
	})

	t.Run("HMAC tokens are rejected", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"})
		signed, err := tok.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.Parse(signed, p.KeyFunc)
		assert.Error(t, err)
	})
}

func TestJSONWebKey_PublicKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pub, err := jwkFor("k1", &key.PublicKey).PublicKey()
	require.NoError(t, err)
	assert.True(t, key.PublicKey.Equal(pub))

	bad := jwkFor("k2", &key.PublicKey)
	bad.E = base64.RawURLEncoding.EncodeToString([]byte{1})
	_, err = bad.PublicKey()
	assert.Error(t, err)
}

func TestProvider_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewProviderWithClient(srv.URL, srv.Client())
	_, err := p.Key("any")
	assert.ErrorContains(t, err, "unexpected status 502")
}
