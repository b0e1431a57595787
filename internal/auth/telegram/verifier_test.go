package telegram_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tglogin/internal/auth/telegram"
	"tglogin/internal/domain"
)

const (
	exampleToken = "BOT123"
	exampleHash  = "19e43484404cb6d1ca3dc64a7921bdbea8413be388610ab1b847ce4f0546a83c"
)

func examplePayload() map[string]string {
	return map[string]string{"id": "42", "first_name": "Ada", "auth_date": "1000"}
}

func sign(t *testing.T, botToken string, fields map[string]string) string {
	t.Helper()
	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(telegram.Canonicalize(fields)))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestComputeHash_KnownVector(t *testing.T) {
	secret := telegram.SigningSecret(exampleToken)
	assert.Equal(t, exampleHash, telegram.ComputeHash(secret[:], examplePayload()))
}

func TestVerify_Example(t *testing.T) {
	user, err := telegram.Verify(examplePayload(), exampleHash, exampleToken)

	require.NoError(t, err)
	assert.Equal(t, "42", user.ID)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "1000", user.AuthDate)
	assert.Empty(t, user.LastName)
	assert.Empty(t, user.Username)
	assert.Empty(t, user.PhotoURL)
}

func TestVerify_ExampleWithChangedID(t *testing.T) {
	fields := examplePayload()
	fields["id"] = "43"

	user, err := telegram.Verify(fields, exampleHash, exampleToken)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestVerifier_RoundTripFullProfile(t *testing.T) {
	fields := map[string]string{
		"id":         "123456789",
		"first_name": "Grace",
		"last_name":  "Hopper",
		"username":   "ghopper",
		"photo_url":  "https://t.me/i/userpic/320/ghopper.jpg",
		"auth_date":  "1700000000",
	}
	v := telegram.NewVerifier("123456:ABC-DEF")

	user, err := v.Verify(fields, sign(t, "123456:ABC-DEF", fields))

	require.NoError(t, err)
	assert.Equal(t, &domain.TelegramUser{
		ID:        "123456789",
		FirstName: "Grace",
		LastName:  "Hopper",
		Username:  "ghopper",
		PhotoURL:  "https://t.me/i/userpic/320/ghopper.jpg",
		AuthDate:  "1700000000",
	}, user)
}

func TestVerifier_ExtraFieldsAreSignedButNotExposed(t *testing.T) {
	fields := examplePayload()
	fields["allows_write_to_pm"] = "true"
	hash := sign(t, exampleToken, fields)
	v := telegram.NewVerifier(exampleToken)

	user, err := v.Verify(fields, hash)
	require.NoError(t, err)
	assert.Equal(t, "42", user.ID)

	delete(fields, "allows_write_to_pm")
	_, err = v.Verify(fields, hash)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestVerifier_TamperAnySingleCharacter(t *testing.T) {
	fields := map[string]string{
		"id":         "42",
		"first_name": "Ada",
		"username":   "ada_l",
		"auth_date":  "1000",
	}
	hash := sign(t, exampleToken, fields)
	v := telegram.NewVerifier(exampleToken)

	for key, value := range fields {
		for i := range value {
			tampered := make(map[string]string, len(fields))
			for k, val := range fields {
				tampered[k] = val
			}
			b := []byte(value)
			b[i] ^= 0x01
			tampered[key] = string(b)

			_, err := v.Verify(tampered, hash)
			assert.ErrorIs(t, err, domain.ErrInvalidSignature, "field %s index %d", key, i)
		}
	}
}

func TestVerifier_TamperedHash(t *testing.T) {
	v := telegram.NewVerifier(exampleToken)

	cases := map[string]string{
		"flipped last char": exampleHash[:len(exampleHash)-1] + "d",
		"uppercase":         "19E43484404CB6D1CA3DC64A7921BDBEA8413BE388610AB1B847CE4F0546A83C",
		"truncated":         exampleHash[:32],
		"not hex":           "zz",
	}
	for name, hash := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(examplePayload(), hash)
			assert.ErrorIs(t, err, domain.ErrInvalidSignature)
		})
	}
}

func TestVerifier_WrongBotToken(t *testing.T) {
	_, err := telegram.NewVerifier("BOT124").Verify(examplePayload(), exampleHash)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestVerifier_MissingTag(t *testing.T) {
	user, err := telegram.NewVerifier(exampleToken).Verify(examplePayload(), "")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrMissingTag)
	assert.NotErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestVerifier_MissingCredential(t *testing.T) {
	v := telegram.NewVerifier("")
	assert.False(t, v.Configured())

	for _, hash := range []string{"", exampleHash, "garbage"} {
		_, err := v.Verify(examplePayload(), hash)
		assert.ErrorIs(t, err, domain.ErrMissingCredential)
	}
	_, err := telegram.Verify(nil, "", "")
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestVerifier_EmptyPayload(t *testing.T) {
	fields := map[string]string{}
	user, err := telegram.NewVerifier(exampleToken).Verify(fields, sign(t, exampleToken, fields))

	require.NoError(t, err)
	assert.Equal(t, &domain.TelegramUser{}, user)
}

func TestVerifier_Provider(t *testing.T) {
	assert.Equal(t, "telegram", telegram.NewVerifier(exampleToken).Provider())
}

func TestVerifier_ConcurrentUse(t *testing.T) {
	v := telegram.NewVerifier(exampleToken)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := v.Verify(examplePayload(), exampleHash)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
