package password_test

import (
	"haven/shared/password"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	password.Cost = bcrypt.MinCost

	os.Exit(m.Run())
}

func TestHash(t *testing.T) {
	hash, err := password.Hash("sunset-haven-2026")

	require.NoError(t, err)
	assert.NotEqual(t, "sunset-haven-2026", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	again, err := password.Hash("sunset-haven-2026")

	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "salted hashes differ")
}

func TestHash_Empty(t *testing.T) {
	_, err := password.Hash("")

	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestHash_TooLong(t *testing.T) {
	_, err := password.Hash(strings.Repeat("x", 73))

	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name    string
		plain   string
		hash    string
		wantErr error
	}{
		{name: "match", plain: "correct horse", hash: hash},
		{name: "mismatch", plain: "battery staple", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "case sensitive", plain: "Correct Horse", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", plain: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", plain: "correct horse", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", plain: "correct horse", hash: "plain-text", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hash)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
