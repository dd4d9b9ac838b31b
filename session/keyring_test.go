package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

// flakySecrets is an in-memory secret store that fails writes to one key
type flakySecrets struct {
	values map[string]string
	failOn string
}

func (f *flakySecrets) Get(service, user string) (string, error) {
	v, ok := f.values[user]
	if !ok {
		return "", keyring.ErrNotFound
	}
	return v, nil
}

func (f *flakySecrets) Set(service, user, password string) error {
	if user == f.failOn {
		return errors.New("keychain locked")
	}
	f.values[user] = password
	return nil
}

func (f *flakySecrets) Delete(service, user string) error {
	if _, ok := f.values[user]; !ok {
		return keyring.ErrNotFound
	}
	delete(f.values, user)
	return nil
}

func TestKeyringRepository_FailedWriteClearsSession(t *testing.T) {
	for _, failOn := range []string{keyRole, keyUsername, keyToken} {
		t.Run(failOn, func(t *testing.T) {
			secrets := &flakySecrets{values: map[string]string{}}
			repo := newKeyringRepository(secrets)
			require.NoError(t, repo.Set(Session{Token: "old-admin", Role: "ADMIN", Username: "root@example.com"}))
			secrets.failOn = failOn

			err := repo.Set(Session{Token: "new-user", Role: "USER", Username: "ada@example.com"})

			require.Error(t, err)
			assert.True(t, repo.Get().IsZero(), "got %+v", repo.Get())
			assert.False(t, NewAuthorizer(repo).IsAdmin())
		})
	}
}

func TestKeyringRepository_EmptyRoleRemovesOldRole(t *testing.T) {
	repo := newKeyringRepository(&flakySecrets{values: map[string]string{}})
	require.NoError(t, repo.Set(Session{Token: "a", Role: "ADMIN"}))

	require.NoError(t, repo.Set(Session{Token: "b"}))

	assert.Equal(t, Session{Token: "b"}, repo.Get())
}
