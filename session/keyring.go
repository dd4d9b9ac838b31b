package session

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/zalando/go-keyring"

	"ems-cli/logger"
)

const keyringService = "ems-cli"

const (
	keyToken    = "token"
	keyRole     = "role"
	keyUsername = "username"
)

// The token goes last: a role is only readable once its token is stored.
var writeOrder = []string{keyRole, keyUsername, keyToken}

// secretStore is the subset of go-keyring used here
type secretStore interface {
	Get(service, user string) (string, error)
	Set(service, user, password string) error
	Delete(service, user string) error
}

type osKeyring struct{}

func (osKeyring) Get(service, user string) (string, error) { return keyring.Get(service, user) }
func (osKeyring) Set(service, user, password string) error { return keyring.Set(service, user, password) }
func (osKeyring) Delete(service, user string) error        { return keyring.Delete(service, user) }

// KeyringRepository stores the session in the OS keychain/credential manager
type KeyringRepository struct {
	service string
	secrets secretStore
	log     zerolog.Logger
}

// NewKeyringRepository creates a repository using the default keyring service name
func NewKeyringRepository() *KeyringRepository {
	return newKeyringRepository(osKeyring{})
}

func newKeyringRepository(secrets secretStore) *KeyringRepository {
	return &KeyringRepository{
		service: keyringService,
		secrets: secrets,
		log:     logger.Component("session.keyring"),
	}
}

func (r *KeyringRepository) Get() Session {
	return Session{
		Token:    r.load(keyToken),
		Role:     r.load(keyRole),
		Username: r.load(keyUsername),
	}
}

// Set writes every field. A failed write clears the whole session so a new
// token is never paired with an old role.
func (r *KeyringRepository) Set(s Session) error {
	values := map[string]string{
		keyToken:    s.Token,
		keyRole:     s.Role,
		keyUsername: s.Username,
	}
	for _, key := range writeOrder {
		if err := r.store(key, values[key]); err != nil {
			if clearErr := r.Clear(); clearErr != nil {
				r.log.Error().Err(clearErr).Msg("failed to clear partially written session")
			}
			return err
		}
	}
	return nil
}

func (r *KeyringRepository) Clear() error {
	for _, key := range []string{keyToken, keyRole, keyUsername} {
		if err := r.delete(key); err != nil {
			return err
		}
	}
	return nil
}

func (r *KeyringRepository) load(key string) string {
	value, err := r.secrets.Get(r.service, key)
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			r.log.Warn().Err(err).Str("key", key).Msg("keyring read failed, treating as absent")
		}
		return ""
	}
	return value
}

// store writes value, deleting the key instead when value is empty so a
// stale role never survives a new login
func (r *KeyringRepository) store(key, value string) error {
	if value == "" {
		return r.delete(key)
	}
	if err := r.secrets.Set(r.service, key, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (r *KeyringRepository) delete(key string) error {
	if err := r.secrets.Delete(r.service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
