package session

import (
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

const (
	bucketSession = "session"
	keyToken      = "token"
	keyUser       = "user"
)

// Store persists the session token and user record in a small bbolt
// file under fixed keys, so the console restores its authenticated
// state across restarts without re-login.
type Store struct {
	db *bolt.DB
}

func OpenStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSession))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Save(token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))
		if err := b.Put([]byte(keyToken), []byte(token)); err != nil {
			return err
		}
		return b.Put([]byte(keyUser), raw)
	})
}

// Load returns the persisted token and user, or ("", nil, nil) when no
// session has been saved.
func (s *Store) Load() (string, *models.User, error) {
	var (
		token string
		user  *models.User
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))
		t := b.Get([]byte(keyToken))
		if t == nil {
			return nil
		}
		token = string(t)
		if raw := b.Get([]byte(keyUser)); raw != nil {
			var u models.User
			if err := json.Unmarshal(raw, &u); err != nil {
				return err
			}
			user = &u
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))
		if err := b.Delete([]byte(keyToken)); err != nil {
			return err
		}
		return b.Delete([]byte(keyUser))
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
