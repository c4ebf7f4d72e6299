// Package bbolt implements the ports.Archive interface using bbolt (embedded
// B+ tree). Matched messages are stored as raw JSON payloads in a single
// bucket, keyed by big-endian message id so iteration is chronological for
// platforms with monotonic ids.
package bbolt

import (
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketMessages = []byte("messages")

// Archive implements ports.Archive backed by bbolt.
type Archive struct {
	db *bolt.DB
}

// NewArchive opens (or creates) a bbolt database at the given path.
func NewArchive(path string) (*Archive, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketMessages)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("bbolt init: %w", err)
	}
	return &Archive{db: db}, nil
}

// SaveMessage stores the raw payload under the message id, overwriting any
// prior payload for the same id.
func (a *Archive) SaveMessage(id int64, payload []byte) error {
	return a.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketMessages).Put(itob(id), payload)
	})
}

// Message returns the stored payload for id, or nil if absent.
func (a *Archive) Message(id int64) ([]byte, error) {
	var payload []byte
	err := a.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketMessages).Get(itob(id)); v != nil {
			payload = make([]byte, len(v))
			copy(payload, v)
		}
		return nil
	})
	return payload, err
}

// Count returns the number of archived messages.
func (a *Archive) Count() (int, error) {
	var n int
	err := a.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(bucketMessages).Stats().KeyN
		return nil
	})
	return n, err
}

// Close closes the underlying bbolt database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// itob encodes an id as a big-endian byte key.
func itob(id int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(id))
	return b[:]
}
