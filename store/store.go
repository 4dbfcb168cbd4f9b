// Package store connects to the data store and manages charging sessions
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/adipramono/chargelog/internal/session"
)

var pathToDB string

var errAlreadyRunning = errors.New(
	"is chargelog already running? Only one instance can be active at a time",
)

var (
	sessionBucket = []byte("sessions")
	metaBucket    = []byte("meta")
)

var lastBackupKey = []byte("last_backup")

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// LoadSessions reconstructs the full session list from the database, sorted
// by start time. Records that fail to decode are skipped rather than
// surfaced: a corrupt blob degrades to absent state, never to a failed load.
func (c *Client) LoadSessions() ([]session.Session, error) {
	var sessions []session.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket(sessionBucket).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var sess session.Session

			if err := json.Unmarshal(v, &sess); err != nil {
				continue
			}

			sessions = append(sessions, sess)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})

	return sessions, nil
}

// SaveSessions replaces the persisted session list with the given one in a
// single transaction.
func (c *Client) SaveSessions(sessions []session.Session) error {
	return c.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(sessionBucket); err != nil {
			return err
		}

		b, err := tx.CreateBucket(sessionBucket)
		if err != nil {
			return err
		}

		for i := range sessions {
			value, err := json.Marshal(&sessions[i])
			if err != nil {
				return err
			}

			if err := b.Put([]byte(sessions[i].ID), value); err != nil {
				return err
			}
		}

		return nil
	})
}

// PutSession creates or overwrites a single session record.
func (c *Client) PutSession(sess *session.Session) error {
	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Put([]byte(sess.ID), value)
	})
}

// DeleteSession removes a session record. Deleting an absent id is not an
// error.
func (c *Client) DeleteSession(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Delete([]byte(id))
	})
}

// SetLastBackup records when the most recent spreadsheet backup was written.
func (c *Client) SetLastBackup(t time.Time) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(metaBucket).
			Put(lastBackupKey, []byte(t.Format(time.RFC3339)))
	})
}

// LastBackup returns the time of the most recent backup, or the zero time
// if none has been made.
func (c *Client) LastBackup() (time.Time, error) {
	var t time.Time

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(metaBucket).Get(lastBackupKey)
		if len(v) == 0 {
			return nil
		}

		parsed, err := time.Parse(time.RFC3339, string(v))
		if err != nil {
			return nil
		}

		t = parsed

		return nil
	})

	return t, err
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}
	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists(sessionBucket)
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists(metaBucket)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
