package store

import (
	"bytes"
	"encoding/json"
	"strconv"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/fast/internal/models"
	"github.com/ayoisaiah/fast/internal/timeutil"
)

const (
	schemaVersionKey = "schema_version"
	schemaVersion    = 1
)

// rekeyFasts rewrites every fast under the key derived from its start time.
// Version 0 databases keyed fasts by RFC 3339 strings in local time, which do
// not sort chronologically across time zones.
func rekeyFasts(tx *bolt.Tx) error {
	bucket := tx.Bucket([]byte(fastBucket))

	type entry struct {
		key, value []byte
	}

	var stale []entry

	cur := bucket.Cursor()

	for k, v := cur.First(); k != nil; k, v = cur.Next() {
		var f models.Fast

		err := json.Unmarshal(v, &f)
		if err != nil {
			return err
		}

		if !bytes.Equal(k, timeutil.ToKey(f.StartTime)) {
			stale = append(stale, entry{
				key:   bytes.Clone(k),
				value: bytes.Clone(v),
			})
		}
	}

	for _, e := range stale {
		var f models.Fast

		err := json.Unmarshal(e.value, &f)
		if err != nil {
			return err
		}

		err = bucket.Delete(e.key)
		if err != nil {
			return err
		}

		err = bucket.Put(timeutil.ToKey(f.StartTime), e.value)
		if err != nil {
			return err
		}
	}

	return nil
}

func migrate(tx *bolt.Tx) error {
	meta := tx.Bucket([]byte(metaBucket))

	version := 0

	if b := meta.Get([]byte(schemaVersionKey)); b != nil {
		v, err := strconv.Atoi(string(b))
		if err != nil {
			return err
		}

		version = v
	}

	if version >= schemaVersion {
		return nil
	}

	err := rekeyFasts(tx)
	if err != nil {
		return err
	}

	return meta.Put(
		[]byte(schemaVersionKey),
		[]byte(strconv.Itoa(schemaVersion)),
	)
}
