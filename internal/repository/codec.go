package repository

import (
	"context"
	"encoding/json"

	"maternacare/internal/infrastructure/kv"

	"github.com/pkg/errors"
)

// getJSON loads and decodes a value. Returns found=false when the key is
// absent.
func getJSON(ctx context.Context, store kv.Store, key string, dest any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "get %s", key)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "decode %s", key)
	}
	return true, nil
}

func setJSON(ctx context.Context, store kv.Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return errors.Wrapf(err, "set %s", key)
	}
	return nil
}

// getIDList loads a list-valued index, treating an absent key as empty.
func getIDList(ctx context.Context, store kv.Store, key string) ([]string, error) {
	var ids []string
	if _, err := getJSON(ctx, store, key, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// appendToList appends id to a list index, wholesale read-modify-write.
// The caller must hold the key's mutex.
func appendToList(ctx context.Context, store kv.Store, key, id string) error {
	ids, err := getIDList(ctx, store, key)
	if err != nil {
		return err
	}
	return setJSON(ctx, store, key, append(ids, id))
}

// removeFromList filters id out of a list index, wholesale
// read-modify-write. The caller must hold the key's mutex.
func removeFromList(ctx context.Context, store kv.Store, key, id string) error {
	ids, err := getIDList(ctx, store, key)
	if err != nil {
		return err
	}
	filtered := ids[:0]
	for _, v := range ids {
		if v != id {
			filtered = append(filtered, v)
		}
	}
	return setJSON(ctx, store, key, filtered)
}
