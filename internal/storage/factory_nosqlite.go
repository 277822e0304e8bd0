//go:build !sqlite

package storage

import "fmt"

func newSQLiteRecorder(_ string) (Recorder, error) {
	return nil, fmt.Errorf("sqlite backend unavailable in this build; rebuild with -tags sqlite")
}
