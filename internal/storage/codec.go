package storage

import (
	"encoding/json"
	"errors"

	"neurograph/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeFrame(f model.Frame) ([]byte, error) {
	return json.Marshal(f)
}

func DecodeFrame(data []byte) (model.Frame, error) {
	var frame model.Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		return model.Frame{}, err
	}
	if err := checkVersion(frame.VersionedRecord); err != nil {
		return model.Frame{}, err
	}
	return frame, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
