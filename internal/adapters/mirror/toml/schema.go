package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Records []recordSchema `toml:"records"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported mirror schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func (s fileSchema) indexOf(key string) int {
	for i := range s.Records {
		if s.Records[i].Key == key {
			return i
		}
	}

	return -1
}

type recordSchema struct {
	Key     string `toml:"key"`
	Payload string `toml:"payload"`
	SavedAt string `toml:"saved_at"`
}
