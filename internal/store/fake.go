package store

// FakeStore is an in-memory test double that records every write.
type FakeStore struct {
	// Record is what ReadRecord returns; WriteRecord replaces it.
	Record Config

	// Writes contains every record written, in order.
	Writes []Config

	// ReadError, if set, is returned by ReadRecord.
	ReadError error

	// WriteError, if set, is returned by WriteRecord.
	WriteError error
}

// NewFakeStore creates a FakeStore seeded with the given record.
func NewFakeStore(record Config) *FakeStore {
	return &FakeStore{Record: record}
}

// ReadRecord returns the current record.
func (f *FakeStore) ReadRecord() (Config, error) {
	if f.ReadError != nil {
		return Config{}, f.ReadError
	}
	return f.Record, nil
}

// WriteRecord replaces the current record and logs the write.
func (f *FakeStore) WriteRecord(cfg Config) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.Record = cfg
	f.Writes = append(f.Writes, cfg)
	return nil
}
