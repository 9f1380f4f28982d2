package kv

// Memory is an in-process Store, used by tests and the "memory" backend.
type Memory struct {
	data  map[string]string
	used  int64
	quota int64
}

// NewMemory returns an empty store. quota <= 0 disables the size limit.
func NewMemory(quota int64) *Memory {
	return &Memory{data: map[string]string{}, quota: quota}
}

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	var previous int64
	if old, ok := m.data[key]; ok {
		previous = entrySize(key, old)
	}
	next := entrySize(key, value)
	if err := checkQuota(m.quota, m.used, previous, next); err != nil {
		return err
	}
	m.data[key] = value
	m.used += next - previous
	return nil
}

func (m *Memory) Remove(key string) error {
	if old, ok := m.data[key]; ok {
		m.used -= entrySize(key, old)
		delete(m.data, key)
	}
	return nil
}

func (m *Memory) Close() error { return nil }

// Used returns the bytes currently held.
func (m *Memory) Used() int64 { return m.used }
