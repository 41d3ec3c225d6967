package services

import "encoding/json"

// A Store keeping state in memory. Enough to pass tests.
type MockStore struct {
	data map[string][]byte
}

func NewMockStore() *MockStore {
	return &MockStore{data: map[string][]byte{}}
}

func (self *MockStore) Load(name string, v interface{}) error {
	data, ok := self.data[name]
	if !ok {
		return nil
	}
	json.Unmarshal(data, v)
	return nil
}

func (self *MockStore) Save(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	self.data[name] = data
	return nil
}
