package services

// Store persists an app's state under a name.
type Store interface {
	Load(name string, v interface{}) error
	Save(name string, v interface{}) error
}
