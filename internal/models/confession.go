package models

// ConfessionStatus is the one-way acceptance flag. Timestamp is the Unix
// millisecond time of acceptance, nil while not accepted. The zero value is
// the initial "not asked" state.
type ConfessionStatus struct {
	Accepted  bool   `json:"accepted"`
	Timestamp *int64 `json:"timestamp"`
}
