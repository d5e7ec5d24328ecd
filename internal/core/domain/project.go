package domain

// Project is the managed resource protected by the access gate. Reads are
// open to any authenticated account; writes require admin.
type Project struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
