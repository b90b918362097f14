package domain

import "time"

// Client is a master-data record. The surrogate ID is what loans and events
// reference, so renaming a client is a metadata-only update with no cascade.
type Client struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	StoreName string    `json:"store_name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedOn time.Time `json:"created_on"`
}
