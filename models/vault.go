package models

import "time"

// The entities below are the per-user encrypted key-material holders touched
// by key rotation. The server treats every Data/Name/Key field as an opaque
// ciphertext blob re-encrypted client-side; it never inspects the contents.

// Cipher is a single vault item. Items owned by an organization carry a
// non-empty OrganizationID and are excluded from personal key rotation.
type Cipher struct {
	ID             string `json:"id"`
	UserID         string `json:"-"`
	OrganizationID string `json:"organization_id,omitempty"`

	Type int `json:"type"`

	// Data is the encrypted item payload.
	Data string `json:"data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Cipher) TableName() string { return "ciphers" }

// Folder groups vault items; its name is encrypted under the user key.
type Folder struct {
	ID     string `json:"id"`
	UserID string `json:"-"`

	// Name is the encrypted folder name.
	Name string `json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f Folder) TableName() string { return "folders" }

// Send is a time-limited share whose key material is wrapped by the user key.
type Send struct {
	ID     string `json:"id"`
	UserID string `json:"-"`

	// Data and Akey are the encrypted payload and the wrapped send key.
	Data string `json:"data"`
	Akey string `json:"key"`

	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	DeletionAt time.Time  `json:"deletion_at"`
}

func (s Send) TableName() string { return "sends" }
