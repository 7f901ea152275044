package models

import "time"

// AuthRequest is one passwordless device-approval attempt.
//
// Lifecycle: created pending by the requesting (not yet authenticated)
// device; resolved exactly once by an authenticated device of the same user.
// Approval fills the response fields and keeps the row; denial deletes the
// row outright, so a denied request is indistinguishable from one that never
// existed. Pending rows past the configured TTL are removed by a background
// sweep.
type AuthRequest struct {
	ID     string `json:"id"`
	UserID string `json:"-"`

	// RequestDeviceID is the identifier the requesting device presented at
	// creation; RequestDeviceType and RequestIP are what the server observed
	// and are re-checked on every anonymous poll.
	RequestDeviceID   string     `json:"request_device_id"`
	RequestDeviceType DeviceType `json:"request_device_type"`
	RequestIP         string     `json:"request_ip"`

	// AccessCode is the requester-chosen shared secret used to poll the
	// request status anonymously. Compared in constant time.
	AccessCode string `json:"-"`

	// PublicKey is the requester's ephemeral public key; the approving
	// device encrypts the user key to it.
	PublicKey string `json:"public_key"`

	// Approved is nil while pending and true after approval. False is never
	// persisted: denial deletes the record.
	Approved *bool `json:"approved"`

	// EncKey and MasterPasswordHash are populated by the approving device.
	EncKey             string `json:"enc_key,omitempty"`
	MasterPasswordHash string `json:"master_password_hash,omitempty"`

	ResponseDeviceID string     `json:"response_device_id,omitempty"`
	ResponseDate     *time.Time `json:"response_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Pending reports whether the request is still awaiting a response.
func (a AuthRequest) Pending() bool {
	return a.Approved == nil
}

func (a AuthRequest) TableName() string {
	return "auth_requests"
}
