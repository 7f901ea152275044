package models

import "time"

// EmergencyAccess is a grant letting a trusted contact (grantee) unlock the
// grantor's vault. KeyEncrypted is the grantor's user key wrapped for the
// grantee and is re-encrypted during the grantor's key rotation.
type EmergencyAccess struct {
	ID        string `json:"id"`
	GrantorID string `json:"-"`
	GranteeID string `json:"grantee_id,omitempty"`

	GranteeEmail string `json:"grantee_email,omitempty"`

	// KeyEncrypted is empty until the grantee accepts the invitation.
	KeyEncrypted string `json:"key_encrypted,omitempty"`

	Status int `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e EmergencyAccess) TableName() string { return "emergency_access" }

// Membership links a user to an organization. ResetPasswordKey, when set, is
// the user's key wrapped under the organization's recovery key so an admin
// can reset the member's master password; it participates in key rotation.
type Membership struct {
	ID             string `json:"id"`
	UserID         string `json:"-"`
	OrganizationID string `json:"organization_id"`

	ResetPasswordKey string `json:"reset_password_key,omitempty"`

	Status int `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

func (m Membership) TableName() string { return "memberships" }

// OrgPolicyType enumerates the organization policy kinds the account core
// consults. Only the single enable check is consumed here.
type OrgPolicyType int

const (
	OrgPolicyTwoFactorAuthentication OrgPolicyType = 0
	OrgPolicyMasterPassword          OrgPolicyType = 1
	OrgPolicyResetPassword           OrgPolicyType = 8
)
