package models

// Security-event type codes written to the audit log. The numeric values are
// shared with other deployments' event vocabulary and must stay stable.
const (
	EventUserRequestedDeviceApproval = 1144
	EventUserApprovedAuthRequest     = 1145
	EventUserRejectedAuthRequest     = 1146
)
