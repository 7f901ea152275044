package models

import "time"

// DeviceType mirrors the client-reported device type codes. Only equality
// matters server-side; the constants below cover the common clients.
type DeviceType int

const (
	DeviceTypeAndroid        DeviceType = 0
	DeviceTypeIOS            DeviceType = 1
	DeviceTypeChromeExt      DeviceType = 2
	DeviceTypeFirefoxExt     DeviceType = 3
	DeviceTypeDesktopWindows DeviceType = 6
	DeviceTypeDesktopMacOS   DeviceType = 7
	DeviceTypeDesktopLinux   DeviceType = 8
	DeviceTypeWebVault       DeviceType = 9
	DeviceTypeCLI            DeviceType = 14
	DeviceTypeUnknown        DeviceType = 255
)

// Device is one client installation bound to a user account. Devices are
// created on first authenticated use and survive logout; a security-stamp
// reset invalidates their session tokens without deleting the rows.
type Device struct {
	// ID is the client-chosen device identifier (UUID).
	ID string `json:"id"`

	UserID string `json:"-"`

	Name string     `json:"name"`
	Type DeviceType `json:"type"`

	// PushToken is the platform push registration, empty when push is not
	// set up for this device.
	PushToken string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d Device) TableName() string {
	return "devices"
}
