package http

import (
	"net"
	"net/http"
	"strconv"

	"github.com/ndanilkin/go-vault-server/models"
)

// deviceTypeHeader is the numeric device-type code clients send with every
// request. Absent or unparseable values map to DeviceTypeUnknown.
const deviceTypeHeader = "Device-Type"

// clientInfo derives the caller's observed device type and source IP. The
// anti-enumeration checks of the device-approval flow compare against these
// observed values, never against anything the request body claims.
func clientInfo(r *http.Request) models.ClientInfo {
	deviceType := models.DeviceTypeUnknown
	if raw := r.Header.Get(deviceTypeHeader); raw != "" {
		if code, err := strconv.Atoi(raw); err == nil {
			deviceType = models.DeviceType(code)
		}
	}

	return models.ClientInfo{
		DeviceType: deviceType,
		IP:         clientIP(r),
	}
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
