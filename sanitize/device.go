package sanitize

// StaticDevice is a minimal Device implementation backed by a fixed
// capability set, useful for tests and callers that already resolved a
// device's permissions elsewhere. Production callers typically adapt their
// own device-registry type to the Device interface directly instead.
type StaticDevice struct {
	ID           string
	Type         string
	Capabilities map[Capability]bool
}

// NewStaticDevice builds a StaticDevice with the given capabilities
// granted.
func NewStaticDevice(id, deviceType string, caps ...Capability) *StaticDevice {
	grants := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		grants[c] = true
	}
	return &StaticDevice{ID: id, Type: deviceType, Capabilities: grants}
}

// DeviceID implements Device.
func (d *StaticDevice) DeviceID() string { return d.ID }

// DeviceType implements Device.
func (d *StaticDevice) DeviceType() string { return d.Type }

// HasPermission implements Device.
func (d *StaticDevice) HasPermission(cap Capability) bool {
	return d.Capabilities[cap]
}
