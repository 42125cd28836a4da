// Package collector obtains raw sensor text from the host, normally by
// shelling out to the lm-sensors command-line tool.
package collector

// Source produces one raw capture of sensor output per call.
type Source interface {
	Name() string
	RunAndCapture() (string, error)
}
