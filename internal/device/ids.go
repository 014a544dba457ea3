// Package device generates the random identifiers Windsurf stores in its
// global storage file.
package device

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// Storage keys for the telemetry identifier fields.
const (
	KeyMachineID    = "telemetry.machineId"
	KeyMacMachineID = "telemetry.macMachineId"
	KeyDevDeviceID  = "telemetry.devDeviceId"

	// KeySqmID is written by Windsurf itself; this tool never touches it
	// and hides it from display.
	KeySqmID = "telemetry.sqmId"
)

// Keys lists the fields a reset overwrites, in display order.
var Keys = []string{KeyMachineID, KeyMacMachineID, KeyDevDeviceID}

// IDSet holds one freshly generated set of device identifiers.
// Immutable once generated.
type IDSet struct {
	MachineID    string
	MacMachineID string
	DevDeviceID  string
}

// NewIDSet generates a fresh identifier set: two independent 32-byte
// crypto/rand values as lowercase hex and a random version-4 UUID.
func NewIDSet() (IDSet, error) {
	machineID, err := randomHex(32)
	if err != nil {
		return IDSet{}, fmt.Errorf("generating machine id: %w", err)
	}
	macMachineID, err := randomHex(32)
	if err != nil {
		return IDSet{}, fmt.Errorf("generating mac machine id: %w", err)
	}
	devDeviceID, err := uuid.NewRandom()
	if err != nil {
		return IDSet{}, fmt.Errorf("generating device id: %w", err)
	}
	return IDSet{
		MachineID:    machineID,
		MacMachineID: macMachineID,
		DevDeviceID:  devDeviceID.String(),
	}, nil
}

// Apply overwrites the three identifier keys in doc. All other keys are
// left untouched.
func (s IDSet) Apply(doc map[string]any) {
	doc[KeyMachineID] = s.MachineID
	doc[KeyMacMachineID] = s.MacMachineID
	doc[KeyDevDeviceID] = s.DevDeviceID
}

// Rows returns the set as key/value pairs for display.
func (s IDSet) Rows() [][2]string {
	return [][2]string{
		{KeyMachineID, s.MachineID},
		{KeyMacMachineID, s.MacMachineID},
		{KeyDevDeviceID, s.DevDeviceID},
	}
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
