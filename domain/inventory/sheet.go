package inventory

import (
	"fmt"
	"strings"
)

// Sheet identifies one inventory worksheet by operating company and
// device type, such as "Ohio - Meters".
type Sheet struct {
	opCo       string
	deviceType string
}

// Legacy spreadsheet tabs abbreviated some names. Canonicalize them here
// so imported rows land on the same sheet as hand-entered ones.
var (
	opCoAliases       = map[string]string{"OH": "Ohio"}
	deviceTypeAliases = map[string]string{"Xfmrs": "Transformers"}
)

// NewSheet creates a sheet, resolving known aliases to their canonical
// names.
func NewSheet(opCo, deviceType string) (Sheet, error) {
	opCo = strings.TrimSpace(opCo)
	deviceType = strings.TrimSpace(deviceType)
	if opCo == "" {
		return Sheet{}, fmt.Errorf("operating company is required")
	}
	if deviceType == "" {
		return Sheet{}, fmt.Errorf("device type is required")
	}
	if canonical, ok := opCoAliases[opCo]; ok {
		opCo = canonical
	}
	if canonical, ok := deviceTypeAliases[deviceType]; ok {
		deviceType = canonical
	}
	return Sheet{opCo: opCo, deviceType: deviceType}, nil
}

// ReconstructSheet rebuilds a sheet from stored values without
// validation or alias resolution.
func ReconstructSheet(opCo, deviceType string) Sheet {
	return Sheet{opCo: opCo, deviceType: deviceType}
}

// ParseSheetName parses a display name like "Ohio - Meters" into a Sheet.
func ParseSheetName(name string) (Sheet, error) {
	parts := strings.SplitN(name, " - ", 2)
	if len(parts) != 2 {
		return Sheet{}, fmt.Errorf("invalid sheet name %q: want \"OpCo - DeviceType\"", name)
	}
	return NewSheet(parts[0], parts[1])
}

// OpCo returns the operating company.
func (s Sheet) OpCo() string { return s.opCo }

// DeviceType returns the device type.
func (s Sheet) DeviceType() string { return s.deviceType }

// Name returns the display name, such as "I&M - Transformers".
func (s Sheet) Name() string { return s.opCo + " - " + s.deviceType }

// IsZero reports whether the sheet is unset.
func (s Sheet) IsZero() bool { return s.opCo == "" && s.deviceType == "" }

func (s Sheet) String() string { return s.Name() }
