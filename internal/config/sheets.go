package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SheetDef describes one inventory sheet in the catalog file.
type SheetDef struct {
	OpCo       string `yaml:"opco"`
	DeviceType string `yaml:"device_type"`
}

type sheetCatalogFile struct {
	Sheets []SheetDef `yaml:"sheets"`
}

// DefaultSheetDefs returns the built-in sheet catalog.
func DefaultSheetDefs() []SheetDef {
	return []SheetDef{
		{OpCo: "Ohio", DeviceType: "Meters"},
		{OpCo: "I&M", DeviceType: "Meters"},
		{OpCo: "Ohio", DeviceType: "Transformers"},
		{OpCo: "I&M", DeviceType: "Transformers"},
	}
}

// LoadSheetCatalog reads sheet definitions from a YAML file. The file has
// the shape:
//
//	sheets:
//	  - opco: Ohio
//	    device_type: Meters
func LoadSheetCatalog(path string) ([]SheetDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sheet catalog: %w", err)
	}

	var file sheetCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse sheet catalog: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("sheet catalog %s: no sheets defined", path)
	}
	for i, def := range file.Sheets {
		if def.OpCo == "" || def.DeviceType == "" {
			return nil, fmt.Errorf("sheet catalog %s: entry %d is missing opco or device_type", path, i+1)
		}
	}
	return file.Sheets, nil
}

// SheetDefs resolves the sheet catalog for this configuration: the YAML
// file when one is configured, the built-in catalog otherwise.
func (c AppConfig) SheetDefs() ([]SheetDef, error) {
	if c.sheetsFile == "" {
		return DefaultSheetDefs(), nil
	}
	return LoadSheetCatalog(c.sheetsFile)
}
