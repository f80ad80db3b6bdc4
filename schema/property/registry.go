package property

import (
	"fmt"

	"github.com/syssam/enumgen"
	"github.com/syssam/enumgen/schema/preset"
)

// classSettings is the static registry table: the settings each type class
// accepts. Settings outside a class's row are rejected, never ignored.
var classSettings = map[Class]map[string]bool{
	ClassString:   {"preset": true, "default": true},
	ClassNumeric:  {"kind": true, "preset": true, "start": true, "increment": true, "default": true},
	ClassBool:     {"default": true},
	ClassEnum:     {"target": true, "default": true},
	ClassRelation: {"nature": true, "target": true},
}

// settingOrder fixes the order settings are checked in, so the first error
// reported for a descriptor is deterministic.
var settingOrder = []string{"kind", "nature", "target", "preset", "start", "increment", "default"}

// Validate checks a descriptor against the registry: the class must be a
// member of the closed set, every present setting must be allowed for the
// class, and setting values must be inside their domains. Behavior is never
// inferred; anything ambiguous or surplus is an error.
func Validate(d *Descriptor) error {
	if d.Err != nil {
		return d.Err
	}
	if d.Name == "" {
		return enumgen.NewSettingError("", "name", nil, "property name is required")
	}
	if !d.Class.Valid() {
		return enumgen.NewSettingError(d.Name, "class", d.Class, "unknown property class")
	}
	allowed := classSettings[d.Class]
	present := d.settings()
	for _, name := range settingOrder {
		v, ok := present[name]
		if !ok {
			continue
		}
		if !allowed[name] {
			return enumgen.NewSettingError(d.Name, name, v,
				fmt.Sprintf("not supported for %s properties", d.Class))
		}
	}
	switch d.Class {
	case ClassString:
		return validateString(d)
	case ClassNumeric:
		return validateNumeric(d)
	case ClassBool:
		return validateBool(d)
	case ClassEnum:
		return validateEnum(d)
	case ClassRelation:
		return validateRelation(d)
	}
	return nil
}

func validateString(d *Descriptor) error {
	if d.Preset != "" && !preset.IsString(d.Preset) {
		return enumgen.NewUnsupportedPresetError(d.Name, d.Preset, d.Class.String())
	}
	if d.Default != nil {
		if _, err := Coerce(d.Default, ClassString, KindInvalid); err != nil {
			return enumgen.NewSettingError(d.Name, "default", d.Default, err.Error())
		}
	}
	return nil
}

func validateNumeric(d *Descriptor) error {
	if !d.Kind.Valid() {
		return enumgen.NewMissingSettingError(d.Name, "kind", "numeric properties declare an explicit width")
	}
	if d.Preset != "" {
		p, err := preset.ParseNumber(d.Preset)
		if err != nil {
			return enumgen.NewUnsupportedPresetError(d.Name, d.Preset, d.Class.String())
		}
		switch p {
		case preset.Serial:
			if d.Start == nil {
				return enumgen.NewMissingSettingError(d.Name, "start", "required by the Serial preset")
			}
			if d.Increment == nil {
				return enumgen.NewMissingSettingError(d.Name, "increment", "required by the Serial preset")
			}
			if _, err := Coerce(d.Start, ClassNumeric, d.Kind); err != nil {
				return enumgen.NewSettingError(d.Name, "start", d.Start, err.Error())
			}
			if _, err := Coerce(d.Increment, ClassNumeric, d.Kind); err != nil {
				return enumgen.NewSettingError(d.Name, "increment", d.Increment, err.Error())
			}
		case preset.Ordinal:
			if d.Start != nil || d.Increment != nil {
				return enumgen.NewSettingError(d.Name, "start", d.Start, "the Ordinal preset takes no settings")
			}
		}
	} else if d.Start != nil || d.Increment != nil {
		return enumgen.NewSettingError(d.Name, "start", d.Start, "start and increment require the Serial preset")
	}
	if d.Default != nil {
		if _, err := Coerce(d.Default, ClassNumeric, d.Kind); err != nil {
			return enumgen.NewSettingError(d.Name, "default", d.Default, err.Error())
		}
	}
	return nil
}

func validateBool(d *Descriptor) error {
	if d.Default != nil {
		if _, err := Coerce(d.Default, ClassBool, KindInvalid); err != nil {
			return enumgen.NewSettingError(d.Name, "default", d.Default, err.Error())
		}
	}
	return nil
}

func validateEnum(d *Descriptor) error {
	if d.Target == "" {
		return enumgen.NewMissingSettingError(d.Name, "target", "enum properties name their enum type")
	}
	if d.Default != nil {
		if _, err := Coerce(d.Default, ClassEnum, KindInvalid); err != nil {
			return enumgen.NewSettingError(d.Name, "default", d.Default, err.Error())
		}
	}
	return nil
}

func validateRelation(d *Descriptor) error {
	if !d.Nature.Valid() {
		return enumgen.NewMissingSettingError(d.Name, "nature", "relation properties declare exactly one nature")
	}
	if d.Target == "" {
		return enumgen.NewMissingSettingError(d.Name, "target", "relation properties name their target interface")
	}
	return nil
}

// settings returns the settings present on the descriptor, keyed by their
// registry name.
func (d *Descriptor) settings() map[string]any {
	m := make(map[string]any)
	if d.Kind != KindInvalid {
		m["kind"] = d.Kind
	}
	if d.Nature != NatureInvalid {
		m["nature"] = d.Nature
	}
	if d.Target != "" {
		m["target"] = d.Target
	}
	if d.Preset != "" {
		m["preset"] = d.Preset
	}
	if d.Start != nil {
		m["start"] = d.Start
	}
	if d.Increment != nil {
		m["increment"] = d.Increment
	}
	if d.Default != nil {
		m["default"] = d.Default
	}
	return m
}
