package enumgen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure taxonomy. Schema-time failures are
// InvalidSetting, DuplicateProperty and MissingRequiredSetting. Binding-time
// failures are TypeMismatch, UnsupportedPreset, MissingValue and
// UnresolvedRelation. All of them are recoverable: callers accumulate them in
// a diag.Collector instead of aborting on the first one.
var (
	// ErrInvalidSetting indicates a setting that is not valid for the
	// property's type class, or carries an out-of-domain value.
	ErrInvalidSetting = errors.New("enumgen: invalid setting")
	// ErrDuplicateProperty indicates two properties sharing a name within
	// one interface schema.
	ErrDuplicateProperty = errors.New("enumgen: duplicate property")
	// ErrMissingRequiredSetting indicates a setting the type class requires
	// but the declaration omitted (e.g. a relation without a nature).
	ErrMissingRequiredSetting = errors.New("enumgen: missing required setting")
	// ErrTypeMismatch indicates an annotation value whose type does not
	// match the property's type class.
	ErrTypeMismatch = errors.New("enumgen: type mismatch")
	// ErrUnsupportedPreset indicates a preset identifier that is not
	// registered for the property's type class.
	ErrUnsupportedPreset = errors.New("enumgen: unsupported preset")
	// ErrMissingValue indicates a required property with no explicit value,
	// no preset and no default for some variant.
	ErrMissingValue = errors.New("enumgen: missing value")
	// ErrUnresolvedRelation indicates a relation target that never resolves
	// to a binding, including genuine relation cycles.
	ErrUnresolvedRelation = errors.New("enumgen: unresolved relation")
)

// SettingError reports a setting that is invalid for, or missing from, a
// property declaration. Missing selects between the InvalidSetting and
// MissingRequiredSetting sentinels.
type SettingError struct {
	Property string
	Setting  string
	Value    any
	Reason   string
	Missing  bool
}

// Error implements the error interface.
func (e *SettingError) Error() string {
	var b strings.Builder
	if e.Missing {
		b.WriteString("enumgen: missing required setting")
	} else {
		b.WriteString("enumgen: invalid setting")
	}
	if e.Setting != "" {
		fmt.Fprintf(&b, " %q", e.Setting)
	}
	if e.Property != "" {
		b.WriteString(" for property ")
		b.WriteString(e.Property)
	}
	if !e.Missing && e.Value != nil {
		fmt.Fprintf(&b, " (value: %v)", e.Value)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel for SettingError.
func (e *SettingError) Is(target error) bool {
	if e.Missing {
		return target == ErrMissingRequiredSetting
	}
	return target == ErrInvalidSetting
}

// NewSettingError creates a new SettingError for an invalid setting value.
func NewSettingError(property, setting string, value any, reason string) *SettingError {
	return &SettingError{
		Property: property,
		Setting:  setting,
		Value:    value,
		Reason:   reason,
	}
}

// NewMissingSettingError creates a new SettingError for an omitted setting.
func NewMissingSettingError(property, setting, reason string) *SettingError {
	return &SettingError{
		Property: property,
		Setting:  setting,
		Reason:   reason,
		Missing:  true,
	}
}

// DuplicatePropertyError reports two properties sharing one name in a schema.
type DuplicatePropertyError struct {
	Interface string
	Property  string
}

// Error implements the error interface.
func (e *DuplicatePropertyError) Error() string {
	return fmt.Sprintf("enumgen: duplicate property %q on interface %s", e.Property, e.Interface)
}

// Is reports whether the target matches the sentinel for DuplicatePropertyError.
func (e *DuplicatePropertyError) Is(target error) bool {
	return target == ErrDuplicateProperty
}

// NewDuplicatePropertyError creates a new DuplicatePropertyError.
func NewDuplicatePropertyError(iface, property string) *DuplicatePropertyError {
	return &DuplicatePropertyError{Interface: iface, Property: property}
}

// TypeMismatchError reports an annotation value that does not match the
// property's type class.
type TypeMismatchError struct {
	Enum     string
	Variant  string
	Property string
	Want     string
	Value    any
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	var b strings.Builder
	b.WriteString("enumgen: type mismatch")
	if e.Property != "" {
		b.WriteString(" for property ")
		b.WriteString(e.Property)
	}
	if e.Enum != "" && e.Variant != "" {
		fmt.Fprintf(&b, " on %s::%s", e.Enum, e.Variant)
	}
	if e.Want != "" {
		fmt.Fprintf(&b, ": want %s, got %T (%v)", e.Want, e.Value, e.Value)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel for TypeMismatchError.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// NewTypeMismatchError creates a new TypeMismatchError.
func NewTypeMismatchError(enum, variant, property, want string, value any) *TypeMismatchError {
	return &TypeMismatchError{
		Enum:     enum,
		Variant:  variant,
		Property: property,
		Want:     want,
		Value:    value,
	}
}

// UnsupportedPresetError reports a preset identifier that is not registered
// for the property's type class.
type UnsupportedPresetError struct {
	Property string
	Preset   string
	Class    string
}

// Error implements the error interface.
func (e *UnsupportedPresetError) Error() string {
	return fmt.Sprintf("enumgen: unsupported preset %q for %s property %s", e.Preset, e.Class, e.Property)
}

// Is reports whether the target matches the sentinel for UnsupportedPresetError.
func (e *UnsupportedPresetError) Is(target error) bool {
	return target == ErrUnsupportedPreset
}

// NewUnsupportedPresetError creates a new UnsupportedPresetError.
func NewUnsupportedPresetError(property, preset, class string) *UnsupportedPresetError {
	return &UnsupportedPresetError{Property: property, Preset: preset, Class: class}
}

// MissingValueError reports a required property left without a value on a
// specific variant.
type MissingValueError struct {
	Enum     string
	Variant  string
	Property string
}

// Error implements the error interface.
func (e *MissingValueError) Error() string {
	return fmt.Sprintf("enumgen: missing value for property %q on %s::%s", e.Property, e.Enum, e.Variant)
}

// Is reports whether the target matches the sentinel for MissingValueError.
func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}

// NewMissingValueError creates a new MissingValueError.
func NewMissingValueError(enum, variant, property string) *MissingValueError {
	return &MissingValueError{Enum: enum, Variant: variant, Property: property}
}

// UnresolvedRelationError reports a relation target that could not be bound:
// the target enumeration never implements the expected interface, the target
// variant does not exist, or two interfaces' relations form a cycle.
type UnresolvedRelationError struct {
	Enum     string
	Variant  string
	Property string
	Target   string
	Reason   string
}

// Error implements the error interface.
func (e *UnresolvedRelationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "enumgen: unresolved relation %q", e.Property)
	if e.Enum != "" {
		b.WriteString(" on ")
		b.WriteString(e.Enum)
		if e.Variant != "" {
			b.WriteString("::")
			b.WriteString(e.Variant)
		}
	}
	if e.Target != "" {
		fmt.Fprintf(&b, " (target: %s)", e.Target)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel for UnresolvedRelationError.
func (e *UnresolvedRelationError) Is(target error) bool {
	return target == ErrUnresolvedRelation
}

// NewUnresolvedRelationError creates a new UnresolvedRelationError.
func NewUnresolvedRelationError(enum, variant, property, target, reason string) *UnresolvedRelationError {
	return &UnresolvedRelationError{
		Enum:     enum,
		Variant:  variant,
		Property: property,
		Target:   target,
		Reason:   reason,
	}
}

// IsInvalidSetting reports whether the error is an invalid-setting failure.
func IsInvalidSetting(err error) bool {
	return errors.Is(err, ErrInvalidSetting)
}

// IsDuplicateProperty reports whether the error is a duplicate-property failure.
func IsDuplicateProperty(err error) bool {
	return errors.Is(err, ErrDuplicateProperty)
}

// IsMissingRequiredSetting reports whether the error is a missing-setting failure.
func IsMissingRequiredSetting(err error) bool {
	return errors.Is(err, ErrMissingRequiredSetting)
}

// IsTypeMismatch reports whether the error is a type-mismatch failure.
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsUnsupportedPreset reports whether the error is an unsupported-preset failure.
func IsUnsupportedPreset(err error) bool {
	return errors.Is(err, ErrUnsupportedPreset)
}

// IsMissingValue reports whether the error is a missing-value failure.
func IsMissingValue(err error) bool {
	return errors.Is(err, ErrMissingValue)
}

// IsUnresolvedRelation reports whether the error is an unresolved-relation failure.
func IsUnresolvedRelation(err error) bool {
	return errors.Is(err, ErrUnresolvedRelation)
}
