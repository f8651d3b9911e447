package card

import "fmt"

// InvalidEnumValueError reports a raw value outside an enumeration's closed set.
type InvalidEnumValueError struct {
	Enum  string
	Value string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Enum, e.Value)
}

// InvalidCardTypeError reports an unrecognized card type discriminator.
type InvalidCardTypeError struct {
	Value string
}

func (e *InvalidCardTypeError) Error() string {
	return fmt.Sprintf("invalid card type %q", e.Value)
}

// Unwrap exposes the error as an InvalidEnumValueError for the "card type" enum.
func (e *InvalidCardTypeError) Unwrap() error {
	return &InvalidEnumValueError{Enum: "card type", Value: e.Value}
}

// MissingGenderAssignmentError reports a creature absent from the gender table.
type MissingGenderAssignmentError struct {
	Name string
}

func (e *MissingGenderAssignmentError) Error() string {
	return fmt.Sprintf("creature %q has no assigned gender", e.Name)
}

func invalid(enum, value string) error {
	return &InvalidEnumValueError{Enum: enum, Value: value}
}
