// File path: internal/compare/status.go
package compare

import "strconv"

// FieldStatus is the closed classification matrix for a field checked against
// its rule: mandatory/optional crossed with present-valid, present with a
// length error, or missing. Every consumer switches on this same set.
type FieldStatus uint

const (
	StatusUnknown FieldStatus = iota
	MandatoryPresentValid
	MandatoryPresentLengthError
	MandatoryMissing
	OptionalPresentValid
	OptionalPresentLengthError
	OptionalMissing
)

func (s FieldStatus) String() string {
	switch s {
	case MandatoryPresentValid:
		return "mandatory-present-valid"
	case MandatoryPresentLengthError:
		return "mandatory-present-length-error"
	case MandatoryMissing:
		return "mandatory-missing"
	case OptionalPresentValid:
		return "optional-present-valid"
	case OptionalPresentLengthError:
		return "optional-present-length-error"
	case OptionalMissing:
		return "optional-missing"
	default:
		return "unknown"
	}
}

func (s FieldStatus) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

func (s *FieldStatus) UnmarshalJSON(data []byte) error {
	text, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	switch text {
	case "mandatory-present-valid":
		*s = MandatoryPresentValid
	case "mandatory-present-length-error":
		*s = MandatoryPresentLengthError
	case "mandatory-missing":
		*s = MandatoryMissing
	case "optional-present-valid":
		*s = OptionalPresentValid
	case "optional-present-length-error":
		*s = OptionalPresentLengthError
	case "optional-missing":
		*s = OptionalMissing
	default:
		*s = StatusUnknown
	}
	return nil
}

// Present reports whether the element was found with a non-empty value.
func (s FieldStatus) Present() bool {
	switch s {
	case MandatoryPresentValid, MandatoryPresentLengthError,
		OptionalPresentValid, OptionalPresentLengthError:
		return true
	}
	return false
}

// LengthError reports whether the element value violated its length range.
func (s FieldStatus) LengthError() bool {
	return s == MandatoryPresentLengthError || s == OptionalPresentLengthError
}

// SegmentDisposition classifies a skeleton segment by designation and
// presence.
type SegmentDisposition uint

const (
	SegmentMandatoryPresent SegmentDisposition = iota + 1
	SegmentMandatoryMissing
	SegmentOptionalPresent
	SegmentOptionalMissing
)

func (d SegmentDisposition) String() string {
	switch d {
	case SegmentMandatoryPresent:
		return "segment-mandatory-present"
	case SegmentMandatoryMissing:
		return "segment-mandatory-missing"
	case SegmentOptionalPresent:
		return "segment-optional-present"
	case SegmentOptionalMissing:
		return "segment-optional-missing"
	default:
		return "unknown"
	}
}

func (d SegmentDisposition) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *SegmentDisposition) UnmarshalJSON(data []byte) error {
	text, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	switch text {
	case "segment-mandatory-present":
		*d = SegmentMandatoryPresent
	case "segment-mandatory-missing":
		*d = SegmentMandatoryMissing
	case "segment-optional-present":
		*d = SegmentOptionalPresent
	case "segment-optional-missing":
		*d = SegmentOptionalMissing
	default:
		*d = 0
	}
	return nil
}
