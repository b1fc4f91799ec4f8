package termname

import (
	"database/sql/driver"
	"fmt"
)

func (t TermName) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// UnmarshalText accepts any form ParseTermName does and stores the canonical form.
// Empty text is the zero value, matching MarshalText.
func (t *TermName) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*t = ""
		return nil
	}
	v, err := ParseTermName(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Value stores the canonical form; the zero value is stored as NULL
func (t TermName) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

func (t *TermName) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	}
	return fmt.Errorf("%w: unsupported type %T", ErrInvalidTermName, src)
}
