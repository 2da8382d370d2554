package repository

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonColumn adapts any JSON-marshalable value to a jsonb column. A plan's
// generated ScheduleResult variants and Constraints, a template's shifts, a
// submission's windows and a staff member's qualifications are stored this
// way rather than normalized across tables: they are read back whole, never
// queried by field, so a jsonb column is the simpler and faster fit.
type jsonColumn[T any] struct {
	Data T
}

func (c jsonColumn[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(c.Data)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (c *jsonColumn[T]) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	case nil:
		return nil
	default:
		return fmt.Errorf("jsonColumn: unsupported scan source %T", src)
	}
	return json.Unmarshal(b, &c.Data)
}
